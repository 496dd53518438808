package logotype

import (
	"log/slog"

	"github.com/rasterkit/logotype/font"
)

// RenderRequest aggregates all caller-supplied parameters for one render.
// It is consumed entirely within one pipeline run and never persisted.
//
// Font holds either a display-name locator from font discovery (passed back
// verbatim) or a direct path to a font file.
type RenderRequest struct {
	Text string
	Font string
	Size int

	// ThreeD enables the extrusion effect with the given Depth.
	ThreeD bool
	Depth  int

	// Background fills the whole canvas; a gradient varies horizontally.
	Background GradientSpec
	// Fill colors the glyphs; a gradient varies vertically across the
	// text bounding box.
	Fill GradientSpec

	Width  int
	Height int
}

// DefaultRequest returns the engine's reset state: a black "A" at size 72 on
// a white 500x500 canvas, no extrusion.
func DefaultRequest() RenderRequest {
	return RenderRequest{
		Text:       "A",
		Font:       font.DefaultLocator,
		Size:       72,
		Depth:      5,
		Background: Solid(White),
		Fill:       Solid(Black),
		Width:      500,
		Height:     500,
	}
}

// Renderer runs the compositing pipeline. It holds only the font resolver;
// every render allocates fresh buffers and discards them on completion, so a
// Renderer may be shared as long as calls are not concurrent.
type Renderer struct {
	fonts *font.Resolver
}

// NewRenderer creates a renderer backed by the given resolver.
// A nil resolver is replaced with a default one.
func NewRenderer(fonts *font.Resolver) *Renderer {
	if fonts == nil {
		fonts = font.NewResolver()
	}
	return &Renderer{fonts: fonts}
}

// Render runs the full pipeline for one request and returns the flattened,
// fully opaque result. Both interactive preview and file export call Render
// with the same request, guaranteeing identical pixels.
//
// Render never fails: degenerate geometry is clamped, font resolution always
// produces a handle, and per-glyph rasterization faults degrade to partial
// output. All degradations are reported through the package logger.
func (r *Renderer) Render(req RenderRequest) *Pixmap {
	log := Logger()

	w, h := req.Width, req.Height
	if w < 1 || h < 1 {
		log.Warn("logotype: degenerate canvas clamped",
			slog.Int("width", w), slog.Int("height", h))
		w, h = max(w, 1), max(h, 1)
	}

	// Background layer: solid, or two-stop gradient across the full width.
	out := Fill(w, h, req.Background, Horizontal)

	handle := r.fonts.Resolve(req.Font, req.Size)
	metrics := handle.Bounds(req.Text)
	textX, textY := CenterOffsets(w, h, metrics)
	mask := GlyphMask(req.Text, handle, w, h, textX, textY)

	log.Debug("logotype: glyph mask rendered",
		slog.String("text", req.Text),
		slog.Int("bboxWidth", metrics.Width()),
		slog.Int("bboxHeight", metrics.Height()),
		slog.Int("textX", textX), slog.Int("textY", textY))

	if req.ThreeD {
		depth := req.Depth
		if depth < 1 {
			log.Warn("logotype: extrusion depth clamped", slog.Int("depth", depth))
			depth = 1
		}
		CompositeOver(out, ExtrusionLayer(mask, req.Fill.Start(), depth))
	}

	// Text layer: solid tint, or a vertical gradient spanning the text
	// bounding-box height clipped to the glyph coverage.
	var textLayer *Pixmap
	if req.Fill.IsGradient() {
		textLayer = FillBand(w, h, req.Fill, textY, metrics.Height())
		textLayer.ApplyAlpha(mask)
	} else {
		textLayer = TintedLayer(mask, req.Fill.Start())
	}
	CompositeOver(out, textLayer)

	out.Flatten()
	return out
}
