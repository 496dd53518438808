package font

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// faceHandle is the direct Handle variant: a parsed OpenType font bound to
// one size through an x/image font.Face.
type faceHandle struct {
	face xfont.Face
	size int
}

// newFaceHandle parses TTF/OTF data and binds it to the given point size.
func newFaceHandle(data []byte, size int) (*faceHandle, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	f, err := opentype.Parse(data)
	if err != nil {
		// Collection files (.ttc) carry several fonts; the first one wins.
		c, cerr := opentype.ParseCollection(data)
		if cerr != nil {
			return nil, fmt.Errorf("font: parse: %w", err)
		}
		if c.NumFonts() == 0 {
			return nil, ErrNoFontInCollection
		}
		f, err = c.Font(0)
		if err != nil {
			return nil, fmt.Errorf("font: collection font 0: %w", err)
		}
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font: face at size %d: %w", size, err)
	}
	return &faceHandle{face: face, size: size}, nil
}

// loadFaceFile reads a font file and binds it to the given point size.
func loadFaceFile(path string, size int) (*faceHandle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("font: read %s: %w", path, err)
	}
	return newFaceHandle(data, size)
}

// Bounds implements Handle. The box is relative to the rasterization
// origin; Top is typically negative (above the baseline).
func (h *faceHandle) Bounds(text string) Metrics {
	b, _ := xfont.BoundString(h.face, text)
	return Metrics{
		Left:   b.Min.X.Floor(),
		Top:    b.Min.Y.Floor(),
		Right:  b.Max.X.Ceil(),
		Bottom: b.Max.Y.Ceil(),
	}
}

// Rasterize implements Handle.
func (h *faceHandle) Rasterize(dst draw.Image, text string, x, y int) {
	if text == "" {
		return
	}
	b, _ := xfont.BoundString(h.face, text)
	d := &xfont.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: h.face,
		// Shift the dot so the bounding-box min corner lands on (x, y).
		Dot: fixed.Point26_6{
			X: fixed.I(x) - b.Min.X,
			Y: fixed.I(y) - b.Min.Y,
		},
	}
	d.DrawString(text)
}

// Size implements Handle.
func (h *faceHandle) Size() int { return h.size }

func (h *faceHandle) private() {}
