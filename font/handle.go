package font

import "image/draw"

// Metrics is the tight bounding box of a rendered string under one Handle,
// in pixels relative to the rasterization origin. It is recomputed on every
// render (text, font and size can all change between calls) and is used only
// to compute centering offsets and the vertical gradient span.
type Metrics struct {
	Left, Top, Right, Bottom int
}

// Width returns the horizontal extent of the bounding box.
func (m Metrics) Width() int { return m.Right - m.Left }

// Height returns the vertical extent of the bounding box.
func (m Metrics) Height() int { return m.Bottom - m.Top }

// Handle is an opaque resolved font bound to one concrete size. Once a
// Resolver returns a Handle, it can answer bounding-box queries and
// rasterize coverage for any string with no further fallback logic.
//
// Handles are not safe for concurrent use; the render pipeline is
// single-threaded by contract.
type Handle interface {
	// Bounds returns the tight bounding box for text.
	Bounds(text string) Metrics

	// Rasterize draws the text's anti-aliased coverage onto dst, placed so
	// the bounding-box top-left lands on (x, y). Coverage off the edges of
	// dst is clipped. Glyphs the font cannot represent render as the
	// font's notdef shape rather than aborting.
	Rasterize(dst draw.Image, text string, x, y int)

	// Size returns the point size the handle was resolved at.
	Size() int

	// private prevents external implementations.
	private()
}
