package logotype

import (
	"image"

	"github.com/rasterkit/logotype/font"
)

// GlyphMask rasterizes text through a resolved font into a canvas-sized
// coverage mask. The text is placed so that the top-left corner of its tight
// bounding box lands on (originX, originY); coverage holds the rasterizer's
// anti-aliased opacity, 255 where glyphs fully cover a pixel and 0 elsewhere.
//
// Text placed partially off-canvas is clipped, not an error: centering an
// oversized string is accepted behavior.
func GlyphMask(text string, h font.Handle, width, height, originX, originY int) *Mask {
	alpha := image.NewAlpha(image.Rect(0, 0, max(width, 1), max(height, 1)))
	h.Rasterize(alpha, text, originX, originY)
	return NewMaskFromAlpha(alpha)
}

// CenterOffsets returns the origin that centers a text bounding box on a
// canvas: ((width-bw)/2, (height-bh)/2), integer division. For text larger
// than the canvas the offsets go negative, placing the text partially
// off-canvas.
func CenterOffsets(width, height int, m font.Metrics) (x, y int) {
	return (width - m.Width()) / 2, (height - m.Height()) / 2
}
