package font

import (
	"image"
	"image/draw"

	"github.com/anthonynsimon/bild/transform"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// referenceSize is the native pixel size of the built-in bitmap face.
const referenceSize = 13

// ScaledHandle is the synthetic fallback Handle: the rasterizer's built-in
// minimal bitmap face rendered at its fixed reference size, with bounding
// boxes and coverage scaled by pointSize/referenceSize. Visual sharpness is
// sacrificed for size predictability when no scalable font is available;
// this variant exists so resolution can always succeed.
type ScaledHandle struct {
	base   xfont.Face
	size   int
	factor float64
}

// newScaledHandle builds the fallback handle for the given point size.
// It cannot fail: the base face is compiled into the binary.
func newScaledHandle(size int) *ScaledHandle {
	return &ScaledHandle{
		base:   basicfont.Face7x13,
		size:   size,
		factor: float64(size) / referenceSize,
	}
}

// Bounds implements Handle: the reference-size bounding box scaled by the
// handle's factor. The extents come from scaledExtents, the same computation
// Rasterize sizes its resampled coverage with, so the reported box and the
// stamped pixels always agree.
func (h *ScaledHandle) Bounds(text string) Metrics {
	b, _ := xfont.BoundString(h.base, text)
	sw, sh := h.scaledExtents(b)
	left := int(float64(b.Min.X.Floor()) * h.factor)
	top := int(float64(b.Min.Y.Floor()) * h.factor)
	return Metrics{Left: left, Top: top, Right: left + sw, Bottom: top + sh}
}

// scaledExtents returns the scaled pixel extents of a reference-size
// bounding box. Degenerate boxes stay 0x0; anything visible stays at least
// 1x1 after scaling.
func (h *ScaledHandle) scaledExtents(b fixed.Rectangle26_6) (w, hgt int) {
	rw := (b.Max.X - b.Min.X).Ceil()
	rh := (b.Max.Y - b.Min.Y).Ceil()
	if rw < 1 || rh < 1 {
		return 0, 0
	}
	return max(int(float64(rw)*h.factor), 1), max(int(float64(rh)*h.factor), 1)
}

// Rasterize implements Handle. The text is drawn once at the reference size
// and the resulting coverage is resampled (Lanczos) to the scaled
// dimensions; there is no sharp re-rasterization at the requested size.
func (h *ScaledHandle) Rasterize(dst draw.Image, text string, x, y int) {
	if text == "" {
		return
	}
	b, _ := xfont.BoundString(h.base, text)
	rw := (b.Max.X - b.Min.X).Ceil()
	rh := (b.Max.Y - b.Min.Y).Ceil()
	sw, sh := h.scaledExtents(b)
	if sw < 1 || sh < 1 {
		return
	}

	small := image.NewNRGBA(image.Rect(0, 0, rw, rh))
	d := &xfont.Drawer{
		Dst:  small,
		Src:  image.White,
		Face: h.base,
		Dot:  fixed.Point26_6{X: -b.Min.X, Y: -b.Min.Y},
	}
	d.DrawString(text)

	src := image.Image(small)
	if sw != rw || sh != rh {
		src = transform.Resize(small, sw, sh, transform.Lanczos)
	}
	draw.Draw(dst, image.Rect(x, y, x+sw, y+sh), src, image.Point{}, draw.Over)
}

// Size implements Handle.
func (h *ScaledHandle) Size() int { return h.size }

// Factor returns the bounding-box scale factor, pointSize/referenceSize.
func (h *ScaledHandle) Factor() float64 { return h.factor }

func (h *ScaledHandle) private() {}
