package logotype

import "image"

// Mask is a single-channel coverage buffer for compositing operations.
// Values range from 0 (fully transparent) to 255 (fully opaque). The glyph
// rasterizer's anti-aliased coverage is stored here unchanged.
type Mask struct {
	width  int
	height int
	data   []uint8
}

// NewMask creates a new empty mask with the given dimensions.
// All values are initialized to 0 (fully transparent).
func NewMask(width, height int) *Mask {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// NewMaskFromAlpha creates a mask from an image's alpha channel.
func NewMaskFromAlpha(img image.Image) *Mask {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	mask := NewMask(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, a := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// a is 0-65535, shift by 8 to get 0-255
			mask.data[y*w+x] = uint8(a >> 8)
		}
	}

	return mask
}

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// At returns the mask value at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Set sets the mask value at (x, y).
// Coordinates outside the mask bounds are ignored.
func (m *Mask) Set(x, y int, value uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = value
}

// Fill fills the entire mask with a value.
func (m *Mask) Fill(value uint8) {
	for i := range m.data {
		m.data[i] = value
	}
}

// Clear clears the mask (sets all values to 0).
func (m *Mask) Clear() {
	for i := range m.data {
		m.data[i] = 0
	}
}

// TintedLayer returns a canvas-sized pixmap holding the mask filled with a
// single color: each pixel takes the color with the mask's coverage as its
// alpha. This is the solid-color text layer.
func TintedLayer(m *Mask, c Color) *Pixmap {
	layer := NewPixmap(m.width, m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if a := m.data[y*m.width+x]; a > 0 {
				layer.SetPixel(x, y, c, a)
			}
		}
	}
	return layer
}

// ApplyAlpha multiplies the pixmap's alpha channel by the mask, clipping the
// pixmap to the mask's coverage. The gradient text fill uses this so the
// gradient shows only inside the glyphs. Dimensions must match; mismatched
// buffers are left untouched.
func (p *Pixmap) ApplyAlpha(m *Mask) {
	if p.width != m.width || p.height != m.height {
		return
	}
	for i := range m.data {
		a := p.data[i*4+3]
		p.data[i*4+3] = uint8(int(a) * int(m.data[i]) / 255)
	}
}
