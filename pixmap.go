package logotype

import (
	"image"
	"image/color"
)

// Pixmap is a rectangular RGBA pixel buffer with straight (non-premultiplied)
// alpha. Each pipeline stage allocates the pixmaps it produces and hands them
// to the next stage; no two stages mutate a pixmap concurrently.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a fully transparent pixmap with the given dimensions.
// Dimensions below 1 are raised to 1.
func NewPixmap(width, height int) *Pixmap {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA order, straight alpha).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets a single pixel. Coordinates outside the pixmap are ignored.
func (p *Pixmap) SetPixel(x, y int, c Color, alpha uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = alpha
}

// PixelAt returns the color and alpha of a single pixel.
// Returns a transparent black pixel for out-of-bounds coordinates.
func (p *Pixmap) PixelAt(x, y int) (Color, uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Color{}, 0
	}
	i := (y*p.width + x) * 4
	return Color{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2]}, p.data[i+3]
}

// Fill sets every pixel to the given color and alpha.
func (p *Pixmap) Fill(c Color, alpha uint8) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = alpha
	}
}

// Flatten forces every pixel fully opaque. Export formats without an alpha
// channel rely on the output being flattened first.
func (p *Pixmap) Flatten() {
	for i := 3; i < len(p.data); i += 4 {
		p.data[i] = 255
	}
}

// ToImage converts the pixmap to a standard *image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	c, a := p.PixelAt(x, y)
	return c.NRGBA(a)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
