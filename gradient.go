package logotype

// Axis selects the direction a linear gradient varies along.
// Backgrounds use Horizontal across the full canvas width; text fills use
// Vertical across the text bounding-box height only. The asymmetry is
// intentional.
type Axis int

const (
	// Horizontal varies the gradient by column.
	Horizontal Axis = iota
	// Vertical varies the gradient by row.
	Vertical
)

// GradientSpec describes either a single solid color or an ordered two-stop
// linear gradient. The zero value is solid black.
type GradientSpec struct {
	start   Color
	end     Color
	twoStop bool
}

// Solid returns a spec that fills with a single color.
func Solid(c Color) GradientSpec {
	return GradientSpec{start: c, end: c}
}

// TwoStop returns a spec that interpolates from start to end.
func TwoStop(start, end Color) GradientSpec {
	return GradientSpec{start: start, end: end, twoStop: true}
}

// IsGradient reports whether two stops are present.
func (s GradientSpec) IsGradient() bool { return s.twoStop }

// Start returns the first (or only) color.
func (s GradientSpec) Start() Color { return s.start }

// End returns the second color. For a solid spec it equals Start.
func (s GradientSpec) End() Color { return s.end }

// colorAt returns the interpolated color at axis position p of a run of the
// given length. Position 0 is exactly the start color and position length-1
// is exactly the end color; channels are truncated to integer in between.
//
// colorAt depends only on its arguments, so row- or column-parallel fills
// cannot change observable output.
func (s GradientSpec) colorAt(p, length int) Color {
	if !s.twoStop || length <= 1 {
		return s.start
	}
	t := float64(p) / float64(length-1)
	return Color{
		R: lerpChannel(s.start.R, s.end.R, t),
		G: lerpChannel(s.start.G, s.end.G, t),
		B: lerpChannel(s.start.B, s.end.B, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := int(float64(a) + (float64(b)-float64(a))*t)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Fill generates a fully opaque pixel buffer whose color at each coordinate
// interpolates between the spec's colors along the given axis, spanning the
// full width (Horizontal) or height (Vertical). A solid spec fills every
// pixel with the single color.
func Fill(width, height int, spec GradientSpec, axis Axis) *Pixmap {
	p := NewPixmap(width, height)
	width, height = p.Width(), p.Height()

	if !spec.IsGradient() {
		p.Fill(spec.Start(), 255)
		return p
	}

	switch axis {
	case Horizontal:
		for x := 0; x < width; x++ {
			c := spec.colorAt(x, width)
			for y := 0; y < height; y++ {
				p.SetPixel(x, y, c, 255)
			}
		}
	case Vertical:
		for y := 0; y < height; y++ {
			c := spec.colorAt(y, height)
			for x := 0; x < width; x++ {
				p.SetPixel(x, y, c, 255)
			}
		}
	}
	return p
}

// FillBand generates a canvas-sized buffer whose rows in [y0, y0+span) hold a
// vertical gradient across the band; rows outside the band stay transparent
// and are expected to be clipped by the glyph mask afterwards.
//
// A span below 1 (for example the zero-height bounding box of an empty
// string) degrades to a full solid fill with the start color, so gradient
// interpolation never divides by zero.
func FillBand(width, height int, spec GradientSpec, y0, span int) *Pixmap {
	if span < 1 || !spec.IsGradient() {
		p := NewPixmap(width, height)
		p.Fill(spec.Start(), 255)
		return p
	}

	p := NewPixmap(width, height)
	width = p.Width()
	for row := 0; row < span; row++ {
		y := y0 + row
		if y < 0 || y >= p.Height() {
			continue
		}
		c := spec.colorAt(row, span)
		for x := 0; x < width; x++ {
			p.SetPixel(x, y, c, 255)
		}
	}
	return p
}
