package logotype

import (
	"image"
	"image/color"
	"testing"
)

var _ image.Image = (*Pixmap)(nil)

func TestNewPixmap_ClampsDimensions(t *testing.T) {
	tests := []struct {
		name          string
		w, h          int
		wantW, wantH  int
	}{
		{"normal", 10, 20, 10, 20},
		{"zero width", 0, 5, 1, 5},
		{"negative both", -3, -7, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPixmap(tt.w, tt.h)
			if p.Width() != tt.wantW || p.Height() != tt.wantH {
				t.Errorf("NewPixmap(%d, %d) = %dx%d, want %dx%d",
					tt.w, tt.h, p.Width(), p.Height(), tt.wantW, tt.wantH)
			}
			if len(p.Data()) != tt.wantW*tt.wantH*4 {
				t.Errorf("data length = %d, want %d", len(p.Data()), tt.wantW*tt.wantH*4)
			}
		})
	}
}

func TestPixmap_SetGet(t *testing.T) {
	p := NewPixmap(5, 5)

	p.SetPixel(2, 3, Color{10, 20, 30}, 200)
	c, a := p.PixelAt(2, 3)
	if c != (Color{10, 20, 30}) || a != 200 {
		t.Errorf("PixelAt(2,3) = %+v a=%d, want {10 20 30} a=200", c, a)
	}

	// Untouched pixels stay transparent black.
	if c, a := p.PixelAt(0, 0); c != (Color{}) || a != 0 {
		t.Errorf("untouched pixel = %+v a=%d, want transparent black", c, a)
	}
}

func TestPixmap_OutOfBounds(t *testing.T) {
	p := NewPixmap(3, 3)
	p.Fill(Color{5, 5, 5}, 255)

	// Out-of-bounds writes are ignored, not panics.
	p.SetPixel(-1, 0, White, 255)
	p.SetPixel(3, 0, White, 255)
	p.SetPixel(0, -1, White, 255)
	p.SetPixel(0, 3, White, 255)

	for _, pt := range [][2]int{{-1, 0}, {3, 0}, {0, -1}, {0, 3}} {
		if c, a := p.PixelAt(pt[0], pt[1]); c != (Color{}) || a != 0 {
			t.Errorf("PixelAt(%d,%d) = %+v a=%d, want transparent black", pt[0], pt[1], c, a)
		}
	}
	if c, _ := p.PixelAt(0, 0); c != (Color{5, 5, 5}) {
		t.Errorf("in-bounds pixel changed by out-of-bounds writes: %+v", c)
	}
}

func TestPixmap_Fill(t *testing.T) {
	p := NewPixmap(4, 3)
	p.Fill(Color{60, 70, 80}, 90)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			c, a := p.PixelAt(x, y)
			if c != (Color{60, 70, 80}) || a != 90 {
				t.Fatalf("pixel (%d,%d) = %+v a=%d", x, y, c, a)
			}
		}
	}
}

func TestPixmap_ToImage(t *testing.T) {
	p := NewPixmap(2, 2)
	p.SetPixel(0, 0, Color{255, 0, 0}, 255)
	p.SetPixel(1, 1, Color{0, 0, 255}, 128)

	img := p.ToImage()
	if got := img.Bounds().Dx(); got != 2 {
		t.Fatalf("image width = %d, want 2", got)
	}
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("image (0,0) = %+v", got)
	}
	if got := img.NRGBAAt(1, 1); got != (color.NRGBA{0, 0, 255, 128}) {
		t.Errorf("image (1,1) = %+v", got)
	}

	// The conversion copies; mutating the pixmap must not touch the image.
	p.SetPixel(0, 0, Color{0, 255, 0}, 255)
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("image shares storage with pixmap: (0,0) = %+v", got)
	}
}

func TestPixmap_ImageInterface(t *testing.T) {
	p := NewPixmap(3, 2)
	p.SetPixel(1, 0, Color{9, 8, 7}, 6)

	if b := p.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("Bounds = %v", b)
	}
	if p.ColorModel() != color.NRGBAModel {
		t.Error("ColorModel is not NRGBA")
	}
	if got := p.At(1, 0); got != (color.NRGBA{9, 8, 7, 6}) {
		t.Errorf("At(1,0) = %+v", got)
	}
}
