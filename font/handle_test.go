package font

import (
	"errors"
	"image"
	"testing"
)

var (
	_ Handle = (*faceHandle)(nil)
	_ Handle = (*ScaledHandle)(nil)
)

func TestMetrics(t *testing.T) {
	tests := []struct {
		name                   string
		m                      Metrics
		wantWidth, wantHeight  int
	}{
		{"origin box", Metrics{0, 0, 10, 20}, 10, 20},
		{"negative top", Metrics{2, -15, 40, 3}, 38, 18},
		{"empty", Metrics{}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Width(); got != tt.wantWidth {
				t.Errorf("Width = %d, want %d", got, tt.wantWidth)
			}
			if got := tt.m.Height(); got != tt.wantHeight {
				t.Errorf("Height = %d, want %d", got, tt.wantHeight)
			}
		})
	}
}

func TestNewFaceHandle_EmptyData(t *testing.T) {
	_, err := newFaceHandle(nil, 12)
	if !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("error = %v, want ErrEmptyFontData", err)
	}
}

func TestNewFaceHandle_GarbageData(t *testing.T) {
	_, err := newFaceHandle([]byte("this is not a font file"), 12)
	if err == nil {
		t.Fatal("garbage data parsed as a font")
	}
	if errors.Is(err, ErrEmptyFontData) {
		t.Error("garbage data reported as empty")
	}
}

func TestLoadFaceFile_Missing(t *testing.T) {
	_, err := loadFaceFile("/no/such/font.ttf", 12)
	if err == nil {
		t.Fatal("missing file loaded")
	}
}

func TestScaledHandle_Factor(t *testing.T) {
	tests := []struct {
		size int
		want float64
	}{
		{13, 1.0},
		{26, 2.0},
		{39, 3.0},
	}
	for _, tt := range tests {
		h := newScaledHandle(tt.size)
		if h.Factor() != tt.want {
			t.Errorf("size %d: factor = %v, want %v", tt.size, h.Factor(), tt.want)
		}
		if h.Size() != tt.size {
			t.Errorf("Size = %d, want %d", h.Size(), tt.size)
		}
	}
}

func TestScaledHandle_BoundsScale(t *testing.T) {
	base := newScaledHandle(13)
	doubled := newScaledHandle(26)

	const text = "Hello"
	b1 := base.Bounds(text)
	b2 := doubled.Bounds(text)

	if b1.Width() < 1 || b1.Height() < 1 {
		t.Fatalf("reference bounds degenerate: %+v", b1)
	}
	if b2.Width() != b1.Width()*2 {
		t.Errorf("doubled width = %d, want %d", b2.Width(), b1.Width()*2)
	}
	if b2.Height() != b1.Height()*2 {
		t.Errorf("doubled height = %d, want %d", b2.Height(), b1.Height()*2)
	}
}

func TestScaledHandle_Rasterize(t *testing.T) {
	h := newScaledHandle(26)
	b := h.Bounds("X")

	dst := image.NewAlpha(image.Rect(0, 0, 60, 60))
	h.Rasterize(dst, "X", 5, 5)

	covered := 0
	for y := 0; y < 60; y++ {
		for x := 0; x < 60; x++ {
			if dst.AlphaAt(x, y).A > 0 {
				covered++
			}
		}
	}
	if covered == 0 {
		t.Fatal("rasterization produced no coverage")
	}

	// Coverage stays inside the placed bounding box.
	for y := 0; y < 60; y++ {
		for x := 0; x < 60; x++ {
			if dst.AlphaAt(x, y).A == 0 {
				continue
			}
			if x < 5 || y < 5 || x >= 5+b.Width() || y >= 5+b.Height() {
				t.Fatalf("coverage at (%d,%d) outside placement box %dx%d at (5,5)",
					x, y, b.Width(), b.Height())
			}
		}
	}
}

// Bounds and Rasterize must derive their extents from the same scaling: at
// every size the stamped coverage fits the reported box exactly, with no
// one-pixel overhang from independent truncation.
func TestScaledHandle_BoundsMatchCoverage(t *testing.T) {
	const margin = 20
	for size := 10; size <= 80; size++ {
		h := newScaledHandle(size)
		b := h.Bounds("Hg")

		dst := image.NewAlpha(image.Rect(0, 0, b.Width()+2*margin, b.Height()+2*margin))
		h.Rasterize(dst, "Hg", margin, margin)

		covered := false
		bounds := dst.Bounds()
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				if dst.AlphaAt(x, y).A == 0 {
					continue
				}
				covered = true
				if x < margin || y < margin ||
					x >= margin+b.Width() || y >= margin+b.Height() {
					t.Fatalf("size %d: coverage at (%d,%d) outside reported %dx%d box",
						size, x, y, b.Width(), b.Height())
				}
			}
		}
		if !covered {
			t.Fatalf("size %d: no coverage rendered", size)
		}
	}
}

func TestScaledHandle_EmptyText(t *testing.T) {
	h := newScaledHandle(20)
	dst := image.NewAlpha(image.Rect(0, 0, 10, 10))
	h.Rasterize(dst, "", 0, 0)

	for i, a := range dst.Pix {
		if a != 0 {
			t.Fatalf("empty text produced coverage at pix %d", i)
		}
	}
}
