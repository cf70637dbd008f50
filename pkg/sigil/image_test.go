package sigil

import (
	"testing"

	"github.com/sigilgen/sigil/pkg/errors"
)

func TestToImageGeometry(t *testing.T) {
	theme := DefaultTheme()
	s, err := Generate(theme, []byte("test"))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	img, err := s.ToImage(240)
	if err != nil {
		t.Fatalf("ToImage(240) error = %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 240 || bounds.Dy() != 240 {
		t.Fatalf("bounds = %dx%d, want 240x240", bounds.Dx(), bounds.Dy())
	}

	// cell_size = 240/6 = 40, padding = 20.
	if got := img.RGBAAt(0, 0); got != s.Background() {
		t.Errorf("pixel (0,0) = %v, want background %v", got, s.Background())
	}

	// The "test" sigil's top row is fully filled, so the first pixel past
	// the padding is foreground.
	if got := img.RGBAAt(20, 20); got != s.Foreground() {
		t.Errorf("pixel (20,20) = %v, want foreground %v", got, s.Foreground())
	}

	// Row 3 (y cells 140..179) is fully empty.
	if got := img.RGBAAt(120, 150); got != s.Background() {
		t.Errorf("pixel (120,150) = %v, want background %v", got, s.Background())
	}
}

func TestToImageBorderIsBackground(t *testing.T) {
	theme := DefaultTheme()
	s, err := Generate(theme, []byte("test"))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	const size = 120 // cell_size = 20, padding = 10
	img, err := s.ToImage(size)
	if err != nil {
		t.Fatalf("ToImage(%d) error = %v", size, err)
	}

	const padding = 10
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			inBorder := x < padding || x >= size-padding || y < padding || y >= size-padding
			if inBorder && img.RGBAAt(x, y) != s.Background() {
				t.Fatalf("border pixel (%d,%d) = %v, want background", x, y, img.RGBAAt(x, y))
			}
		}
	}
}

func TestToImageRejectsBadSizes(t *testing.T) {
	theme := DefaultTheme()
	s, err := Generate(theme, []byte("test"))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	// rows=5 requires multiples of 12.
	for _, size := range []int{241, 1, 11, 13, 100, -12} {
		if _, err := s.ToImage(size); !errors.Is(err, errors.ErrCodeInvalidSize) {
			t.Errorf("ToImage(%d) error = %v, want %s", size, err, errors.ErrCodeInvalidSize)
		}
	}

	for _, size := range []int{12, 24, 120, 240, 600} {
		if _, err := s.ToImage(size); err != nil {
			t.Errorf("ToImage(%d) error = %v, want nil", size, err)
		}
	}
}

func TestToImageRepeatable(t *testing.T) {
	theme := DefaultTheme()
	s, err := Generate(theme, []byte("repeat"))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	a, err := s.ToImage(120)
	if err != nil {
		t.Fatalf("ToImage() error = %v", err)
	}
	b, err := s.ToImage(120)
	if err != nil {
		t.Fatalf("ToImage() error = %v", err)
	}

	if len(a.Pix) != len(b.Pix) {
		t.Fatalf("pixel buffer lengths differ: %d vs %d", len(a.Pix), len(b.Pix))
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("pixel buffers differ at byte %d", i)
		}
	}
}

func TestInvertedImageSwapsColours(t *testing.T) {
	theme := DefaultTheme()
	s, err := Generate(theme, []byte("test"))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	img, err := s.Invert().ToImage(240)
	if err != nil {
		t.Fatalf("ToImage() error = %v", err)
	}

	// Border now uses the original foreground colour.
	if got := img.RGBAAt(0, 0); got != s.Foreground() {
		t.Errorf("inverted border pixel = %v, want %v", got, s.Foreground())
	}
	// Filled cells now use the original background colour.
	if got := img.RGBAAt(20, 20); got != s.Background() {
		t.Errorf("inverted filled cell pixel = %v, want %v", got, s.Background())
	}
}
