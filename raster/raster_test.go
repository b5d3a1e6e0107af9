package raster

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/BeatGlow/oled/pixel"
)

func testCount(g pixel.Glyph) (lit int) {
	r := g.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if g.At(x, y) == pixel.On {
				lit++
			}
		}
	}
	return
}

func TestTrueType(t *testing.T) {
	face, err := TrueType(goregular.TTF, 10)
	if err != nil {
		t.Fatal(err)
	}
	defer face.Close()
	if v := face.Metrics().Height; v <= 0 {
		t.Errorf("expected positive line height, got %v", v)
	}

	if _, err = TrueType([]byte("not a font"), 10); err == nil {
		t.Error("expected an error parsing garbage")
	}
}

func TestDefaultFace(t *testing.T) {
	if DefaultFace() == nil {
		t.Error("expected a face")
	}
}

func TestText(t *testing.T) {
	g, err := Text(basicfont.Face7x13, "A", 12, 14)
	if err != nil {
		t.Fatal(err)
	}
	if g.Width() != 16 || g.Height() != 16 {
		t.Errorf("expected 16x16 glyph, got %dx%d", g.Width(), g.Height())
	}
	if testCount(g) == 0 {
		t.Error("expected lit pixels")
	}

	blank, err := Text(nil, "", 8, 8)
	if err != nil {
		t.Fatal(err)
	}
	if v := testCount(blank); v != 0 {
		t.Errorf("expected no lit pixels, got %d", v)
	}
}

func TestTextInvalid(t *testing.T) {
	if _, err := Text(nil, "x", 0, 8); !errors.Is(err, pixel.ErrInvalidGlyphDimensions) {
		t.Errorf("expected ErrInvalidGlyphDimensions, got %v", err)
	}
}

func TestImage(t *testing.T) {
	tests := []struct {
		name string
		c    color.Color
		want int
	}{
		{"white", color.White, 16 * 8},
		{"black", color.Black, 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			src := image.NewUniform(test.c)
			img := image.NewRGBA(image.Rect(0, 0, 32, 16))
			for y := 0; y < 16; y++ {
				for x := 0; x < 32; x++ {
					img.Set(x, y, src.C)
				}
			}
			g, err := Image(img, 16, 8)
			if err != nil {
				it.Fatal(err)
			}
			if g.Width() != 16 || g.Height() != 8 {
				it.Errorf("expected 16x8 glyph, got %dx%d", g.Width(), g.Height())
			}
			if v := testCount(g); v != test.want {
				it.Errorf("expected %d lit pixels, got %d", test.want, v)
			}
		})
	}
}

func TestImageInvalid(t *testing.T) {
	if _, err := Image(image.NewRGBA(image.Rect(0, 0, 1, 1)), 8, -1); !errors.Is(err, pixel.ErrInvalidGlyphDimensions) {
		t.Errorf("expected ErrInvalidGlyphDimensions, got %v", err)
	}
}
