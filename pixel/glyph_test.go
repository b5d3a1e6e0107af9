package pixel

import (
	"errors"
	"testing"
)

func TestNewGlyph(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		size    int
		wantErr bool
	}{
		{"8x8", 8, 8, 8, false},
		{"16x8", 16, 8, 16, false},
		{"128x64", 128, 64, 1024, false},
		{"width 10", 10, 8, 10, true},
		{"height 12", 8, 12, 12, true},
		{"zero width", 0, 8, 0, true},
		{"negative height", 8, -8, 0, true},
		{"short bitmap", 16, 8, 8, true},
		{"long bitmap", 8, 8, 9, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			g, err := NewGlyph(test.width, test.height, make([]byte, test.size))
			if test.wantErr {
				if !errors.Is(err, ErrInvalidGlyphDimensions) {
					it.Fatalf("expected ErrInvalidGlyphDimensions, got %v", err)
				}
				return
			}
			if err != nil {
				it.Fatal(err)
			}
			if g.Width() != test.width || g.Height() != test.height {
				it.Errorf("expected %dx%d glyph, got %dx%d", test.width, test.height, g.Width(), g.Height())
			}
		})
	}
}

func TestGlyphImmutable(t *testing.T) {
	bits := []byte{0x80, 0, 0, 0, 0, 0, 0, 0}
	g, err := NewGlyph(8, 8, bits)
	if err != nil {
		t.Fatal(err)
	}
	bits[0] = 0
	if g.At(0, 0) != On {
		t.Error("glyph changed after mutating the source slice")
	}
	g.Bits()[0] = 0
	if g.At(0, 0) != On {
		t.Error("glyph changed after mutating Bits()")
	}
}

func TestGlyphAt(t *testing.T) {
	// Row 1 lights the leftmost pixel of byte 0 and the rightmost pixel of byte 1.
	bits := make([]byte, 2*8)
	bits[2] = 0x80
	bits[3] = 0x01
	g, err := NewGlyph(16, 8, bits)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			want := y == 1 && (x == 0 || x == 15)
			if v := g.At(x, y).(Mono).On; v != want {
				t.Errorf("pixel (%d,%d) is %t, expected %t", x, y, v, want)
			}
		}
	}
}

func TestGlyphImageToGlyph(t *testing.T) {
	i := NewGlyphImage(8, 8)
	i.Set(3, 2, On)
	g := i.Glyph()
	i.Clear()
	if g.At(3, 2) != On {
		t.Error("glyph did not capture the image")
	}
	want := "........\n........\n...#....\n........\n........\n........\n........\n........\n"
	if v := g.String(); v != want {
		t.Errorf("expected dump:\n%s\ngot:\n%s", want, v)
	}
}
