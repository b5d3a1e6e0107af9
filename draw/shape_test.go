package draw_test

import (
	"image"
	"testing"

	"github.com/BeatGlow/oled/draw"
	"github.com/BeatGlow/oled/pixel"
)

func testLit(img *pixel.GlyphImage) map[image.Point]bool {
	lit := make(map[image.Point]bool)
	r := img.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.At(x, y) == pixel.On {
				lit[image.Pt(x, y)] = true
			}
		}
	}
	return lit
}

func TestLine(t *testing.T) {
	tests := []struct {
		name string
		a, b image.Point
		want []image.Point
	}{
		{"point", image.Pt(2, 2), image.Pt(2, 2), []image.Point{{2, 2}}},
		{"horizontal", image.Pt(1, 0), image.Pt(3, 0), []image.Point{{1, 0}, {2, 0}, {3, 0}}},
		{"vertical reversed", image.Pt(0, 3), image.Pt(0, 1), []image.Point{{0, 1}, {0, 2}, {0, 3}}},
		{"diagonal", image.Pt(0, 0), image.Pt(3, 3), []image.Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"anti-diagonal", image.Pt(3, 0), image.Pt(0, 3), []image.Point{{3, 0}, {2, 1}, {1, 2}, {0, 3}}},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			img := pixel.NewGlyphImage(8, 8)
			draw.Line(img, test.a, test.b, pixel.On)
			lit := testLit(img)
			if len(lit) != len(test.want) {
				it.Errorf("expected %d pixels, got %d", len(test.want), len(lit))
			}
			for _, pt := range test.want {
				if !lit[pt] {
					it.Errorf("expected pixel %s to be lit", pt)
				}
			}
		})
	}
}

func TestLineEndpoints(t *testing.T) {
	img := pixel.NewGlyphImage(16, 16)
	draw.Line(img, image.Pt(1, 2), image.Pt(14, 7), pixel.On)
	lit := testLit(img)
	if !lit[image.Pt(1, 2)] || !lit[image.Pt(14, 7)] {
		t.Error("expected both end points to be lit")
	}
	if len(lit) != 14 {
		t.Errorf("expected one pixel per column (14), got %d", len(lit))
	}
}

func TestRectangle(t *testing.T) {
	img := pixel.NewGlyphImage(8, 8)
	draw.Rectangle(img, image.Rect(0, 0, 8, 8), pixel.On)
	want := "########\n" +
		"#......#\n" +
		"#......#\n" +
		"#......#\n" +
		"#......#\n" +
		"#......#\n" +
		"#......#\n" +
		"########\n"
	if v := img.Glyph().String(); v != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, v)
	}
}

func TestBox(t *testing.T) {
	img := pixel.NewGlyphImage(8, 8)
	draw.Box(img, image.Rect(2, 3, 5, 5), pixel.On)
	if v := len(testLit(img)); v != 6 {
		t.Errorf("expected 6 pixels, got %d", v)
	}
	draw.Box(img, image.Rect(2, 3, 5, 5), pixel.Off)
	if v := len(testLit(img)); v != 0 {
		t.Errorf("expected no pixels, got %d", v)
	}
}
