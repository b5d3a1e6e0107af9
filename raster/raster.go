// Package raster turns text and images into glyphs.
//
// It is the asset side of the driver: every helper produces a single pre-rasterized
// [pixel.Glyph] and does no layout beyond centering one string.
package raster

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/makeworld-the-better-one/dither"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/BeatGlow/oled/draw"
	"github.com/BeatGlow/oled/pixel"
)

// DefaultSize is the font size used by [DefaultFace], in points.
const DefaultSize = 12

// TrueType parses a TrueType font and returns a face of the given size at 72 DPI.
func TrueType(ttf []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("raster: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// DefaultFace is Go Regular at [DefaultSize], or the 7x13 bitmap face if that fails
// to load.
func DefaultFace() font.Face {
	if face, err := TrueType(goregular.TTF, DefaultSize); err == nil {
		return face
	}
	return basicfont.Face7x13
}

// Text renders s centered in a w x h glyph, rounded up to multiples of 8. Text that
// does not fit is clipped.
func Text(face font.Face, s string, w, h int) (pixel.Glyph, error) {
	if w <= 0 || h <= 0 {
		return pixel.Glyph{}, fmt.Errorf("%w: got %dx%d", pixel.ErrInvalidGlyphDimensions, w, h)
	}
	if face == nil {
		face = basicfont.Face7x13
	}

	dst := pixel.NewGlyphImage(w, h)
	size := dst.Bounds().Size()

	ctx := gg.NewContext(size.X, size.Y)
	ctx.SetColor(color.Black)
	ctx.Clear()
	ctx.SetColor(color.White)
	ctx.SetFontFace(face)
	ctx.DrawStringAnchored(s, float64(size.X)/2, float64(size.Y)/2, 0.5, 0.5)

	return toGlyph(dst, ctx.Image()), nil
}

// Image scales img to fit a w x h glyph, rounded up to multiples of 8, and dithers it
// to black and white.
func Image(img image.Image, w, h int) (pixel.Glyph, error) {
	if w <= 0 || h <= 0 {
		return pixel.Glyph{}, fmt.Errorf("%w: got %dx%d", pixel.ErrInvalidGlyphDimensions, w, h)
	}

	dst := pixel.NewGlyphImage(w, h)
	size := dst.Bounds().Size()

	var (
		fit    = imaging.Fit(img, size.X, size.Y, imaging.Lanczos)
		canvas = imaging.PasteCenter(imaging.New(size.X, size.Y, color.Black), fit)
		src    image.Image = canvas
	)

	d := dither.NewDitherer([]color.Color{color.Black, color.White})
	d.Matrix = dither.FloydSteinberg
	d.Serpentine = true
	if p := d.DitherPaletted(canvas); p != nil {
		src = p
	}

	return toGlyph(dst, src), nil
}

func toGlyph(dst *pixel.GlyphImage, src image.Image) pixel.Glyph {
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst.Glyph()
}
