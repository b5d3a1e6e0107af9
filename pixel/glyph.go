package pixel

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrInvalidGlyphDimensions is returned for glyphs whose width or height is not a
// positive multiple of 8, or whose bitmap does not match its dimensions.
var ErrInvalidGlyphDimensions = errors.New("pixel: glyph dimensions must be positive multiples of 8")

// Glyph is an immutable row-major monochrome bitmap.
//
// Row r, byte column c holds the pixels for columns [8c, 8c+8) of that row. Bit 0 is
// the rightmost pixel of the byte, so pixel 8c+p lives in bit 7-p.
//
// The zero Glyph is empty and is rejected by [Transpose].
type Glyph struct {
	width  int
	height int
	bits   []byte
}

// NewGlyph returns a glyph of the given size. The bits are copied, so the caller is
// free to reuse the slice.
func NewGlyph(width, height int, bits []byte) (Glyph, error) {
	if err := checkDimensions(width, height); err != nil {
		return Glyph{}, err
	}
	if want := width / 8 * height; len(bits) != want {
		return Glyph{}, fmt.Errorf("%w: %dx%d glyph needs %d bytes, got %d", ErrInvalidGlyphDimensions, width, height, want, len(bits))
	}
	return Glyph{
		width:  width,
		height: height,
		bits:   append([]byte(nil), bits...),
	}, nil
}

func checkDimensions(width, height int) error {
	if width <= 0 || width%8 != 0 || height <= 0 || height%8 != 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidGlyphDimensions, width, height)
	}
	return nil
}

// Width in pixels.
func (g Glyph) Width() int { return g.width }

// Height in pixels.
func (g Glyph) Height() int { return g.height }

// Stride is the number of bytes per row.
func (g Glyph) Stride() int { return g.width / 8 }

// Bits returns a copy of the row-major bitmap.
func (g Glyph) Bits() []byte {
	return append([]byte(nil), g.bits...)
}

func (g Glyph) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.width, g.height)
}

func (g Glyph) ColorModel() color.Model {
	return MonoModel
}

func (g Glyph) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(g.Bounds()) {
		return color.Transparent
	}
	return Mono{On: GetBit(g.bits[y*g.Stride()+x/8], glyphShift(x))}
}

// String dumps the glyph as text, one line per pixel row.
func (g Glyph) String() string {
	return dump(g)
}

// glyphShift is the bit position of column x within its glyph byte.
func glyphShift(x int) uint {
	return 7 - uint(x&7)
}
