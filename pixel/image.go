package pixel

import (
	"image"
	"image/color"
	"strings"

	"github.com/BeatGlow/oled/draw"
)

// PageHeight is the number of pixel rows covered by one GDDRAM page.
const PageHeight = 8

type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the pixel values and is a container that is used by most image formats in this package.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

func (p *Buffer) fill(c color.Color) {
	var value byte
	if isOn(c) {
		value = 0xff
	}
	for i := range p.Pix {
		p.Pix[i] = value
	}
}

func makeBuffer(w, h, stride, size int) Buffer {
	return Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, size),
		Stride: stride,
	}
}

// roundUp rounds v up to a whole number of bytes (or pages).
func roundUp(v int) int {
	return (v + 7) &^ 7
}

// GlyphImage is a mutable 1-bit per pixel row-major image in glyph layout.
//
// Each row holds Stride bytes, the leftmost pixel of every byte is stored in bit 7
// (bits are written right to left). Use [GlyphImage.Glyph] to obtain an immutable
// [Glyph] for rendering.
type GlyphImage struct {
	Buffer
}

// NewGlyphImage returns a cleared glyph image, w and h are rounded up to multiples of 8.
func NewGlyphImage(w, h int) *GlyphImage {
	w, h = roundUp(w), roundUp(h)
	stride := w / 8
	return &GlyphImage{
		Buffer: makeBuffer(w, h, stride, stride*h),
	}
}

func (p *GlyphImage) ColorModel() color.Model {
	return MonoModel
}

func (p *GlyphImage) PixOffset(x, y int) int {
	return y*p.Stride + x/8
}

func (p *GlyphImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return Mono{On: GetBit(p.Pix[p.PixOffset(x, y)], glyphShift(x))}
}

func (p *GlyphImage) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	i := p.PixOffset(x, y)
	p.Pix[i] = SetBit(p.Pix[i], glyphShift(x), isOn(c))
}

func (p *GlyphImage) Fill(c color.Color) {
	p.fill(c)
}

// Glyph returns an immutable copy of the image.
func (p *GlyphImage) Glyph() Glyph {
	g, _ := NewGlyph(p.Rect.Dx(), p.Rect.Dy(), p.Pix)
	return g
}

// Packed is a 1-bit per pixel image in SSD1xxx GDDRAM layout.
//
// Pixels are stored column-major in pages of 8 rows: the byte at page p, column x
// is Pix[p*Stride+x] and bit r (LSB is the top row) holds row 8p+r.
type Packed struct {
	Buffer
}

// NewPacked returns a cleared packed buffer, h is rounded up to whole pages.
func NewPacked(w, h int) *Packed {
	pages := roundUp(h) / PageHeight
	return &Packed{
		Buffer: makeBuffer(w, h, w, pages*w),
	}
}

func (p *Packed) ColorModel() color.Model {
	return MonoModel
}

// Pages is the number of GDDRAM pages covered by the buffer.
func (p *Packed) Pages() int {
	return roundUp(p.Rect.Dy()) / PageHeight
}

func (p *Packed) PixOffset(x, y int) int {
	return y/PageHeight*p.Stride + x
}

func (p *Packed) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return Mono{On: GetBit(p.Pix[p.PixOffset(x, y)], uint(y&7))}
}

func (p *Packed) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	i := p.PixOffset(x, y)
	p.Pix[i] = SetBit(p.Pix[i], uint(y&7), isOn(c))
}

func (p *Packed) Fill(c color.Color) {
	p.fill(c)
}

// String dumps the buffer as text, one line per pixel row.
func (p *Packed) String() string {
	return dump(p)
}

// dump renders lit pixels as '#' and dark pixels as '.'.
func dump(img image.Image) string {
	var (
		r = img.Bounds()
		s strings.Builder
	)
	s.Grow((r.Dx() + 1) * r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if isOn(img.At(x, y)) {
				s.WriteByte('#')
			} else {
				s.WriteByte('.')
			}
		}
		s.WriteByte('\n')
	}
	return s.String()
}

// Interface checks.
var (
	_ Image       = (*GlyphImage)(nil)
	_ Image       = (*Packed)(nil)
	_ image.Image = Glyph{}
)
