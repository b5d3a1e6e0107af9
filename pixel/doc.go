// Package pixel implements the monochrome glyph and GDDRAM buffer formats used by
// SSD1306-class OLED controllers.
//
// A [Glyph] is a row-major bitmap as produced by font and asset tooling, a [Packed]
// buffer is the controller's page-oriented memory layout. [Transpose] converts the
// former into the latter. Both are compatible with Go's native [color.Color] and
// [image.Image] interfaces.
package pixel
