package pixel

import "fmt"

// GetBit reports whether bit pos of b is set.
func GetBit(b byte, pos uint) bool {
	return b&(1<<pos) != 0
}

// SetBit returns b with bit pos set to on.
func SetBit(b byte, pos uint, on bool) byte {
	if on {
		return b | 1<<pos
	}
	return b &^ (1 << pos)
}

// Transpose converts a row-major glyph into the controller's page-packed layout.
//
// For every page i, row r within that page, byte column k and bit m, bit r of
// destination byte i*width+8k+m is bit 7-m of source byte (8i+r)*width/8+k. The
// 7-m term flips the glyph's right-to-left bit order into left-to-right columns.
//
// The returned buffer is width*height/8 bytes long.
func Transpose(g Glyph) (*Packed, error) {
	if err := checkDimensions(g.width, g.height); err != nil {
		return nil, err
	}
	var (
		pages  = g.height / PageHeight
		stride = g.Stride()
	)
	if len(g.bits) != stride*g.height {
		return nil, fmt.Errorf("%w: %dx%d glyph has %d bytes", ErrInvalidGlyphDimensions, g.width, g.height, len(g.bits))
	}

	dst := NewPacked(g.width, g.height)
	for i := 0; i < pages; i++ {
		for r := 0; r < PageHeight; r++ {
			row := g.bits[(i*PageHeight+r)*stride:]
			for k := 0; k < stride; k++ {
				src := row[k]
				if src == 0 {
					continue
				}
				for m := 0; m < 8; m++ {
					if GetBit(src, uint(7-m)) {
						j := i*g.width + k*8 + m
						dst.Pix[j] = SetBit(dst.Pix[j], uint(r), true)
					}
				}
			}
		}
	}
	return dst, nil
}
