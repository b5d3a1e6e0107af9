package oled

import (
	"fmt"

	"github.com/BeatGlow/oled/pixel"
)

// Physical limits of the SSD1306 GDDRAM.
const (
	MaxColumns = 128
	MaxPages   = 8
)

// Area is a rectangular region of display memory.
//
// Both axes are half-open: the area covers pages [StartPage, EndPage) and columns
// [StartCol, EndCol). The controller's inclusive end addresses are only derived
// when the area is put on the wire.
type Area struct {
	StartPage int
	EndPage   int
	StartCol  int
	EndCol    int
}

// Pages is the number of pages covered.
func (a Area) Pages() int { return a.EndPage - a.StartPage }

// Columns is the number of columns covered.
func (a Area) Columns() int { return a.EndCol - a.StartCol }

// Len is the size of the packed buffer that fills the area, in bytes.
func (a Area) Len() int {
	return a.Pages() * a.Columns()
}

func (a Area) String() string {
	return fmt.Sprintf("pages [%d,%d) columns [%d,%d)", a.StartPage, a.EndPage, a.StartCol, a.EndCol)
}

// check validates ordering and the GDDRAM limits, regardless of the panel size.
func (a Area) check() error {
	switch {
	case a.StartPage < 0 || a.StartCol < 0:
		return fmt.Errorf("%w: %s starts before the origin", ErrInvalidRegion, a)
	case a.EndPage <= a.StartPage || a.EndCol <= a.StartCol:
		return fmt.Errorf("%w: %s is empty or inverted", ErrInvalidRegion, a)
	case a.EndPage > MaxPages || a.EndCol > MaxColumns:
		return fmt.Errorf("%w: %s exceeds controller memory", ErrInvalidRegion, a)
	}
	return nil
}

// wire returns the inclusive column and page addresses sent to the controller.
func (a Area) wire() (startCol, endCol, startPage, endPage byte) {
	return byte(a.StartCol), byte(a.EndCol - 1), byte(a.StartPage), byte(a.EndPage - 1)
}

// Geometry is the physical size of the panel.
type Geometry struct {
	// Width in columns.
	Width int

	// Height in pixel rows, a multiple of 8.
	Height int
}

// Pages is the number of GDDRAM pages used by the panel.
func (g Geometry) Pages() int {
	return g.Height / pixel.PageHeight
}

// Validate checks the panel fits in the controller memory.
func (g Geometry) Validate() error {
	if g.Width <= 0 || g.Width > MaxColumns ||
		g.Height <= 0 || g.Height%pixel.PageHeight != 0 || g.Pages() > MaxPages {
		return fmt.Errorf("%w: unsupported display size %dx%d", ErrInvalidRegion, g.Width, g.Height)
	}
	return nil
}

// RegionLength returns the number of bytes needed to fill a. It fails if a is empty,
// inverted or not within the panel.
func (g Geometry) RegionLength(a Area) (int, error) {
	if err := g.Validate(); err != nil {
		return 0, err
	}
	if err := a.check(); err != nil {
		return 0, err
	}
	if a.EndCol > g.Width || a.EndPage > g.Pages() {
		return 0, fmt.Errorf("%w: %s outside %dx%d display", ErrInvalidRegion, a, g.Width, g.Height)
	}
	return a.Len(), nil
}

// FullFrame is the area spanning the whole panel.
func (g Geometry) FullFrame() Area {
	return Area{
		StartPage: 0,
		EndPage:   g.Pages(),
		StartCol:  0,
		EndCol:    g.Width,
	}
}

// FullFrameArea is the area spanning a width x height panel.
func FullFrameArea(width, height int) (Area, error) {
	g := Geometry{Width: width, Height: height}
	if err := g.Validate(); err != nil {
		return Area{}, err
	}
	return g.FullFrame(), nil
}

// GlyphArea is the area covered by a w x h glyph with its top left corner at (x, y).
// The y coordinate must be page aligned.
func (g Geometry) GlyphArea(w, h, x, y int) (Area, error) {
	if x < 0 || y < 0 || y%pixel.PageHeight != 0 {
		return Area{}, fmt.Errorf("%w: glyph origin (%d,%d) is not page aligned", ErrInvalidRegion, x, y)
	}
	a := Area{
		StartPage: y / pixel.PageHeight,
		EndPage:   (y + h) / pixel.PageHeight,
		StartCol:  x,
		EndCol:    x + w,
	}
	if _, err := g.RegionLength(a); err != nil {
		return Area{}, err
	}
	return a, nil
}
