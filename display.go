// Package oled drives SSD1306-class monochrome OLED controllers over I²C.
//
// Glyphs are converted to the controller's page-packed GDDRAM layout by the
// [pixel] package and written to rectangular render areas of display memory. No
// copy of the display memory is kept in process.
//
// A [Device] assumes exclusive, single threaded ownership of its [Conn].
package oled

import (
	"errors"
	"os"

	"github.com/BeatGlow/oled/pixel"
)

var debug bool

func init() {
	debug = os.Getenv("OLED_DEBUG") != ""
}

// Errors
var (
	ErrInvalidRegion          = errors.New("oled: invalid render area")
	ErrInvalidGlyphDimensions = pixel.ErrInvalidGlyphDimensions
	ErrRotation               = errors.New("oled: unsupported rotation")
)

// Rotation defines pixel rotation.
type Rotation uint8

// Supported rotations.
const (
	NoRotation Rotation = iota
	Rotate90            // Rotate 90° clock wise
	Rotate180           // Rotate 180°
	Rotate270           // Rotate 270° clock wise
)

func (r Rotation) String() string {
	switch r % 4 {
	case Rotate90:
		return "90°"
	case Rotate180:
		return "180°"
	case Rotate270:
		return "270°"
	default:
		return "0°"
	}
}

// Config is the display configuration.
type Config struct {
	// Width of the display in pixels.
	Width int

	// Height of the display in pixels, must be a multiple of 8.
	Height int

	// Rotation of the display, the controller can only mirror both axes so
	// only NoRotation and Rotate180 are supported.
	Rotation Rotation

	// Contrast level, 0 uses the default (0xff). A zero contrast can only be set
	// after initialization, with Device.SetContrast.
	Contrast uint8
}
