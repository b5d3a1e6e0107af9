package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"time"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/oled"
	"github.com/BeatGlow/oled/draw"
	"github.com/BeatGlow/oled/pixel"
	"github.com/BeatGlow/oled/raster"
)

func main() {
	widthFlag := flag.Int("width", 0, "Display width")
	heightFlag := flag.Int("height", 0, "Display height")
	i2cDeviceFlag := flag.Int("i2c-dev", oled.DefaultI2CConfig.Device, "I²C device number (default: use first available)")
	i2cAddrFlag := flag.Uint("i2c-addr", uint(oled.DefaultI2CConfig.Addr), "I²C device address")
	resetPinFlag := flag.String("reset", "", "Reset GPIO pin (optional)")
	rotateFlag := flag.String("rotate", "", "Display rotation (0 or 180)")
	contrastFlag := flag.Uint("contrast", 0, "Contrast level (default: 255)")
	flashFlag := flag.Int("flash", 3, "Number of times to flash the display")
	intervalFlag := flag.Duration("interval", 500*time.Millisecond, "Flash interval")
	textFlag := flag.String("text", "", "Text to render")
	imageFlag := flag.String("image", "", "Image file to render")
	glyphWidthFlag := flag.Int("glyph-width", 64, "Glyph width")
	glyphHeightFlag := flag.Int("glyph-height", 16, "Glyph height")
	xFlag := flag.Int("x", 0, "Glyph column")
	yFlag := flag.Int("y", 0, "Glyph row, a multiple of 8")
	flag.Parse()

	if err := run(options{
		width:       *widthFlag,
		height:      *heightFlag,
		i2cDevice:   *i2cDeviceFlag,
		i2cAddr:     uint8(*i2cAddrFlag),
		resetPin:    *resetPinFlag,
		rotate:      *rotateFlag,
		contrast:    uint8(*contrastFlag),
		flash:       *flashFlag,
		interval:    *intervalFlag,
		text:        *textFlag,
		image:       *imageFlag,
		glyphWidth:  *glyphWidthFlag,
		glyphHeight: *glyphHeightFlag,
		x:           *xFlag,
		y:           *yFlag,
	}); err != nil {
		fatal(err)
	}
}

type options struct {
	width, height int
	i2cDevice     int
	i2cAddr       uint8
	resetPin      string
	rotate        string
	contrast      uint8
	flash         int
	interval      time.Duration
	text, image   string
	glyphWidth    int
	glyphHeight   int
	x, y          int
}

func run(o options) error {
	var rotation oled.Rotation
	switch o.rotate {
	case "", "no", "0":
		rotation = oled.NoRotation
	case "180", "flip":
		rotation = oled.Rotate180
	default:
		return fmt.Errorf("invalid rotation %q specified", o.rotate)
	}

	if _, err := host.Init(); err != nil {
		return err
	}

	i2cConfig := &oled.I2CConfig{
		Device: o.i2cDevice,
		Addr:   o.i2cAddr,
	}
	if o.resetPin != "" {
		if i2cConfig.Reset = gpioreg.ByName(o.resetPin); i2cConfig.Reset == nil {
			return fmt.Errorf("unknown reset pin %q", o.resetPin)
		}
	}
	conn, err := oled.OpenI2C(i2cConfig)
	if err != nil {
		return err
	}
	fmt.Printf("using connection: %s\n", conn)

	output, err := oled.SSD1306(conn, &oled.Config{
		Width:    o.width,
		Height:   o.height,
		Rotation: rotation,
		Contrast: o.contrast,
	})
	if err != nil {
		_ = conn.Close()
		return err
	}
	fmt.Printf("using driver: %s\n", output)

	return show(output, o)
}

// show flashes the display and renders the selected glyph. The device is closed
// on every return path.
func show(output *oled.Device, o options) (err error) {
	defer func() {
		if cerr := output.Close(); err == nil {
			err = cerr
		}
	}()

	if err = output.Flash(o.flash, o.interval); err != nil {
		return err
	}

	var glyph pixel.Glyph
	switch {
	case o.image != "":
		glyph, err = loadImage(o.image, o.glyphWidth, o.glyphHeight)
	case o.text != "":
		glyph, err = raster.Text(raster.DefaultFace(), o.text, o.glyphWidth, o.glyphHeight)
	default:
		glyph = frameGlyph(o.glyphWidth, o.glyphHeight)
	}
	if err != nil {
		return err
	}

	fmt.Printf("rendering %dx%d glyph at (%d,%d):\n%s", glyph.Width(), glyph.Height(), o.x, o.y, glyph)
	return output.RenderGlyph(glyph, o.x, o.y)
}

func loadImage(name string, w, h int) (pixel.Glyph, error) {
	f, err := os.Open(name)
	if err != nil {
		return pixel.Glyph{}, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return pixel.Glyph{}, err
	}
	return raster.Image(img, w, h)
}

// frameGlyph is a test pattern: a border with both diagonals.
func frameGlyph(w, h int) pixel.Glyph {
	var (
		img = pixel.NewGlyphImage(w, h)
		r   = img.Bounds()
	)
	draw.Rectangle(img, r, pixel.On)
	draw.Line(img, r.Min, r.Max.Sub(image.Pt(1, 1)), pixel.On)
	draw.Line(img, image.Pt(r.Min.X, r.Max.Y-1), image.Pt(r.Max.X-1, r.Min.Y), pixel.On)
	return img.Glyph()
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
