package oled

import (
	"fmt"
	"log"
	"time"

	"periph.io/x/conn/v3/gpio"

	"github.com/BeatGlow/oled/pixel"
)

const (
	ssd1306DefaultWidth    = 128
	ssd1306DefaultHeight   = 64
	ssd1306DefaultContrast = 0xFF
)

// FrameInterval is the number of frames between horizontal scroll steps.
type FrameInterval byte

// Possible scroll intervals.
const (
	Frames2   FrameInterval = 7
	Frames3   FrameInterval = 4
	Frames4   FrameInterval = 5
	Frames5   FrameInterval = 0
	Frames25  FrameInterval = 6
	Frames64  FrameInterval = 1
	Frames128 FrameInterval = 2
	Frames256 FrameInterval = 3
)

// Device is an SSD1306 controller. It holds no copy of the display memory, every
// call writes straight to the controller.
type Device struct {
	c        Conn
	geometry Geometry
	halted   bool
	scrolled bool
}

// SSD1306 initializes the controller behind conn. The connection is owned by the
// caller until [Device.Close] is called.
func SSD1306(conn Conn, config *Config) (*Device, error) {
	if config == nil {
		config = new(Config)
	}
	if config.Width == 0 {
		config.Width = ssd1306DefaultWidth
	}
	if config.Height == 0 {
		config.Height = ssd1306DefaultHeight
	}
	if config.Contrast == 0 {
		config.Contrast = ssd1306DefaultContrast
	}

	d := &Device{
		c: conn,
		geometry: Geometry{
			Width:  config.Width,
			Height: config.Height,
		},
	}
	if err := d.init(config); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Device) String() string {
	return fmt.Sprintf("SSD1306 OLED %dx%d", d.geometry.Width, d.geometry.Height)
}

// Geometry is the panel size.
func (d *Device) Geometry() Geometry {
	return d.geometry
}

func (d *Device) init(config *Config) (err error) {
	if err = d.geometry.Validate(); err != nil {
		return
	}

	var (
		segmentRemap byte = ssd1xxxSetSegmentRemap | 0x01
		comScan      byte = ssd1xxxSetComScanDec
		comPins      byte = 0x12
	)
	switch config.Rotation % 4 {
	case NoRotation:
	case Rotate180:
		segmentRemap, comScan = ssd1xxxSetSegmentRemap, ssd1xxxSetComScanInc
	default:
		return fmt.Errorf("%w: SSD1306 can not rotate %s", ErrRotation, config.Rotation)
	}
	if d.geometry.Height <= 32 {
		// Sequential COM pin configuration for short panels.
		comPins = 0x02
	}

	if err = d.reset(); err != nil {
		return
	}

	if err = d.c.Commands(
		ssd1xxxSetDisplayOff,
		ssd1xxxSetMemoryMode, 0x00, // horizontal addressing
		ssd1xxxSetStartLine|0x00, //nolint:staticcheck
		segmentRemap,
		ssd1xxxSetMultiplexRatio, byte(d.geometry.Height-1),
		comScan,
		ssd1xxxSetDisplayOffset, 0x00,
		ssd1xxxSetComPins, comPins,
		ssd1xxxSetDisplayClockDiv, 0x80,
		ssd1xxxSetPrecharge, 0xF1,
		ssd1xxxSetVCOMDeselect, 0x30,
		ssd1xxxSetContrast, config.Contrast,
		ssd1xxxSetDisplayAllOnResume,
		ssd1xxxSetNormalDisplay,
		ssd1xxxSetChargePump, 0x14,
		ssd1xxxDeactivateScroll, // memory writes corrupt while scrolling
	); err != nil {
		return
	}

	if err = d.ClearAll(); err != nil {
		return
	}
	return d.Show(true)
}

// reset pulses the reset pin, if the connection has one.
func (d *Device) reset() (err error) {
	if err = d.c.Reset(gpio.High); err != nil {
		return
	}
	if err = d.c.Reset(gpio.Low); err != nil {
		return
	}
	return d.c.Reset(gpio.High)
}

// Close turns the display off and closes the connection.
func (d *Device) Close() error {
	if !d.halted {
		if err := d.Show(false); err != nil {
			_ = d.c.Close()
			return err
		}
		d.halted = true
	}
	return d.c.Close()
}

// Show toggles the display on or off.
func (d *Device) Show(show bool) error {
	if show {
		return d.c.Command(ssd1xxxSetDisplayOn)
	}
	return d.c.Command(ssd1xxxSetDisplayOff)
}

// SetContrast adjusts the contrast level.
func (d *Device) SetContrast(level uint8) error {
	return d.c.Commands(ssd1xxxSetContrast, level)
}

// Invert toggles inverted display, lit pixels in memory turn dark.
func (d *Device) Invert(invert bool) error {
	if invert {
		return d.c.Command(ssd1xxxSetInvertDisplay)
	}
	return d.c.Command(ssd1xxxSetNormalDisplay)
}

// Flash lights all pixels regardless of memory contents and then returns to
// showing memory, count times, sleeping interval after every toggle.
func (d *Device) Flash(count int, interval time.Duration) error {
	for i := 0; i < count; i++ {
		if err := d.c.Command(ssd1xxxSetDisplayAllOn); err != nil {
			return err
		}
		time.Sleep(interval)
		if err := d.c.Command(ssd1xxxSetDisplayAllOnResume); err != nil {
			return err
		}
		time.Sleep(interval)
	}
	return nil
}

// ScrollHorizontal continuously scrolls pages [startPage, endPage) left or right.
//
// Scrolling stops automatically before the next memory write.
func (d *Device) ScrollHorizontal(right bool, startPage, endPage int, interval FrameInterval) error {
	a := Area{StartPage: startPage, EndPage: endPage, StartCol: 0, EndCol: d.geometry.Width}
	if _, err := d.geometry.RegionLength(a); err != nil {
		return err
	}
	var op byte = ssd1xxxScrollLeft
	if right {
		op = ssd1xxxScrollRight
	}
	_, _, sp, ep := a.wire()
	if err := d.c.Commands(
		ssd1xxxDeactivateScroll,
		op, 0x00, sp, byte(interval), ep, 0x00, 0xFF,
		ssd1xxxActivateScroll,
	); err != nil {
		return err
	}
	d.scrolled = true
	return nil
}

// StopScroll deactivates scrolling.
func (d *Device) StopScroll() error {
	if err := d.c.Command(ssd1xxxDeactivateScroll); err != nil {
		return err
	}
	d.scrolled = false
	return nil
}

// SetRegion validates a against the panel and selects it for the next memory write.
func (d *Device) SetRegion(a Area) error {
	if _, err := d.geometry.RegionLength(a); err != nil {
		return err
	}
	if d.scrolled {
		if err := d.StopScroll(); err != nil {
			return err
		}
	}
	return SetRegion(d.c, a)
}

// Clear zeroes a.
func (d *Device) Clear(a Area) error {
	if err := d.SetRegion(a); err != nil {
		return err
	}
	return ClearRegion(d.c, a)
}

// ClearAll zeroes the whole display memory used by the panel.
func (d *Device) ClearAll() error {
	return d.Clear(d.geometry.FullFrame())
}

// Fill sets every byte of the panel memory to b.
func (d *Device) Fill(b byte) error {
	a := d.geometry.FullFrame()
	if err := d.SetRegion(a); err != nil {
		return err
	}
	return FillRegion(d.c, a, b)
}

// FillPage sets every byte of a single page to b.
func (d *Device) FillPage(page int, b byte) error {
	a := Area{StartPage: page, EndPage: page + 1, StartCol: 0, EndCol: d.geometry.Width}
	if err := d.SetRegion(a); err != nil {
		return err
	}
	return FillRegion(d.c, a, b)
}

// Render writes a packed buffer to a. The buffer must have the shape of a: one
// column per area column and one page per area page.
func (d *Device) Render(p *pixel.Packed, a Area) error {
	n, err := d.geometry.RegionLength(a)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("%w: %s needs %d bytes, got none", ErrInvalidRegion, a, n)
	}
	if w, pages := p.Rect.Dx(), p.Pages(); w != a.Columns() || pages != a.Pages() || len(p.Pix) != n {
		return fmt.Errorf("%w: %s needs %dx%d pages, got %dx%d pages", ErrInvalidRegion, a, a.Columns(), a.Pages(), w, pages)
	}
	if debug {
		log.Printf("oled: render %s\n%s", a, p)
	}
	if err = d.SetRegion(a); err != nil {
		return err
	}
	return d.c.Data(p.Pix...)
}

// RenderGlyph draws g with its top left corner at (x, y); y must be a multiple of 8.
//
// The glyph and its placement are validated before anything is sent. If a bus write
// fails the affected area is in an unknown state.
func (d *Device) RenderGlyph(g pixel.Glyph, x, y int) error {
	p, err := pixel.Transpose(g)
	if err != nil {
		return err
	}
	a, err := d.geometry.GlyphArea(g.Width(), g.Height(), x, y)
	if err != nil {
		return err
	}
	return d.Render(p, a)
}
