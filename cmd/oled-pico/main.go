//go:build tinygo

// Command oled-pico drives an SSD1306 panel from a Raspberry Pi Pico: it clears
// the display, flashes it three times and renders a test glyph.
package main

import (
	"machine"
	"time"

	"tinygo.org/x/drivers"

	"github.com/BeatGlow/oled"
	"github.com/BeatGlow/oled/draw"
	"github.com/BeatGlow/oled/pixel"
)

func main() {
	err := machine.I2C0.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       machine.GP4,
		SCL:       machine.GP5,
	})
	if err != nil {
		halt("could not configure I2C", err)
	}

	var bus drivers.I2C = machine.I2C0
	output, err := oled.SSD1306(oled.NewI2C(bus, oled.DefaultI2CConfig.Addr), &oled.Config{
		Width:  128,
		Height: 32,
	})
	if err != nil {
		halt("could not initialize display", err)
	}
	if err = output.ClearAll(); err != nil {
		halt("clear failed", err)
	}
	if err = output.Flash(3, 500*time.Millisecond); err != nil {
		halt("flash failed", err)
	}
	if err = output.RenderGlyph(badge(32, 32), 0, 0); err != nil {
		halt("render failed", err)
	}

	for {
		time.Sleep(time.Minute)
	}
}

// badge is a framed glyph with a filled center.
func badge(w, h int) pixel.Glyph {
	var (
		img = pixel.NewGlyphImage(w, h)
		r   = img.Bounds()
	)
	draw.Rectangle(img, r, pixel.On)
	draw.Box(img, r.Inset(w/4), pixel.On)
	return img.Glyph()
}

func halt(msg string, err error) {
	for {
		println(msg, err.Error())
		time.Sleep(time.Second)
	}
}
