package conn

import (
	"periph.io/x/conn/v3/i2c"
	"tinygo.org/x/drivers"
)

// Bus is the two-wire transaction primitive. A transaction either completes as a
// whole or returns an error; there are no partial writes.
//
// Both periph.io I²C buses and TinyGo I²C peripherals satisfy it, so the same
// driver runs on a Linux host and on a microcontroller.
type Bus interface {
	Tx(addr uint16, w, r []byte) error
}

// Interface checks.
var (
	_ Bus = i2c.Bus(nil)
	_ Bus = drivers.I2C(nil)
)
