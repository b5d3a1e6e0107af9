package conn

import (
	"fmt"
	"io"
	"strconv"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
)

// WriteMode is the mask applied to the device address for write transactions.
const WriteMode = 0xFE

type I2C struct {
	bus    Bus
	closer io.Closer
	addr   uint8
}

// OpenI2C opens the numbered I²C bus from the periph.io registry, use -1 for the first
// available bus.
func OpenI2C(device int, addr uint8) (*I2C, error) {
	var (
		bus i2c.BusCloser
		err error
	)
	if device < 0 {
		bus, err = i2creg.Open("")
	} else {
		bus, err = i2creg.Open(strconv.FormatInt(int64(device), 10))
	}
	if err != nil {
		return nil, err
	}

	return &I2C{
		bus:    bus,
		closer: bus,
		addr:   addr,
	}, nil
}

// NewI2C uses an already opened bus. The bus is closed by [I2C.Close] if it
// implements [io.Closer].
func NewI2C(bus Bus, addr uint8) *I2C {
	c := &I2C{
		bus:  bus,
		addr: addr,
	}
	if closer, ok := bus.(io.Closer); ok {
		c.closer = closer
	}
	return c
}

// Addr is the 7-bit device address used for writes.
func (c *I2C) Addr() uint16 {
	return uint16(c.addr & WriteMode)
}

func (c *I2C) String() string {
	if s, ok := c.bus.(fmt.Stringer); ok {
		return fmt.Sprintf("I²C bus %s addr %#02x", s, c.addr)
	}
	return fmt.Sprintf("I²C bus %T addr %#02x", c.bus, c.addr)
}

func (c *I2C) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// Write sends p as a single transaction.
func (c *I2C) Write(p []byte) (int, error) {
	if err := c.bus.Tx(c.Addr(), p, nil); err != nil {
		return 0, err
	}
	return len(p), nil
}
