package oled

import (
	"periph.io/x/conn/v3/gpio"

	"github.com/BeatGlow/oled/conn"
)

// Conn is the connection interface for communicating with hardware.
type Conn interface {
	String() string

	// Close the connection.
	Close() error

	// Reset sets the reset pin to the provided level.
	Reset(gpio.Level) error

	// Command sends a single command byte.
	Command(byte) error

	// Commands sends a stream of command bytes in one transaction.
	Commands(...byte) error

	// Data sends display memory bytes in one transaction.
	Data(...byte) error
}

// BusError is returned when a bus transaction fails. Transactions are never
// retried: the controller state after a failed write is unknown.
type BusError struct {
	// Op is the failed operation.
	Op string

	// Err is the error returned by the bus.
	Err error
}

func (err *BusError) Error() string {
	return "oled: bus " + err.Op + " failed: " + err.Err.Error()
}

func (err *BusError) Unwrap() error {
	return err.Err
}

// I2CConfig describes the I²C bus configuration.
type I2CConfig struct {
	// Device is the I²C device, use -1 to use the first available device.
	Device int

	// Addr is the I²C address.
	Addr uint8

	// Reset pin, optional.
	Reset gpio.PinOut
}

var DefaultI2CConfig = I2CConfig{
	Device: -1,
	Addr:   0x3c,
}

type i2cConn struct {
	*conn.I2C
	reset gpio.PinOut
}

// OpenI2C opens an I²C bus from the periph.io registry, the host drivers must be
// initialized.
func OpenI2C(config *I2CConfig) (Conn, error) {
	if config == nil {
		config = new(I2CConfig)
		*config = DefaultI2CConfig
	}

	c, err := conn.OpenI2C(config.Device, config.Addr)
	if err != nil {
		return nil, err
	}

	return &i2cConn{
		I2C:   c,
		reset: config.Reset,
	}, nil
}

// NewI2C returns a connection on an already opened bus, such as a periph.io
// i2c.Bus or a TinyGo machine.I2C.
func NewI2C(bus conn.Bus, addr uint8) Conn {
	return &i2cConn{
		I2C: conn.NewI2C(bus, addr),
	}
}

func (c *i2cConn) Command(cmnd byte) error {
	return c.send("command", controlCommand, cmnd)
}

func (c *i2cConn) Commands(cmnds ...byte) error {
	if len(cmnds) == 0 {
		return nil
	}
	return c.send("commands", controlCommandStream, cmnds...)
}

func (c *i2cConn) Data(data ...byte) error {
	if len(data) == 0 {
		return nil
	}
	return c.send("data", controlDataStream, data...)
}

// send prefixes the control byte, the controller rejects split framing so the whole
// frame goes out in a single transaction.
func (c *i2cConn) send(op string, control byte, data ...byte) error {
	frame := make([]byte, 1, len(data)+1)
	frame[0] = control
	frame = append(frame, data...)
	if _, err := c.I2C.Write(frame); err != nil {
		return &BusError{Op: op, Err: err}
	}
	return nil
}

func (c *i2cConn) Reset(level gpio.Level) error {
	if c.reset == nil || c.reset == gpio.INVALID {
		return nil
	}
	return c.reset.Out(level)
}
