package oled

// SetRegion points the controller's column and page address range at a. Every byte
// is sent as a single framed command.
func SetRegion(c Conn, a Area) error {
	if err := a.check(); err != nil {
		return err
	}
	startCol, endCol, startPage, endPage := a.wire()
	for _, b := range []byte{
		ssd1xxxSetColumnAddr, startCol, endCol,
		ssd1xxxSetPageAddr, startPage, endPage,
	} {
		if err := c.Command(b); err != nil {
			return err
		}
	}
	return nil
}

// ClearRegion zeroes a.Len() bytes starting at the current address pointer, use
// [SetRegion] first.
func ClearRegion(c Conn, a Area) error {
	return FillRegion(c, a, 0x00)
}

// FillRegion writes a.Len() copies of b starting at the current address pointer.
func FillRegion(c Conn, a Area, b byte) error {
	if err := a.check(); err != nil {
		return err
	}
	buf := make([]byte, a.Len())
	if b != 0 {
		for i := range buf {
			buf[i] = b
		}
	}
	return c.Data(buf...)
}
