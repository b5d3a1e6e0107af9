package oled

// SSD1306 command set, see the datasheet section 9.
const (
	ssd1xxxSetMemoryMode         = 0x20
	ssd1xxxSetColumnAddr         = 0x21
	ssd1xxxSetPageAddr           = 0x22
	ssd1xxxScrollRight           = 0x26
	ssd1xxxScrollLeft            = 0x27
	ssd1xxxDeactivateScroll      = 0x2E
	ssd1xxxActivateScroll        = 0x2F
	ssd1xxxSetStartLine          = 0x40
	ssd1xxxSetContrast           = 0x81
	ssd1xxxSetChargePump         = 0x8D
	ssd1xxxSetSegmentRemap       = 0xA0
	ssd1xxxSetDisplayAllOnResume = 0xA4
	ssd1xxxSetDisplayAllOn       = 0xA5
	ssd1xxxSetNormalDisplay      = 0xA6
	ssd1xxxSetInvertDisplay      = 0xA7
	ssd1xxxSetMultiplexRatio     = 0xA8
	ssd1xxxSetDisplayOff         = 0xAE
	ssd1xxxSetDisplayOn          = 0xAF
	ssd1xxxSetComScanInc         = 0xC0
	ssd1xxxSetComScanDec         = 0xC8
	ssd1xxxSetDisplayOffset      = 0xD3
	ssd1xxxSetDisplayClockDiv    = 0xD5
	ssd1xxxSetPrecharge          = 0xD9
	ssd1xxxSetComPins            = 0xDA
	ssd1xxxSetVCOMDeselect       = 0xDB
)

// I²C control bytes: [Co][D/C#]000000.
const (
	controlCommand       = 0x80 // Co=1, D/C#=0: one command byte follows
	controlCommandStream = 0x00 // Co=0, D/C#=0: all remaining bytes are commands
	controlDataStream    = 0x40 // Co=0, D/C#=1: all remaining bytes go to GDDRAM
)
