//go:build tinygo

package hal

import (
	"fmt"
	"image/color"
	"machine"
	"time"

	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	oledAddress = 0x3C
	oledWidth   = 128
	oledHeight  = 64

	oledCellW = 12
	oledBaseY = 38
)

var oledOn = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// oledDisplay renders the character positions on an SSD1306 over I2C.
type oledDisplay struct {
	dev   *ssd1306.Device
	chars [DisplayWidth]byte
}

func newOLEDDisplay(logger Logger) Display {
	i2c := machine.I2C0
	if err := i2c.Configure(machine.I2CConfig{
		Frequency: 400000,
		SCL:       machine.GP1,
		SDA:       machine.GP0,
	}); err != nil {
		logger.WriteLineString(fmt.Sprintf("display: i2c config failed: %v", err))
		return nullDisplay{}
	}

	time.Sleep(10 * time.Millisecond)

	dev := ssd1306.NewI2C(i2c)
	dev.Configure(ssd1306.Config{
		Address: oledAddress,
		Width:   oledWidth,
		Height:  oledHeight,
	})
	dev.ClearDisplay()

	d := &oledDisplay{dev: dev}
	for i := range d.chars {
		d.chars[i] = ' '
	}
	return d
}

func (d *oledDisplay) WriteString(s string, pos int) {
	for i := 0; i < len(s); i++ {
		p := pos + i
		if p < 0 || p >= DisplayWidth {
			continue
		}
		d.chars[p] = s[i]
	}
	d.redraw()
}

func (d *oledDisplay) WriteChar(c byte, pos int) {
	if pos < 0 || pos >= DisplayWidth {
		return
	}
	d.chars[pos] = c
	d.redraw()
}

func (d *oledDisplay) redraw() {
	d.dev.ClearBuffer()
	for i, c := range d.chars {
		if c <= ' ' || c > '~' {
			continue
		}
		x := int16(4 + i*oledCellW)
		tinyfont.DrawChar(d.dev, &proggy.TinySZ8pt7b, x, oledBaseY, rune(c), oledOn)
	}
	d.dev.Display()
}

// nullDisplay swallows writes when no panel responds, so the rest of the
// watch keeps running for serial debugging.
type nullDisplay struct{}

func (nullDisplay) WriteString(s string, pos int) {}
func (nullDisplay) WriteChar(c byte, pos int)     {}
