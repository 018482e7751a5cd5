//go:build !tinygo

package hal

import (
	"image/color"
	"sync"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Simulated LCD geometry, in framebuffer pixels.
const (
	lcdCellW   = 10
	lcdCellH   = 18
	lcdMarginX = 6
	lcdMarginY = 5
	lcdWidth   = DisplayWidth*lcdCellW + 2*lcdMarginX
	lcdHeight  = lcdCellH + 2*lcdMarginY
)

var (
	lcdBackground = color.RGBA{R: 168, G: 186, B: 158, A: 255}
	lcdInk        = color.RGBA{R: 24, G: 32, B: 24, A: 255}
)

var lcdFont = &proggy.TinySZ8pt7b

// hostDisplay simulates the segment display on an RGB565 framebuffer.
type hostDisplay struct {
	mu    sync.Mutex
	chars [DisplayWidth]byte
	fb    *hostFramebuffer
}

func newHostDisplay() *hostDisplay {
	d := &hostDisplay{fb: newHostFramebuffer(lcdWidth, lcdHeight)}
	for i := range d.chars {
		d.chars[i] = ' '
	}
	d.redraw()
	return d
}

func (d *hostDisplay) WriteString(s string, pos int) {
	d.mu.Lock()
	for i := 0; i < len(s); i++ {
		p := pos + i
		if p < 0 || p >= DisplayWidth {
			continue
		}
		d.chars[p] = s[i]
	}
	d.mu.Unlock()
	d.redraw()
}

func (d *hostDisplay) WriteChar(c byte, pos int) {
	if pos < 0 || pos >= DisplayWidth {
		return
	}
	d.mu.Lock()
	d.chars[pos] = c
	d.mu.Unlock()
	d.redraw()
}

// text returns the current display content, for logging and tests.
func (d *hostDisplay) text() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return string(d.chars[:])
}

func (d *hostDisplay) redraw() {
	d.mu.Lock()
	chars := d.chars
	d.mu.Unlock()

	d.fb.fillRGB(lcdBackground.R, lcdBackground.G, lcdBackground.B)
	disp := fbDisplayer{fb: d.fb}
	for i, c := range chars {
		if c <= ' ' || c > '~' {
			continue
		}
		x := int16(lcdMarginX + i*lcdCellW)
		y := int16(lcdMarginY + lcdCellH - 5)
		tinyfont.DrawChar(disp, lcdFont, x, y, rune(c), lcdInk)
	}
}
