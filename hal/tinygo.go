//go:build tinygo

package hal

import (
	"machine"
	"time"

	"tinygo.org/x/tinyfs"
)

type tinygoHAL struct {
	logger *serialLogger
	led    *pinLED
	disp   Display
	btns   *pinButtons
	t      *tickSource
}

// New returns the hardware HAL. Wired for a Raspberry Pi Pico with an
// SSD1306 OLED standing in for the segment LCD and three buttons on
// GP2 (alarm), GP3 (light) and GP4 (mode), active low.
func New() HAL {
	logger := &serialLogger{}

	led := &pinLED{pin: machine.LED}
	led.pin.Configure(machine.PinConfig{Mode: machine.PinOutput})

	disp := newOLEDDisplay(logger)

	btns := newPinButtons([...]machine.Pin{
		ButtonAlarm: machine.GP2,
		ButtonLight: machine.GP3,
		ButtonMode:  machine.GP4,
	})

	return &tinygoHAL{
		logger: logger,
		led:    led,
		disp:   disp,
		btns:   btns,
		t:      newTickSource(),
	}
}

func (h *tinygoHAL) Logger() Logger   { return h.logger }
func (h *tinygoHAL) LED() LED         { return h.led }
func (h *tinygoHAL) Display() Display { return h.disp }
func (h *tinygoHAL) Buttons() Buttons { return h.btns }
func (h *tinygoHAL) Time() Time       { return h.t }

func (h *tinygoHAL) Storage() Storage { return flashStorage{} }

type serialLogger struct{}

func (l *serialLogger) WriteLineString(s string) {
	machine.Serial.Write([]byte(s))
	machine.Serial.Write([]byte{'\r', '\n'})
}

func (l *serialLogger) WriteLineBytes(b []byte) {
	machine.Serial.Write(b)
	machine.Serial.Write([]byte{'\r', '\n'})
}

type pinLED struct {
	pin machine.Pin
}

func (l *pinLED) High() { l.pin.High() }
func (l *pinLED) Low()  { l.pin.Low() }

const (
	buttonSampleInterval = 10 * time.Millisecond
)

// pinButtons samples the button pins and reports debounced edges. The
// sampling interval doubles as the debounce window.
type pinButtons struct {
	pins  [buttonCount]machine.Pin
	state [buttonCount]bool
	ch    chan ButtonEvent
}

func newPinButtons(pins [buttonCount]machine.Pin) *pinButtons {
	b := &pinButtons{pins: pins, ch: make(chan ButtonEvent, 16)}
	for _, p := range pins {
		p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}
	go b.sample()
	return b
}

func (b *pinButtons) Events() <-chan ButtonEvent { return b.ch }

func (b *pinButtons) sample() {
	for {
		for i := range b.pins {
			pressed := !b.pins[i].Get() // active low
			if pressed == b.state[i] {
				continue
			}
			b.state[i] = pressed
			select {
			case b.ch <- ButtonEvent{Button: Button(i), Press: pressed}:
			default:
			}
		}
		time.Sleep(buttonSampleInterval)
	}
}

type tickSource struct {
	ch chan uint64
}

func newTickSource() *tickSource {
	t := &tickSource{ch: make(chan uint64, 1024)}
	go func() {
		var seq uint64
		for {
			time.Sleep(time.Millisecond)
			seq++
			select {
			case t.ch <- seq:
			default:
			}
		}
	}()
	return t
}

func (t *tickSource) Ticks() <-chan uint64 { return t.ch }

type flashStorage struct{}

func (flashStorage) BlockDevice() tinyfs.BlockDevice { return machine.Flash }
