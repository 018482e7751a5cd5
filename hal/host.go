//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"

	"tinygo.org/x/tinyfs"
)

type hostHAL struct {
	logger *hostLogger
	led    *hostLED
	disp   *hostDisplay
	btns   *hostButtons
	t      *hostTime
	flash  *hostFlash
}

// New returns a host HAL implementation.
func New() HAL {
	logger := &hostLogger{w: os.Stdout}
	return &hostHAL{
		logger: logger,
		led:    &hostLED{logger: logger},
		disp:   newHostDisplay(),
		btns:   newHostButtons(),
		t:      newHostTime(),
		flash:  newHostFlash(logger),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) LED() LED         { return h.led }
func (h *hostHAL) Display() Display { return h.disp }
func (h *hostHAL) Buttons() Buttons { return h.btns }
func (h *hostHAL) Time() Time       { return h.t }

func (h *hostHAL) Storage() Storage { return h.flash }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostLED struct {
	mu     sync.Mutex
	on     bool
	logger *hostLogger
}

func (l *hostLED) High() {
	l.mu.Lock()
	changed := !l.on
	l.on = true
	l.mu.Unlock()
	if changed {
		l.logger.WriteLineString("led: on")
	}
}

func (l *hostLED) Low() {
	l.mu.Lock()
	changed := l.on
	l.on = false
	l.mu.Unlock()
	if changed {
		l.logger.WriteLineString("led: off")
	}
}

type hostButtons struct {
	ch chan ButtonEvent
}

func newHostButtons() *hostButtons {
	return &hostButtons{ch: make(chan ButtonEvent, 64)}
}

func (b *hostButtons) Events() <-chan ButtonEvent { return b.ch }

func (b *hostButtons) emit(btn Button, press bool) {
	select {
	case b.ch <- ButtonEvent{Button: btn, Press: press}:
	default:
	}
}

var _ tinyfs.BlockDevice = (*hostFlash)(nil)
