package hal

import (
	"errors"

	"tinygo.org/x/tinyfs"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction.
type LED interface {
	High()
	Low()
}

var ErrNotImplemented = errors.New("not implemented")

// DisplayWidth is the number of character positions on the segment display.
const DisplayWidth = 10

// Display is the fixed-width character display. Positions are indexed
// 0..DisplayWidth-1 left to right; writes outside that range are clipped.
// Writes take effect immediately, there is no separate flush.
type Display interface {
	WriteString(s string, pos int)
	WriteChar(c byte, pos int)
}

// Button identifies one of the three physical buttons.
type Button uint8

const (
	ButtonAlarm Button = iota
	ButtonLight
	ButtonMode
	buttonCount
)

// ButtonEvent is a raw press or release edge, already debounced.
type ButtonEvent struct {
	Button Button
	Press  bool
}

// Buttons provides debounced button edges (best-effort on each platform).
type Buttons interface {
	Events() <-chan ButtonEvent
}

// Time provides a base tick stream. One tick is one millisecond;
// higher-level timing (long presses, timeouts) lives in the app layer.
type Time interface {
	Ticks() <-chan uint64
}

// Storage exposes the raw block device that backs the settings filesystem.
//
// Implementations may return nil if no non-volatile memory is available.
type Storage interface {
	BlockDevice() tinyfs.BlockDevice
}

// HAL provides the only contact point between the watch and the hardware.
type HAL interface {
	Logger() Logger
	LED() LED
	Display() Display
	Buttons() Buttons
	Time() Time
	Storage() Storage
}
