// Package settings persists device settings on a littlefs filesystem.
// The format is a fixed-layout binary record; when the stored version does
// not match the firmware's, callers are expected to fall back to defaults
// and overwrite.
package settings

import (
	"encoding/binary"
	"errors"
)

// CurrentVersion is the settings format version. Bump on breaking layout
// changes; a mismatch on load makes the watch rewrite defaults.
const CurrentVersion uint16 = 1

// Flag bits.
const (
	// FlagLEDFeedback lights the LED while a button is held.
	FlagLEDFeedback uint8 = 1 << 0
)

// recordSize is the marshalled size in bytes.
// Layout:
//
//	[0-1]: Version (uint16)
//	[2]:   ActiveFace (uint8)
//	[3]:   Flags (uint8)
//	[4-5]: LongPressMs (uint16)
//	[6-7]: TimeoutS (uint16)
const recordSize = 8

var ErrInvalidSize = errors.New("invalid settings size")

// Settings are the device-level knobs the watch engine needs at boot.
type Settings struct {
	Version     uint16
	ActiveFace  uint8  // face shown at power-on
	Flags       uint8
	LongPressMs uint16 // hold time that turns a press into a long press
	TimeoutS    uint16 // seconds of inactivity before the timeout event
}

// Default returns the factory settings.
func Default() Settings {
	return Settings{
		Version:     CurrentVersion,
		ActiveFace:  0,
		Flags:       FlagLEDFeedback,
		LongPressMs: 500,
		TimeoutS:    60,
	}
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (s *Settings) MarshalBinary() ([]byte, error) {
	buf := make([]byte, recordSize)
	binary.LittleEndian.PutUint16(buf[0:], s.Version)
	buf[2] = s.ActiveFace
	buf[3] = s.Flags
	binary.LittleEndian.PutUint16(buf[4:], s.LongPressMs)
	binary.LittleEndian.PutUint16(buf[6:], s.TimeoutS)
	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *Settings) UnmarshalBinary(data []byte) error {
	if len(data) < recordSize {
		return ErrInvalidSize
	}
	s.Version = binary.LittleEndian.Uint16(data[0:])
	s.ActiveFace = data[2]
	s.Flags = data[3]
	s.LongPressMs = binary.LittleEndian.Uint16(data[4:])
	s.TimeoutS = binary.LittleEndian.Uint16(data[6:])
	return nil
}
