// Package morsecalc implements the morse-code RPN calculator face.
//
// The alarm button keys a dot, the light button a dash, and the mode button
// completes the current character. Completed characters accumulate into a
// token; keying the submit sequence ("..--") hands the token to the
// calculator. The erase prosign ("-.--.") deletes the last character and
// the clear prosign ("-.-.-") discards the whole token.
//
// Display layout while entering a token:
//
//	pos 0    character the current symbol sequence decodes to so far
//	pos 3    number of symbols keyed for the current character
//	pos 4-9  the token, right-aligned
//
// After a submit or clear the display switches to the stack view: slot
// index at position 0, stack depth at position 3, and the slot's value (or
// an error code) in positions 4-9.
package morsecalc

import (
	"fmt"

	"morsewatch/calc"
	"morsewatch/face"
	"morsewatch/hal"
	"morsewatch/morse"
)

// Preview markers for the control prosigns, which have no printable form.
const (
	previewBackspace = '<'
	previewClear     = '^'
)

// Face is the calculator watch face.
type Face struct {
	disp  hal.Display
	log   hal.Logger
	dec   *morse.Decoder
	eng   *calc.Engine
	token tokenBuffer
}

// New returns the face. The decoder and engine are injected so the watch
// can share them with other faces or tests can observe them.
func New(disp hal.Display, log hal.Logger, dec *morse.Decoder, eng *calc.Engine) *Face {
	return &Face{disp: disp, log: log, dec: dec, eng: eng}
}

func (f *Face) Setup() {
	f.eng.Reset()
	f.dec.Reset()
	f.token.clear()
}

func (f *Face) Activate() {
	f.dec.Reset()
	f.printStack()
}

func (f *Face) Resign() {}

func (f *Face) Loop(ev face.Event) face.Request {
	switch ev.Type {
	case face.EventModeLongPress, face.EventTimeout:
		return face.ReqNextFace
	case face.EventAlarmLongPress, face.EventLightLongPress:
		f.printStack()
	case face.EventAlarmButtonUp:
		f.symbol(morse.Dot)
	case face.EventLightButtonUp:
		f.symbol(morse.Dash)
	case face.EventModeButtonUp:
		f.complete()
	}
	return face.ReqNone
}

// symbol forwards one dot or dash to the decoder. The token itself does
// not change until the character is completed.
func (f *Face) symbol(s morse.Symbol) {
	f.dec.Append(s)
	f.printToken()
}

// complete ends the current character and acts on it.
func (f *Face) complete() {
	c := f.dec.Decode()
	f.dec.Reset()

	status := calc.StatusOK
	switch c {
	case morse.CharNone:
		// Sequence matched nothing; drop it silently.
		f.printToken()

	case morse.CharSubmit:
		status = f.eng.Submit(f.token.String())
		f.token.clear()
		f.printStack()

	case morse.CharBackspace:
		f.token.popLast()
		f.printToken()

	case morse.CharClear:
		f.token.clear()
		f.printStack()

	default:
		if f.token.push(c) {
			f.printToken()
		} else {
			f.disp.WriteString("  full", 4)
		}
	}

	switch status {
	case calc.StatusOK:
	case calc.StatusUnknownToken:
		f.disp.WriteString("cmderr", 4)
	case calc.StatusBadStackSize:
		f.disp.WriteString("stkerr", 4)
	default:
		f.disp.WriteString("   err", 4)
	}
	if status != calc.StatusOK && f.log != nil {
		f.log.WriteLineString(fmt.Sprintf("calc: status %d", status))
	}
}

// printToken shows the token view.
func (f *Face) printToken() {
	f.disp.WriteString("          ", 0)

	c := f.dec.Decode()
	switch c {
	case morse.CharNone:
		c = ' '
	case morse.CharBackspace:
		c = previewBackspace
	case morse.CharClear:
		c = previewClear
	}
	f.disp.WriteChar(c, 0)
	f.disp.WriteChar('0'+byte(f.dec.Len()), 3)

	s := f.token.String()
	f.disp.WriteString(s, hal.DisplayWidth-len(s))
}

// printStack shows the stack view. If the symbols keyed so far decode to a
// digit, that digit picks the slot to show, letting the user preview a slot
// without committing the character; otherwise the top of stack is shown.
func (f *Face) printStack() {
	f.disp.WriteString("          ", 0)

	idx := 0
	if c := f.dec.Decode(); c >= '0' && c <= '9' {
		idx = int(c - '0')
	}

	if v, ok := f.eng.Pick(idx); ok {
		printFloat(f.disp, v)
	} else {
		f.disp.WriteString(" empty", 4)
	}

	f.disp.WriteChar('0'+byte(idx), 0)
	f.disp.WriteChar('0'+byte(f.eng.Depth()), 3)
}
