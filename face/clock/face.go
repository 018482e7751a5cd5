// Package clock implements the time-of-day face the watch boots into.
// Layout: weekday at positions 0-1, day of month at 2-3, hhmmss at 4-9.
package clock

import (
	"fmt"
	"strings"
	"time"

	"morsewatch/face"
	"morsewatch/hal"
)

type Face struct {
	disp hal.Display
	now  func() time.Time
}

func New(disp hal.Display) *Face {
	return &Face{disp: disp, now: time.Now}
}

func (f *Face) Setup() {}

func (f *Face) Activate() { f.redraw() }

func (f *Face) Resign() {}

func (f *Face) Loop(ev face.Event) face.Request {
	switch ev.Type {
	case face.EventTick:
		f.redraw()
	case face.EventModeButtonUp, face.EventModeLongPress:
		return face.ReqNextFace
	}
	return face.ReqNone
}

func (f *Face) redraw() {
	t := f.now()

	f.disp.WriteString("          ", 0)
	f.disp.WriteString(strings.ToLower(t.Weekday().String()[:2]), 0)
	f.disp.WriteString(fmt.Sprintf("%2d", t.Day()), 2)
	f.disp.WriteString(fmt.Sprintf("%02d%02d%02d", t.Hour(), t.Minute(), t.Second()), 4)
}
