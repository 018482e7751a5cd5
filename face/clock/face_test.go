package clock

import (
	"testing"
	"time"

	"morsewatch/face"
	"morsewatch/hal"
)

type fakeDisplay struct {
	chars [hal.DisplayWidth]byte
}

func newFakeDisplay() *fakeDisplay {
	d := &fakeDisplay{}
	for i := range d.chars {
		d.chars[i] = ' '
	}
	return d
}

func (d *fakeDisplay) WriteString(s string, pos int) {
	for i := 0; i < len(s); i++ {
		p := pos + i
		if p < 0 || p >= hal.DisplayWidth {
			continue
		}
		d.chars[p] = s[i]
	}
}

func (d *fakeDisplay) WriteChar(c byte, pos int) {
	if pos < 0 || pos >= hal.DisplayWidth {
		return
	}
	d.chars[pos] = c
}

func TestRedraw(t *testing.T) {
	d := newFakeDisplay()
	f := New(d)
	// Tuesday 2024-01-09 13:37:05.
	f.now = func() time.Time {
		return time.Date(2024, 1, 9, 13, 37, 5, 0, time.UTC)
	}

	f.Activate()
	if got := string(d.chars[:]); got != "tu 9133705" {
		t.Errorf("expected %q, got %q", "tu 9133705", got)
	}
}

func TestModeLeavesFace(t *testing.T) {
	f := New(newFakeDisplay())
	if req := f.Loop(face.Event{Type: face.EventModeButtonUp}); req != face.ReqNextFace {
		t.Errorf("expected ReqNextFace, got %d", req)
	}
}

func TestTickRedraws(t *testing.T) {
	d := newFakeDisplay()
	f := New(d)
	sec := 0
	f.now = func() time.Time {
		return time.Date(2024, 1, 9, 13, 37, sec, 0, time.UTC)
	}

	f.Activate()
	sec = 42
	f.Loop(face.Event{Type: face.EventTick})
	if got := string(d.chars[4:]); got != "133742" {
		t.Errorf("expected %q, got %q", "133742", got)
	}
}
