// Package face defines the lifecycle and event model for watch faces.
//
// A face is one full-screen mode of the watch. The app engine delivers it
// discrete events, one at a time, and the face runs each to completion:
// there is no concurrency inside a face and no event is delivered while
// another is being handled.
package face

// EventType identifies one host event.
type EventType uint8

const (
	EventNone EventType = iota
	// EventTick fires once per second while the face is active.
	EventTick
	// Button-up events fire when a short press is released.
	EventAlarmButtonUp
	EventLightButtonUp
	EventModeButtonUp
	// Long-press events fire instead of button-up after a long hold.
	EventAlarmLongPress
	EventLightLongPress
	EventModeLongPress
	// EventTimeout fires after a period with no input.
	EventTimeout
)

// Event is a single host event.
type Event struct {
	Type EventType
}

// Request is what a face asks the engine to do after handling an event.
type Request uint8

const (
	ReqNone Request = iota
	// ReqNextFace hands control to the next registered face.
	ReqNextFace
)

// Face is one watch mode. Setup is called once when the watch starts,
// Activate each time the face gains the display, Resign when it loses it.
type Face interface {
	Setup()
	Activate()
	Loop(ev Event) Request
	Resign()
}
