// Package app is the watch engine. It owns the face list, turns raw
// hardware edges into face events, and runs whichever face is active.
//
// The engine consumes two streams from the HAL: debounced button edges
// and millisecond ticks. Everything time-based above that (long presses,
// the inactivity timeout, the once-a-second tick faces see) is derived
// here, so the hardware backends stay dumb.
package app

import (
	"fmt"
	"runtime/debug"

	"morsewatch/calc"
	"morsewatch/face"
	"morsewatch/face/clock"
	"morsewatch/face/morsecalc"
	"morsewatch/hal"
	"morsewatch/morse"
	"morsewatch/settings"
)

// ticksPerSecond converts the HAL's millisecond ticks to seconds.
const ticksPerSecond = 1000

type engine struct {
	h     hal.HAL
	store *settings.Store
	cfg   settings.Settings
	faces []face.Face

	buttons <-chan hal.ButtonEvent
	ticks   <-chan uint64

	active    int
	now       uint64
	lastInput uint64
	timedOut  bool

	pressed   [3]bool
	pressTick [3]uint64
}

func newEngine(h hal.HAL, store *settings.Store, cfg settings.Settings, faces []face.Face) *engine {
	e := &engine{
		h:       h,
		store:   store,
		cfg:     cfg,
		faces:   faces,
		buttons: h.Buttons().Events(),
		ticks:   h.Time().Ticks(),
	}

	for _, f := range e.faces {
		f.Setup()
	}

	e.active = int(cfg.ActiveFace)
	if e.active >= len(e.faces) {
		e.active = 0
	}
	e.faces[e.active].Activate()

	return e
}

// New wires the default face set to the given HAL and returns the step
// function the host simulator calls once per frame. A panic inside the
// engine is logged with its stack before propagating.
func New(h hal.HAL) func() error {
	e := defaultEngine(h)
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				h.Logger().WriteLineString(fmt.Sprintf("panic: %v\n%s", r, debug.Stack()))
				panic(r)
			}
		}()
		return e.step()
	}
}

// Run wires the default face set to the given HAL and blocks forever.
// This is the hardware entrypoint.
func Run(h hal.HAL) {
	e := defaultEngine(h)
	e.run()
}

// defaultEngine loads settings from flash (falling back to factory
// defaults) and registers the built-in faces.
func defaultEngine(h hal.HAL) *engine {
	log := h.Logger()
	cfg := settings.Default()

	store := openStore(h)
	if store != nil {
		switch loaded, err := store.Load(); err {
		case nil:
			cfg = loaded
		case settings.ErrNotFound, settings.ErrVersionMismatch, settings.ErrInvalidSize:
			log.WriteLineString(fmt.Sprintf("settings: %v, writing defaults", err))
			if err := store.Save(cfg); err != nil {
				log.WriteLineString(fmt.Sprintf("settings: save: %v", err))
			}
		default:
			log.WriteLineString(fmt.Sprintf("settings: load: %v", err))
		}
	}

	disp := h.Display()
	faces := []face.Face{
		clock.New(disp),
		morsecalc.New(disp, log, morse.NewDecoder(), calc.New()),
	}

	e := newEngine(h, store, cfg, faces)
	log.WriteLineString("watch: ready")
	return e
}

func openStore(h hal.HAL) *settings.Store {
	s := h.Storage()
	if s == nil {
		return nil
	}
	dev := s.BlockDevice()
	if dev == nil {
		h.Logger().WriteLineString("settings: no block device, running on defaults")
		return nil
	}
	store, err := settings.Open(dev, true)
	if err != nil {
		h.Logger().WriteLineString(fmt.Sprintf("settings: open: %v", err))
		return nil
	}
	return store
}

// step drains everything pending and returns. The host simulator calls
// it once per frame.
func (e *engine) step() error {
	for {
		select {
		case ev := <-e.buttons:
			e.onButton(ev)
		case tick := <-e.ticks:
			e.onTick(tick)
		default:
			return nil
		}
	}
}

// run blocks on the HAL streams.
func (e *engine) run() {
	for {
		select {
		case ev := <-e.buttons:
			e.onButton(ev)
		case tick := <-e.ticks:
			e.onTick(tick)
		}
	}
}

func (e *engine) onButton(ev hal.ButtonEvent) {
	b := int(ev.Button)
	if b >= len(e.pressed) {
		return
	}

	if ev.Press {
		e.pressed[b] = true
		e.pressTick[b] = e.now
		e.lastInput = e.now
		e.timedOut = false
		if e.cfg.Flags&settings.FlagLEDFeedback != 0 {
			e.h.LED().High()
		}
		return
	}

	if !e.pressed[b] {
		// Release without a matching press, e.g. a button held across boot.
		return
	}
	e.pressed[b] = false
	e.lastInput = e.now

	if e.cfg.Flags&settings.FlagLEDFeedback != 0 && !e.anyPressed() {
		e.h.LED().Low()
	}

	held := e.now - e.pressTick[b]
	long := held >= uint64(e.cfg.LongPressMs)
	e.dispatch(face.Event{Type: buttonEventType(ev.Button, long)})
}

func (e *engine) anyPressed() bool {
	for _, p := range e.pressed {
		if p {
			return true
		}
	}
	return false
}

func (e *engine) onTick(tick uint64) {
	e.now = tick

	if tick%ticksPerSecond == 0 {
		e.dispatch(face.Event{Type: face.EventTick})
	}

	timeout := uint64(e.cfg.TimeoutS) * ticksPerSecond
	if timeout > 0 && !e.timedOut && tick-e.lastInput >= timeout {
		e.timedOut = true
		e.dispatch(face.Event{Type: face.EventTimeout})
	}
}

func buttonEventType(b hal.Button, long bool) face.EventType {
	switch b {
	case hal.ButtonAlarm:
		if long {
			return face.EventAlarmLongPress
		}
		return face.EventAlarmButtonUp
	case hal.ButtonLight:
		if long {
			return face.EventLightLongPress
		}
		return face.EventLightButtonUp
	case hal.ButtonMode:
		if long {
			return face.EventModeLongPress
		}
		return face.EventModeButtonUp
	}
	return face.EventNone
}

func (e *engine) dispatch(ev face.Event) {
	if ev.Type == face.EventNone {
		return
	}
	if e.faces[e.active].Loop(ev) == face.ReqNextFace {
		e.nextFace()
	}
}

// nextFace hands the display to the next registered face and persists
// the choice so the watch boots back into it.
func (e *engine) nextFace() {
	e.faces[e.active].Resign()
	e.active = (e.active + 1) % len(e.faces)
	e.faces[e.active].Activate()

	e.lastInput = e.now
	e.timedOut = false

	e.cfg.ActiveFace = uint8(e.active)
	if e.store != nil {
		if err := e.store.Save(e.cfg); err != nil {
			e.h.Logger().WriteLineString(fmt.Sprintf("settings: save: %v", err))
		}
	}
}
