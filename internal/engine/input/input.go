// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies a processed input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventFocusLost
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseWheel
)

// Event is a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Repeat bool
	Width  int
	Height int
	MouseX int32
	MouseY int32
	RelX   int32
	RelY   int32
	Wheel  float32
}

// Input pumps SDL events once per frame and keeps the keyboard state.
type Input struct {
	events   []Event
	Keyboard *Keyboard
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events:   make([]Event, 0, 16),
		Keyboard: NewKeyboard(),
	}
}

// Update polls SDL events. Returns true if the application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if e, ok := translate(event); ok {
			i.Dispatch(e)
			if e.Type == EventQuit {
				quit = true
			}
		}
	}

	return quit
}

// Dispatch records an event and applies it to the keyboard state.
func (i *Input) Dispatch(e Event) {
	i.events = append(i.events, e)
	switch e.Type {
	case EventKeyDown:
		i.Keyboard.Press(e.Key)
	case EventKeyUp:
		i.Keyboard.Release(e.Key)
	case EventFocusLost:
		i.Keyboard.Clear()
	}
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Pressed reports whether scancode went down this frame, ignoring key repeat.
func (i *Input) Pressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode && !e.Repeat {
			return true
		}
	}
	return false
}

func translate(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
			return Event{Type: EventWindowResize, Width: int(e.Data1), Height: int(e.Data2)}, true
		case sdl.WINDOWEVENT_FOCUS_LOST:
			return Event{Type: EventFocusLost}, true
		}

	case *sdl.KeyboardEvent:
		ev := Event{Key: e.Keysym.Scancode, Repeat: e.Repeat != 0}
		if e.Type == sdl.KEYDOWN {
			ev.Type = EventKeyDown
		} else {
			ev.Type = EventKeyUp
		}
		return ev, true

	case *sdl.MouseMotionEvent:
		return Event{
			Type:   EventMouseMove,
			MouseX: e.X,
			MouseY: e.Y,
			RelX:   e.XRel,
			RelY:   e.YRel,
		}, true

	case *sdl.MouseWheelEvent:
		wheel := float32(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			wheel = -wheel
		}
		return Event{Type: EventMouseWheel, Wheel: wheel}, true
	}

	return Event{}, false
}
