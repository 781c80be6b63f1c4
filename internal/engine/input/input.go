// Package input translates SDL2 events into the viewer's key, mouse, drop
// and quit events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies what an Event carries.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventKeyDown
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseLeave
	EventDropFile
)

// ButtonLeft is the primary mouse button.
const ButtonLeft uint8 = sdl.BUTTON_LEFT

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    string
	MouseX float32
	MouseY float32
	Button uint8
	Path   string
}

// Input polls SDL once per frame and buffers the translated events.
type Input struct {
	events []Event
	mouseX float32
	mouseY float32
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them.
// Returns true if the viewer should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if e, ok := i.translate(event); ok {
			i.events = append(i.events, e)
			if e.Type == EventQuit {
				quit = true
			}
		}
	}
	return quit
}

func (i *Input) translate(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		// Size changes need no event: the frame loop reads the window
		// size every frame.
		if e.Event == sdl.WINDOWEVENT_LEAVE {
			return Event{Type: EventMouseLeave, MouseX: i.mouseX, MouseY: i.mouseY}, true
		}

	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN {
			return Event{}, false
		}
		if name := KeyName(e.Keysym.Sym, uint16(e.Keysym.Mod)); name != "" {
			return Event{Type: EventKeyDown, Key: name}, true
		}

	case *sdl.MouseMotionEvent:
		i.mouseX, i.mouseY = float32(e.X), float32(e.Y)
		return Event{Type: EventMouseMove, MouseX: i.mouseX, MouseY: i.mouseY}, true

	case *sdl.MouseButtonEvent:
		i.mouseX, i.mouseY = float32(e.X), float32(e.Y)
		t := EventMouseUp
		if e.Type == sdl.MOUSEBUTTONDOWN {
			t = EventMouseDown
		}
		return Event{Type: t, MouseX: i.mouseX, MouseY: i.mouseY, Button: e.Button}, true

	case *sdl.DropEvent:
		if e.Type == sdl.DROPFILE && e.File != "" {
			return Event{Type: EventDropFile, Path: e.File}, true
		}
	}
	return Event{}, false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}
