// Package input turns SDL2 events into viewer actions and camera gestures.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies a processed event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventDrag
	EventWheel
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Keycode
	Width  int
	Height int
	// DX and DY are the drag delta in window coordinates.
	DX, DY float32
	Wheel  float32
}

// Action is a viewer command bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionUnfold
	ActionFold
	ActionToggleInfo
	ActionZoomIn
	ActionZoomOut
	ActionGrow
	ActionShrink
	ActionResetView
	ActionNextShape
	ActionPrevShape
	ActionScreenshot
	ActionQuit
)

var actionNames = map[Action]string{
	ActionUnfold:     "unfold",
	ActionFold:       "fold",
	ActionToggleInfo: "toggle-info",
	ActionZoomIn:     "zoom-in",
	ActionZoomOut:    "zoom-out",
	ActionGrow:       "grow",
	ActionShrink:     "shrink",
	ActionResetView:  "reset-view",
	ActionNextShape:  "next-shape",
	ActionPrevShape:  "prev-shape",
	ActionScreenshot: "screenshot",
	ActionQuit:       "quit",
}

func (a Action) String() string {
	if n, ok := actionNames[a]; ok {
		return n
	}
	return "none"
}

// Bindings maps keys to actions.
type Bindings map[sdl.Keycode]Action

// DefaultBindings returns the standard key map.
func DefaultBindings() Bindings {
	return Bindings{
		sdl.K_u:            ActionUnfold,
		sdl.K_f:            ActionFold,
		sdl.K_i:            ActionToggleInfo,
		sdl.K_EQUALS:       ActionZoomIn,
		sdl.K_KP_PLUS:      ActionZoomIn,
		sdl.K_MINUS:        ActionZoomOut,
		sdl.K_KP_MINUS:     ActionZoomOut,
		sdl.K_RIGHTBRACKET: ActionGrow,
		sdl.K_LEFTBRACKET:  ActionShrink,
		sdl.K_r:            ActionResetView,
		sdl.K_n:            ActionNextShape,
		sdl.K_p:            ActionPrevShape,
		sdl.K_F12:          ActionScreenshot,
		sdl.K_ESCAPE:       ActionQuit,
	}
}

// Action returns the action bound to a key-down event.
func (b Bindings) Action(e Event) Action {
	if e.Type != EventKeyDown {
		return ActionNone
	}
	return b[e.Key]
}

// Input handles all input processing.
type Input struct {
	events   []Event
	dragging bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events. It returns true if the window was closed.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if i.handle(event) {
			quit = true
		}
	}
	return quit
}

// handle converts one SDL event and reports whether it asks to quit.
func (i *Input) handle(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		i.events = append(i.events, Event{Type: EventQuit})
		return true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			i.events = append(i.events, Event{
				Type:   EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			})
		}

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
			i.events = append(i.events, Event{Type: EventKeyDown, Key: e.Keysym.Sym})
		}

	case *sdl.MouseButtonEvent:
		if e.Button == sdl.BUTTON_LEFT {
			i.dragging = e.Type == sdl.MOUSEBUTTONDOWN
		}

	case *sdl.MouseMotionEvent:
		if i.dragging && (e.XRel != 0 || e.YRel != 0) {
			i.events = append(i.events, Event{
				Type: EventDrag,
				DX:   float32(e.XRel),
				DY:   float32(e.YRel),
			})
		}

	case *sdl.MouseWheelEvent:
		if e.Y != 0 {
			i.events = append(i.events, Event{Type: EventWheel, Wheel: float32(e.Y)})
		}
	}
	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Dragging reports whether the left button is held.
func (i *Input) Dragging() bool {
	return i.dragging
}
