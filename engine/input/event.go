// Package input defines the window-agnostic input events consumed by the interaction layer and the bounded queue
// that carries them from the window callbacks to the once-per-tick input phase.
package input

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-orbit/common"
)

// EventType identifies the kind of an Event.
type EventType uint8

const (
	EventButtonPress EventType = iota + 1
	EventButtonRelease
	EventCursorMove
	EventScroll
	EventResize
	EventKey
)

func (t EventType) String() string {
	switch t {
	case EventButtonPress:
		return "ButtonPress"
	case EventButtonRelease:
		return "ButtonRelease"
	case EventCursorMove:
		return "CursorMove"
	case EventScroll:
		return "Scroll"
	case EventResize:
		return "Resize"
	case EventKey:
		return "Key"
	default:
		return fmt.Sprintf("EventType(%d)", uint8(t))
	}
}

// Button identifies a mouse button. Values match GLFW.
type Button int

const (
	ButtonLeft   Button = common.MouseButtonLeft
	ButtonRight  Button = common.MouseButtonRight
	ButtonMiddle Button = common.MouseButtonMiddle
)

// Modifier is a bit set of held modifier keys. Values match GLFW.
type Modifier uint32

const (
	ModShift   Modifier = common.ModShift
	ModControl Modifier = common.ModControl
	ModAlt     Modifier = common.ModAlt
	ModSuper   Modifier = common.ModSuper
)

// Has reports whether every flag in f is set.
func (m Modifier) Has(f Modifier) bool {
	return m&f == f
}

// Event is one input occurrence. Only the fields relevant to Type are meaningful.
// Cursor positions are in pixels with the origin at the top-left of the window and y growing downward.
type Event struct {
	Type EventType

	// Button is set for EventButtonPress and EventButtonRelease.
	Button Button
	// Mods holds the modifiers held when the event occurred.
	Mods Modifier

	// X, Y are the cursor position for button and cursor events.
	X, Y float32

	// Scroll is the signed wheel amount for EventScroll; positive is away from the user.
	Scroll float32

	// Width, Height are the new framebuffer size for EventResize.
	Width, Height int

	// Key is the GLFW key code for EventKey.
	Key int
}

// ButtonPress builds an EventButtonPress.
//
// Parameters:
//   - b: the pressed button
//   - mods: held modifiers
//   - x, y: cursor position
//
// Returns:
//   - Event: the event
func ButtonPress(b Button, mods Modifier, x, y float32) Event {
	return Event{Type: EventButtonPress, Button: b, Mods: mods, X: x, Y: y}
}

// ButtonRelease builds an EventButtonRelease.
//
// Parameters:
//   - b: the released button
//   - mods: held modifiers
//   - x, y: cursor position
//
// Returns:
//   - Event: the event
func ButtonRelease(b Button, mods Modifier, x, y float32) Event {
	return Event{Type: EventButtonRelease, Button: b, Mods: mods, X: x, Y: y}
}

// CursorMove builds an EventCursorMove.
//
// Parameters:
//   - mods: held modifiers
//   - x, y: cursor position
//
// Returns:
//   - Event: the event
func CursorMove(mods Modifier, x, y float32) Event {
	return Event{Type: EventCursorMove, Mods: mods, X: x, Y: y}
}

// Scroll builds an EventScroll.
//
// Parameters:
//   - mods: held modifiers
//   - amount: signed wheel amount
//
// Returns:
//   - Event: the event
func Scroll(mods Modifier, amount float32) Event {
	return Event{Type: EventScroll, Mods: mods, Scroll: amount}
}

// Resize builds an EventResize.
//
// Parameters:
//   - width, height: the new size in pixels
//
// Returns:
//   - Event: the event
func Resize(width, height int) Event {
	return Event{Type: EventResize, Width: width, Height: height}
}

// Key builds an EventKey for a key press.
//
// Parameters:
//   - key: the GLFW key code
//   - mods: held modifiers
//
// Returns:
//   - Event: the event
func Key(key int, mods Modifier) Event {
	return Event{Type: EventKey, Key: key, Mods: mods}
}
