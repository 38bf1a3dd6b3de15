package easel

import "fmt"

// EventKind discriminates Event.
type EventKind uint8

// Event kinds.
const (
	EventPointerDown EventKind = iota + 1
	EventPointerMove
	EventPointerUp
	EventKey
	EventWheel
	EventCommand
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventPointerDown:
		return "pointer-down"
	case EventPointerMove:
		return "pointer-move"
	case EventPointerUp:
		return "pointer-up"
	case EventKey:
		return "key"
	case EventWheel:
		return "wheel"
	case EventCommand:
		return "command"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// Event is one queued input. Pos is in screen coordinates.
type Event struct {
	Kind   EventKind
	Pos    Point
	Button Button
	Key    Key
	Wheel  int

	// Do runs for EventCommand. Toolbar actions such as undo or a tool
	// change travel this way so they stay ordered with pointer input.
	Do func(*Editor)
}

// PointerDownEvent returns a press at screen position p.
func PointerDownEvent(p Point, b Button) Event {
	return Event{Kind: EventPointerDown, Pos: p, Button: b}
}

// PointerMoveEvent returns a motion to screen position p.
func PointerMoveEvent(p Point) Event {
	return Event{Kind: EventPointerMove, Pos: p}
}

// PointerUpEvent returns a release of b.
func PointerUpEvent(b Button) Event {
	return Event{Kind: EventPointerUp, Button: b}
}

// KeyEvent returns a key press.
func KeyEvent(k Key) Event {
	return Event{Kind: EventKey, Key: k}
}

// WheelEvent returns a wheel notch; positive zooms in.
func WheelEvent(dir int) Event {
	return Event{Kind: EventWheel, Wheel: dir}
}

// CommandEvent wraps an editor action.
func CommandEvent(fn func(*Editor)) Event {
	return Event{Kind: EventCommand, Do: fn}
}

// Dispatch routes ev to the matching editor operation. Unknown kinds are
// ignored.
func (e *Editor) Dispatch(ev Event) {
	switch ev.Kind {
	case EventPointerDown:
		e.PointerDown(ev.Pos, ev.Button)
	case EventPointerMove:
		e.PointerMove(ev.Pos)
	case EventPointerUp:
		e.PointerUp(ev.Button)
	case EventKey:
		e.KeyPress(ev.Key)
	case EventWheel:
		e.Wheel(ev.Wheel)
	case EventCommand:
		if ev.Do != nil {
			ev.Do(e)
		}
	}
}
