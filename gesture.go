package easel

import "fmt"

// Gesture is the state of the pointer state machine.
type Gesture uint8

// Gesture states.
const (
	// GestureIdle waits for a press.
	GestureIdle Gesture = iota
	// GestureDrawing is a freehand stroke or shape drag in progress.
	GestureDrawing
	// GestureMoving drags the selected shape.
	GestureMoving
)

// String returns the gesture name.
func (g Gesture) String() string {
	switch g {
	case GestureIdle:
		return "idle"
	case GestureDrawing:
		return "drawing"
	case GestureMoving:
		return "moving"
	default:
		return fmt.Sprintf("Gesture(%d)", uint8(g))
	}
}

// Button identifies a pointer button. Values follow the common
// 1 = left, 2 = middle, 3 = right numbering.
type Button uint8

// Pointer buttons.
const (
	ButtonPrimary   Button = 1
	ButtonMiddle    Button = 2
	ButtonSecondary Button = 3
)

// String returns the button name.
func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonMiddle:
		return "middle"
	case ButtonSecondary:
		return "secondary"
	default:
		return fmt.Sprintf("Button(%d)", uint8(b))
	}
}

// Key identifies a keyboard key the editor reacts to.
type Key uint8

// Keys. Anything else is ignored.
const (
	KeyNone Key = iota
	KeyArrowUp
	KeyArrowDown
)
