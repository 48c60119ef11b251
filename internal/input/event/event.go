package event

import "fmt"

// DeviceKind classifies the origin of an input event. The router uses it to
// decide routing eligibility: only keyboard events are offered to the
// console, chat, and text-input contexts.
type DeviceKind uint8

const (
	// DeviceKeyboard indicates a keyboard key event.
	DeviceKeyboard DeviceKind = iota
	// DeviceMouseButton indicates a mouse button event.
	DeviceMouseButton
	// DeviceJoyHat indicates a joystick hat motion event.
	DeviceJoyHat
	// DeviceJoyButton indicates a joystick button event.
	DeviceJoyButton
)

// String returns a string representation of the device kind.
func (d DeviceKind) String() string {
	switch d {
	case DeviceKeyboard:
		return "keyboard"
	case DeviceMouseButton:
		return "mouse"
	case DeviceJoyHat:
		return "joyhat"
	case DeviceJoyButton:
		return "joybutton"
	default:
		return "unknown"
	}
}

// Edge is the direction of a discrete input transition.
type Edge uint8

const (
	// EdgeDown indicates a press or activation.
	EdgeDown Edge = iota
	// EdgeRelease indicates a release or deactivation.
	EdgeRelease
)

// String returns a string representation of the edge.
func (e Edge) String() string {
	if e == EdgeRelease {
		return "release"
	}
	return "down"
}

// Event is one normalized input occurrence. It is immutable once
// constructed and carries everything a consumer needs: the modifier
// bitmask is captured at creation time, never re-sampled.
//
// Button semantics depend on Device: a key code for keyboard events, a
// button index for mouse and joystick buttons, or a hat direction mask for
// hat motion.
type Event struct {
	// Device classifies the event's origin.
	Device DeviceKind

	// Modifiers is the held-modifier bitmask at event creation time.
	Modifiers Modifier

	// Button is the device-dependent code.
	Button int32

	// Edge is the transition direction. Hat motion is always EdgeDown.
	Edge Edge
}

// IsKeyboard returns true for keyboard-origin events.
func (e Event) IsKeyboard() bool {
	return e.Device == DeviceKeyboard
}

// Key returns the event's button as a key code. Only meaningful for
// keyboard events.
func (e Event) Key() Key {
	return Key(e.Button)
}

// String returns a compact representation for logging, like
// "keyboard/down Escape" or "joyhat/down up".
func (e Event) String() string {
	var button string
	switch e.Device {
	case DeviceKeyboard:
		button = e.Key().String()
	case DeviceJoyHat:
		button = HatPosition(e.Button).String()
	default:
		button = fmt.Sprintf("%d", e.Button)
	}
	if e.Modifiers != ModNone {
		return fmt.Sprintf("%s/%s %s+%s", e.Device, e.Edge, e.Modifiers.ShortString(), button)
	}
	return fmt.Sprintf("%s/%s %s", e.Device, e.Edge, button)
}
