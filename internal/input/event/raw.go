package event

import "strings"

// HatPosition is a joystick hat direction mask. Diagonals combine the four
// base directions; HatCentered is the neutral position.
type HatPosition uint8

const (
	// HatCentered is the neutral hat position. It never produces an event.
	HatCentered HatPosition = 0
	// HatUp is the hat pushed up.
	HatUp HatPosition = 1 << 0
	// HatRight is the hat pushed right.
	HatRight HatPosition = 1 << 1
	// HatDown is the hat pushed down.
	HatDown HatPosition = 1 << 2
	// HatLeft is the hat pushed left.
	HatLeft HatPosition = 1 << 3
)

// hatNames maps base hat directions to chord vocabulary names.
var hatNames = map[HatPosition]string{
	HatUp:    "UP",
	HatRight: "RIGHT",
	HatDown:  "DOWN",
	HatLeft:  "LEFT",
}

// String returns a representation like "up" or "up-right".
func (h HatPosition) String() string {
	if h == HatCentered {
		return "centered"
	}
	var parts []string
	for _, dir := range []HatPosition{HatUp, HatRight, HatDown, HatLeft} {
		if h&dir != 0 {
			parts = append(parts, strings.ToLower(hatNames[dir]))
		}
	}
	return strings.Join(parts, "-")
}

// HatFromName returns the base hat direction for a name
// (case-insensitive). Returns HatCentered if the name is not recognized.
func HatFromName(name string) HatPosition {
	upper := strings.ToUpper(name)
	for dir, n := range hatNames {
		if n == upper {
			return dir
		}
	}
	return HatCentered
}

// Raw is the union of platform notifications the subsystem understands.
// It is a sealed tagged variant: only the Raw* types in this package
// implement it.
type Raw interface {
	isRaw()
}

// RawKey is a keyboard key press or release.
type RawKey struct {
	Key     Key
	Pressed bool
}

// RawMouseButton is a mouse button press or release.
type RawMouseButton struct {
	Button  int32
	Pressed bool
}

// RawJoyHat is a joystick hat position report.
type RawJoyHat struct {
	Value HatPosition
}

// RawJoyButton is a joystick button press or release.
type RawJoyButton struct {
	Button  int32
	Pressed bool
}

func (RawKey) isRaw()         {}
func (RawMouseButton) isRaw() {}
func (RawJoyHat) isRaw()      {}
func (RawJoyButton) isRaw()   {}

// Translate converts a raw platform notification into at most one Event,
// stamping it with the given held-modifier bitmask. It returns false when
// the notification produces no event: a centered hat report, or a raw kind
// this package does not recognize. No release event exists for hats; every
// non-centered hat report is a Down edge carrying the raw direction mask.
func Translate(raw Raw, mods Modifier) (Event, bool) {
	switch r := raw.(type) {
	case RawKey:
		return Event{
			Device:    DeviceKeyboard,
			Modifiers: mods,
			Button:    int32(r.Key),
			Edge:      edgeFor(r.Pressed),
		}, true
	case RawMouseButton:
		return Event{
			Device:    DeviceMouseButton,
			Modifiers: mods,
			Button:    r.Button,
			Edge:      edgeFor(r.Pressed),
		}, true
	case RawJoyHat:
		if r.Value == HatCentered {
			return Event{}, false
		}
		return Event{
			Device:    DeviceJoyHat,
			Modifiers: mods,
			Button:    int32(r.Value),
			Edge:      EdgeDown,
		}, true
	case RawJoyButton:
		return Event{
			Device:    DeviceJoyButton,
			Modifiers: mods,
			Button:    r.Button,
			Edge:      edgeFor(r.Pressed),
		}, true
	default:
		return Event{}, false
	}
}

func edgeFor(pressed bool) Edge {
	if pressed {
		return EdgeDown
	}
	return EdgeRelease
}
