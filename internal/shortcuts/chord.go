package shortcuts

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/simstorm/internal/input/event"
)

// Chord identifies the input combination that triggers a binding: a device
// kind, a modifier bitmask, and a device-dependent button code. Shortcuts
// fire on Down edges; hat motion only ever produces Down edges, so hats
// need no special casing.
//
// Chord strings use the configuration vocabulary:
//
//	"C"              keyboard C
//	"CTRL+SHIFT+Z"   keyboard Z with Ctrl and Shift held
//	"JOY 3"          joystick button 3
//	"JOY UP"         joystick hat pushed up
//	"MOUSE 2"        mouse button 2
type Chord struct {
	Device    event.DeviceKind
	Modifiers event.Modifier
	Button    int32
}

// ChordFor returns the chord an event would trigger, and false for events
// that cannot trigger one (Release edges). Letter chords are
// case-insensitive: lowercase key codes fold to their uppercase chord.
func ChordFor(ev event.Event) (Chord, bool) {
	if ev.Edge != event.EdgeDown {
		return Chord{}, false
	}
	button := ev.Button
	if ev.Device == event.DeviceKeyboard && button >= 'a' && button <= 'z' {
		button -= 'a' - 'A'
	}
	return Chord{Device: ev.Device, Modifiers: ev.Modifiers, Button: button}, true
}

// Matches reports whether the event triggers this chord.
func (c Chord) Matches(ev event.Event) bool {
	got, ok := ChordFor(ev)
	return ok && got == c
}

// String formats the chord in the configuration vocabulary.
func (c Chord) String() string {
	var parts []string
	if c.Modifiers.Has(event.ModShiftZ) {
		parts = append(parts, "SHIFT")
	}
	if c.Modifiers.Has(event.ModCopyZ) {
		parts = append(parts, "CTRL")
	}
	if c.Modifiers.Has(event.ModAlt) {
		parts = append(parts, "ALT")
	}
	if c.Modifiers.Has(event.ModGUI) {
		parts = append(parts, "GUI")
	}

	var button string
	switch c.Device {
	case event.DeviceKeyboard:
		button = event.Key(c.Button).String()
	case event.DeviceMouseButton:
		button = fmt.Sprintf("MOUSE %d", c.Button)
	case event.DeviceJoyButton:
		button = fmt.Sprintf("JOY %d", c.Button)
	case event.DeviceJoyHat:
		button = "JOY " + strings.ToUpper(event.HatPosition(c.Button).String())
	}
	parts = append(parts, button)

	return strings.Join(parts, "+")
}

// ParseChord parses a chord string. Unknown modifier names, key names, or
// device words are errors.
func ParseChord(s string) (Chord, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Chord{}, fmt.Errorf("empty chord")
	}

	parts := strings.Split(s, "+")
	var chord Chord
	for _, part := range parts[:len(parts)-1] {
		mod := event.ModifierFromName(strings.TrimSpace(part))
		if mod == event.ModNone {
			return Chord{}, fmt.Errorf("unknown modifier %q in chord %q", part, s)
		}
		chord.Modifiers = chord.Modifiers.With(mod)
	}

	button := strings.TrimSpace(parts[len(parts)-1])
	upper := strings.ToUpper(button)
	switch {
	case strings.HasPrefix(upper, "JOY "):
		arg := strings.TrimSpace(upper[len("JOY "):])
		if n, err := strconv.Atoi(arg); err == nil {
			chord.Device = event.DeviceJoyButton
			chord.Button = int32(n)
			return chord, nil
		}
		if hat := event.HatFromName(arg); hat != event.HatCentered {
			chord.Device = event.DeviceJoyHat
			chord.Button = int32(hat)
			return chord, nil
		}
		return Chord{}, fmt.Errorf("unknown joystick input %q in chord %q", arg, s)
	case strings.HasPrefix(upper, "MOUSE "):
		arg := strings.TrimSpace(upper[len("MOUSE "):])
		n, err := strconv.Atoi(arg)
		if err != nil {
			return Chord{}, fmt.Errorf("invalid mouse button %q in chord %q", arg, s)
		}
		chord.Device = event.DeviceMouseButton
		chord.Button = int32(n)
		return chord, nil
	default:
		key := event.KeyFromName(button)
		if key == event.KeyNone {
			return Chord{}, fmt.Errorf("unknown key %q in chord %q", button, s)
		}
		chord.Device = event.DeviceKeyboard
		chord.Button = int32(key)
		return chord, nil
	}
}
