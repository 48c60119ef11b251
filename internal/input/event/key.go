package event

import (
	"fmt"
	"strings"
)

// Key is a normalized key code for keyboard-origin events. Printable keys
// use their ASCII value; special keys occupy a separate range above the
// printable block.
type Key int32

// Printable and control keys (ASCII values).
const (
	KeyNone      Key = 0
	KeyBackspace Key = 8
	KeyTab       Key = 9
	KeyEnter     Key = 13
	KeyEscape    Key = 27
	KeySpace     Key = 32
	KeyDelete    Key = 127
)

// Special keys, outside the printable range.
const (
	KeyUp Key = iota + 0x10000
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyKPEnter
	KeyPause
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// keyNames maps special and control keys to their canonical names. The
// names double as the keyboard vocabulary of the shortcut chord format.
var keyNames = map[Key]string{
	KeyBackspace: "BACKSPACE",
	KeyTab:       "TAB",
	KeyEnter:     "RETURN",
	KeyEscape:    "ESCAPE",
	KeySpace:     "SPACE",
	KeyDelete:    "DELETE",
	KeyUp:        "UP",
	KeyDown:      "DOWN",
	KeyLeft:      "LEFT",
	KeyRight:     "RIGHT",
	KeyHome:      "HOME",
	KeyEnd:       "END",
	KeyPageUp:    "PAGEUP",
	KeyPageDown:  "PAGEDOWN",
	KeyInsert:    "INSERT",
	KeyKPEnter:   "KPENTER",
	KeyPause:     "PAUSE",
	KeyF1:        "F1",
	KeyF2:        "F2",
	KeyF3:        "F3",
	KeyF4:        "F4",
	KeyF5:        "F5",
	KeyF6:        "F6",
	KeyF7:        "F7",
	KeyF8:        "F8",
	KeyF9:        "F9",
	KeyF10:       "F10",
	KeyF11:       "F11",
	KeyF12:       "F12",
}

// keysByName is the reverse of keyNames, built once at init.
var keysByName = func() map[string]Key {
	m := make(map[string]Key, len(keyNames))
	for k, name := range keyNames {
		m[name] = k
	}
	return m
}()

// String returns the canonical name for the key. Printable keys return
// their character.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k > KeySpace && k < KeyDelete {
		return string(rune(k))
	}
	return fmt.Sprintf("Key(%d)", int32(k))
}

// KeyFromName returns the key for a canonical name (case-insensitive).
// Single printable characters map to their ASCII code, letters uppercased.
// Returns KeyNone if the name is not recognized.
func KeyFromName(name string) Key {
	upper := strings.ToUpper(name)
	if k, ok := keysByName[upper]; ok {
		return k
	}
	if len(upper) == 1 {
		r := rune(upper[0])
		if r > rune(KeySpace) && r < rune(KeyDelete) {
			return Key(r)
		}
	}
	return KeyNone
}
