package event

import "strings"

// Modifier is the held-modifier bitmask derived from live keyboard state
// once per cycle. The ShiftZ and CopyZ bits double as the placement-assist
// modifiers: holding either alters object-placement height behavior and
// drives the virtual-floor visual aid.
type Modifier uint8

const (
	// ModNone indicates no modifiers held.
	ModNone Modifier = 0

	// ModShiftZ is set while Shift is held.
	ModShiftZ Modifier = 1 << 0

	// ModCopyZ is set while Control is held.
	ModCopyZ Modifier = 1 << 1

	// ModAlt is set while Alt is held.
	ModAlt Modifier = 1 << 2

	// ModGUI is set while the platform GUI key (Cmd) is held. Only derived
	// on the Apple platform family.
	ModGUI Modifier = 1 << 3
)

// ModPlacement is the mask of placement-assist modifiers.
const ModPlacement = ModShiftZ | ModCopyZ

// Has returns true if m contains any of the specified modifiers.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// String returns a human-readable representation like "Shift+Ctrl".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.Has(ModShiftZ) {
		parts = append(parts, "Shift")
	}
	if m.Has(ModCopyZ) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModGUI) {
		parts = append(parts, "GUI")
	}
	return strings.Join(parts, "+")
}

// ShortString returns a compact representation like "S-C".
func (m Modifier) ShortString() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.Has(ModShiftZ) {
		parts = append(parts, "S")
	}
	if m.Has(ModCopyZ) {
		parts = append(parts, "C")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "A")
	}
	if m.Has(ModGUI) {
		parts = append(parts, "G")
	}
	return strings.Join(parts, "-")
}

// modifierNameMap maps modifier names (uppercase) to Modifier values for
// chord parsing.
var modifierNameMap = map[string]Modifier{
	"SHIFT": ModShiftZ,
	"CTRL":  ModCopyZ,
	"ALT":   ModAlt,
	"GUI":   ModGUI,
	"CMD":   ModGUI,
}

// ModifierFromName returns the Modifier for a given name
// (case-insensitive). Returns ModNone if the name is not recognized.
func ModifierFromName(name string) Modifier {
	return modifierNameMap[strings.ToUpper(name)]
}

// HeldModifiers reports which physical modifier keys a keyboard-state
// collaborator currently sees held.
type HeldModifiers struct {
	Shift   bool
	Control bool
	Alt     bool
	GUI     bool
}
