// Package platform adapts the host terminal into the input subsystem's
// device surface. The tcell screen is the keyboard and mouse source; the
// joystick backend is a stub since terminals expose no controllers.
package platform

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/simstorm/internal/input/event"
)

// Terminal wraps a tcell screen. It collects raw input events without
// blocking, tracks held modifier and mouse button state, and remembers the
// last cursor position for edge scrolling.
//
// Terminals report completed keystrokes, not key transitions, so Collect
// synthesizes a press/release pair for each key event. Release-driven
// consumers (the console and chat adapters) see the edge they expect.
type Terminal struct {
	mu      sync.Mutex
	screen  tcell.Screen
	held    event.HeldModifiers
	buttons tcell.ButtonMask
	cursorX int
	cursorY int
}

// NewTerminal creates a terminal source on the default tcell screen.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen creates a terminal source on an existing screen.
// Used with tcell's SimulationScreen in tests.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Init takes over the terminal and enables mouse reporting.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	t.screen.EnableMouse()
	return nil
}

// Shutdown restores the terminal.
func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

// Collect drains every pending terminal event and returns the raw input
// events they translate to, in arrival order. It never blocks: with no
// pending events it returns nil immediately.
func (t *Terminal) Collect() []event.Raw {
	t.mu.Lock()
	defer t.mu.Unlock()

	var out []event.Raw
	for t.screen.HasPendingEvent() {
		ev := t.screen.PollEvent()
		if ev == nil {
			break
		}
		out = t.translateLocked(ev, out)
	}
	return out
}

// translateLocked appends the raw events for one tcell event.
func (t *Terminal) translateLocked(ev tcell.Event, out []event.Raw) []event.Raw {
	switch e := ev.(type) {
	case *tcell.EventKey:
		t.held = heldFromMask(e.Modifiers())
		key := keyFor(e)
		if key == event.KeyNone {
			return out
		}
		return append(out,
			event.RawKey{Key: key, Pressed: true},
			event.RawKey{Key: key, Pressed: false},
		)

	case *tcell.EventMouse:
		t.held = heldFromMask(e.Modifiers())
		t.cursorX, t.cursorY = e.Position()

		prev := t.buttons
		t.buttons = e.Buttons() & buttonBits
		for i, bit := range []tcell.ButtonMask{tcell.Button1, tcell.Button2, tcell.Button3} {
			was := prev&bit != 0
			now := t.buttons&bit != 0
			if was != now {
				out = append(out, event.RawMouseButton{Button: int32(i + 1), Pressed: now})
			}
		}
		return out

	default:
		return out
	}
}

// buttonBits is the subset of the tcell button mask Collect tracks.
const buttonBits = tcell.Button1 | tcell.Button2 | tcell.Button3

// ModifiersHeld returns the modifier state as of the most recent terminal
// event.
func (t *Terminal) ModifiersHeld() event.HeldModifiers {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.held
}

// CursorPosition returns the last reported mouse position.
func (t *Terminal) CursorPosition() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cursorX, t.cursorY
}

// ScreenSize returns the terminal dimensions.
func (t *Terminal) ScreenSize() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.screen.Size()
}

// heldFromMask converts a tcell modifier mask.
func heldFromMask(m tcell.ModMask) event.HeldModifiers {
	return event.HeldModifiers{
		Shift:   m&tcell.ModShift != 0,
		Control: m&tcell.ModCtrl != 0,
		Alt:     m&tcell.ModAlt != 0,
		GUI:     m&tcell.ModMeta != 0,
	}
}

// keyFor maps a tcell key event to a normalized key code.
func keyFor(e *tcell.EventKey) event.Key {
	switch e.Key() {
	case tcell.KeyRune:
		return event.Key(e.Rune())
	case tcell.KeyEnter:
		return event.KeyEnter
	case tcell.KeyEscape:
		return event.KeyEscape
	case tcell.KeyTab:
		return event.KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return event.KeyBackspace
	case tcell.KeyDelete:
		return event.KeyDelete
	case tcell.KeyUp:
		return event.KeyUp
	case tcell.KeyDown:
		return event.KeyDown
	case tcell.KeyLeft:
		return event.KeyLeft
	case tcell.KeyRight:
		return event.KeyRight
	case tcell.KeyHome:
		return event.KeyHome
	case tcell.KeyEnd:
		return event.KeyEnd
	case tcell.KeyPgUp:
		return event.KeyPageUp
	case tcell.KeyPgDn:
		return event.KeyPageDown
	case tcell.KeyInsert:
		return event.KeyInsert
	case tcell.KeyPause:
		return event.KeyPause
	case tcell.KeyF1:
		return event.KeyF1
	case tcell.KeyF2:
		return event.KeyF2
	case tcell.KeyF3:
		return event.KeyF3
	case tcell.KeyF4:
		return event.KeyF4
	case tcell.KeyF5:
		return event.KeyF5
	case tcell.KeyF6:
		return event.KeyF6
	case tcell.KeyF7:
		return event.KeyF7
	case tcell.KeyF8:
		return event.KeyF8
	case tcell.KeyF9:
		return event.KeyF9
	case tcell.KeyF10:
		return event.KeyF10
	case tcell.KeyF11:
		return event.KeyF11
	case tcell.KeyF12:
		return event.KeyF12
	default:
		// Remaining C0 control codes are Ctrl+letter combinations; the
		// Ctrl modifier itself arrives in the event's modifier mask.
		if k := e.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			return event.Key('A' + int32(k-tcell.KeyCtrlA))
		}
		return event.KeyNone
	}
}
