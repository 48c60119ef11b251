package router

import (
	"testing"

	"github.com/dshills/simstorm/internal/input/event"
)

const toggleID = "interface.toggle_console"

type fakeConsole struct {
	open     bool
	commands []ConsoleCommand
}

func (c *fakeConsole) IsOpen() bool             { return c.open }
func (c *fakeConsole) Input(cmd ConsoleCommand) { c.commands = append(c.commands, cmd) }

type fakeChat struct {
	open     bool
	commands []ChatCommand
}

func (c *fakeChat) IsOpen() bool          { return c.open }
func (c *fakeChat) Input(cmd ChatCommand) { c.commands = append(c.commands, cmd) }

type fakeTextInput struct {
	active bool
	keys   []int32
}

func (ti *fakeTextInput) Active() bool     { return ti.active }
func (ti *fakeTextInput) Key(button int32) { ti.keys = append(ti.keys, button) }

type fakeDispatcher struct {
	dispatched []event.Event
	matchKey   event.Key // key that matches the reserved binding
	matched    []string
}

func (d *fakeDispatcher) Dispatch(ev event.Event) {
	d.dispatched = append(d.dispatched, ev)
}

func (d *fakeDispatcher) DispatchIfMatches(ev event.Event, id string) bool {
	if ev.Key() == d.matchKey && d.matchKey != event.KeyNone {
		d.matched = append(d.matched, id)
		return true
	}
	return false
}

type harness struct {
	console    *fakeConsole
	chat       *fakeChat
	textInput  *fakeTextInput
	dispatcher *fakeDispatcher
	widgetText bool
	router     *Router
}

func newHarness() *harness {
	h := &harness{
		console:    &fakeConsole{},
		chat:       &fakeChat{},
		textInput:  &fakeTextInput{},
		dispatcher: &fakeDispatcher{},
	}
	h.router = New(Config{
		Console:             h.console,
		Chat:                h.chat,
		TextIn:              h.textInput,
		Shortcut:            h.dispatcher,
		WidgetTextboxActive: func() bool { return h.widgetText },
		ConsoleToggleID:     toggleID,
	})
	return h
}

func keyEvent(key event.Key, edge event.Edge) event.Event {
	return event.Event{Device: event.DeviceKeyboard, Button: int32(key), Edge: edge}
}

// consumers returns how many contexts saw anything at all, for the
// exactly-one-consumer invariant.
func (h *harness) consumers() int {
	n := 0
	if len(h.console.commands) > 0 {
		n++
	}
	if len(h.chat.commands) > 0 {
		n++
	}
	if len(h.textInput.keys) > 0 {
		n++
	}
	if len(h.dispatcher.dispatched)+len(h.dispatcher.matched) > 0 {
		n++
	}
	return n
}

func TestConsoleOpenReservedBindingGoesToDispatcher(t *testing.T) {
	h := newHarness()
	h.console.open = true
	h.dispatcher.matchKey = event.Key('`')

	h.router.Route(keyEvent(event.Key('`'), event.EdgeDown))

	if len(h.dispatcher.matched) != 1 || h.dispatcher.matched[0] != toggleID {
		t.Fatalf("reserved binding should reach the dispatcher, matched=%v", h.dispatcher.matched)
	}
	if len(h.console.commands) != 0 {
		t.Errorf("console adapter must not see the reserved binding, got %v", h.console.commands)
	}
	if len(h.dispatcher.dispatched) != 0 {
		t.Errorf("general dispatch must not fire while console is open, got %v", h.dispatcher.dispatched)
	}
}

func TestConsoleOpenOtherKeysGoToConsoleAdapter(t *testing.T) {
	h := newHarness()
	h.console.open = true

	h.router.Route(keyEvent(event.KeyEnter, event.EdgeRelease))

	if len(h.console.commands) != 1 || h.console.commands[0] != ConsoleExecuteLine {
		t.Fatalf("console commands = %v, want [execute-line]", h.console.commands)
	}
	if len(h.dispatcher.dispatched) != 0 {
		t.Errorf("dispatcher must not see console-bound events, got %v", h.dispatcher.dispatched)
	}
	if h.consumers() != 1 {
		t.Errorf("exactly one consumer expected, got %d", h.consumers())
	}
}

func TestConsoleAdapterMapping(t *testing.T) {
	tests := []struct {
		key  event.Key
		edge event.Edge
		want ConsoleCommand
		ok   bool
	}{
		{event.KeyEscape, event.EdgeRelease, ConsoleClearLine, true},
		{event.KeyEnter, event.EdgeRelease, ConsoleExecuteLine, true},
		{event.KeyKPEnter, event.EdgeRelease, ConsoleExecuteLine, true},
		{event.KeyUp, event.EdgeRelease, ConsoleHistoryPrevious, true},
		{event.KeyDown, event.EdgeRelease, ConsoleHistoryNext, true},
		{event.KeyPageUp, event.EdgeRelease, ConsoleScrollPrevious, true},
		{event.KeyPageDown, event.EdgeRelease, ConsoleScrollNext, true},
		{event.KeyEscape, event.EdgeDown, ConsoleNone, false},
		{event.Key('x'), event.EdgeRelease, ConsoleNone, false},
	}

	for _, tt := range tests {
		got, ok := ConsoleCommandFor(keyEvent(tt.key, tt.edge))
		if got != tt.want || ok != tt.ok {
			t.Errorf("ConsoleCommandFor(%v/%v) = (%v, %v), want (%v, %v)",
				tt.key, tt.edge, got, ok, tt.want, tt.ok)
		}
	}
}

func TestChatOpenPriority(t *testing.T) {
	h := newHarness()
	h.chat.open = true

	h.router.Route(keyEvent(event.KeyEscape, event.EdgeRelease))
	h.router.Route(keyEvent(event.KeyEnter, event.EdgeRelease))
	h.router.Route(keyEvent(event.Key('x'), event.EdgeRelease))
	h.router.Route(keyEvent(event.KeyEnter, event.EdgeDown))

	want := []ChatCommand{ChatClose, ChatSend}
	if len(h.chat.commands) != len(want) {
		t.Fatalf("chat commands = %v, want %v", h.chat.commands, want)
	}
	for i, cmd := range want {
		if h.chat.commands[i] != cmd {
			t.Errorf("chat command %d = %v, want %v", i, h.chat.commands[i], cmd)
		}
	}
	if len(h.dispatcher.dispatched) != 0 {
		t.Errorf("dispatcher must not see chat-bound events, got %v", h.dispatcher.dispatched)
	}
}

func TestConsoleBeatsChat(t *testing.T) {
	h := newHarness()
	h.console.open = true
	h.chat.open = true

	h.router.Route(keyEvent(event.KeyEnter, event.EdgeRelease))

	if len(h.console.commands) != 1 {
		t.Error("console should claim the event when both console and chat are open")
	}
	if len(h.chat.commands) != 0 {
		t.Errorf("chat must not see the event, got %v", h.chat.commands)
	}
}

func TestModalTextInputClaimsKeyboardStream(t *testing.T) {
	h := newHarness()
	h.textInput.active = true

	h.router.Route(keyEvent(event.Key('k'), event.EdgeRelease))
	if len(h.textInput.keys) != 1 || h.textInput.keys[0] != int32(event.Key('k')) {
		t.Fatalf("text input keys = %v, want the released raw button code", h.textInput.keys)
	}

	// Down edges are swallowed: the surface still claims the stream but
	// receives nothing.
	h.router.Route(keyEvent(event.Key('k'), event.EdgeDown))
	if len(h.textInput.keys) != 1 {
		t.Errorf("down edge should be swallowed, keys = %v", h.textInput.keys)
	}
	if len(h.dispatcher.dispatched) != 0 {
		t.Errorf("dispatcher must not see swallowed events, got %v", h.dispatcher.dispatched)
	}
}

func TestWidgetTextboxSwallowsKeyboard(t *testing.T) {
	h := newHarness()
	h.widgetText = true

	h.router.Route(keyEvent(event.Key('q'), event.EdgeDown))
	h.router.Route(keyEvent(event.Key('q'), event.EdgeRelease))

	if h.consumers() != 0 {
		t.Errorf("widget textbox events should be swallowed with no action, consumers = %d", h.consumers())
	}
}

func TestFallthroughReachesDispatcherExactlyOnce(t *testing.T) {
	h := newHarness()

	events := []event.Event{
		keyEvent(event.Key('a'), event.EdgeDown),
		keyEvent(event.Key('a'), event.EdgeRelease),
		{Device: event.DeviceJoyButton, Button: 1, Edge: event.EdgeDown},
	}
	for _, ev := range events {
		h.router.Route(ev)
	}

	if len(h.dispatcher.dispatched) != len(events) {
		t.Fatalf("dispatched = %d events, want %d", len(h.dispatcher.dispatched), len(events))
	}
	for i, ev := range events {
		if h.dispatcher.dispatched[i] != ev {
			t.Errorf("dispatched[%d] = %+v, want %+v (order and payload preserved)",
				i, h.dispatcher.dispatched[i], ev)
		}
	}
}

func TestNonKeyboardEventsBypassModalContexts(t *testing.T) {
	h := newHarness()
	h.console.open = true
	h.chat.open = true
	h.textInput.active = true
	h.widgetText = true

	joy := event.Event{Device: event.DeviceJoyHat, Button: int32(event.HatUp), Edge: event.EdgeDown}
	mouse := event.Event{Device: event.DeviceMouseButton, Button: 1, Edge: event.EdgeDown}
	h.router.Route(joy)
	h.router.Route(mouse)

	if len(h.dispatcher.dispatched) != 2 {
		t.Fatalf("non-keyboard events must route to the dispatcher, got %v", h.dispatcher.dispatched)
	}
	if len(h.console.commands)+len(h.chat.commands)+len(h.textInput.keys) != 0 {
		t.Error("no modal context may see non-keyboard events")
	}
}

func TestModifiersPreservedThroughRouting(t *testing.T) {
	h := newHarness()

	ev := event.Event{
		Device:    event.DeviceKeyboard,
		Modifiers: event.ModShiftZ | event.ModAlt,
		Button:    int32(event.Key('s')),
		Edge:      event.EdgeDown,
	}
	h.router.Route(ev)

	if len(h.dispatcher.dispatched) != 1 || h.dispatcher.dispatched[0].Modifiers != ev.Modifiers {
		t.Errorf("modifiers must be preserved as captured, got %+v", h.dispatcher.dispatched)
	}
}
