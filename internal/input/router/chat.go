package router

import "github.com/dshills/simstorm/internal/input/event"

// ChatCommand is a semantic command understood by the chat line editor.
type ChatCommand uint8

const (
	// ChatNone indicates no command.
	ChatNone ChatCommand = iota
	// ChatClose closes the chat line editor.
	ChatClose
	// ChatSend sends the current chat line.
	ChatSend
)

// String returns a string representation of the command.
func (c ChatCommand) String() string {
	switch c {
	case ChatClose:
		return "close"
	case ChatSend:
		return "send"
	default:
		return "none"
	}
}

// ChatCommandFor maps a routed event to a chat command. Only Release-edge
// keyboard events map; everything else is ignored.
func ChatCommandFor(ev event.Event) (ChatCommand, bool) {
	if ev.Device != event.DeviceKeyboard || ev.Edge != event.EdgeRelease {
		return ChatNone, false
	}
	switch ev.Key() {
	case event.KeyEscape:
		return ChatClose, true
	case event.KeyEnter, event.KeyKPEnter:
		return ChatSend, true
	default:
		return ChatNone, false
	}
}
