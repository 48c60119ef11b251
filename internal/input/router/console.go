package router

import "github.com/dshills/simstorm/internal/input/event"

// ConsoleCommand is a semantic command understood by the debug console.
type ConsoleCommand uint8

const (
	// ConsoleNone indicates no command.
	ConsoleNone ConsoleCommand = iota
	// ConsoleClearLine clears the current input line.
	ConsoleClearLine
	// ConsoleExecuteLine executes the current input line.
	ConsoleExecuteLine
	// ConsoleHistoryPrevious recalls the previous history entry.
	ConsoleHistoryPrevious
	// ConsoleHistoryNext recalls the next history entry.
	ConsoleHistoryNext
	// ConsoleScrollPrevious scrolls the console output up.
	ConsoleScrollPrevious
	// ConsoleScrollNext scrolls the console output down.
	ConsoleScrollNext
)

// String returns a string representation of the command.
func (c ConsoleCommand) String() string {
	switch c {
	case ConsoleClearLine:
		return "clear-line"
	case ConsoleExecuteLine:
		return "execute-line"
	case ConsoleHistoryPrevious:
		return "history-previous"
	case ConsoleHistoryNext:
		return "history-next"
	case ConsoleScrollPrevious:
		return "scroll-previous"
	case ConsoleScrollNext:
		return "scroll-next"
	default:
		return "none"
	}
}

// ConsoleCommandFor maps a routed event to a console command. Only
// Release-edge keyboard events map; Down edges and unmapped keys produce
// no command.
func ConsoleCommandFor(ev event.Event) (ConsoleCommand, bool) {
	if ev.Device != event.DeviceKeyboard || ev.Edge != event.EdgeRelease {
		return ConsoleNone, false
	}
	switch ev.Key() {
	case event.KeyEscape:
		return ConsoleClearLine, true
	case event.KeyEnter, event.KeyKPEnter:
		return ConsoleExecuteLine, true
	case event.KeyUp:
		return ConsoleHistoryPrevious, true
	case event.KeyDown:
		return ConsoleHistoryNext, true
	case event.KeyPageUp:
		return ConsoleScrollPrevious, true
	case event.KeyPageDown:
		return ConsoleScrollNext, true
	default:
		return ConsoleNone, false
	}
}
