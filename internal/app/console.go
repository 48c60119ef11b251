package app

import (
	"github.com/rs/zerolog"

	"github.com/dshills/simstorm/internal/input/router"
)

// Console is the in-game debug console surface. While open it owns the
// keyboard stream; the router translates raw keys into the semantic
// commands it accepts.
type Console struct {
	log     zerolog.Logger
	open    bool
	history []string
	cursor  int // history recall position; len(history) means "live line"
	scroll  int
}

// NewConsole creates a closed console.
func NewConsole(log zerolog.Logger) *Console {
	return &Console{log: log}
}

// Toggle opens or closes the console.
func (c *Console) Toggle() {
	c.open = !c.open
	c.log.Debug().Bool("open", c.open).Msg("console toggled")
}

// IsOpen reports whether the console currently owns keyboard input.
func (c *Console) IsOpen() bool { return c.open }

// Input applies a semantic console command.
func (c *Console) Input(cmd router.ConsoleCommand) {
	switch cmd {
	case router.ConsoleClearLine:
		c.cursor = len(c.history)
	case router.ConsoleExecuteLine:
		c.history = append(c.history, "")
		c.cursor = len(c.history)
	case router.ConsoleHistoryPrevious:
		if c.cursor > 0 {
			c.cursor--
		}
	case router.ConsoleHistoryNext:
		if c.cursor < len(c.history) {
			c.cursor++
		}
	case router.ConsoleScrollPrevious:
		c.scroll++
	case router.ConsoleScrollNext:
		if c.scroll > 0 {
			c.scroll--
		}
	}
	c.log.Debug().Stringer("command", cmd).Msg("console input")
}

// Chat is the multiplayer chat line editor. Like the console it is a
// modal keyboard owner, but with a smaller command vocabulary.
type Chat struct {
	log  zerolog.Logger
	open bool
	sent int
}

// NewChat creates a closed chat editor.
func NewChat(log zerolog.Logger) *Chat {
	return &Chat{log: log}
}

// Open shows the chat line editor.
func (c *Chat) Open() { c.open = true }

// IsOpen reports whether the chat editor currently owns keyboard input.
func (c *Chat) IsOpen() bool { return c.open }

// Input applies a semantic chat command.
func (c *Chat) Input(cmd router.ChatCommand) {
	switch cmd {
	case router.ChatClose:
		c.open = false
	case router.ChatSend:
		c.sent++
		c.open = false
	}
	c.log.Debug().Stringer("command", cmd).Msg("chat input")
}
