// Package app wires the input subsystem to the host terminal: it loads
// configuration, builds the platform source, registers the default
// shortcut bindings, and runs the fixed-tick dispatch loop.
package app

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/dshills/simstorm/internal/config"
	"github.com/dshills/simstorm/internal/input"
	"github.com/dshills/simstorm/internal/input/device"
	"github.com/dshills/simstorm/internal/input/event"
	"github.com/dshills/simstorm/internal/input/scroll"
	"github.com/dshills/simstorm/internal/platform"
	"github.com/dshills/simstorm/internal/shortcuts"
)

// ConsoleToggleID is the reserved binding that stays live while the
// console is open.
const ConsoleToggleID = "interface.toggle_console"

// tickInterval is the simulation tick rate: 25 ticks per second.
const tickInterval = 40 * time.Millisecond

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file. Empty means
	// defaults plus environment overrides.
	ConfigPath string

	// LogLevel overrides the configured log level when non-empty.
	LogLevel string

	// ShortcutPath is the path to the shortcut override file. Empty means
	// built-in bindings only.
	ShortcutPath string

	// Terminal substitutes a pre-built terminal source. Nil means the
	// process terminal.
	Terminal *platform.Terminal
}

// App owns every long-lived component and the main loop.
type App struct {
	log      zerolog.Logger
	cfg      config.Config
	term     *platform.Terminal
	devices  *device.Poller
	registry *shortcuts.Registry
	manager  *input.Manager

	console  *Console
	chat     *Chat
	textBox  *TextBox
	viewport *Viewport
	floor    *Floor

	quitOnce sync.Once
	done     chan struct{}
}

// New builds an application from the given options.
func New(opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log := NewLogger(cfg.LogLevel)

	term := opts.Terminal
	if term == nil {
		term, err = platform.NewTerminal()
		if err != nil {
			return nil, err
		}
	}

	a := &App{
		log:  log,
		cfg:  cfg,
		term: term,
		done: make(chan struct{}),
	}

	a.console = NewConsole(subLogger(log, "console"))
	a.chat = NewChat(subLogger(log, "chat"))
	a.textBox = &TextBox{}
	a.viewport = NewViewport()
	a.floor = &Floor{}

	deviceLog := subLogger(log, "devices")
	a.devices = device.NewPoller(platform.NullJoysticks{},
		device.WithInterval(cfg.DevicePollInterval),
		device.WithLogger(&deviceLog),
	)

	registryLog := subLogger(log, "shortcuts")
	a.registry = shortcuts.NewRegistry(shortcuts.WithLogger(&registryLog))
	if err := a.registerDefaultBindings(); err != nil {
		return nil, err
	}
	if opts.ShortcutPath != "" {
		applied, err := a.registry.LoadFile(opts.ShortcutPath)
		if err != nil {
			log.Warn().Err(err).Msg("shortcut overrides not loaded")
		} else {
			log.Info().Int("applied", applied).Msg("shortcut overrides loaded")
		}
	}

	inputLog := subLogger(log, "input")
	mcfg := input.DefaultConfig()
	mcfg.Keyboard = term
	mcfg.Devices = a.devices
	mcfg.Console = a.console
	mcfg.Chat = a.chat
	mcfg.TextIn = a.textBox
	mcfg.Shortcut = a.registry
	mcfg.WidgetTextboxActive = a.textBox.Active
	mcfg.ConsoleToggleID = ConsoleToggleID
	mcfg.VirtualFloor = a.floor
	mcfg.VirtualFloorEnabled = func() bool { return a.cfg.VirtualFloor != config.VirtualFloorOff }
	mcfg.Viewport = func() scroll.Viewport { return a.viewport }
	mcfg.InputState = func() scroll.State { return scroll.StateNormal }
	mcfg.EdgeScrolling = func() bool { return a.cfg.EdgeScrolling }
	mcfg.EdgeScrollSpeed = func() int32 { return a.cfg.EdgeScrollSpeed }
	mcfg.Pointer = term
	mcfg.Logger = &inputLog
	a.manager = input.New(mcfg)

	return a, nil
}

// registerDefaultBindings installs the built-in shortcut set.
func (a *App) registerDefaultBindings() error {
	bindings := []struct {
		id      string
		chord   string
		handler shortcuts.Handler
	}{
		{ConsoleToggleID, "`", func(event.Event) { a.console.Toggle() }},
		{"interface.open_chat", "C", func(event.Event) { a.chat.Open() }},
		{"interface.quit", "CTRL+Q", func(event.Event) { a.Quit() }},
		{"view.scroll_up", "UP", func(event.Event) { a.manager.AddViewportScroll(0, -a.cfg.EdgeScrollSpeed) }},
		{"view.scroll_down", "DOWN", func(event.Event) { a.manager.AddViewportScroll(0, a.cfg.EdgeScrollSpeed) }},
		{"view.scroll_left", "LEFT", func(event.Event) { a.manager.AddViewportScroll(-a.cfg.EdgeScrollSpeed, 0) }},
		{"view.scroll_right", "RIGHT", func(event.Event) { a.manager.AddViewportScroll(a.cfg.EdgeScrollSpeed, 0) }},
	}

	for _, b := range bindings {
		if err := a.registry.Bind(b.id, b.chord, b.handler); err != nil {
			return err
		}
	}
	return nil
}

// Run takes over the terminal and drives the dispatch loop until Quit.
func (a *App) Run() error {
	if err := a.term.Init(); err != nil {
		return err
	}
	defer a.term.Shutdown()

	a.log.Info().Msg("input loop started")

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-a.done:
			a.log.Info().Msg("input loop stopped")
			return nil
		case <-ticker.C:
			a.step()
		}
	}
}

// step runs one simulation tick: collect raw terminal input, enqueue it,
// and run the dispatch cycle.
func (a *App) step() {
	for _, raw := range a.term.Collect() {
		a.manager.QueueRaw(raw)
	}
	a.manager.Process()
}

// Quit stops the Run loop. Safe to call from any goroutine, repeatedly.
func (a *App) Quit() {
	a.quitOnce.Do(func() { close(a.done) })
}

// Shutdown releases everything the app holds besides the terminal, which
// Run releases itself.
func (a *App) Shutdown() {
	a.Quit()
	a.registry.Close()
	a.devices.Close()
}
