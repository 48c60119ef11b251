package input

import (
	"os"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/dshills/simstorm/internal/input/device"
	"github.com/dshills/simstorm/internal/input/event"
	"github.com/dshills/simstorm/internal/input/queue"
	"github.com/dshills/simstorm/internal/input/router"
	"github.com/dshills/simstorm/internal/input/scroll"
)

var defaultLogger = zerolog.New(os.Stderr).With().Str("subsystem", "input").Logger()

// KeyboardState samples the live keyboard modifier state. This is a direct
// state query, not an event-sourced value: the tracker reads it once per
// cycle and event creation reads it at enqueue time.
type KeyboardState interface {
	ModifiersHeld() event.HeldModifiers
}

// VirtualFloor is the placement-assist visual collaborator.
type VirtualFloor interface {
	Enable()
	Disable()
}

// Config supplies the manager's collaborators. Required: Keyboard.
// Everything else is optional; absent collaborators degrade to no-ops.
type Config struct {
	// Keyboard samples live modifier state.
	Keyboard KeyboardState

	// Devices is the joystick poller, checked once per cycle.
	Devices *device.Poller

	// Routing collaborators.
	Console             router.Console
	Chat                router.Chat
	TextIn              router.TextInput
	Shortcut            router.Dispatcher
	WidgetTextboxActive func() bool
	ConsoleToggleID     string

	// VirtualFloor is shown while a placement modifier is held, but only
	// when VirtualFloorEnabled reports the feature configured on. When it
	// reports off, no show/hide call is made at all.
	VirtualFloor        VirtualFloor
	VirtualFloorEnabled func() bool

	// Scroll collaborators.
	Viewport        func() scroll.Viewport
	TitleDemoActive func() bool
	InputState      func() scroll.State
	EdgeScrolling   func() bool
	EdgeScrollSpeed func() int32
	Pointer         scroll.Pointer

	// GUIPlatform enables deriving the GUI modifier bit. DefaultConfig
	// sets it on the Apple platform family only.
	GUIPlatform bool

	Logger *zerolog.Logger
}

// DefaultConfig returns a configuration with platform defaults applied.
func DefaultConfig() Config {
	return Config{
		GUIPlatform: runtime.GOOS == "darwin",
	}
}

// Manager owns the input dispatch cycle and all of its derived state: the
// event queue, the held-modifier bitmask, and the shortcut scroll
// accumulator. All fields are mutated only by the manager; other
// subsystems read through the accessors. The whole subsystem is
// single-threaded and run-to-completion: one Process call per simulation
// frame, with no step interleaving across cycles.
type Manager struct {
	cfg    Config
	queue  *queue.Queue
	router *router.Router
	scroll *scroll.Controller
	log    *zerolog.Logger

	modifiers        event.Modifier
	scrollX, scrollY int32
}

// New creates a manager from the given configuration.
func New(cfg Config) *Manager {
	m := &Manager{
		cfg:   cfg,
		queue: queue.New(),
		log:   cfg.Logger,
	}
	if m.log == nil {
		m.log = &defaultLogger
	}

	m.router = router.New(router.Config{
		Console:             cfg.Console,
		Chat:                cfg.Chat,
		TextIn:              cfg.TextIn,
		Shortcut:            cfg.Shortcut,
		WidgetTextboxActive: cfg.WidgetTextboxActive,
		ConsoleToggleID:     cfg.ConsoleToggleID,
		Logger:              m.log,
	})

	m.scroll = scroll.NewController(scroll.Hooks{
		Viewport: cfg.Viewport,
		ConsoleOpen: func() bool {
			return cfg.Console != nil && cfg.Console.IsOpen()
		},
		TitleDemoActive: cfg.TitleDemoActive,
		InputState:      cfg.InputState,
		Modifiers:       m.Modifiers,
		EdgeScrolling:   cfg.EdgeScrolling,
		EdgeScrollSpeed: cfg.EdgeScrollSpeed,
		Pointer:         cfg.Pointer,
	})

	return m
}

// Process runs one dispatch cycle: device refresh check, modifier refresh,
// a full queue drain through the router, then the viewport scroll step.
// The queue is always fully drained before the scroll step, so stale
// events never leak across cycles.
func (m *Manager) Process() {
	if m.cfg.Devices != nil {
		m.cfg.Devices.Check()
	}
	m.refreshModifiers()

	for _, ev := range m.queue.Drain() {
		m.router.Route(ev)
	}

	dx, dy := m.scrollX, m.scrollY
	m.scrollX, m.scrollY = 0, 0
	m.scroll.Apply(dx, dy)
}

// QueueRaw translates a raw platform notification and enqueues the
// resulting event, stamping it with the modifiers held right now.
// Unrecognized notifications are silently dropped.
func (m *Manager) QueueRaw(raw event.Raw) {
	ev, ok := event.Translate(raw, m.sampleModifiers())
	if !ok {
		return
	}
	m.queue.Push(ev)
}

// Queue enqueues a pre-built event as-is.
func (m *Manager) Queue(ev event.Event) {
	m.queue.Push(ev)
}

// AddViewportScroll accumulates shortcut-driven scroll for the current
// cycle. The accumulator is consumed and reset by the scroll step.
func (m *Manager) AddViewportScroll(dx, dy int32) {
	m.scrollX += dx
	m.scrollY += dy
}

// Modifiers returns the held-modifier bitmask derived this cycle.
func (m *Manager) Modifiers() event.Modifier {
	return m.modifiers
}

// Pending returns the number of queued, not yet routed events.
func (m *Manager) Pending() int {
	return m.queue.Len()
}

// refreshModifiers recomputes the held-modifier bitmask from live keyboard
// state, overwriting last cycle's value, and toggles the virtual floor
// when the feature is configured on.
func (m *Manager) refreshModifiers() {
	m.modifiers = m.sampleModifiers()

	if m.cfg.VirtualFloor == nil || m.cfg.VirtualFloorEnabled == nil || !m.cfg.VirtualFloorEnabled() {
		return
	}
	if m.modifiers.Has(event.ModPlacement) {
		m.cfg.VirtualFloor.Enable()
	} else {
		m.cfg.VirtualFloor.Disable()
	}
}

// sampleModifiers derives the modifier bitmask from a live keyboard
// sample. Unlisted modifiers are ignored; the GUI bit is derived only on
// the configured platform family.
func (m *Manager) sampleModifiers() event.Modifier {
	if m.cfg.Keyboard == nil {
		return event.ModNone
	}
	held := m.cfg.Keyboard.ModifiersHeld()

	mods := event.ModNone
	if held.Shift {
		mods = mods.With(event.ModShiftZ)
	}
	if held.Control {
		mods = mods.With(event.ModCopyZ)
	}
	if held.Alt {
		mods = mods.With(event.ModAlt)
	}
	if m.cfg.GUIPlatform && held.GUI {
		mods = mods.With(event.ModGUI)
	}
	return mods
}
