// Package router decides the single consuming context for each dequeued
// input event and forwards it there.
//
// The priority order among contexts is fixed: console, chat, modal text
// input, widget textbox, then the global shortcut dispatcher. The routes
// are held as an explicit ordered list of predicate/handler pairs
// evaluated top to bottom with first-match-wins semantics, so the ordering
// stays auditable and each route is independently testable. Exactly one of
// the handlers consumes a given event; the final route claims
// unconditionally, so no event ever goes unhandled.
package router

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/dshills/simstorm/internal/input/event"
)

var defaultLogger = zerolog.New(os.Stderr).With().Str("subsystem", "router").Logger()

// Console is the debug console collaborator.
type Console interface {
	IsOpen() bool
	Input(ConsoleCommand)
}

// Chat is the chat line-editor collaborator.
type Chat interface {
	IsOpen() bool
	Input(ChatCommand)
}

// TextInput is the modal text-input surface lookup. While a surface is
// active it claims the entire keyboard stream regardless of edge.
type TextInput interface {
	Active() bool
	Key(button int32)
}

// Dispatcher is the global shortcut collaborator. The router delivers
// events in strict arrival order, each exactly once, with modifiers and
// device kind preserved as captured at event creation.
type Dispatcher interface {
	Dispatch(ev event.Event)
	// DispatchIfMatches fires only the binding with the given id, and
	// reports whether the event matched it.
	DispatchIfMatches(ev event.Event, id string) bool
}

// Config supplies the router's collaborators. Nil collaborators are
// treated as absent: a nil Console reads as closed, a nil TextInput as
// inactive, and so on.
type Config struct {
	Console  Console
	Chat     Chat
	TextIn   TextInput
	Shortcut Dispatcher

	// WidgetTextboxActive is the lighter-weight modal lock not tied to a
	// specific surface. Keyboard events are swallowed while it is set.
	WidgetTextboxActive func() bool

	// ConsoleToggleID is the reserved shortcut binding that stays live
	// while the console is open.
	ConsoleToggleID string

	Logger *zerolog.Logger
}

// route is one predicate/handler pair in the priority chain.
type route struct {
	name   string
	claims func(ev event.Event) bool
	handle func(ev event.Event)
}

// Router forwards each event to exactly one consuming context.
type Router struct {
	cfg    Config
	routes []route
	log    *zerolog.Logger
}

// New creates a router with the fixed context priority order.
func New(cfg Config) *Router {
	r := &Router{cfg: cfg, log: cfg.Logger}
	if r.log == nil {
		r.log = &defaultLogger
	}
	r.routes = []route{
		{
			name:   "console",
			claims: func(ev event.Event) bool { return ev.IsKeyboard() && cfg.Console != nil && cfg.Console.IsOpen() },
			handle: r.routeConsole,
		},
		{
			name:   "chat",
			claims: func(ev event.Event) bool { return ev.IsKeyboard() && cfg.Chat != nil && cfg.Chat.IsOpen() },
			handle: r.routeChat,
		},
		{
			name:   "text-input",
			claims: func(ev event.Event) bool { return ev.IsKeyboard() && cfg.TextIn != nil && cfg.TextIn.Active() },
			handle: r.routeTextInput,
		},
		{
			name:   "widget-textbox",
			claims: func(ev event.Event) bool {
				return ev.IsKeyboard() && cfg.WidgetTextboxActive != nil && cfg.WidgetTextboxActive()
			},
			handle: func(event.Event) {}, // swallowed
		},
		{
			name:   "shortcut",
			claims: func(event.Event) bool { return true },
			handle: r.routeShortcut,
		},
	}
	return r
}

// Route forwards the event to the first context that claims it.
func (r *Router) Route(ev event.Event) {
	for _, rt := range r.routes {
		if rt.claims(ev) {
			r.log.Trace().Stringer("event", ev).Str("route", rt.name).Msg("routed")
			rt.handle(ev)
			return
		}
	}
}

// routeConsole offers the event to the reserved console-toggle binding
// first; everything else goes to the console adapter. No other consumer
// sees the event.
func (r *Router) routeConsole(ev event.Event) {
	if r.cfg.Shortcut != nil && r.cfg.Shortcut.DispatchIfMatches(ev, r.cfg.ConsoleToggleID) {
		return
	}
	if cmd, ok := ConsoleCommandFor(ev); ok {
		r.cfg.Console.Input(cmd)
	}
}

func (r *Router) routeChat(ev event.Event) {
	if cmd, ok := ChatCommandFor(ev); ok {
		r.cfg.Chat.Input(cmd)
	}
}

// routeTextInput forwards the raw button code on Release; Down edges are
// swallowed without action. The surface claims the stream either way.
func (r *Router) routeTextInput(ev event.Event) {
	if ev.Edge == event.EdgeRelease {
		r.cfg.TextIn.Key(ev.Button)
	}
}

func (r *Router) routeShortcut(ev event.Event) {
	if r.cfg.Shortcut != nil {
		r.cfg.Shortcut.Dispatch(ev)
	}
}
