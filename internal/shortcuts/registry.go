// Package shortcuts implements the global shortcut dispatcher: a registry
// of chord-to-action bindings with JSON persistence and optional
// Lua-scripted handlers.
//
// The input router forwards every event that no modal context claims; the
// registry looks up the triggering chord and runs the bound handler.
// Events that match no binding are a no-op, never an error.
package shortcuts

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/simstorm/internal/input/event"
)

var defaultLogger = zerolog.New(os.Stderr).With().Str("subsystem", "shortcuts").Logger()

// Handler runs when a binding's chord triggers.
type Handler func(ev event.Event)

// Binding is one registered shortcut.
type Binding struct {
	// ID names the action, like "interface.toggle_console".
	ID string

	// Chord is the triggering input combination.
	Chord Chord

	handler Handler
}

// Registry maps chords to bound actions. Rebinding an existing id replaces
// its chord; binding a chord already held by another id steals it (the
// newest binding wins, the older one goes chord-less until rebound).
type Registry struct {
	mu          sync.RWMutex
	log         *zerolog.Logger
	bindings    map[string]*Binding
	byChord     map[Chord]*Binding
	scriptFuncs map[string]lua.LGFunction
	states      []*lua.LState
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger.
func WithLogger(log *zerolog.Logger) Option {
	return func(r *Registry) {
		r.log = log
	}
}

// WithScriptFunc exposes a host function to Lua shortcut scripts under the
// given global name.
func WithScriptFunc(name string, fn lua.LGFunction) Option {
	return func(r *Registry) {
		r.scriptFuncs[name] = fn
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		log:         &defaultLogger,
		bindings:    make(map[string]*Binding),
		byChord:     make(map[Chord]*Binding),
		scriptFuncs: make(map[string]lua.LGFunction),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Bind registers a handler under the given id and chord string.
func (r *Registry) Bind(id, chord string, h Handler) error {
	c, err := ParseChord(chord)
	if err != nil {
		return fmt.Errorf("binding %s: %w", id, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	b := &Binding{ID: id, Chord: c, handler: h}
	r.removeChordLocked(id)
	if prev, ok := r.byChord[c]; ok && prev.ID != id {
		r.log.Debug().Str("binding", prev.ID).Str("chord", c.String()).Msg("chord stolen by newer binding")
		delete(r.bindings, prev.ID)
	}
	r.bindings[id] = b
	r.byChord[c] = b
	return nil
}

// Rebind changes the chord of an existing binding, keeping its handler.
func (r *Registry) Rebind(id, chord string) error {
	c, err := ParseChord(chord)
	if err != nil {
		return fmt.Errorf("rebinding %s: %w", id, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bindings[id]
	if !ok {
		return fmt.Errorf("rebinding %s: unknown binding", id)
	}
	if prev, ok := r.byChord[c]; ok && prev.ID != id {
		delete(r.bindings, prev.ID)
	}
	delete(r.byChord, b.Chord)
	b.Chord = c
	r.byChord[c] = b
	return nil
}

// removeChordLocked drops the chord index entry for id, if any.
func (r *Registry) removeChordLocked(id string) {
	if prev, ok := r.bindings[id]; ok {
		delete(r.byChord, prev.Chord)
	}
}

// Chord returns the chord currently bound to id.
func (r *Registry) Chord(id string) (Chord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bindings[id]
	if !ok {
		return Chord{}, false
	}
	return b.Chord, true
}

// Bindings returns all bindings sorted by id.
func (r *Registry) Bindings() []Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Binding, 0, len(r.bindings))
	for _, b := range r.bindings {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Dispatch runs the handler bound to the event's chord, if any. Events
// with no matching binding are silently ignored.
func (r *Registry) Dispatch(ev event.Event) {
	c, ok := ChordFor(ev)
	if !ok {
		return
	}

	r.mu.RLock()
	b := r.byChord[c]
	r.mu.RUnlock()

	if b == nil || b.handler == nil {
		return
	}
	r.log.Debug().Str("binding", b.ID).Stringer("event", ev).Msg("shortcut dispatched")
	b.handler(ev)
}

// DispatchIfMatches runs only the binding with the given id, and reports
// whether the event matched its chord. This is the reserved-binding path
// the router uses while the console is open.
func (r *Registry) DispatchIfMatches(ev event.Event, id string) bool {
	r.mu.RLock()
	b := r.bindings[id]
	r.mu.RUnlock()

	if b == nil || !b.Chord.Matches(ev) {
		return false
	}
	if b.handler != nil {
		b.handler(ev)
	}
	return true
}

// Close releases any Lua states owned by scripted bindings.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ls := range r.states {
		ls.Close()
	}
	r.states = nil
}
