package shortcuts

import (
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/simstorm/internal/input/event"
)

// BindScript compiles a Lua chunk and binds it as the handler for id. On
// each trigger the chunk is called with a single table argument carrying
// device, modifiers, button, and edge fields:
//
//	local ev = ...
//	if ev.device == "joybutton" then scroll(0, 1) end
//
// Host functions registered via WithScriptFunc are available as globals.
// Script runtime errors are contained: they are logged, never propagated
// into the dispatch cycle.
func (r *Registry) BindScript(id, chord, source string) error {
	ls := lua.NewState()
	for name, fn := range r.scriptFuncs {
		ls.SetGlobal(name, ls.NewFunction(fn))
	}

	fn, err := ls.Load(strings.NewReader(source), id)
	if err != nil {
		ls.Close()
		return fmt.Errorf("compiling script for %s: %w", id, err)
	}

	handler := func(ev event.Event) {
		tbl := ls.NewTable()
		ls.SetField(tbl, "device", lua.LString(ev.Device.String()))
		ls.SetField(tbl, "modifiers", lua.LNumber(ev.Modifiers))
		ls.SetField(tbl, "button", lua.LNumber(ev.Button))
		ls.SetField(tbl, "edge", lua.LString(ev.Edge.String()))

		ls.Push(fn)
		ls.Push(tbl)
		if err := ls.PCall(1, 0, nil); err != nil {
			r.log.Warn().Err(err).Str("binding", id).Msg("shortcut script failed")
		}
	}

	if err := r.Bind(id, chord, handler); err != nil {
		ls.Close()
		return err
	}

	r.mu.Lock()
	r.states = append(r.states, ls)
	r.mu.Unlock()
	return nil
}
