package scroll

import (
	"testing"

	"github.com/dshills/simstorm/internal/input/event"
)

type fakeViewport struct {
	followCleared bool
	scrolls       [][2]int32
}

func (v *fakeViewport) ClearFollowTarget() { v.followCleared = true }
func (v *fakeViewport) ApplyScroll(dx, dy int32) {
	v.scrolls = append(v.scrolls, [2]int32{dx, dy})
}

type fakePointer struct {
	x, y, w, h int
}

func (p fakePointer) CursorPosition() (int, int) { return p.x, p.y }
func (p fakePointer) ScreenSize() (int, int)     { return p.w, p.h }

func centeredPointer() fakePointer { return fakePointer{x: 50, y: 50, w: 100, h: 100} }

type env struct {
	vp        *fakeViewport
	hasVP     bool
	console   bool
	titleDemo bool
	state     State
	mods      event.Modifier
	edgeOn    bool
	speed     int32
	pointer   Pointer
}

func (e *env) controller() *Controller {
	return NewController(Hooks{
		Viewport: func() Viewport {
			if !e.hasVP {
				return nil
			}
			return e.vp
		},
		ConsoleOpen:     func() bool { return e.console },
		TitleDemoActive: func() bool { return e.titleDemo },
		InputState:      func() State { return e.state },
		Modifiers:       func() event.Modifier { return e.mods },
		EdgeScrolling:   func() bool { return e.edgeOn },
		EdgeScrollSpeed: func() int32 { return e.speed },
		Pointer:         e.pointer,
	})
}

func newEnv() *env {
	return &env{
		vp:      &fakeViewport{},
		hasVP:   true,
		state:   StateNormal,
		edgeOn:  true,
		speed:   1,
		pointer: centeredPointer(),
	}
}

func TestShortcutScrollClearsFollowTarget(t *testing.T) {
	e := newEnv()
	e.controller().Apply(3, 0)

	if !e.vp.followCleared {
		t.Error("nonzero shortcut vector should clear the follow target")
	}
	if len(e.vp.scrolls) == 0 || e.vp.scrolls[0] != [2]int32{3, 0} {
		t.Errorf("viewport scrolls = %v, want leading [3 0]", e.vp.scrolls)
	}
}

// Follow-clearing requires BOTH a viewport and a nonzero vector: the
// condition groups as exists && (x != 0 || y != 0). A nonzero y with no
// viewport must not clear anything, and a zero vector with a viewport must
// not either. The alternative grouping (exists && x != 0) || y != 0 would
// accept both of those cases.
func TestFollowClearConditionGrouping(t *testing.T) {
	e := newEnv()
	e.hasVP = false
	e.controller().Apply(0, 5)
	if e.vp.followCleared {
		t.Error("no viewport: nonzero y alone must not clear follow target")
	}

	e = newEnv()
	e.pointer = centeredPointer()
	e.controller().Apply(0, 0)
	if e.vp.followCleared {
		t.Error("zero vector must not clear follow target")
	}
}

func TestScrollShortCircuits(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*env)
	}{
		{"title demo active", func(e *env) { e.titleDemo = true }},
		{"console open", func(e *env) { e.console = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv()
			tt.setup(e)
			e.controller().Apply(4, 4)

			if e.vp.followCleared || len(e.vp.scrolls) != 0 {
				t.Errorf("scroll step should short-circuit entirely: cleared=%v scrolls=%v",
					e.vp.followCleared, e.vp.scrolls)
			}
		})
	}
}

func TestEdgeScrollApplied(t *testing.T) {
	e := newEnv()
	e.pointer = fakePointer{x: 0, y: 50, w: 100, h: 100}
	e.speed = 5
	e.controller().Apply(0, 0)

	want := [2]int32{-5, 0}
	if len(e.vp.scrolls) != 2 || e.vp.scrolls[1] != want {
		t.Errorf("scrolls = %v, want shortcut [0 0] then edge %v", e.vp.scrolls, want)
	}
}

func TestEdgeScrollSuppression(t *testing.T) {
	edge := fakePointer{x: 99, y: 99, w: 100, h: 100}

	tests := []struct {
		name  string
		setup func(*env)
	}{
		{"edge scrolling disabled", func(e *env) { e.edgeOn = false }},
		{"input state not normal", func(e *env) { e.state = StateViewportRight }},
		{"shift-z held", func(e *env) { e.mods = event.ModShiftZ }},
		{"copy-z held", func(e *env) { e.mods = event.ModCopyZ }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv()
			e.pointer = edge
			tt.setup(e)
			e.controller().Apply(0, 0)

			// Only the unconditional shortcut application remains.
			if len(e.vp.scrolls) != 1 || e.vp.scrolls[0] != [2]int32{0, 0} {
				t.Errorf("scrolls = %v, want only zero shortcut application", e.vp.scrolls)
			}
		})
	}

	t.Run("resumes once conditions clear", func(t *testing.T) {
		e := newEnv()
		e.pointer = edge
		e.state = StateViewportRight
		c := e.controller()
		c.Apply(0, 0)
		e.state = StateNormal
		c.Apply(0, 0)

		if len(e.vp.scrolls) != 3 || e.vp.scrolls[2] != [2]int32{1, 1} {
			t.Errorf("scrolls = %v, want trailing edge vector [1 1]", e.vp.scrolls)
		}
	})
}

func TestEdgeVector(t *testing.T) {
	tests := []struct {
		name   string
		p      fakePointer
		ex, ey int32
	}{
		{"center", fakePointer{50, 50, 100, 100}, 0, 0},
		{"left", fakePointer{0, 50, 100, 100}, -1, 0},
		{"right", fakePointer{99, 50, 100, 100}, 1, 0},
		{"top", fakePointer{50, 0, 100, 100}, 0, -1},
		{"bottom", fakePointer{50, 99, 100, 100}, 0, 1},
		{"corner", fakePointer{0, 99, 100, 100}, -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex, ey := EdgeVector(tt.p)
			if ex != tt.ex || ey != tt.ey {
				t.Errorf("EdgeVector = (%d, %d), want (%d, %d)", ex, ey, tt.ex, tt.ey)
			}
		})
	}
}
