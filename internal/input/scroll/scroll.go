// Package scroll derives the per-cycle viewport scroll vector from
// shortcut-driven and mouse-edge-driven signals and applies it to the
// active viewport.
package scroll

import (
	"github.com/dshills/simstorm/internal/input/event"
)

// State is the global input state. Edge scrolling is only permitted while
// the state is exactly StateNormal; any drag, widget press, or resize in
// progress suppresses it for the cycle.
type State uint8

const (
	// StateNormal indicates no interaction in progress.
	StateNormal State = iota
	// StateWidgetPressed indicates a widget is being held.
	StateWidgetPressed
	// StatePositioningWindow indicates a window drag in progress.
	StatePositioningWindow
	// StateViewportRight indicates a right-button viewport drag.
	StateViewportRight
	// StateViewportLeft indicates a left-button viewport drag.
	StateViewportLeft
	// StateDropdownActive indicates an open dropdown.
	StateDropdownActive
	// StateScrollbarDrag indicates a scrollbar drag in progress.
	StateScrollbarDrag
	// StateResizing indicates a window resize in progress.
	StateResizing
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateWidgetPressed:
		return "widget-pressed"
	case StatePositioningWindow:
		return "positioning-window"
	case StateViewportRight:
		return "viewport-right"
	case StateViewportLeft:
		return "viewport-left"
	case StateDropdownActive:
		return "dropdown-active"
	case StateScrollbarDrag:
		return "scrollbar-drag"
	case StateResizing:
		return "resizing"
	default:
		return "unknown"
	}
}

// Viewport is the camera the controller scrolls.
type Viewport interface {
	// ClearFollowTarget stops the camera from following a sprite. Explicit
	// scrolling always overrides automatic following.
	ClearFollowTarget()
	// ApplyScroll pans the viewport by the given vector.
	ApplyScroll(dx, dy int32)
}

// Pointer reports the cursor position and screen bounds used to derive the
// mouse-edge scroll vector.
type Pointer interface {
	CursorPosition() (x, y int)
	ScreenSize() (w, h int)
}

// Hooks supplies the controller's collaborators and live-state queries.
// Nil function fields read as their zero value (no viewport, closed
// console, normal state, and so on).
type Hooks struct {
	// Viewport returns the main viewport, or nil when none exists.
	Viewport func() Viewport

	// ConsoleOpen reports whether the debug console is open.
	ConsoleOpen func() bool

	// TitleDemoActive reports whether the full-screen title/demo mode is
	// active.
	TitleDemoActive func() bool

	// InputState returns the global input state.
	InputState func() State

	// Modifiers returns the currently held modifier bitmask.
	Modifiers func() event.Modifier

	// EdgeScrolling reports whether edge scrolling is enabled in
	// configuration.
	EdgeScrolling func() bool

	// EdgeScrollSpeed is the magnitude applied per edge direction.
	EdgeScrollSpeed func() int32

	// Pointer supplies cursor position and screen size. Nil disables edge
	// scrolling.
	Pointer Pointer
}

// Controller applies the per-cycle scroll step. The scroll vector itself
// is cycle-scoped: callers pass the accumulated shortcut vector into Apply
// and reset their accumulator; nothing is retained here.
type Controller struct {
	hooks Hooks
}

// NewController creates a controller with the given hooks.
func NewController(hooks Hooks) *Controller {
	return &Controller{hooks: hooks}
}

// Apply runs the scroll step for one cycle. dx and dy are the
// shortcut-driven scroll vector accumulated during the drain.
//
// The whole step short-circuits while the title demo or the debug console
// is open. Shortcut scrolling clears the camera-follow target only when a
// viewport exists AND the vector is nonzero on either axis; the two
// conditions group together, never (exists AND x!=0) OR y!=0. Edge
// scrolling is an additional, independent signal gated by configuration,
// a Normal input state, and the absence of placement-assist modifiers.
func (c *Controller) Apply(dx, dy int32) {
	if c.boolHook(c.hooks.TitleDemoActive) || c.boolHook(c.hooks.ConsoleOpen) {
		return
	}

	var vp Viewport
	if c.hooks.Viewport != nil {
		vp = c.hooks.Viewport()
	}

	if vp != nil && (dx != 0 || dy != 0) {
		vp.ClearFollowTarget()
	}
	if vp != nil {
		vp.ApplyScroll(dx, dy)
	}

	c.applyEdgeScroll(vp)
}

// applyEdgeScroll applies the mouse-edge contribution when every gate
// clears. Suppression lasts for the current cycle only.
func (c *Controller) applyEdgeScroll(vp Viewport) {
	if vp == nil || c.hooks.Pointer == nil {
		return
	}
	if !c.boolHook(c.hooks.EdgeScrolling) {
		return
	}
	if c.hooks.InputState != nil && c.hooks.InputState() != StateNormal {
		return
	}
	if c.hooks.Modifiers != nil && c.hooks.Modifiers().Has(event.ModPlacement) {
		return
	}

	ex, ey := EdgeVector(c.hooks.Pointer)
	if ex == 0 && ey == 0 {
		return
	}
	speed := int32(1)
	if c.hooks.EdgeScrollSpeed != nil {
		if s := c.hooks.EdgeScrollSpeed(); s > 0 {
			speed = s
		}
	}
	vp.ApplyScroll(ex*speed, ey*speed)
}

// EdgeVector derives the unit scroll direction from cursor proximity to
// the screen border: -1 at the left/top edge, +1 at the right/bottom edge,
// 0 elsewhere.
func EdgeVector(p Pointer) (int32, int32) {
	x, y := p.CursorPosition()
	w, h := p.ScreenSize()

	var ex, ey int32
	switch {
	case x <= 0:
		ex = -1
	case x >= w-1:
		ex = 1
	}
	switch {
	case y <= 0:
		ey = -1
	case y >= h-1:
		ey = 1
	}
	return ex, ey
}

func (c *Controller) boolHook(f func() bool) bool {
	return f != nil && f()
}
