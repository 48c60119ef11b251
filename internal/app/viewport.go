package app

// Viewport is the main world view. It tracks a scroll offset and an
// optional follow target; any manual scroll breaks the follow lock.
type Viewport struct {
	x, y      int32
	following bool
}

// NewViewport creates a viewport at the origin.
func NewViewport() *Viewport {
	return &Viewport{}
}

// Follow locks the viewport onto a moving target.
func (v *Viewport) Follow() { v.following = true }

// Following reports whether a follow target is set.
func (v *Viewport) Following() bool { return v.following }

// ClearFollowTarget drops the follow lock.
func (v *Viewport) ClearFollowTarget() { v.following = false }

// ApplyScroll moves the viewport by the given delta.
func (v *Viewport) ApplyScroll(dx, dy int32) {
	v.x += dx
	v.y += dy
}

// Position returns the current scroll offset.
func (v *Viewport) Position() (int32, int32) { return v.x, v.y }

// Floor is the placement-guide visual shown while a placement modifier is
// held. Rendering is out of scope here; the flag is what the renderer
// reads.
type Floor struct {
	visible bool
}

// Enable shows the guide.
func (f *Floor) Enable() { f.visible = true }

// Disable hides the guide.
func (f *Floor) Disable() { f.visible = false }

// Visible reports whether the guide is showing.
func (f *Floor) Visible() bool { return f.visible }

// TextBox is a modal single-line text entry surface. While active it
// claims the whole keyboard stream; the router delivers key codes on
// Release edges only.
type TextBox struct {
	active bool
	keys   []int32
}

// Activate gives the text box the keyboard.
func (t *TextBox) Activate() { t.active = true }

// Deactivate releases the keyboard.
func (t *TextBox) Deactivate() { t.active = false }

// Active reports whether the text box owns keyboard input.
func (t *TextBox) Active() bool { return t.active }

// Key receives one forwarded key code.
func (t *TextBox) Key(button int32) {
	t.keys = append(t.keys, button)
}

// Keys returns the key codes received so far.
func (t *TextBox) Keys() []int32 { return t.keys }
