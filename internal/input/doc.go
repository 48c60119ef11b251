// Package input implements the real-time input dispatch subsystem.
//
// The Manager owns one dispatch cycle per simulation tick: it checks the
// joystick poller, refreshes the held-modifier bitmask from live keyboard
// state, drains the event queue through the priority router, and applies
// the accumulated viewport scroll. The whole subsystem is single-threaded
// and run-to-completion; collaborators are supplied through Config and
// absent ones degrade to no-ops.
//
// Subpackages:
//
//   - event: normalized event model, modifier bitmask, raw translation
//   - queue: FIFO event queue drained once per cycle
//   - device: interval-gated joystick enumeration
//   - router: priority routing to the single consuming context
//   - scroll: viewport scroll controller with edge-scroll gating
package input
