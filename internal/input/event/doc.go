// Package event defines the normalized input event model shared by the
// input dispatch subsystem.
//
// Raw platform notifications (keyboard keys, mouse buttons, joystick hats
// and buttons) arrive as values of the sealed Raw union. Translate converts
// a raw notification into at most one Event, capturing the held-modifier
// bitmask at creation time so that an Event is fully self-describing: no
// consumer ever needs to query live device state to interpret one.
//
// Hat motion is synthesized as a Down edge only when the hat is away from
// its centered position; returning to center produces no event.
package event
