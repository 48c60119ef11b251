package platform

import (
	"fmt"

	"github.com/dshills/simstorm/internal/input/device"
)

// NullJoysticks is the joystick backend for hosts with no controller
// support. The device poller still runs its enumeration cycle against it
// and finds nothing.
type NullJoysticks struct{}

// Count returns zero.
func (NullJoysticks) Count() int { return 0 }

// Open always fails: there is nothing to open.
func (NullJoysticks) Open(index int) (device.Joystick, error) {
	return nil, fmt.Errorf("no joystick at index %d", index)
}
