// Package device maintains the registry of open auxiliary input devices
// (joysticks) via interval-gated polling.
//
// Polling avoids any dependency on platform hot-plug callbacks: Check is
// cheap enough to call every cycle and performs a full enumeration only
// when the configured interval has elapsed. The registry is rebuilt
// wholesale on each refresh rather than diffed, so between refreshes the
// set of handles is stable.
package device

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// DefaultCheckInterval is the wall-clock gap between device enumerations.
const DefaultCheckInterval = 5000 * time.Millisecond

var defaultLogger = zerolog.New(os.Stderr).With().Str("subsystem", "device").Logger()

// Joystick is an open device handle. Ownership transfers to the poller on
// open; the poller closes every handle at the start of each refresh.
type Joystick interface {
	// Name returns a human-readable device name.
	Name() string
	// Close releases the handle.
	Close() error
}

// Backend enumerates and opens devices on behalf of the poller.
type Backend interface {
	// Count returns the number of devices the platform currently reports.
	Count() int
	// Open opens the device at the given index.
	Open(index int) (Joystick, error)
}

// Poller refreshes the open-device registry on a fixed interval. It is the
// registry's exclusive writer; everything else reads through Joysticks.
type Poller struct {
	backend   Backend
	interval  time.Duration
	now       func() time.Time
	log       *zerolog.Logger
	lastCheck time.Time
	joysticks []Joystick
}

// Option configures a Poller.
type Option func(*Poller)

// WithInterval sets the refresh interval.
func WithInterval(d time.Duration) Option {
	return func(p *Poller) {
		p.interval = d
	}
}

// WithClock sets the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(p *Poller) {
		p.now = now
	}
}

// WithLogger sets the logger.
func WithLogger(log *zerolog.Logger) Option {
	return func(p *Poller) {
		p.log = log
	}
}

// NewPoller creates a poller over the given backend.
func NewPoller(backend Backend, opts ...Option) *Poller {
	p := &Poller{
		backend:  backend,
		interval: DefaultCheckInterval,
		now:      time.Now,
		log:      &defaultLogger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Check refreshes the device registry if the interval has elapsed since
// the last refresh, and is a no-op otherwise. Idempotent within the
// interval and cheap to call every cycle.
func (p *Poller) Check() {
	now := p.now()
	if !p.lastCheck.IsZero() && now.Sub(p.lastCheck) < p.interval {
		return
	}
	p.lastCheck = now
	p.refresh()
}

// refresh rebuilds the registry wholesale: every open handle is released
// before re-enumerating. Devices that fail to open are skipped; failure to
// open is not a fatal condition.
func (p *Poller) refresh() {
	for _, js := range p.joysticks {
		if err := js.Close(); err != nil {
			p.log.Debug().Err(err).Str("device", js.Name()).Msg("close failed during refresh")
		}
	}
	p.joysticks = p.joysticks[:0]

	count := p.backend.Count()
	for i := 0; i < count; i++ {
		js, err := p.backend.Open(i)
		if err != nil {
			p.log.Debug().Err(err).Int("index", i).Msg("device failed to open")
			continue
		}
		p.joysticks = append(p.joysticks, js)
	}
	p.log.Debug().Int("reported", count).Int("open", len(p.joysticks)).Msg("device registry refreshed")
}

// Joysticks returns a snapshot of the open device handles.
func (p *Poller) Joysticks() []Joystick {
	out := make([]Joystick, len(p.joysticks))
	copy(out, p.joysticks)
	return out
}

// Close releases every open handle.
func (p *Poller) Close() {
	for _, js := range p.joysticks {
		_ = js.Close()
	}
	p.joysticks = nil
}
