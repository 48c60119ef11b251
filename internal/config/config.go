// Package config holds the runtime configuration model: a flat struct with
// sensible defaults, JSON file loading, and SIMSTORM_* environment
// overrides. Environment values beat file values; file values beat
// defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "SIMSTORM_"

// VirtualFloorStyle selects how the placement guide renders while a
// placement modifier is held.
type VirtualFloorStyle int

const (
	// VirtualFloorOff disables the guide entirely.
	VirtualFloorOff VirtualFloorStyle = iota

	// VirtualFloorClear renders an outline-only guide.
	VirtualFloorClear

	// VirtualFloorGlassy renders a translucent guide.
	VirtualFloorGlassy
)

// String returns the configuration name of the style.
func (s VirtualFloorStyle) String() string {
	switch s {
	case VirtualFloorClear:
		return "clear"
	case VirtualFloorGlassy:
		return "glassy"
	default:
		return "off"
	}
}

// ParseVirtualFloorStyle parses a configuration name, case-insensitively.
func ParseVirtualFloorStyle(s string) (VirtualFloorStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "":
		return VirtualFloorOff, nil
	case "clear":
		return VirtualFloorClear, nil
	case "glassy":
		return VirtualFloorGlassy, nil
	default:
		return VirtualFloorOff, fmt.Errorf("unknown virtual floor style %q", s)
	}
}

// Config is the full runtime configuration.
type Config struct {
	// EdgeScrolling enables viewport scrolling when the cursor rests at a
	// screen border.
	EdgeScrolling bool

	// EdgeScrollSpeed is the per-cycle scroll amount at a border, in
	// viewport units.
	EdgeScrollSpeed int32

	// VirtualFloor selects the placement guide style. Anything other than
	// off makes held placement modifiers show the guide.
	VirtualFloor VirtualFloorStyle

	// DevicePollInterval is the minimum time between controller
	// enumeration passes.
	DevicePollInterval time.Duration

	// LogLevel is a zerolog level name: trace, debug, info, warn, error.
	LogLevel string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		EdgeScrolling:      true,
		EdgeScrollSpeed:    1,
		VirtualFloor:       VirtualFloorGlassy,
		DevicePollInterval: 5 * time.Second,
		LogLevel:           "info",
	}
}

// Load reads the JSON file at path (if it exists), layers it over the
// defaults, then applies environment overrides. A missing file is not an
// error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := cfg.applyJSON(data); err != nil {
				return cfg, fmt.Errorf("config file %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return cfg, fmt.Errorf("reading config file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyJSON layers values from a JSON document over the receiver. Unknown
// keys are ignored so older builds tolerate newer files.
func (c *Config) applyJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("invalid JSON")
	}

	if v := gjson.GetBytes(data, "input.edgeScrolling"); v.Exists() {
		c.EdgeScrolling = v.Bool()
	}
	if v := gjson.GetBytes(data, "input.edgeScrollSpeed"); v.Exists() {
		c.EdgeScrollSpeed = int32(v.Int())
	}
	if v := gjson.GetBytes(data, "input.virtualFloor"); v.Exists() {
		style, err := ParseVirtualFloorStyle(v.String())
		if err != nil {
			return err
		}
		c.VirtualFloor = style
	}
	if v := gjson.GetBytes(data, "input.devicePollInterval"); v.Exists() {
		d, err := time.ParseDuration(v.String())
		if err != nil {
			return fmt.Errorf("devicePollInterval: %w", err)
		}
		c.DevicePollInterval = d
	}
	if v := gjson.GetBytes(data, "logging.level"); v.Exists() {
		c.LogLevel = v.String()
	}
	return nil
}

// applyEnv layers SIMSTORM_* environment variables over the receiver.
func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvPrefix + "EDGE_SCROLLING"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sEDGE_SCROLLING: %w", EnvPrefix, err)
		}
		c.EdgeScrolling = b
	}
	if v, ok := os.LookupEnv(EnvPrefix + "EDGE_SCROLL_SPEED"); ok {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return fmt.Errorf("%sEDGE_SCROLL_SPEED: %w", EnvPrefix, err)
		}
		c.EdgeScrollSpeed = int32(n)
	}
	if v, ok := os.LookupEnv(EnvPrefix + "VIRTUAL_FLOOR"); ok {
		style, err := ParseVirtualFloorStyle(v)
		if err != nil {
			return fmt.Errorf("%sVIRTUAL_FLOOR: %w", EnvPrefix, err)
		}
		c.VirtualFloor = style
	}
	if v, ok := os.LookupEnv(EnvPrefix + "DEVICE_POLL_INTERVAL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sDEVICE_POLL_INTERVAL: %w", EnvPrefix, err)
		}
		c.DevicePollInterval = d
	}
	if v, ok := os.LookupEnv(EnvPrefix + "LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	return nil
}

// Validate reports the first invalid setting, or nil.
func (c *Config) Validate() error {
	if c.EdgeScrollSpeed < 0 {
		return fmt.Errorf("edgeScrollSpeed must be non-negative, got %d", c.EdgeScrollSpeed)
	}
	if c.DevicePollInterval <= 0 {
		return fmt.Errorf("devicePollInterval must be positive, got %v", c.DevicePollInterval)
	}
	return nil
}
