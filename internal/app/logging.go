package app

import (
	"os"

	"github.com/rs/zerolog"
)

// NewLogger builds the root logger at the given level name. Unknown level
// names fall back to info rather than failing startup.
func NewLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}

// subLogger derives a per-subsystem child logger.
func subLogger(log zerolog.Logger, subsystem string) zerolog.Logger {
	return log.With().Str("subsystem", subsystem).Logger()
}
