package logz

import (
	"fmt"

	"go.uber.org/zap"
)

// Level selects which zap preset New builds.
type Level string

const (
	// LevelDebug builds a zap.NewDevelopment logger: human-readable,
	// colorized, stack traces on Warn and above.
	LevelDebug Level = "debug"
	// LevelProduction builds a zap.NewProduction logger: JSON output,
	// stack traces on Error and above, sampling enabled.
	LevelProduction Level = "production"
)

// New returns a *zap.Logger for level, defaulting to production for any
// value other than LevelDebug, the same switch arx-os-arxos's
// gateway.initLogger uses for its own "debug"/"info"/default cases.
func New(level Level) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	switch level {
	case LevelDebug:
		logger, err = zap.NewDevelopment()
	default:
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("logz: build logger: %w", err)
	}
	return logger, nil
}

// NewNop returns a no-op logger, the Scheduler's own default before a
// caller supplies one via scheduler.WithLogger.
func NewNop() *zap.Logger {
	return zap.NewNop()
}
