package config

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger builds a zap logger from the logging configuration.
// verbose forces debug level regardless of the configured level.
//
// Parameters:
//   - verbose: force debug output
//
// Returns:
//   - *zap.Logger: the logger; callers Sync it on exit
//   - error: invalid level or build error
func (c LoggingConfig) NewLogger(verbose bool) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: logging.level: %v", ErrInvalidConfig, err)
	}
	if verbose {
		level.SetLevel(zap.DebugLevel)
	}

	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
