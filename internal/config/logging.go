package config

import (
	"fmt"

	"go.uber.org/zap"
)

// Build constructs the zap logger described by the logging section.
func (l LoggingConfig) Build() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(l.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", l.Level, err)
	}

	var cfg zap.Config
	switch l.Format {
	case "console":
		cfg = zap.NewDevelopmentConfig()
	case "json", "":
		cfg = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("unknown log format %q", l.Format)
	}
	cfg.Level = level

	return cfg.Build()
}
