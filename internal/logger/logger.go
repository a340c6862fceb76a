// Package logger builds the service-wide zap logger.
package logger

import (
	"go.uber.org/zap"
)

// NewNamed creates a named logger tuned for the given environment:
// human-readable output in development, JSON in anything else.
func NewNamed(env, name string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "development" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return log.Named(name), nil
}
