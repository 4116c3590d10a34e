// Package logging builds the zap logger shared by the binaries.
package logging

import (
	"strings"

	"go.uber.org/zap"
)

// New returns a JSON production logger, or a console development logger when
// env is "development" or "dev".
func New(env string, name string) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "development", "dev", "":
		logger, err = zap.NewDevelopment()
	default:
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	if name != "" {
		logger = logger.Named(name)
	}
	return logger, nil
}

// OrNop guards optional logger dependencies.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
