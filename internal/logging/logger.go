// Package logging builds the zap loggers shared by the CLI and the gateway.
package logging

import (
	"strings"

	"go.uber.org/zap"
)

// NewLogger returns a development logger for the debug level and a production logger otherwise.
func NewLogger(level string) (*zap.Logger, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case LevelDebug:
		return zap.NewDevelopment()
	default:
		return zap.NewProduction()
	}
}
