// Package config provides application configuration structures and helpers.
//
// Values are resolved in the order defaults, command line flags, JSON config file
// (-c / -config or CONFIG) and environment variables. A flag that was set explicitly
// wins over the JSON file; environment variables win over everything.
package config

import (
	"go.uber.org/zap"
)

// NewLogger builds the production logger writing to the given outputs.
func NewLogger(outputs ...string) (*zap.SugaredLogger, error) {
	logCfg := zap.NewProductionConfig()
	if len(outputs) > 0 {
		logCfg.OutputPaths = outputs
	}
	logger, err := logCfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
