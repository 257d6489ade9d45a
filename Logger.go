package main

import (
	"fmt"
	"go.uber.org/zap"
)

func NewLogger(level string) (*zap.Logger, error) {
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: log_level: %w", ConfigError, err)
	}

	config := zap.NewProductionConfig()
	config.Level = atomicLevel
	config.DisableStacktrace = true

	return config.Build()
}
