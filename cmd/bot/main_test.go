package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name          string
		level         string
		expectedLevel zapcore.Level
		expectedError bool
	}{
		{name: "default", level: "", expectedLevel: zapcore.InfoLevel},
		{name: "info", level: "info", expectedLevel: zapcore.InfoLevel},
		{name: "warn", level: "warn", expectedLevel: zapcore.WarnLevel},
		{name: "debug", level: "DEBUG", expectedLevel: zapcore.DebugLevel},
		{name: "unknown", level: "chatty", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := newLogger(tt.level)
			if tt.expectedError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.expectedLevel))
			if tt.expectedLevel > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.expectedLevel-1))
			}
		})
	}
}
