package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNewLoggerWithLevel(t *testing.T) {
	debug := NewLoggerWithLevel("debug")
	assert.True(t, debug.Core().Enabled(zapcore.DebugLevel))

	warn := NewLoggerWithLevel("warn")
	assert.False(t, warn.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, warn.Core().Enabled(zapcore.WarnLevel))
}

func TestNewLoggerWithLevelUnknownFallsBackToInfo(t *testing.T) {
	log := NewLoggerWithLevel("loud")
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
}
