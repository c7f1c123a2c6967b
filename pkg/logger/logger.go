package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the application-wide structured logger. Call sites keep zap's
// field vocabulary; construction and encoder choices live here.
type Logger struct {
	*zap.Logger
}

// NewLogger builds a logger at info level.
func NewLogger() *Logger {
	return NewLoggerWithLevel("info")
}

// NewLoggerWithLevel builds a logger honoring the configured level
// ("debug", "info", "warn", "error"). An unknown level falls back to info.
func NewLoggerWithLevel(level string) *Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.StacktraceKey = ""

	if parsed, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(parsed)
	}

	zl, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}

	return &Logger{Logger: zl}
}

// The wrappers below exist so AddCallerSkip reports the caller of the
// wrapper, not the wrapper itself.

func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.Logger.Info(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.Logger.Warn(msg, fields...)
}

func (l *Logger) Error(msg string, fields ...zap.Field) {
	l.Logger.Error(msg, fields...)
}

func (l *Logger) Fatal(msg string, fields ...zap.Field) {
	l.Logger.Fatal(msg, fields...)
}

// With returns a child logger carrying the given fields on every entry.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{Logger: l.Logger.With(fields...)}
}

func (l *Logger) Sync() error {
	return l.Logger.Sync()
}
