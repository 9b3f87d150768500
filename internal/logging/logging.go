package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap's sugared logger so commands can log structured
// key/value pairs without carrying encoder configuration around.
type Logger struct {
	*zap.SugaredLogger
}

// NewLogger builds a console logger writing to stderr. Verbose mode
// lowers the level to debug and annotates entries with their caller.
func NewLogger(verbose bool) *Logger {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	config.DisableCaller = true
	config.DisableStacktrace = true
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		config.DisableCaller = false
	}

	logger, err := config.Build()
	if err != nil {
		// zap only fails on invalid config; fall back to a no-op
		// logger rather than aborting the command.
		logger = zap.NewNop()
	}
	return &Logger{SugaredLogger: logger.Sugar()}
}

// With returns a child logger attaching the given key/value pairs to
// every entry.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With(args...)}
}
