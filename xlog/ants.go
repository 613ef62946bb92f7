package xlog

import (
	"go.uber.org/zap/zapcore"
)

// AntsXLogger receives the worker panics recovered by an ants pool, see
// ants.WithLogger.
type AntsXLogger struct {
	logger XLogger
}

func (l *AntsXLogger) Printf(format string, args ...any) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Logf(zapcore.ErrorLevel, format, args...)
}

func NewAntsXLogger(logger XLogger) *AntsXLogger {
	return &AntsXLogger{
		logger: newComponentLogger(logger, "Ants", nil),
	}
}
