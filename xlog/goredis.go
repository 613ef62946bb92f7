package xlog

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// GoRedisXLogger satisfies the go-redis internal logging interface, see redis.SetLogger.
type GoRedisXLogger struct {
	logger XLogger
}

// go-redis only logs internal trouble, the connection pool and the
// cluster state reload, so the wording decides the level.
var goRedisErrorWords = []string{"failed", "error", "can't"}

func goRedisLevel(line string) zapcore.Level {
	lower := strings.ToLower(line)
	for _, word := range goRedisErrorWords {
		if strings.Contains(lower, word) {
			return zapcore.ErrorLevel
		}
	}
	return zapcore.InfoLevel
}

func (l *GoRedisXLogger) Printf(_ context.Context, format string, v ...any) {
	if l == nil || l.logger == nil {
		return
	}
	line := fmt.Sprintf(format, v...)
	l.logger.Logf(goRedisLevel(line), "%s", line)
}

func NewGoRedisXLogger(logger XLogger) *GoRedisXLogger {
	return &GoRedisXLogger{
		logger: newComponentLogger(logger, "GoRedis", nil),
	}
}
