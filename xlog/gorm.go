package xlog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	glogger "gorm.io/gorm/logger"
	gutils "gorm.io/gorm/utils"
)

var _ glogger.Interface = (*GormXLogger)(nil)

const defaultGormSlowThreshold = 500 * time.Millisecond

// GormXLogger logs the gorm statements under the "Gorm" component. The gorm
// level gates the calls, the zap level of the component follows it.
type GormXLogger struct {
	logger         XLogger
	componentLevel zap.AtomicLevel
	gormLevel      atomic.Int32
	slowThreshold  time.Duration
	ignore404      bool
}

var gormZapLevels = map[glogger.LogLevel]zapcore.Level{
	glogger.Info:  zapcore.InfoLevel,
	glogger.Warn:  zapcore.WarnLevel,
	glogger.Error: zapcore.ErrorLevel,
}

// zapLevelOfGorm maps Silent and unknown levels to debug, Silent is gated
// before reaching zap.
func zapLevelOfGorm(lvl glogger.LogLevel) zapcore.Level {
	if zl, ok := gormZapLevels[lvl]; ok {
		return zl
	}
	return zapcore.DebugLevel
}

func (l *GormXLogger) level() glogger.LogLevel {
	return glogger.LogLevel(l.gormLevel.Load())
}

func (l *GormXLogger) LogMode(lvl glogger.LogLevel) glogger.Interface {
	l.gormLevel.Store(int32(lvl))
	l.componentLevel.SetLevel(zapLevelOfGorm(lvl))
	return l
}

func (l *GormXLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level() >= glogger.Info {
		l.logger.InfoContext(ctx, fmt.Sprintf(msg, data...), zap.String("fileAndLine", gutils.FileWithLineNum()))
	}
}

func (l *GormXLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level() >= glogger.Warn {
		l.logger.WarnContext(ctx, fmt.Sprintf(msg, data...), zap.String("fileAndLine", gutils.FileWithLineNum()))
	}
}

func (l *GormXLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level() >= glogger.Error {
		l.logger.ErrorContext(ctx, nil, fmt.Sprintf(msg, data...), zap.String("fileAndLine", gutils.FileWithLineNum()))
	}
}

// classify picks the log line of a finished statement, ok is false when
// the statement is not worth logging at the current gorm level.
func (l *GormXLogger) classify(lvl glogger.LogLevel, elapsed time.Duration, err error) (zapcore.Level, string, bool) {
	failed := err != nil && !(l.ignore404 && errors.Is(err, glogger.ErrRecordNotFound))
	slow := l.slowThreshold > 0 && elapsed > l.slowThreshold
	switch {
	case failed && lvl >= glogger.Error:
		return zapcore.ErrorLevel, "error trace", true
	case slow && lvl >= glogger.Warn:
		return zapcore.WarnLevel, "slow sql", true
	case lvl >= glogger.Info:
		return zapcore.InfoLevel, "common sql info", true
	}
	return zapcore.InvalidLevel, "", false
}

func (l *GormXLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	lvl := l.level()
	if lvl <= glogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	zl, msg, ok := l.classify(lvl, elapsed, err)
	if !ok {
		return
	}

	sql, rows := fc()
	affected := "-"
	if rows > -1 {
		affected = strconv.FormatInt(rows, 10)
	}
	fields := []zap.Field{
		zap.String("fileAndLine", gutils.FileWithLineNum()),
		zap.String("rows", affected),
		zap.Int64("elapsedMs", elapsed.Milliseconds()),
		zap.String("sql", sql),
	}
	switch zl {
	case zapcore.ErrorLevel:
		l.logger.ErrorContext(ctx, err, msg, fields...)
	case zapcore.WarnLevel:
		l.logger.WarnContext(ctx, msg, append(fields, zap.Int64("thresholdMs", l.slowThreshold.Milliseconds()))...)
	default:
		l.logger.InfoContext(ctx, msg, fields...)
	}
}

// NewGormXLogger defaults to the Warn gorm level and a 500ms slow threshold.
func NewGormXLogger(logger XLogger, opts ...GormXLoggerOption) *GormXLogger {
	gl := &GormXLogger{
		slowThreshold: defaultGormSlowThreshold,
	}
	lvl := glogger.Warn
	for _, o := range opts {
		o(gl, &lvl)
	}
	gl.gormLevel.Store(int32(lvl))
	gl.componentLevel = zap.NewAtomicLevelAt(zapLevelOfGorm(lvl))
	gl.logger = newComponentLogger(logger, "Gorm", gl.componentLevel)
	return gl
}

type GormXLoggerOption func(gl *GormXLogger, lvl *glogger.LogLevel)

// WithGormXLoggerSlowThreshold disables the slow statement warning with 0.
func WithGormXLoggerSlowThreshold(threshold time.Duration) GormXLoggerOption {
	return func(gl *GormXLogger, _ *glogger.LogLevel) {
		gl.slowThreshold = max(threshold, 0)
	}
}

func WithGormXLoggerLogLevel(lvl glogger.LogLevel) GormXLoggerOption {
	return func(_ *GormXLogger, target *glogger.LogLevel) {
		*target = lvl
	}
}

// WithGormXLoggerIgnoreRecord404Err keeps ErrRecordNotFound out of the error
// traces, lookups that may miss use it.
func WithGormXLoggerIgnoreRecord404Err() GormXLoggerOption {
	return func(gl *GormXLogger, _ *glogger.LogLevel) {
		gl.ignore404 = true
	}
}
