package xlog

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type logLevel string

const (
	LogLevelDebug logLevel = "DEBUG"
	LogLevelInfo  logLevel = "INFO"
	LogLevelWarn  logLevel = "WARN"
	LogLevelError logLevel = "ERROR"
)

var zapLevels = map[logLevel]zapcore.Level{
	LogLevelDebug: zapcore.DebugLevel,
	LogLevelInfo:  zapcore.InfoLevel,
	LogLevelWarn:  zapcore.WarnLevel,
	LogLevelError: zapcore.ErrorLevel,
}

func (lvl logLevel) zapLevel() zapcore.Level {
	if zl, ok := zapLevels[lvl]; ok {
		return zl
	}
	return zapcore.DebugLevel
}

func (lvl logLevel) String() string {
	return string(lvl)
}

// ParseLogLevel is case-insensitive, unknown names fall back to DEBUG.
func ParseLogLevel(level string) logLevel {
	lvl := logLevel(strings.ToUpper(strings.TrimSpace(level)))
	if _, ok := zapLevels[lvl]; ok {
		return lvl
	}
	return LogLevelDebug
}

type logEncoderType uint8

const (
	JSON logEncoderType = iota
	PlainText
	_encMax
)

var logEncoders = [_encMax]struct {
	names      []string
	newEncoder func(cfg zapcore.EncoderConfig) zapcore.Encoder
}{
	JSON:      {names: []string{"json"}, newEncoder: zapcore.NewJSONEncoder},
	PlainText: {names: []string{"text", "plaintext", "console"}, newEncoder: zapcore.NewConsoleEncoder},
}

func (typ logEncoderType) newEncoder(cfg zapcore.EncoderConfig) zapcore.Encoder {
	if typ >= _encMax {
		typ = JSON
	}
	return logEncoders[typ].newEncoder(cfg)
}

func (typ logEncoderType) String() string {
	if typ >= _encMax {
		return "unknown"
	}
	return logEncoders[typ].names[0]
}

// ParseLogEncoder accepts "json", "text", "plaintext" or "console", anything
// else is JSON.
func ParseLogEncoder(enc string) logEncoderType {
	enc = strings.ToLower(strings.TrimSpace(enc))
	for typ := range logEncoders {
		for _, name := range logEncoders[typ].names {
			if name == enc {
				return logEncoderType(typ)
			}
		}
	}
	return JSON
}

const (
	// ContextKeyMapToOmitempty logs the context field under its own name and
	// leaves it out when the context carries no value.
	ContextKeyMapToOmitempty = "_"
	// ContextKeyMapToItself logs the context field under its own name.
	ContextKeyMapToItself = ""

	keyOmitted = ""
)

type Banner interface {
	JSON() string
	PlainText() string
}

// xLogCore is a zap core that still knows its parts, so component loggers
// are able to re-encode its output.
type xLogCore interface {
	zapcore.Core
	parts() (coreParts, bool)
}

type xLogCoreConstructor func(
	lvlEnabler zapcore.LevelEnabler,
	encoder logEncoderType,
	ws zapcore.WriteSyncer,
	lvlEnc zapcore.LevelEncoder,
	tsEnc zapcore.TimeEncoder,
) xLogCore

// XLogger is a structured logger on top of zap.
//
// ErrorStack renders the frames carried by an infra.ErrorStack as a field
// instead of the zap stacktrace string.
//
// The Context variants add the fields registered by
// WithXLoggerContextFieldExtract, a request or trace id for example.
type XLogger interface {
	zap() *zap.Logger

	IncreaseLogLevel(level zapcore.Level)
	Level() string
	Sync() error
	Banner(banner Banner)
	// Named returns a child logger sharing the parent cores and level.
	Named(name string) XLogger

	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(err error, msg string, fields ...zap.Field)
	ErrorStack(err error, msg string, fields ...zap.Field)

	DebugContext(ctx context.Context, msg string, fields ...zap.Field)
	InfoContext(ctx context.Context, msg string, fields ...zap.Field)
	WarnContext(ctx context.Context, msg string, fields ...zap.Field)
	ErrorContext(ctx context.Context, err error, msg string, fields ...zap.Field)

	// Logf formats eagerly, it serves the printf style adapters.
	Logf(lvl zapcore.Level, format string, args ...any)
}
