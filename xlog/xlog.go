package xlog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xdsa/lib/infra"
)

// XLogLevelEnv is read when no level option is given.
const XLogLevelEnv = "XLOG_LVL"

var _ XLogger = (*xLogger)(nil)

var printBanner = sync.Once{}

type xLogger struct {
	logger              atomic.Pointer[zap.Logger]
	ctxFields           map[string]string
	dynamicLevelEnabler zap.AtomicLevel
	writers             []zapcore.WriteSyncer
	encoder             logEncoderType
}

func (l *xLogger) zap() *zap.Logger {
	return l.logger.Load()
}

// child shares everything but the zap logger.
func (l *xLogger) child() *xLogger {
	return &xLogger{
		ctxFields:           l.ctxFields,
		dynamicLevelEnabler: l.dynamicLevelEnabler,
		writers:             l.writers,
		encoder:             l.encoder,
	}
}

// IncreaseLogLevel is safe to call while logging, all children follow.
func (l *xLogger) IncreaseLogLevel(level zapcore.Level) {
	l.dynamicLevelEnabler.SetLevel(level)
}

func (l *xLogger) Sync() error {
	return l.zap().Sync()
}

func (l *xLogger) Level() string {
	return l.dynamicLevelEnabler.Level().String()
}

func (l *xLogger) Named(name string) XLogger {
	c := l.child()
	c.logger.Store(l.zap().Named(name))
	return c
}

// Banner prints once per process, without level, time or caller.
func (l *xLogger) Banner(banner Banner) {
	printBanner.Do(func() {
		cfg := zapcore.EncoderConfig{
			MessageKey: "banner",
			LevelKey:   keyOmitted,
			TimeKey:    keyOmitted,
			CallerKey:  keyOmitted,
		}
		text := banner.JSON()
		if l.encoder == PlainText {
			text = banner.PlainText()
		}
		core := zapcore.NewCore(l.encoder.newEncoder(cfg), zapcore.NewMultiWriteSyncer(l.writers...), zapcore.InfoLevel)
		zap.New(core).Info(text)
	})
}

// withError puts the error message between the prefix and the call fields.
func withError(prefix []zap.Field, err error, fields []zap.Field) []zap.Field {
	if err != nil {
		prefix = append(prefix, zap.String("error", err.Error()))
	}
	return append(prefix, fields...)
}

func (l *xLogger) contextFields(ctx context.Context) []zap.Field {
	return appendContextFields(make([]zap.Field, 0, len(l.ctxFields)+4), ctx, l.ctxFields)
}

func (l *xLogger) Debug(msg string, fields ...zap.Field) {
	if ce := l.zap().Check(zapcore.DebugLevel, msg); ce != nil {
		ce.Write(fields...)
	}
}

func (l *xLogger) Info(msg string, fields ...zap.Field) {
	if ce := l.zap().Check(zapcore.InfoLevel, msg); ce != nil {
		ce.Write(fields...)
	}
}

func (l *xLogger) Warn(msg string, fields ...zap.Field) {
	if ce := l.zap().Check(zapcore.WarnLevel, msg); ce != nil {
		ce.Write(fields...)
	}
}

func (l *xLogger) Error(err error, msg string, fields ...zap.Field) {
	if ce := l.zap().Check(zapcore.ErrorLevel, msg); ce != nil {
		ce.Write(withError(nil, err, fields)...)
	}
}

// ErrorStack inlines the first infra.ErrorStack of the chain, "error" plus
// its "errorStack" frames.
func (l *xLogger) ErrorStack(err error, msg string, fields ...zap.Field) {
	ce := l.zap().Check(zapcore.ErrorLevel, msg)
	if ce == nil {
		return
	}
	var es infra.ErrorStack
	if !errors.As(err, &es) {
		ce.Write(withError(nil, err, fields)...)
		return
	}
	ce.Write(append([]zap.Field{zap.Inline(es)}, fields...)...)
}

func (l *xLogger) DebugContext(ctx context.Context, msg string, fields ...zap.Field) {
	if ce := l.zap().Check(zapcore.DebugLevel, msg); ce != nil {
		ce.Write(withError(l.contextFields(ctx), nil, fields)...)
	}
}

func (l *xLogger) InfoContext(ctx context.Context, msg string, fields ...zap.Field) {
	if ce := l.zap().Check(zapcore.InfoLevel, msg); ce != nil {
		ce.Write(withError(l.contextFields(ctx), nil, fields)...)
	}
}

func (l *xLogger) WarnContext(ctx context.Context, msg string, fields ...zap.Field) {
	if ce := l.zap().Check(zapcore.WarnLevel, msg); ce != nil {
		ce.Write(withError(l.contextFields(ctx), nil, fields)...)
	}
}

func (l *xLogger) ErrorContext(ctx context.Context, err error, msg string, fields ...zap.Field) {
	if ce := l.zap().Check(zapcore.ErrorLevel, msg); ce != nil {
		ce.Write(withError(l.contextFields(ctx), err, fields)...)
	}
}

func (l *xLogger) Logf(lvl zapcore.Level, format string, args ...any) {
	if !l.zap().Core().Enabled(lvl) {
		return
	}
	if ce := l.zap().Check(lvl, fmt.Sprintf(format, args...)); ce != nil {
		ce.Write()
	}
}

type loggerCfg struct {
	ctxFields        map[string]string
	encoderType      *logEncoderType
	lvlEncoder       zapcore.LevelEncoder
	tsEncoder        zapcore.TimeEncoder
	level            *zapcore.Level
	writers          []zapcore.WriteSyncer
	coreConstructors []xLogCoreConstructor
}

func (cfg *loggerCfg) apply(l *xLogger) []xLogCore {
	l.encoder = JSON
	if cfg.encoderType != nil {
		l.encoder = *cfg.encoderType
	}
	lvl := ParseLogLevel(os.Getenv(XLogLevelEnv)).zapLevel()
	if cfg.level != nil {
		lvl = *cfg.level
	}
	l.dynamicLevelEnabler = zap.NewAtomicLevelAt(lvl)
	l.ctxFields = cfg.ctxFields

	if cfg.lvlEncoder == nil {
		cfg.lvlEncoder = zapcore.CapitalLevelEncoder
	}
	if cfg.tsEncoder == nil {
		cfg.tsEncoder = zapcore.ISO8601TimeEncoder
	}
	if len(cfg.writers) == 0 {
		cfg.writers = []zapcore.WriteSyncer{zapcore.Lock(os.Stdout)}
	}
	if len(cfg.coreConstructors) == 0 {
		cfg.coreConstructors = []xLogCoreConstructor{newConsoleCore}
	}
	l.writers = cfg.writers

	cores := make([]xLogCore, 0, len(cfg.writers)*len(cfg.coreConstructors))
	for _, ws := range cfg.writers {
		for _, newCore := range cfg.coreConstructors {
			cores = append(cores, newCore(l.dynamicLevelEnabler, l.encoder, ws, cfg.lvlEncoder, cfg.tsEncoder))
		}
	}
	return cores
}

type XLoggerOption func(*loggerCfg) error

// NewXLogger writes to stdout unless writers are given, one core per
// writer. An invalid option panics.
func NewXLogger(opts ...XLoggerOption) XLogger {
	cfg := &loggerCfg{}
	for _, o := range opts {
		if o == nil {
			continue
		}
		if err := o(cfg); err != nil {
			panic(err)
		}
	}
	xl := &xLogger{}
	cores := cfg.apply(xl)
	xl.logger.Store(zap.New(
		XLogTeeCore(cores...),
		zap.AddCaller(),
		zap.AddCallerSkip(1), // XLogger method
	))
	return xl
}

// NewNopXLogger discards everything, the default of the solvers.
func NewNopXLogger() XLogger {
	xl := &xLogger{
		dynamicLevelEnabler: zap.NewAtomicLevelAt(zapcore.FatalLevel),
		writers:             []zapcore.WriteSyncer{zapcore.AddSync(nopWriter{})},
	}
	xl.logger.Store(zap.NewNop())
	return xl
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

// WithXLoggerWriter adds an output, each output gets its own core in the tee.
func WithXLoggerWriter(ws zapcore.WriteSyncer) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if ws == nil {
			return infra.NewErrorStack("[XLogger] nil writer")
		}
		cfg.writers = append(cfg.writers, ws)
		return nil
	}
}

func WithXLoggerEncoder(logEnc logEncoderType) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if logEnc >= _encMax {
			return infra.NewErrorStack(fmt.Sprintf("[XLogger] unknown encoder %d", logEnc))
		}
		cfg.encoderType = &logEnc
		return nil
	}
}

func WithXLoggerLevel(lvl logLevel) XLoggerOption {
	return func(cfg *loggerCfg) error {
		zl := lvl.zapLevel()
		cfg.level = &zl
		return nil
	}
}

// WithXLoggerLevelEncoder defaults to the colored capital encoder on nil.
func WithXLoggerLevelEncoder(lvlEnc zapcore.LevelEncoder) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if lvlEnc == nil {
			lvlEnc = zapcore.CapitalColorLevelEncoder
		}
		cfg.lvlEncoder = lvlEnc
		return nil
	}
}

func WithXLoggerTimeEncoder(tsEnc zapcore.TimeEncoder) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if tsEnc == nil {
			tsEnc = zapcore.ISO8601TimeEncoder
		}
		cfg.tsEncoder = tsEnc
		return nil
	}
}

// WithXLoggerContextFieldExtract logs the context value stored by
// ContextWithField(ctx, field, v) under mapTo, or under field itself with
// ContextKeyMapToItself. ContextKeyMapToOmitempty also uses field and skips
// missing values, the other mappings log them as "nil".
func WithXLoggerContextFieldExtract(field string, mapTo ...string) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if len(field) == 0 {
			return nil
		}
		if cfg.ctxFields == nil {
			cfg.ctxFields = make(map[string]string, 8)
		}
		target := ContextKeyMapToItself
		if len(mapTo) > 0 {
			target = mapTo[0]
		}
		cfg.ctxFields[field] = target
		return nil
	}
}

type ctxKey string

// ContextWithField stores value where the context field extraction looks.
func ContextWithField(ctx context.Context, field string, value any) context.Context {
	return context.WithValue(ctx, ctxKey(field), value)
}

// appendContextFields emits the fields sorted by name.
func appendContextFields(dst []zap.Field, ctx context.Context, targets map[string]string) []zap.Field {
	if ctx == nil || len(targets) == 0 {
		return dst
	}
	fields := make([]string, 0, len(targets))
	for field := range targets {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	for _, field := range fields {
		key, v := targets[field], ctx.Value(ctxKey(field))
		switch key {
		case ContextKeyMapToOmitempty:
			if v == nil {
				continue
			}
			key = field
		case ContextKeyMapToItself:
			key = field
		}
		if v == nil {
			dst = append(dst, zap.String(key, "nil"))
			continue
		}
		dst = append(dst, zap.Any(key, v))
	}
	return dst
}
