package xlog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xdsa/lib/infra"
)

// coreParts are what a core is assembled from.
type coreParts struct {
	ws      zapcore.WriteSyncer
	encoder logEncoderType
	lvlEnc  zapcore.LevelEncoder
	tsEnc   zapcore.TimeEncoder
}

func (p coreParts) assemble(cfg zapcore.EncoderConfig, lvlEnabler zapcore.LevelEnabler) *partsCore {
	cfg.EncodeLevel = p.lvlEnc
	cfg.EncodeTime = p.tsEnc
	return &partsCore{
		Core:       zapcore.NewCore(p.encoder.newEncoder(cfg), p.ws, lvlEnabler),
		p:          p,
		lvlEnabler: lvlEnabler,
	}
}

var _ xLogCore = (*partsCore)(nil)

// partsCore writes through the embedded io core.
type partsCore struct {
	zapcore.Core
	p          coreParts
	lvlEnabler zapcore.LevelEnabler
}

func (c *partsCore) parts() (coreParts, bool) {
	return c.p, true
}

func (c *partsCore) Enabled(lvl zapcore.Level) bool {
	return c.lvlEnabler.Enabled(lvl)
}

func (c *partsCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.Enabled(ent.Level) {
		return ce
	}
	return ce.AddCore(ent, c)
}

func consoleEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:    "msg",
		LevelKey:      "lvl",
		TimeKey:       "ts",
		NameKey:       "component",
		EncodeName:    zapcore.FullNameEncoder,
		CallerKey:     "callAt",
		EncodeCaller:  zapcore.ShortCallerEncoder,
		FunctionKey:   "fn",
		StacktraceKey: keyOmitted,
	}
}

// componentEncoderConfig drops the caller, it would point into the
// library that logs through the adapter.
func componentEncoderConfig() zapcore.EncoderConfig {
	cfg := consoleEncoderConfig()
	cfg.CallerKey = keyOmitted
	cfg.FunctionKey = keyOmitted
	return cfg
}

// newConsoleCore returns nil for a nil ws, XLogTeeCore skips it.
func newConsoleCore(
	lvlEnabler zapcore.LevelEnabler,
	encoder logEncoderType,
	ws zapcore.WriteSyncer,
	lvlEnc zapcore.LevelEncoder,
	tsEnc zapcore.TimeEncoder,
) xLogCore {
	if ws == nil {
		return nil
	}
	p := coreParts{ws: ws, encoder: encoder, lvlEnc: lvlEnc, tsEnc: tsEnc}
	return p.assemble(consoleEncoderConfig(), lvlEnabler)
}

// wrapCore re-encodes core with cfg. A nil lvlEnabler follows the level of
// the wrapped core.
func wrapCore(core xLogCore, lvlEnabler zapcore.LevelEnabler, cfg zapcore.EncoderConfig) (xLogCore, error) {
	if core == nil {
		return nil, infra.NewErrorStack("[XLogger] logger core is nil")
	}
	p, ok := core.parts()
	if !ok {
		return nil, infra.NewErrorStack("[XLogger] logger core has no parts to wrap")
	}
	if lvlEnabler == nil {
		lvlEnabler = zap.LevelEnablerFunc(core.Enabled)
	}
	return p.assemble(cfg, lvlEnabler), nil
}

// newComponentLogger derives the logger of a third party adapter, named
// after the component and optionally with its own level.
func newComponentLogger(parent XLogger, name string, lvlEnabler zapcore.LevelEnabler) *xLogger {
	p, ok := parent.(*xLogger)
	if !ok || p == nil || p.zap() == nil {
		panic("[XLogger] parent logger is not initialized")
	}
	cfg := componentEncoderConfig()
	l := p.child()
	l.logger.Store(p.zap().
		Named(name).
		WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			var (
				wrapped xLogCore
				err     error
			)
			switch c := core.(type) {
			case xLogMultiCore:
				wrapped, err = c.wrap(lvlEnabler, cfg)
			case xLogCore:
				wrapped, err = wrapCore(c, lvlEnabler, cfg)
			default:
				// zap.NewNop and foreign cores stay untouched.
				return core
			}
			if err != nil {
				panic(err)
			}
			return wrapped
		})),
	)
	return l
}
