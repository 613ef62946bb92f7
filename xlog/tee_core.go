package xlog

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ xLogCore = (xLogMultiCore)(nil)

// xLogMultiCore duplicates every entry into each core. The errors of the
// cores are combined, one failing writer does not silence the others.
type xLogMultiCore []xLogCore

func (mc xLogMultiCore) parts() (coreParts, bool) {
	return coreParts{}, false
}

func (mc xLogMultiCore) each(fn func(c xLogCore) error) error {
	var err error
	for _, c := range mc {
		err = multierr.Append(err, fn(c))
	}
	return err
}

func (mc xLogMultiCore) With(fields []zap.Field) zapcore.Core {
	cores := make([]zapcore.Core, 0, len(mc))
	for _, c := range mc {
		cores = append(cores, c.With(fields))
	}
	return zapcore.NewTee(cores...)
}

// Level is the most verbose level of the cores, InvalidLevel when empty.
func (mc xLogMultiCore) Level() zapcore.Level {
	lvl := zapcore.InvalidLevel
	for _, c := range mc {
		lvl = min(lvl, zapcore.LevelOf(c))
	}
	return lvl
}

func (mc xLogMultiCore) Enabled(lvl zapcore.Level) bool {
	for _, c := range mc {
		if c.Enabled(lvl) {
			return true
		}
	}
	return false
}

func (mc xLogMultiCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	for _, c := range mc {
		ce = c.Check(ent, ce)
	}
	return ce
}

func (mc xLogMultiCore) Write(ent zapcore.Entry, fields []zap.Field) error {
	return mc.each(func(c xLogCore) error { return c.Write(ent, fields) })
}

func (mc xLogMultiCore) Sync() error {
	return mc.each(xLogCore.Sync)
}

func (mc xLogMultiCore) wrap(lvlEnabler zapcore.LevelEnabler, cfg zapcore.EncoderConfig) (xLogCore, error) {
	wrapped := make(xLogMultiCore, 0, len(mc))
	for _, c := range mc {
		w, err := wrapCore(c, lvlEnabler, cfg)
		if err != nil {
			return nil, err
		}
		wrapped = append(wrapped, w)
	}
	return wrapped, nil
}

// XLogTeeCore drops the nil cores.
func XLogTeeCore(cores ...xLogCore) xLogCore {
	tee := make(xLogMultiCore, 0, len(cores))
	for _, c := range cores {
		if c != nil {
			tee = append(tee, c)
		}
	}
	return tee
}
