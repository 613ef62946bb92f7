package xlog

import (
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ fxevent.Logger = (*FxXLogger)(nil)

// FxXLogger reports the fx lifecycle under the "Fx" component. Successful
// steps are debug lines, failures are error lines carrying the error.
type FxXLogger struct {
	logger XLogger
}

type fxEntry struct {
	lvl    zapcore.Level
	msg    string
	err    error
	fields []zap.Field
}

// result turns a step outcome into an entry, an empty ok message means the
// success is not logged.
func result(err error, failed, ok string, fields ...zap.Field) []fxEntry {
	switch {
	case err != nil:
		return []fxEntry{{lvl: zapcore.ErrorLevel, msg: failed, err: err, fields: fields}}
	case ok != "":
		return []fxEntry{{lvl: zapcore.DebugLevel, msg: ok, fields: fields}}
	}
	return nil
}

func hookFields(function, caller string) []zap.Field {
	return []zap.Field{zap.String("function", function), zap.String("caller", caller)}
}

// perType emits one debug entry per output type, then the outcome.
func perType(msg string, types []string, err error, stack []string, fields ...zap.Field) []fxEntry {
	entries := make([]fxEntry, 0, len(types)+1)
	for _, rtype := range types {
		entries = append(entries, fxEntry{
			lvl:    zapcore.DebugLevel,
			msg:    msg,
			fields: append([]zap.Field{zap.String("rtype", rtype)}, fields...),
		})
	}
	return append(entries, result(err, msg+" failed", "", zap.Strings("stacktrace", stack))...)
}

func fxEntries(event fxevent.Event) []fxEntry {
	switch e := event.(type) {
	case *fxevent.OnStartExecuting:
		return []fxEntry{{lvl: zapcore.DebugLevel, msg: "HOOK OnStart", fields: hookFields(e.FunctionName, e.CallerName)}}
	case *fxevent.OnStartExecuted:
		return result(e.Err, "HOOK OnStart failed", "HOOK OnStart successfully",
			append(hookFields(e.FunctionName, e.CallerName), zap.Duration("in", e.Runtime))...)
	case *fxevent.OnStopExecuting:
		return []fxEntry{{lvl: zapcore.DebugLevel, msg: "HOOK OnStop", fields: hookFields(e.FunctionName, e.CallerName)}}
	case *fxevent.OnStopExecuted:
		return result(e.Err, "HOOK OnStop failed", "HOOK OnStop successfully",
			append(hookFields(e.FunctionName, e.CallerName), zap.Duration("in", e.Runtime))...)
	case *fxevent.Supplied:
		return result(e.Err, "SUPPLY failed", "SUPPLY", zap.String("type", e.TypeName), zap.String("module", e.ModuleName))
	case *fxevent.Provided:
		return perType("PROVIDE", e.OutputTypeNames, e.Err, e.StackTrace,
			zap.Bool("private", e.Private),
			zap.String("constructor", e.ConstructorName),
			zap.String("module", e.ModuleName),
		)
	case *fxevent.Replaced:
		return perType("REPLACE", e.OutputTypeNames, e.Err, e.StackTrace, zap.String("module", e.ModuleName))
	case *fxevent.Decorated:
		return perType("DECORATE", e.OutputTypeNames, e.Err, e.StackTrace,
			zap.String("decorator", e.DecoratorName),
			zap.String("module", e.ModuleName),
		)
	case *fxevent.Invoking:
		return []fxEntry{{lvl: zapcore.DebugLevel, msg: "INVOKING",
			fields: []zap.Field{zap.String("function", e.FunctionName), zap.String("module", e.ModuleName)}}}
	case *fxevent.Invoked:
		return result(e.Err, "INVOKE failed", "", zap.String("function", e.FunctionName), zap.String("trace", e.Trace))
	case *fxevent.Stopping:
		return []fxEntry{{lvl: zapcore.InfoLevel, msg: "STOPPING", fields: []zap.Field{zap.String("signal", e.Signal.String())}}}
	case *fxevent.Stopped:
		return result(e.Err, "STOP failed", "")
	case *fxevent.RollingBack:
		return []fxEntry{{lvl: zapcore.WarnLevel, msg: "START failed, rolling back", err: e.StartErr}}
	case *fxevent.RolledBack:
		return result(e.Err, "ROLLBACK failed", "")
	case *fxevent.Started:
		return result(e.Err, "START failed", "RUNNING")
	case *fxevent.LoggerInitialized:
		return result(e.Err, "LOGGER initialization failed", "LOGGER initialized", zap.String("constructor", e.ConstructorName))
	}
	return nil
}

func (l *FxXLogger) LogEvent(event fxevent.Event) {
	if l == nil || l.logger == nil {
		return
	}
	for _, entry := range fxEntries(event) {
		switch entry.lvl {
		case zapcore.ErrorLevel:
			l.logger.Error(entry.err, entry.msg, entry.fields...)
		case zapcore.WarnLevel:
			l.logger.Warn(entry.msg, append(entry.fields, zap.Error(entry.err))...)
		case zapcore.InfoLevel:
			l.logger.Info(entry.msg, entry.fields...)
		default:
			l.logger.Debug(entry.msg, entry.fields...)
		}
	}
}

func NewFxXLogger(logger XLogger) *FxXLogger {
	return &FxXLogger{
		logger: newComponentLogger(logger, "Fx", nil),
	}
}
