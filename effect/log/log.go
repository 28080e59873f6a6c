package log

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lazybind/effect_monad_go/effect"
)

// Level defines the severity level for log effects.
type Level string

const (
	// LevelInfo is used for general informational messages.
	LevelInfo Level = "info"

	// LevelWarn is used for potentially harmful situations.
	LevelWarn Level = "warn"

	// LevelError is used for error events that might still allow the application to continue running.
	LevelError Level = "error"

	// LevelDebug is used for debugging messages with detailed internal information.
	LevelDebug Level = "debug"
)

// Eff returns a deferred structured log line. Building the effect
// writes nothing; invoking it writes exactly one entry to the given
// zap.Logger. Because the result is an ordinary Effect, log lines can
// be sequenced between other effects with Then to record progress at
// well-defined points of a chain.
func Eff(logger *zap.Logger, level Level, msg string, fields map[string]interface{}) effect.Effect[effect.Unit] {
	return effect.Defer(func() effect.Unit {
		zfields := make([]zap.Field, 0, len(fields))
		for k, v := range fields {
			zfields = append(zfields, zap.Any(k, v))
		}

		switch level {
		case LevelInfo:
			logger.Info(msg, zfields...)
		case LevelWarn:
			logger.Warn(msg, zfields...)
		case LevelError:
			logger.Error(msg, zfields...)
		case LevelDebug:
			logger.Debug(msg, zfields...)
		default:
			logger.Info(msg, zfields...)
		}
		return effect.Unit{}
	})
}

// Debug returns a deferred debug-level log effect.
func Debug(logger *zap.Logger, msg string, fields map[string]interface{}) effect.Effect[effect.Unit] {
	return Eff(logger, LevelDebug, msg, fields)
}

// Info returns a deferred info-level log effect.
func Info(logger *zap.Logger, msg string, fields map[string]interface{}) effect.Effect[effect.Unit] {
	return Eff(logger, LevelInfo, msg, fields)
}

// Warn returns a deferred warn-level log effect.
func Warn(logger *zap.Logger, msg string, fields map[string]interface{}) effect.Effect[effect.Unit] {
	return Eff(logger, LevelWarn, msg, fields)
}

// Error returns a deferred error-level log effect.
func Error(logger *zap.Logger, msg string, fields map[string]interface{}) effect.Effect[effect.Unit] {
	return Eff(logger, LevelError, msg, fields)
}

// Traced wraps an effect with begin/end debug entries. Each traced
// composition gets its own effect id, stamped at composition time so
// that every invocation of the same composite carries the same id.
func Traced[A any](logger *zap.Logger, name string, e effect.Effect[A]) effect.Effect[A] {
	effectId := uuid.New().String()
	return effect.Defer(func() A {
		logger.Sugar().Debugf("invoking effect: effectId: %v, name: %v", effectId, name)
		v := e.Invoke()
		logger.Sugar().Debugf("invoked effect: effectId: %v, name: %v", effectId, name)
		return v
	})
}
