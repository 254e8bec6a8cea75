package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a thin wrapper around zap.Logger so that callers don't need to
// import zap themselves.
type Logger struct {
	*zap.Logger
}

var defaultLogger *Logger

func init() {
	defaultLogger = newLogger(zapcore.InfoLevel)
}

// InitLogger configures the default logger with the given level.
// Valid levels are the zap level strings (debug, info, warn, error, ...).
func InitLogger(level string) error {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}
	defaultLogger = newLogger(parsed)
	return nil
}

func Default() *Logger {
	return defaultLogger
}

func (l *Logger) Named(name string) *Logger {
	return &Logger{l.Logger.Named(name)}
}

func newLogger(level zapcore.Level) *Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	logger, _ := cfg.Build()
	return &Logger{logger}
}

// field helpers so callers don't need the zap import

func String(key, val string) zap.Field { return zap.String(key, val) }

func Int(key string, val int) zap.Field { return zap.Int(key, val) }

func Int32(key string, val int32) zap.Field { return zap.Int32(key, val) }

func Float32(key string, val float32) zap.Field { return zap.Float32(key, val) }

func Float64(key string, val float64) zap.Field { return zap.Float64(key, val) }

func Any(key string, val interface{}) zap.Field { return zap.Any(key, val) }

func ErrorField(err error) zap.Field { return zap.Error(err) }
