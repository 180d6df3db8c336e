package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop().Sugar()

// Option configures InitZap.
type Option struct {
	MultiWriter []io.Writer
	Level       zapcore.Level
}

type OptionFunc func(*Option)

// SetWriters replaces the default stdout writer.
func SetWriters(w ...io.Writer) OptionFunc {
	return func(o *Option) {
		o.MultiWriter = w
	}
}

func SetLevel(level zapcore.Level) OptionFunc {
	return func(o *Option) {
		o.Level = level
	}
}

// InitZap logger with default writer to stdout
func InitZap(opts ...OptionFunc) {
	opt := Option{
		MultiWriter: []io.Writer{os.Stdout},
		Level:       zapcore.InfoLevel,
	}
	for _, o := range opts {
		o(&opt)
	}

	encCfg := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		MessageKey: "message",

		LevelKey:    "level",
		EncodeLevel: zapcore.CapitalLevelEncoder,

		TimeKey:    "time",
		EncodeTime: zapcore.ISO8601TimeEncoder,

		CallerKey:    "caller",
		EncodeCaller: zapcore.ShortCallerEncoder,
	})

	var cores []zapcore.Core
	for _, w := range opt.MultiWriter {
		cores = append(cores, zapcore.NewCore(encCfg, zapcore.AddSync(w), opt.Level))
	}

	logger = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()
}

// Sync flushes buffered entries.
func Sync() {
	_ = logger.Sync()
}

// Log func
func Log(level zapcore.Level, message string, context string, scope string) {
	entry := logger.With(
		zap.String("context", context),
		zap.String("scope", scope),
	)
	setEntryType(level, entry, message)
}

// LogWithFields logs message with structured key/value pairs.
func LogWithFields(level zapcore.Level, message string, keysAndValues ...interface{}) {
	setEntryType(level, logger.With(keysAndValues...), message)
}

func LogI(message string) {
	logger.Info(message)
}

func LogIf(format string, i ...interface{}) {
	logger.Infof(format, i...)
}

func LogW(message string) {
	logger.Warn(message)
}

func LogWf(format string, i ...interface{}) {
	logger.Warnf(format, i...)
}

func LogE(message string) {
	logger.Error(message)
}

func LogEf(format string, i ...interface{}) {
	logger.Errorf(format, i...)
}

func setEntryType(level zapcore.Level, entry *zap.SugaredLogger, message string) {
	switch level {
	case zapcore.DebugLevel:
		entry.Debug(message)
	case zapcore.WarnLevel:
		entry.Warn(message)
	case zapcore.ErrorLevel:
		entry.Error(message)
	default:
		entry.Info(message)
	}
}
