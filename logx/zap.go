package logx

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/slog"
)

func getZapConfig(debug bool) zap.Config {
	if debug {
		return zap.NewDevelopmentConfig()
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return config
}

func setupZap(debug bool) Logger {
	config := getZapConfig(debug)
	config.Encoding = "console"
	config.OutputPaths = []string{"stderr"}
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.DateTime)
	config.EncoderConfig.CallerKey = zapcore.OmitKey
	zapLogger, err := config.Build()
	if err != nil {
		return setupBlock(debug, os.Stderr)
	}
	return &ZapLogger{l: zapLogger}
}

type ZapLogger struct {
	l *zap.Logger
}

func (l *ZapLogger) Info(msg string, attrs ...Attr) {
	l.l.Info(msg, intoZapFields(attrs)...)
}

func (l *ZapLogger) Warn(msg string, attrs ...Attr) {
	l.l.Warn(msg, intoZapFields(attrs)...)
}

func (l *ZapLogger) Error(msg string, attrs ...Attr) {
	l.l.Error(msg, intoZapFields(attrs)...)
}

func (l *ZapLogger) Debug(msg string, attrs ...Attr) {
	l.l.Debug(msg, intoZapFields(attrs)...)
}

func (l *ZapLogger) Sync() error {
	return l.l.Sync()
}

func intoZapFields(attrs []Attr) []zap.Field {
	result := make([]zap.Field, len(attrs))
	for i, attr := range attrs {
		result[i] = attr.intoZapField()
	}
	return result
}

func (a Attr) intoZapField() zap.Field {
	switch a.Value.Kind() {
	case slog.KindString:
		return zap.String(a.Key, a.Value.String())
	case slog.KindBool:
		return zap.Bool(a.Key, a.Value.Bool())
	case slog.KindInt64:
		return zap.Int64(a.Key, a.Value.Int64())
	}
	switch value := a.Value.Any().(type) {
	case []string:
		return zap.Strings(a.Key, value)
	case error:
		return zap.NamedError(a.Key, value)
	default:
		return zap.Any(a.Key, value)
	}
}
