package logx

import (
	"context"
	"io"

	"golang.org/x/exp/slog"
)

func setupBlock(debug bool, w io.Writer) Logger {
	return NewBlockLogger(w, levelOf(debug))
}

func levelOf(debug bool) slog.Level {
	if debug {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

func NewBlockLogger(w io.Writer, level slog.Leveler) *BlockLogger {
	levelHandler := NewLevelHandler(level, NewBlockHandler(w))
	return &BlockLogger{
		slog.New(levelHandler),
	}
}

type BlockLogger struct {
	*slog.Logger
}

func (l *BlockLogger) logAttrs(level slog.Level, msg string, attrs ...Attr) {
	rawAttrs := make([]slog.Attr, len(attrs))
	for i, attr := range attrs {
		rawAttrs[i] = slog.Attr(attr)
	}
	l.LogAttrs(context.Background(), level, msg, rawAttrs...)
}

func (l *BlockLogger) Info(msg string, attrs ...Attr) {
	l.logAttrs(slog.LevelInfo, msg, attrs...)
}

func (l *BlockLogger) Warn(msg string, attrs ...Attr) {
	l.logAttrs(slog.LevelWarn, msg, attrs...)
}

func (l *BlockLogger) Error(msg string, attrs ...Attr) {
	l.logAttrs(slog.LevelError, msg, attrs...)
}

func (l *BlockLogger) Debug(msg string, attrs ...Attr) {
	l.logAttrs(slog.LevelDebug, msg, attrs...)
}

func (*BlockLogger) Sync() error {
	return nil
}
