package logx

import (
	"io"
	"os"
	"sync"
)

// Kind selects the logging backend.
type Kind string

const (
	KindBlock Kind = "block"
	KindZap   Kind = "zap"
)

var (
	logger      Logger
	enableDebug bool
	kind        = KindBlock

	setupLoggerOnce sync.Once
)

// Setup initializes the global logger once.
// Logs go to stderr so that stdout stays reserved for the console transcript.
func Setup(k Kind, debug bool) {
	setupLoggerOnce.Do(func() {
		setup(k, debug, os.Stderr)
	})
}

func setup(k Kind, debug bool, w io.Writer) {
	kind = k
	enableDebug = debug
	switch k {
	case KindZap:
		logger = setupZap(debug)
	default:
		logger = setupBlock(debug, w)
	}
}

func get() Logger {
	Setup(kind, enableDebug)
	return logger
}

func Error(msg string, attrs ...Attr) {
	get().Error(msg, attrs...)
}

func Warn(msg string, attrs ...Attr) {
	get().Warn(msg, attrs...)
}

func Info(msg string, attrs ...Attr) {
	get().Info(msg, attrs...)
}

func Debug(msg string, attrs ...Attr) {
	get().Debug(msg, attrs...)
}

func Sync() error {
	return get().Sync()
}
