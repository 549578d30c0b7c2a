package console

import (
	"berquerant/excel-launcher-go/errorx"
	"berquerant/excel-launcher-go/logx"
	"errors"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// WaitKey blocks until a single key is read from r.
//
// If r is a terminal, it is switched to raw mode for the read so that
// one keypress is enough without Enter. End of input counts as a key.
func WaitKey(r io.Reader) error {
	if f, ok := r.(*os.File); ok && IsTerminal(f) {
		return waitKeyRaw(f)
	}
	return readOne(r)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func waitKeyRaw(f *os.File) error {
	fd := int(f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		logx.Debug("raw mode unavailable", logx.Err(err))
		return readOne(f)
	}
	defer func() {
		if err := term.Restore(fd, state); err != nil {
			logx.Error("restore terminal", logx.Err(err))
		}
	}()
	return readOne(f)
}

func readOne(r io.Reader) error {
	var b [1]byte
	_, err := io.ReadFull(r, b[:])
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return errorx.Errorf(err, "wait key")
}
