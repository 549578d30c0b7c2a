// Package launcher prepares the Python environment and hands over to the
// Excel processing script.
package launcher

import (
	"berquerant/excel-launcher-go/config"
	"berquerant/excel-launcher-go/console"
	"berquerant/excel-launcher-go/errorx"
	"berquerant/excel-launcher-go/execx"
	"berquerant/excel-launcher-go/filepathx"
	"berquerant/excel-launcher-go/logx"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/fatih/color"
)

var ErrInterpreterNotFound = errors.New("InterpreterNotFound")

// Packages returns the packages installed before the script runs.
// The list and its order never change.
func Packages() []string {
	return []string{"pandas", "openpyxl", "pyxlsb", "xlrd"}
}

const (
	bannerText = `========================================
    Excel Level Processor
========================================`
	runningText = "Running Excel processor..."
	pauseText   = "Press any key to continue . . . "
)

type Argument struct {
	Config *config.Config
	// BaseDir becomes the working directory; the script is resolved against it.
	BaseDir filepathx.DirPath
	// Stdin feeds the script and the keypress waits; nil disables the waits.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// NoPause skips waiting for keypresses.
	NoPause bool
	// NewExecutor builds the command of each step. nil means execx.NewCommand.
	NewExecutor func(args ...string) execx.Executor
}

type Launcher struct {
	*Argument
}

func New(argument *Argument) *Launcher {
	return &Launcher{
		Argument: argument,
	}
}

// Run executes the whole launch sequence.
//
// Only the interpreter check gates the run: it returns ErrInterpreterNotFound
// after the user acknowledged the diagnostic. Failures of the installer and the
// script are reported by themselves on the console and never stop the launcher.
func (l *Launcher) Run(ctx context.Context) error {
	l.println(bannerText)
	if err := l.BaseDir.Chdir(); err != nil {
		return errorx.Errorf(err, "change directory")
	}
	l.println()
	l.printStatus()

	if err := l.checkInterpreter(ctx); err != nil {
		if ctx.Err() != nil {
			return err
		}
		logx.Debug("interpreter check failed", logx.Err(err))
		l.reportMissingInterpreter()
		if err := l.pause(); err != nil {
			logx.Error("pause", logx.Err(err))
		}
		return err
	}

	l.install(ctx)
	if err := ctx.Err(); err != nil {
		return err
	}

	l.println()
	l.println(runningText)
	l.printStatus()
	l.delegate(ctx)
	if err := ctx.Err(); err != nil {
		return err
	}

	l.println()
	return l.pause()
}

func (l *Launcher) executor(args ...string) execx.Executor {
	if l.NewExecutor != nil {
		return l.NewExecutor(args...)
	}
	return execx.NewCommand(args...)
}

func (l *Launcher) checkInterpreter(ctx context.Context) error {
	args := slices.Concat(l.Config.Interpreter, l.Config.VersionArgs)
	r, err := l.executor(args...).Execute(ctx,
		execx.WithStdout(io.Discard),
		execx.WithStderr(io.Discard),
	)
	logx.Info("interpreter check", logx.SS("args", r.Args), logx.I("code", r.ExitCode))
	if err == nil {
		return nil
	}
	// an interrupted check says nothing about the interpreter
	if ctxErr := ctx.Err(); ctxErr != nil {
		return errorx.Errorf(ctxErr, "check interpreter %v", args)
	}
	return errorx.Errorf(errors.Join(ErrInterpreterNotFound, err), "check interpreter %v", args)
}

// install runs the package manager once.
// The result is discarded on purpose: installer output already tells the user what went wrong.
func (l *Launcher) install(ctx context.Context) {
	args := slices.Concat(l.Config.Installer, Packages())
	r, err := l.executor(args...).Execute(ctx,
		execx.WithStdout(l.Stdout),
		execx.WithStderr(l.Stderr),
		execx.WithoutCapture(),
	)
	logx.Debug("install finished", logx.SS("args", r.Args), logx.I("code", r.ExitCode), logx.Err(err))
}

// delegate runs the processing script by name from the working directory.
// The result is discarded on purpose, same as install.
func (l *Launcher) delegate(ctx context.Context) {
	script := filepathx.PWD().Join(l.Config.Script).FilePath()
	logx.Debug("script", logx.S("path", script.String()), logx.B("exist", script.Exist()))

	args := append(slices.Clone(l.Config.Interpreter), l.Config.Script)
	r, err := l.executor(args...).Execute(ctx,
		execx.WithStdin(l.Stdin),
		execx.WithStdout(l.Stdout),
		execx.WithStderr(l.Stderr),
		execx.WithoutCapture(),
	)
	logx.Debug("script finished", logx.SS("args", r.Args), logx.I("code", r.ExitCode), logx.Err(err))
}

func (l *Launcher) reportMissingInterpreter() {
	errorColor := color.New(color.FgRed, color.Bold)
	_, _ = errorColor.Fprintln(l.Stdout, "ERROR: Python is not installed or not in PATH")
	l.println("Please install Python from https://python.org")
}

func (l *Launcher) pause() error {
	if l.NoPause || l.Stdin == nil {
		return nil
	}
	_, _ = fmt.Fprint(l.Stdout, pauseText)
	err := console.WaitKey(l.Stdin)
	l.println()
	return err
}

func (l *Launcher) printStatus() {
	l.println("Current directory:", filepathx.PWD().String())
}

func (l *Launcher) println(a ...any) {
	_, _ = fmt.Fprintln(l.Stdout, a...)
}
