package execx

import (
	"berquerant/excel-launcher-go/errorx"
	"berquerant/excel-launcher-go/logx"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"golang.org/x/sync/errgroup"
)

var ErrNoCommand = errors.New("NoCommand")

// Executor runs an external command.
type Executor interface {
	Execute(ctx context.Context, opt ...ConfigOption) (Result, error)
}

func NewCommand(args ...string) *Command {
	return &Command{
		args: args,
	}
}

// Command is an external command with fixed arguments.
type Command struct {
	args []string
}

type Result struct {
	Args   []string
	Stderr string
	Stdout string
	// ExitCode is -1 when the command did not run to completion.
	ExitCode int
}

// Success reports whether the command exited with status 0.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Execute runs the command and waits for it.
// stdout and stderr are captured into the Result unless WithoutCapture is given and,
// when writers are configured, copied to them unmodified while the command runs.
// A non-zero exit status is returned as an error wrapping *exec.ExitError.
func (c *Command) Execute(ctx context.Context, opt ...ConfigOption) (result Result, retErr error) {
	config := newConfig()
	config.Apply(opt...)

	result.ExitCode = -1
	if len(c.args) == 0 {
		retErr = ErrNoCommand
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		env          = config.Env.Add(EnvFromEnviron())
		expandedArgs = env.ExpandStrings(c.args)
		envSlice     = env.IntoSlice()
	)
	result.Args = expandedArgs

	logx.Info("exec start",
		logx.S("dir", config.Dir.String()),
		logx.SS("args", c.args),
		logx.SS("expanded", expandedArgs),
	)
	logx.Debug("exec start",
		logx.SS("env", envSlice),
	)
	defer func() {
		logx.Info("exec end", logx.I("code", result.ExitCode), logx.Err(retErr))
	}()

	cmd := exec.CommandContext(ctx, expandedArgs[0], expandedArgs[1:]...)
	cmd.Dir = config.Dir.String()
	cmd.Env = envSlice
	cmd.Stdin = config.Stdin
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		retErr = errorx.Errorf(err, "stdout pipe")
		return
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		retErr = errorx.Errorf(err, "stderr pipe")
		return
	}
	var (
		stdoutBuf strings.Builder
		stderrBuf strings.Builder
		eg        errgroup.Group
	)

	if err := cmd.Start(); err != nil {
		retErr = errorx.Errorf(err, "command start")
		return
	}
	// read stdout and stderr
	eg.Go(func() error {
		_, err := io.Copy(teeTo(&stdoutBuf, config.Stdout, !config.NoCapture), stdout)
		return err
	})
	eg.Go(func() error {
		_, err := io.Copy(teeTo(&stderrBuf, config.Stderr, !config.NoCapture), stderr)
		return err
	})
	readErr := eg.Wait()
	waitErr := cmd.Wait()

	result.Stdout = stdoutBuf.String()
	result.Stderr = stderrBuf.String()
	if state := cmd.ProcessState; state != nil {
		result.ExitCode = state.ExitCode()
	}

	if ctxErr := ctx.Err(); ctxErr != nil && waitErr != nil {
		retErr = errorx.Errorf(errors.Join(ctxErr, waitErr), "command wait")
		return
	}
	if waitErr != nil {
		retErr = errorx.Errorf(waitErr, "command wait")
		return
	}
	if readErr != nil {
		retErr = errorx.Errorf(readErr, "read wait")
		return
	}
	return
}

func teeTo(buf io.Writer, w io.Writer, capture bool) io.Writer {
	switch {
	case !capture && w == nil:
		return io.Discard
	case !capture:
		return w
	case w == nil:
		return buf
	default:
		return io.MultiWriter(buf, w)
	}
}
