package execx

import (
	"berquerant/excel-launcher-go/filepathx"
	"io"
)

// Config is the per-execution configuration of a Command.
type Config struct {
	Dir    filepathx.DirPath
	Env    Env
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// NoCapture leaves Result.Stdout and Result.Stderr empty.
	NoCapture bool
}

type ConfigOption func(*Config)

func newConfig() *Config {
	return &Config{
		Dir: filepathx.PWD(),
		Env: NewEnv(),
	}
}

func (c *Config) Apply(opt ...ConfigOption) {
	for _, f := range opt {
		f(c)
	}
}

func WithDir(dir filepathx.DirPath) ConfigOption {
	return func(c *Config) {
		c.Dir = dir
	}
}

// WithEnv sets additional environment variables.
// Variables of the current process take precedence.
func WithEnv(env Env) ConfigOption {
	return func(c *Config) {
		c.Env = EnvFromMap(env)
	}
}

// WithStdin connects r to the stdin of the command.
func WithStdin(r io.Reader) ConfigOption {
	return func(c *Config) {
		c.Stdin = r
	}
}

// WithStdout copies the stdout of the command into w as it is produced.
func WithStdout(w io.Writer) ConfigOption {
	return func(c *Config) {
		c.Stdout = w
	}
}

// WithStderr copies the stderr of the command into w as it is produced.
func WithStderr(w io.Writer) ConfigOption {
	return func(c *Config) {
		c.Stderr = w
	}
}

// WithoutCapture stops collecting the output into the Result.
// Configured writers still receive it.
func WithoutCapture() ConfigOption {
	return func(c *Config) {
		c.NoCapture = true
	}
}
