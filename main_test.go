package main

import (
	"berquerant/excel-launcher-go/config"
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
)

func fail(t *testing.T, err error) {
	if err != nil {
		t.Fatal(err)
	}
}

const fakePython = `#!/bin/bash
echo "python $*" >> "$FAKE_LOG"
if [ "$1" = "--version" ] ; then
  exit "${FAKE_VERSION_EXIT:-0}"
fi
echo "processor cwd=$(pwd)"
exit 3
`

const fakePip = `#!/bin/bash
echo "pip $*" >> "$FAKE_LOG"
shift
echo "installing $*"
exit 1
`

type testRunner struct {
	launcher string
	based    string
	logFile  string
}

type testResult struct {
	stdout string
	code   int
}

func (r *testRunner) run(t *testing.T, arg ...string) *testResult {
	return r.runWithStdin(t, "\n", arg...)
}

func (r *testRunner) runWithStdin(t *testing.T, stdin string, arg ...string) *testResult {
	var stdout bytes.Buffer
	cmd := exec.Command(r.launcher, arg...)
	cmd.Dir = t.TempDir()
	cmd.Stdin = strings.NewReader(stdin)
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	result := &testResult{
		stdout: stdout.String(),
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.code = exitErr.ExitCode()
	} else {
		fail(t, err)
	}
	return result
}

func (r *testRunner) invocations(t *testing.T) []string {
	b, err := os.ReadFile(r.logFile)
	if os.IsNotExist(err) {
		return nil
	}
	fail(t, err)
	_ = os.Remove(r.logFile)
	return strings.Split(strings.TrimSuffix(string(b), "\n"), "\n")
}

func TestEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}
	based := t.TempDir()
	launcher := filepath.Join(based, "excel-launcher")
	fail(t, compileBinary(launcher))

	binDir := t.TempDir()
	fail(t, os.WriteFile(filepath.Join(binDir, "python"), []byte(fakePython), 0755))
	fail(t, os.WriteFile(filepath.Join(binDir, "pip"), []byte(fakePip), 0755))
	fail(t, os.WriteFile(filepath.Join(based, "simple_excel_processor.py"), []byte("print('hi')\n"), 0600))
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	runner := &testRunner{
		launcher: launcher,
		based:    based,
		logFile:  filepath.Join(t.TempDir(), "invocations"),
	}
	t.Setenv("FAKE_LOG", runner.logFile)

	t.Run("launch", func(t *testing.T) {
		r := runner.run(t)
		assert.Equal(t, 0, r.code)
		assert.Equal(t, []string{
			"python --version",
			"pip install pandas openpyxl pyxlsb xlrd",
			"python simple_excel_processor.py",
		}, runner.invocations(t))
		assert.Equal(t, strings.Join([]string{
			"========================================",
			"    Excel Level Processor",
			"========================================",
			"",
			"Current directory: " + based,
			"installing pandas openpyxl pyxlsb xlrd",
			"",
			"Running Excel processor...",
			"Current directory: " + based,
			"processor cwd=" + based,
			"",
			"Press any key to continue . . . ",
			"",
		}, "\n"), r.stdout)
	})

	t.Run("interpreter missing", func(t *testing.T) {
		t.Setenv("FAKE_VERSION_EXIT", "9009")
		r := runner.run(t)
		assert.Equal(t, 1, r.code)
		assert.Equal(t, []string{"python --version"}, runner.invocations(t))
		assert.Contains(t, r.stdout, "ERROR: Python is not installed or not in PATH\n")
		assert.True(t, strings.HasSuffix(r.stdout, "Press any key to continue . . . \n"))
		assert.NotContains(t, r.stdout, "Running Excel processor...")
	})

	t.Run("config file", func(t *testing.T) {
		fail(t, os.WriteFile(filepath.Join(based, "launcher.yml"), []byte("script: other.py\n"), 0600))
		defer os.Remove(filepath.Join(based, "launcher.yml"))
		r := runner.run(t, "--no-pause")
		assert.Equal(t, 0, r.code)
		assert.Equal(t, []string{
			"python --version",
			"pip install pandas openpyxl pyxlsb xlrd",
			"python other.py",
		}, runner.invocations(t))
		assert.NotContains(t, r.stdout, "Press any key")
	})

	t.Run("config from stdin", func(t *testing.T) {
		r := runner.runWithStdin(t, "script: other.py\n", "--config", "-", "--no-pause")
		assert.Equal(t, 0, r.code)
		assert.Equal(t, []string{
			"python --version",
			"pip install pandas openpyxl pyxlsb xlrd",
			"python other.py",
		}, runner.invocations(t))
	})

	t.Run("parse", func(t *testing.T) {
		t.Run("stdin json", func(t *testing.T) {
			r := runner.runWithStdin(t, "installer: [python, -m, pip, install]\n", "parse", "--config", "-", "-o", "json")
			assert.Equal(t, 0, r.code)
			assert.JSONEq(t, `{
  "interpreter": ["python"],
  "version_args": ["--version"],
  "installer": ["python", "-m", "pip", "install"],
  "script": "simple_excel_processor.py"
}`, r.stdout)
		})

		t.Run("yaml", func(t *testing.T) {
			r := runner.runWithStdin(t, "script: other.py\n", "parse", "--config", "-", "-o", "yaml")
			assert.Equal(t, 0, r.code)
			var got config.Config
			fail(t, yaml.Unmarshal([]byte(r.stdout), &got))
			assert.Equal(t, config.Config{
				Interpreter: []string{"python"},
				VersionArgs: []string{"--version"},
				Installer:   []string{"pip", "install"},
				Script:      "other.py",
			}, got)
		})

		t.Run("default format is yaml", func(t *testing.T) {
			r := runner.run(t, "parse")
			assert.Equal(t, 0, r.code)
			assert.Contains(t, r.stdout, "script: simple_excel_processor.py\n")
		})

		t.Run("unknown format", func(t *testing.T) {
			r := runner.run(t, "parse", "-o", "toml")
			assert.Equal(t, 1, r.code)
			assert.Empty(t, r.stdout)
		})

		t.Run("invalid config from stdin", func(t *testing.T) {
			r := runner.runWithStdin(t, "script: \"\"\n", "parse", "--config", "-")
			assert.Equal(t, 1, r.code)
			assert.Empty(t, r.stdout)
		})
	})

	t.Run("reject arguments", func(t *testing.T) {
		r := runner.run(t, "file.xlsx")
		assert.Equal(t, 1, r.code)
		assert.Nil(t, runner.invocations(t))
	})

	t.Run("skeleton", func(t *testing.T) {
		skeleton := filepath.Join(t.TempDir(), "skeleton.yml")
		out, err := exec.Command(launcher, "skeleton").Output()
		fail(t, err)
		fail(t, os.WriteFile(skeleton, out, 0600))

		out, err = exec.Command(launcher, "parse", "--config", skeleton, "-o", "json").Output()
		fail(t, err)
		assert.JSONEq(t, `{
  "interpreter": ["python"],
  "version_args": ["--version"],
  "installer": ["pip", "install"],
  "script": "simple_excel_processor.py"
}`, string(out))
	})

	t.Run("version", func(t *testing.T) {
		assert.Nil(t, run(launcher, "version"))
	})
}

func compileBinary(path string) error {
	return run("go", "build", "-o", path, "-v")
}

func run(name string, arg ...string) error {
	cmd := exec.Command(name, arg...)
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
