package cmd

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(skeletonCmd)
}

var skeletonCmd = &cobra.Command{
	Use:   "skeleton",
	Short: "Generate config skeleton",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Println(skeleton)
	},
}

const skeleton = `# excel-launcher configuration.
#
# excel-launcher executes the process in the following order.
#
# 1. change the working directory to the directory of excel-launcher
# 2. check the interpreter: interpreter + version_args
# 3. install packages: installer pandas openpyxl pyxlsb xlrd
# 4. run the script: interpreter + script
# 5. wait for a key
#
# Only 2 can stop the process. Failures of 3 and 4 are ignored.
#
# This file is optional.
# It is read from launcher.yml next to excel-launcher unless --config is given.
# Every key can be overridden by environment variables prefixed with EXCEL_LAUNCHER_,
# e.g. EXCEL_LAUNCHER_SCRIPT=other.py, EXCEL_LAUNCHER_INTERPRETER=py,-3
#
# interpreter command (optional, default is [python])
interpreter:
  - python
# arguments to check the interpreter (optional, default is [--version])
version_args:
  - --version
# package installer, packages are appended (optional, default is [pip, install])
installer:
  - pip
  - install
# processing script relative to the directory of excel-launcher
# (optional, default is simple_excel_processor.py)
script: simple_excel_processor.py`
