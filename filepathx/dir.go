package filepathx

import (
	"berquerant/excel-launcher-go/errorx"
	"berquerant/excel-launcher-go/logx"
	"os"
)

type DirPath struct {
	Path
}

func (d DirPath) Exist() bool {
	stat, err := os.Stat(d.String())
	return err == nil && stat.IsDir()
}

// Chdir makes d the working directory of the process.
// The change is never reverted.
func (d DirPath) Chdir() error {
	if !d.Exist() {
		return errorx.Errorf(ErrNotDir, "chdir %s", d)
	}
	err := os.Chdir(d.String())
	if err == nil {
		err = os.Setenv("PWD", d.String())
	}
	logx.Debug("chdir", logx.S("path", d.String()), logx.Err(err))
	return err
}
