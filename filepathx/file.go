package filepathx

import (
	"os"
)

type FilePath struct {
	Path
}

func (f FilePath) DirPath() DirPath {
	return f.Parent().DirPath()
}

func (f FilePath) Exist() bool {
	stat, err := os.Stat(f.String())
	return err == nil && !stat.IsDir()
}
