package filepathx

import (
	"errors"
	"os"
	"path/filepath"
)

type Path string

var (
	ErrNotAbs = errors.New("NotAbs")
	ErrNotDir = errors.New("NotDir")
)

func PWD() DirPath {
	p, _ := NewPath(".")
	return p.DirPath()
}

func NewPath(path string) (Path, error) {
	x, err := filepath.Abs(path)
	if err != nil {
		return Path(""), errors.Join(ErrNotAbs, err)
	}
	return Path(x), nil
}

// Executable returns the path of the running binary with symlinks resolved.
func Executable() (FilePath, error) {
	x, err := os.Executable()
	if err != nil {
		return FilePath{}, err
	}
	if y, err := filepath.EvalSymlinks(x); err == nil {
		x = y
	}
	p, err := NewPath(x)
	if err != nil {
		return FilePath{}, err
	}
	return p.FilePath(), nil
}

// Join joins relPath to the path if relPath is not an absolute path.
func (p Path) Join(relPath string) Path {
	if filepath.IsLocal(relPath) {
		return Path(filepath.Join(p.String(), relPath))
	}
	return p
}

func (p Path) Parent() Path {
	return Path(filepath.Dir(p.String()))
}

func (p Path) String() string {
	return string(p)
}

func (p Path) DirPath() DirPath {
	return DirPath{p}
}

func (p Path) FilePath() FilePath {
	return FilePath{p}
}
