package version

import (
	"fmt"
	"io"
	"runtime/debug"
)

// Write prints the module version and build settings of the running binary.
func Write(w io.Writer) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		_, _ = fmt.Fprintln(w, "unknown")
		return
	}
	_, _ = fmt.Fprintf(w, "%s %s %s\n", info.Main.Path, info.Main.Version, info.GoVersion)
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision", "vcs.time", "vcs.modified", "GOOS", "GOARCH":
			_, _ = fmt.Fprintf(w, "%s=%s\n", s.Key, s.Value)
		}
	}
}
