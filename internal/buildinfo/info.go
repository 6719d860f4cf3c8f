// Package buildinfo carries release metadata stamped in by the build, e.g.
// -ldflags "-X github.com/visual-poker/pokerxl/internal/buildinfo.Version=v1.2.0".
package buildinfo

import (
	"runtime/debug"
	"strings"
)

// Set through -ldflags. Commit and Date stay empty for local builds.
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// String describes the running binary. Unstamped builds installed with
// `go install module@version` report the module version instead of "dev".
func String() string {
	v := Version
	if v == "dev" {
		if bi, ok := readBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			v = bi.Main.Version
		}
	}

	var extra []string
	if Commit != "" {
		extra = append(extra, "commit "+Commit)
	}
	if Date != "" {
		extra = append(extra, "built "+Date)
	}
	if len(extra) == 0 {
		return v
	}
	return v + " (" + strings.Join(extra, ", ") + ")"
}
