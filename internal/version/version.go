package version

import (
	"fmt"
	"runtime/debug"
)

// These variables are populated at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info returns the string printed by `ajanda --version`. Builds made with
// `go install` carry no ldflags, so the module version and VCS revision are
// read from the embedded build info instead.
func Info() string {
	version, commit := Version, Commit
	if version == "dev" {
		if bi, ok := debug.ReadBuildInfo(); ok {
			if v := bi.Main.Version; v != "" && v != "(devel)" {
				version = v
			}
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" && commit == "none" && len(s.Value) >= 7 {
					commit = s.Value[:7]
				}
			}
		}
	}
	return fmt.Sprintf("%s (commit %s, built %s)", version, commit, Date)
}
