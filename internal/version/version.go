// Package version exposes build-time identity for the hellofix binary.
package version

import (
	"fmt"
	"runtime"
)

// Stamped at build time:
// go build -ldflags "-X hellofix/internal/version.Version=1.1.0 -X hellofix/internal/version.Commit=$(git rev-parse HEAD)"
var (
	// Version is the semantic version of hellofix
	Version = "1.0.0"

	// Commit is the git commit hash (set at build time)
	Commit = "unknown"

	// BuildDate is the build timestamp (set at build time)
	BuildDate = "unknown"
)

// Info returns the short version string, with an abbreviated commit when
// one was stamped in.
func Info() string {
	if Commit == "unknown" || len(Commit) < 8 {
		return Version
	}
	return fmt.Sprintf("%s (%s)", Version, Commit[:7])
}

// Full returns the multi-line report printed by --version.
func Full() string {
	return fmt.Sprintf("hellofix version %s\nCommit: %s\nBuilt: %s\nGo: %s",
		Version, Commit, BuildDate, runtime.Version())
}
