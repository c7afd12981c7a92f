// Package version reports the forge build.
package version

import (
	"fmt"
	"strings"
)

// Version, CommitSHA, and BuildDate are set via ldflags at build time:
//
//	go build -ldflags "-X github.com/barun-bash/forge/internal/version.Version=0.2.0 -X .../version.CommitSHA=abc1234"
var (
	Version   = "0.1.0"
	CommitSHA = "dev"
	BuildDate = "unknown"
)

// Short returns the bare semantic version without a leading "v".
func Short() string { return strings.TrimPrefix(Version, "v") }

// Info returns "0.1.0" for dev builds and "0.1.0 (abc1234, 2026-10-01)"
// for release builds.
func Info() string {
	if CommitSHA == "dev" || CommitSHA == "" {
		return Short()
	}
	return fmt.Sprintf("%s (%s, %s)", Short(), CommitSHA, BuildDate)
}
