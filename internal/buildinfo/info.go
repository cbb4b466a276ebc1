// Package buildinfo carries version details stamped in at link time, e.g.
//
//	go build -ldflags "-X github.com/cleared-dev/dre/internal/buildinfo.Version=v0.3.0"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Summary formats the version line printed by dre --version.
func Summary() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
