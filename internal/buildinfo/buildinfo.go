// Package buildinfo carries version metadata set at link time with
// -ldflags "-X github.com/jackielii/pagesite/internal/buildinfo.Version=...".
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("pagesite %s (commit=%s, date=%s)", Version, Commit, Date)
}
