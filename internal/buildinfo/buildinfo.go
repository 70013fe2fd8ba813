package buildinfo

import "fmt"

// Set at build time via -ldflags "-X tickface/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for window titles and captions.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		if len(Commit) > 7 {
			return Commit[:7]
		}
		return Commit
	}
	return "dev"
}

// Long is logged once at startup.
func Long() string {
	return fmt.Sprintf("tickface %s (commit %s, built %s)", Version, Commit, Date)
}
