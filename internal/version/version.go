package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/iconrules/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/iconrules/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/iconrules/internal/version.Date={{.Date}}
)

// String returns the multi-line version banner.
func String() string {
	return fmt.Sprintf("iconrules version %s\n  commit: %s\n  built:  %s\n", Version, Commit, Date)
}
