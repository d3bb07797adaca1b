// Package buildinfo holds build-time metadata injected via -ldflags.
package buildinfo

// Version is the semantic version or tag for this build.
// Inject via: -X github.com/carebridge-sg/carebot-go/internal/buildinfo.Version=...
var Version = ""

// Commit is the git commit SHA for this build.
// Inject via: -X github.com/carebridge-sg/carebot-go/internal/buildinfo.Commit=...
var Commit = ""

// BuildDate is the RFC3339 build timestamp.
// Inject via: -X github.com/carebridge-sg/carebot-go/internal/buildinfo.BuildDate=...
var BuildDate = ""

// Short returns the version, falling back to "dev" for untagged builds.
func Short() string {
	if Version == "" {
		return "dev"
	}
	return Version
}
