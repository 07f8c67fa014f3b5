// Package version holds build metadata injected by the linker.
package version

// Set via -ldflags at build time, see magefile.go.
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)
