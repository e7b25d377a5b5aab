// Package version provides build version information.
package version

import "runtime"

// Injected at build time via -ldflags "-X github.com/Norgate-AV/deskcycle/internal/version.version=..."
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// GetVersion returns the semantic version
func GetVersion() string {
	return version
}

// GetCommit returns the git commit hash.
func GetCommit() string {
	return commit
}

// GetDate returns the build date.
func GetDate() string {
	return date
}

// GetFullVersion returns version with commit and date info
func GetFullVersion() string {
	return version + " (commit: " + commit + ", built: " + date + ")"
}

// LogAttrs returns the build information as key/value pairs for the startup log line
func LogAttrs() []any {
	return []any{
		"version", version,
		"commit", commit,
		"built", date,
		"go", runtime.Version(),
		"arch", runtime.GOOS + "/" + runtime.GOARCH,
	}
}
