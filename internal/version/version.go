// Package version exposes the build version injected at link time via
// -ldflags "-X github.com/loregate/loregate/internal/version.version=...".
package version

var version = "dev"

// String returns the build version for the current binary.
func String() string {
	return version
}

// UserAgent returns the User-Agent value sent on upstream fetches.
func UserAgent() string {
	return "loregate/" + version
}
