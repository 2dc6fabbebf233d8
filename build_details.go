package nextcase

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/blang/semver/v4"
)

// Set via ldflags at release time; source builds keep the defaults.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Version returns the compiled version or "dev" if run from source.
func Version() string {
	return version
}

// SemVer parses the version as semantic versioning. The leading "v" of a
// release tag is accepted. The bool is false for development builds.
func SemVer() (semver.Version, bool) {
	v, err := semver.Parse(strings.TrimPrefix(version, "v"))
	if err != nil {
		return semver.Version{}, false
	}
	return v, true
}

// IsRelease reports whether the binary was built from a stable release tag.
func IsRelease() bool {
	v, ok := SemVer()
	return ok && len(v.Pre) == 0
}

// Commit returns the git commit the binary was built from, or "unknown".
func Commit() string {
	return commit
}

// BuildTime returns the RFC3339 build timestamp, or "unknown".
func BuildTime() string {
	return buildTime
}

// GoVersion returns the Go runtime version the binary was built with.
func GoVersion() string {
	return runtime.Version()
}

// UserAgent returns the name/version pair reported to MCP clients.
func UserAgent() string {
	return fmt.Sprintf("nextcase/%s", version)
}

// BuildInfo returns all build metadata as a multi-line string.
func BuildInfo() string {
	return fmt.Sprintf("Version: %s\nCommit: %s\nBuild Time: %s\nGo Version: %s",
		Version(), Commit(), BuildTime(), GoVersion())
}
