package version

import (
	"fmt"

	"github.com/philipparndt/govec/pkg/geometry"
)

// These variables are set via ldflags during build
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// GetVersion returns the version string
func GetVersion() string {
	return Version
}

// Precision names the component type compiled into this binary
func Precision() string {
	return fmt.Sprintf("float%d", geometry.ScalarBits)
}

// GetFullVersion returns a full version string with commit, date and precision
func GetFullVersion() string {
	if Version == "dev" {
		return "dev (" + Precision() + ")"
	}
	return fmt.Sprintf("%s (commit %s, built %s, %s)", Version, GitCommit, BuildDate, Precision())
}
