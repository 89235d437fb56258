package version

import (
	"fmt"

	"github.com/fatih/color"
)

// Version information for the propctl CLI.
// These variables can be overridden at build time via -ldflags.

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	Major  = "0"
	Minor  = "3"
	Patch  = "0"
	Suffix = "-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// String is the plain semantic version, e.g. "0.3.0-dev".
func String() string {
	return fmt.Sprintf("%s.%s.%s%s", Major, Minor, Patch, Suffix)
}

// Colored renders the version with a colour per component. fatih/color
// drops the escapes when colour output is disabled.
func Colored() string {
	return versionMajorColor.Sprint(Major) + "." +
		versionMinorColor.Sprint(Minor) + "." +
		versionPatchColor.Sprint(Patch) + Suffix
}
