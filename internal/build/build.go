// Package build provides build information that is linked into the application.
// Other packages within this project can use this information in logs etc.
package build

var (
	// Version is the build version, set via -ldflags at release time.
	Version = "dev"

	// Commit is the git commit the binary was built from.
	Commit = "none"

	// Date is the build date in RFC3339 format.
	Date = "unknown"

	// ProjectName is the binary name used in version output.
	ProjectName = "v10"
)
