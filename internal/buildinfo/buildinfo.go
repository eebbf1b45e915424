// Package buildinfo carries the version/commit/date payload SPEC_FULL.md
// §4 derives from source/cymb/version.c, set via -ldflags the way the
// teacher's main.go sets its own Version/Commit/Date package vars.
package buildinfo

var (
	// Version is the semantic version, overridden at build time with
	// -ldflags "-X github.com/cymbtoolchain/cymb/internal/buildinfo.Version=v1.2.3".
	Version = "dev"
	// Commit is the short git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// String renders the "-v"/"--version" payload.
func String(toolName string) string {
	s := toolName + " " + Version
	if Commit != "unknown" {
		s += "\ncommit: " + Commit
	}
	if Date != "unknown" {
		s += "\nbuilt: " + Date
	}
	return s
}
