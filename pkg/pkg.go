//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

// Version is the semantic version of the exprkit module embedded at build
// time. It is printed by the CLI version flag.
//
//go:embed VERSION
var Version string

const (
	// Name is the canonical command and module identifier used across the
	// project.
	Name = "exprkit"
	// Description is a short, human-readable summary of the project used in
	// help output.
	Description = "Embeddable expression language"
)

// VersionString returns the embedded version with surrounding whitespace
// removed.
func VersionString() string {
	return strings.TrimSpace(Version)
}
