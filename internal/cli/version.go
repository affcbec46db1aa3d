package cli

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// formatVersion renders the --version line. Release builds are normalized to
// their semver form ("v1.2" → "1.2.0"); dev builds are printed as given.
func formatVersion(version, commit, date string) string {
	if v, err := semver.NewVersion(strings.TrimPrefix(version, "v")); err == nil {
		version = v.String()
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
}
