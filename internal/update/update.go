package update

import (
	"fmt"
	"runtime"

	"github.com/hashicorp/go-version"

	"github.com/schemakit/ddlplan/internal/ui"
)

// latestKnownVersion is the most recent release this build knows about.
// TODO: fetch the latest release tag from the GitHub API instead.
const latestKnownVersion = "0.1.0"

// CheckForUpdates compares the running version against the latest known
// release and prints a notice when an update is available.
func CheckForUpdates(currentVersion string) error {
	current, err := version.NewVersion(currentVersion)
	if err != nil {
		return fmt.Errorf("invalid version format: %w", err)
	}

	latest, err := version.NewVersion(latestKnownVersion)
	if err != nil {
		return fmt.Errorf("invalid latest version format: %w", err)
	}

	if current.LessThan(latest) {
		ui.PrintWarning("A new version is available!")
		fmt.Printf("Current version: %s\n", currentVersion)
		fmt.Printf("Latest version:  %s\n", latestKnownVersion)
		fmt.Printf("\nUpdate with: go install github.com/schemakit/ddlplan/cmd/ddlplan@latest\n")
		fmt.Printf("Or download:  %s\n", GetDownloadURL(latestKnownVersion))
	}

	return nil
}

// GetDownloadURL returns the download URL for the current platform
func GetDownloadURL(version string) string {
	return fmt.Sprintf("https://github.com/schemakit/ddlplan/releases/download/v%s/ddlplan-%s-%s", version, runtime.GOOS, runtime.GOARCH)
}
