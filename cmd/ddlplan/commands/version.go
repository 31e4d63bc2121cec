package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/schemakit/ddlplan/internal/update"
)

// Version information (set at build time).
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	var checkUpdates bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Display version information for the ddlplan CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			printVersionInfo()
			if checkUpdates && Version != "dev" {
				return update.CheckForUpdates(Version)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&checkUpdates, "check-updates", false, "Check whether a newer release is available")

	return cmd
}

func printVersionInfo() {
	fmt.Printf("ddlplan version %s\n", Version)
	fmt.Printf("  Git Commit: %s\n", GitCommit)
	fmt.Printf("  Build Time: %s\n", BuildTime)
	fmt.Printf("  Go Version: %s\n", runtime.Version())
	fmt.Printf("  OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}
