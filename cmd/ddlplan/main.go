// Package main is the entry point for the ddlplan CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/schemakit/ddlplan/cmd/ddlplan/commands"
	"github.com/schemakit/ddlplan/internal/config"
	"github.com/schemakit/ddlplan/internal/debug"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var debugEnabled bool

	rootCmd := &cobra.Command{
		Use:   "ddlplan",
		Short: "Dependency-ordered DDL planning",
		Long:  "ddlplan models schema objects from DDL scripts and computes dependency-safe creation and drop orders",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			debug.Init(debugEnabled)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debugEnabled, "debug", false, "Enable debug logging")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	rootCmd.AddCommand(commands.NewInitCommand(cfg))
	rootCmd.AddCommand(commands.NewValidateCommand(cfg))
	rootCmd.AddCommand(commands.NewPlanCommand(cfg))
	rootCmd.AddCommand(commands.NewScriptCommand(cfg))
	rootCmd.AddCommand(commands.NewApplyCommand(cfg))
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd.Execute()
}
