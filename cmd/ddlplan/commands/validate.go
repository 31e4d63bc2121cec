package commands

import (
	"github.com/spf13/cobra"

	"github.com/schemakit/ddlplan/internal/config"
	"github.com/schemakit/ddlplan/internal/ui"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(cfg *config.Config) *cobra.Command {
	var scriptPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a DDL script",
		Long:  "Parse a DDL script, build the schema model, and check that a creation order exists",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(scriptPath)
		},
	}

	cmd.Flags().StringVar(&scriptPath, "script", cfg.ScriptPath, "Path to DDL script")

	return cmd
}

func runValidate(scriptPath string) error {
	model, file, err := loadModel(scriptPath)
	if err != nil {
		return err
	}

	if _, err := planModel(model, file); err != nil {
		return err
	}

	ui.PrintSuccess("Script %s is valid: %d object(s), creation order exists", scriptPath, model.Len())
	return nil
}
