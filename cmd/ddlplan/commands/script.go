package commands

import (
	"github.com/spf13/cobra"

	"github.com/schemakit/ddlplan/internal/config"
	"github.com/schemakit/ddlplan/render"
)

// NewScriptCommand creates the script command.
func NewScriptCommand(cfg *config.Config) *cobra.Command {
	var scriptPath string
	var outputPath string
	var renderDrop bool

	cmd := &cobra.Command{
		Use:   "script",
		Short: "Render an ordered DDL script",
		Long:  "Render the dependency-ordered create (or drop) statements as an executable script",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(scriptPath, outputPath, renderDrop)
		},
	}

	cmd.Flags().StringVar(&scriptPath, "script", cfg.ScriptPath, "Path to DDL script")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "-", "Output path (- for stdout)")
	cmd.Flags().BoolVar(&renderDrop, "drop", false, "Render the drop script instead of the create script")

	return cmd
}

func runScript(scriptPath, outputPath string, renderDrop bool) error {
	model, file, err := loadModel(scriptPath)
	if err != nil {
		return err
	}

	plan, err := planModel(model, file)
	if err != nil {
		return err
	}

	content := render.CreateScript(plan.CreateOrder)
	if renderDrop {
		content = render.DropScript(plan.DropOrder)
	}
	return writeOutput(outputPath, content)
}
