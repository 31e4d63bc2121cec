package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schemakit/ddlplan/catalog"
	"github.com/schemakit/ddlplan/exec"
	"github.com/schemakit/ddlplan/internal/config"
	"github.com/schemakit/ddlplan/internal/ui"
	"github.com/schemakit/ddlplan/render"
)

// NewApplyCommand creates the apply command.
func NewApplyCommand(cfg *config.Config) *cobra.Command {
	var scriptPath string
	var provider string
	var databaseURL string
	var dropFirst bool

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply the ordered statements to a database",
		Long:  "Execute the dependency-ordered create statements against a live database in a single transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			if databaseURL == "" {
				return fmt.Errorf("no database URL configured: set DATABASE_URL or pass --url")
			}
			return runApply(cmd.Context(), scriptPath, provider, databaseURL, dropFirst)
		},
	}

	cmd.Flags().StringVar(&scriptPath, "script", cfg.ScriptPath, "Path to DDL script")
	cmd.Flags().StringVar(&provider, "provider", cfg.Provider, "Database provider (postgres, mysql, sqlite)")
	cmd.Flags().StringVar(&databaseURL, "url", cfg.DatabaseURL, "Database connection URL")
	cmd.Flags().BoolVar(&dropFirst, "drop-first", false, "Run the drop script before creating")

	return cmd
}

func runApply(ctx context.Context, scriptPath, provider, databaseURL string, dropFirst bool) error {
	model, file, err := loadModel(scriptPath)
	if err != nil {
		return err
	}

	plan, err := planModel(model, file)
	if err != nil {
		return err
	}

	db, err := exec.Open(provider, databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	executor := exec.NewExecutor(db)

	if dropFirst {
		if err := applyPhase(ctx, executor, "Dropping", statements(plan.DropOrder, render.DropStatement)); err != nil {
			return fmt.Errorf("drop failed: %w", err)
		}
	}

	if err := applyPhase(ctx, executor, "Creating", statements(plan.CreateOrder, render.CreateStatement)); err != nil {
		return fmt.Errorf("apply failed: %w", err)
	}
	return nil
}

func applyPhase(ctx context.Context, executor *exec.Executor, verb string, stmts []string) error {
	spinner, spinErr := ui.PrintSpinner(fmt.Sprintf("%s %d object(s)...", verb, len(stmts)))
	err := executor.Apply(ctx, stmts)
	if spinErr == nil {
		if err != nil {
			spinner.Fail(err.Error())
		} else {
			spinner.Success(fmt.Sprintf("%s %d object(s) done", verb, len(stmts)))
		}
	}
	return err
}

func statements(order []catalog.Object, renderFn func(catalog.Object) string) []string {
	result := make([]string, len(order))
	for i, obj := range order {
		result[i] = renderFn(obj)
	}
	return result
}
