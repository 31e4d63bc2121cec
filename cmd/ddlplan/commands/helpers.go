// Package commands implements CLI commands.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/schemakit/ddlplan/catalog"
	"github.com/schemakit/ddlplan/internal/config"
	"github.com/schemakit/ddlplan/internal/debug"
	"github.com/schemakit/ddlplan/internal/ui"
	"github.com/schemakit/ddlplan/sdl"
	"github.com/schemakit/ddlplan/sdl/core"
	"github.com/schemakit/ddlplan/sdl/diagnostics"
)

// loadModel reads a DDL script, parses it, and builds the catalog model.
// Diagnostics are printed as they come up; an error is returned only when
// the script cannot produce a usable model.
func loadModel(path string) (*catalog.Model, core.SourceFile, error) {
	data, err := afero.ReadFile(config.AppFs, path)
	if err != nil {
		return nil, core.SourceFile{}, fmt.Errorf("failed to read script: %w", err)
	}

	file := core.NewSourceFile(path, string(data))
	model, diags := sdl.Load(file)

	if warnings := diags.WarningsToPrettyString(file.Path, file.Data); warnings != "" {
		fmt.Fprint(os.Stderr, warnings)
	}
	if diags.HasErrors() {
		fmt.Fprint(os.Stderr, diags.ToPrettyString(file.Path, file.Data))
		return nil, file, diags.ToResult()
	}
	debug.Debug("built schema model", "script", path, "objects", model.Len())
	return model, file, nil
}

// planModel computes the plan and reports unresolved references and cycles
// through the diagnostics channel.
func planModel(model *catalog.Model, file core.SourceFile) (*catalog.Plan, error) {
	plan, err := model.Plan()
	if err != nil {
		diags := diagnostics.NewDiagnostics()
		sdl.ReportPlanProblems(plan, &diags)
		fmt.Fprint(os.Stderr, diags.ToPrettyString(file.Path, file.Data))
		return plan, err
	}
	debug.Debug("computed plan", "ordered", len(plan.CreateOrder))
	return plan, nil
}

// writeOutput writes content to the given path, or to stdout for "-".
func writeOutput(path, content string) error {
	if path == "-" || path == "" {
		fmt.Print(content)
		return nil
	}
	if err := afero.WriteFile(config.AppFs, path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	ui.PrintSuccess("Wrote %s", path)
	return nil
}
