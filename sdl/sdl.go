// Package sdl is the schema definition layer: it parses DDL scripts and
// builds the catalog model the ordering engine works on. The catalog itself
// never sees raw text; this package is the ingestion boundary that turns
// statements into fully formed objects with explicit dependency identifiers.
package sdl

import (
	"errors"

	"github.com/alecthomas/participle/v2"

	"github.com/schemakit/ddlplan/catalog"
	"github.com/schemakit/ddlplan/sdl/core"
	"github.com/schemakit/ddlplan/sdl/diagnostics"
	"github.com/schemakit/ddlplan/sdl/parsing"
	"github.com/schemakit/ddlplan/sdl/parsing/ast"
)

// Parse parses a DDL script and returns the AST and diagnostics.
func Parse(file core.SourceFile) (*ast.Script, diagnostics.Diagnostics) {
	script, err := parsing.ParseScriptString(file.Path, file.Data)
	if err != nil {
		span := diagnostics.EmptySpan()
		message := err.Error()
		var perr participle.Error
		if errors.As(err, &perr) {
			pos := perr.Position()
			span = diagnostics.NewSpan(pos.Offset, pos.Offset+1)
			message = perr.Message()
		}
		return nil, diagnostics.FromError(diagnostics.NewParserError(message, span))
	}
	return script, diagnostics.NewDiagnostics()
}

// Load parses a script and builds the catalog model in one step. The
// returned diagnostics combine parse and build problems; the model is nil
// only when parsing itself failed.
func Load(file core.SourceFile) (*catalog.Model, diagnostics.Diagnostics) {
	script, diags := Parse(file)
	if script == nil {
		return nil, diags
	}
	model, buildDiags := Build(script)
	for _, err := range buildDiags.Errors() {
		diags.PushError(err)
	}
	for _, warn := range buildDiags.Warnings() {
		diags.PushWarning(warn)
	}
	return model, diags
}

// ReportPlanProblems converts the unresolved-reference and cycle sets of a
// computed plan into diagnostics, so CLI callers can render everything
// through one channel.
func ReportPlanProblems(plan *catalog.Plan, diags *diagnostics.Diagnostics) {
	for _, u := range plan.Unresolved {
		diags.PushError(diagnostics.NewUnresolvedReferenceError(u.From.String(), u.To.String(), diagnostics.EmptySpan()))
	}
	for _, cycle := range plan.Cycles {
		diags.PushError(diagnostics.NewDependencyCycleError(cycle.String(), diagnostics.EmptySpan()))
	}
}
