// Package ddlplan provides the main API for modeling database schema
// objects and computing dependency-safe creation and drop orders.
package ddlplan

import (
	"github.com/schemakit/ddlplan/catalog"
	"github.com/schemakit/ddlplan/sdl"
	"github.com/schemakit/ddlplan/sdl/core"
	"github.com/schemakit/ddlplan/sdl/diagnostics"
	"github.com/schemakit/ddlplan/sdl/parsing/ast"
)

// Re-export key types for convenience
type (
	SourceFile  = core.SourceFile
	Diagnostics = diagnostics.Diagnostics
	Identifier  = catalog.Identifier
	Model       = catalog.Model
	Plan        = catalog.Plan
	Script      = ast.Script
)

// ParseScript parses a DDL script string and returns the AST and diagnostics.
func ParseScript(path, input string) (*ast.Script, diagnostics.Diagnostics) {
	return sdl.Parse(core.NewSourceFile(path, input))
}

// LoadModel parses a script and builds the schema model from it.
func LoadModel(path, input string) (*catalog.Model, diagnostics.Diagnostics) {
	return sdl.Load(core.NewSourceFile(path, input))
}

// ComputePlan computes the creation/drop order for a model. On failure the
// plan still carries the partial order; the error describes the cycles and
// unresolved references blocking the rest.
func ComputePlan(model *catalog.Model) (*catalog.Plan, error) {
	return model.Plan()
}

// NewSourceFile creates a new source file.
func NewSourceFile(path, data string) core.SourceFile {
	return core.NewSourceFile(path, data)
}
