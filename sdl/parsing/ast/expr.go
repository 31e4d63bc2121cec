package ast

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// CheckExpr is an opaque parenthesized expression. The model never
// interprets it; it is kept only so the renderer can reproduce it.
type CheckExpr struct {
	Pos    lexer.Position
	Tokens []*CheckToken `@@*`
}

// CheckToken is one token of a check expression, with nested parenthesized
// groups kept balanced.
type CheckToken struct {
	Pos    lexer.Position
	Nested *CheckExpr `  "(" @@ ")"`
	Text   string     `| @~("(" | ")")`
}

// String reconstructs the expression text with single spaces between tokens.
func (e *CheckExpr) String() string {
	if e == nil {
		return ""
	}
	parts := make([]string, 0, len(e.Tokens))
	for _, tok := range e.Tokens {
		if tok.Nested != nil {
			parts = append(parts, "("+tok.Nested.String()+")")
		} else {
			parts = append(parts, tok.Text)
		}
	}
	return strings.Join(parts, " ")
}
