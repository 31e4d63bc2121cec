// Package parsing provides a Participle-based parser for the DDL
// declaration language.
package parsing

import (
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/schemakit/ddlplan/sdl/parsing/ast"
)

// parser is the Participle parser instance.
var parser = participle.MustBuild[ast.Script](
	participle.Lexer(DDLLexer),
	participle.Elide("Whitespace", "Newline", "Comment", "MultiLineComment"),
	participle.UseLookahead(10),
)

// ParseScript parses a DDL script from an io.Reader.
func ParseScript(filename string, r io.Reader) (*ast.Script, error) {
	return parser.Parse(filename, r)
}

// ParseScriptString parses a DDL script from a string.
func ParseScriptString(filename, input string) (*ast.Script, error) {
	return ParseScript(filename, strings.NewReader(input))
}
