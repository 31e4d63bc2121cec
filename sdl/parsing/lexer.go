package parsing

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// DDLLexer defines the token types for the DDL declaration language. The
// dialect keeps keywords lowercase, matching the scripts it is fed.
var DDLLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments
	{Name: "Comment", Pattern: `--[^\n]*`},
	{Name: "MultiLineComment", Pattern: `/\*(?:[^*]|\*[^/])*\*/`},

	// Keywords (must come before Ident)
	{Name: "Keyword", Pattern: `\b(create|drop|alter|add|schema|domain|type|table|from|as|function|procedure|proc|index|trigger|constraint|on|after|for|insert|update|delete|returns|references|primary|key|foreign|unique|check|not|null|clustered|nonclustered|if|exists|out|output|go)\b`},

	// Parameter sigil
	{Name: "At", Pattern: `@`},

	// Literals
	{Name: "String", Pattern: `'(?:''|[^'])*'`},
	{Name: "Number", Pattern: `\d+(?:\.\d+)?`},

	// Identifiers
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_$]*`},

	// Punctuation and operators
	{Name: "Punct", Pattern: `[(),.;]`},
	{Name: "Operator", Pattern: `[=<>!+\-*/%|&]+`},

	// Whitespace and newlines
	{Name: "Whitespace", Pattern: `[ \t]+`},
	{Name: "Newline", Pattern: `[\r\n]+`},
})
