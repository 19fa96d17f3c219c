// Package parser defines the intent language of the interactive shell.
package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer maps the raw string tokens out for our AST definitions.
// Basic whitespace elision is enough for our grammar.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},
	{Name: "Ident", Pattern: `[a-zA-Z_][\w-]*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[:]`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

// Build creates the shell parser based on the struct tags in ast.go.
func Build() *participle.Parser[Command] {
	return participle.MustBuild[Command](
		participle.Lexer(Lexer),
		participle.Elide("Whitespace"),
		participle.Unquote("String"),
	)
}
