// Package gomonkey provides the front end of an interpreter for the Monkey
// scripting language: a lexer and a Pratt parser producing a typed AST.
//
// The front end is a straight pipeline: source bytes → lexer → token
// stream → parser → Program (AST). Both stages are single-threaded,
// synchronous, and self-contained; independent parsers share nothing and
// may run in parallel without coordination.
//
// # Quick Start
//
//	// Parse a program
//	program, errs := gomonkey.Parse("let add = fn(x, y) { x + y; };")
//	if len(errs) > 0 {
//	    // handle parse errors
//	}
//	fmt.Println(program.String())
//
//	// Parse once, reuse across repeated calls
//	c := cache.New(256)
//	program, errs = gomonkey.ParseCached(c, "let x = 5;")
//
// # Errors
//
// The parser accumulates human-readable error strings rather than failing
// on the first problem. A Program is always returned, even when errors are
// present; callers must check the error list before trusting the AST.
//
// # More Information
//
// For detailed documentation, see:
//   - Tokens: github.com/sandrolain/gomonkey/pkg/token
//   - Lexer: github.com/sandrolain/gomonkey/pkg/lexer
//   - AST: github.com/sandrolain/gomonkey/pkg/ast
//   - Parser: github.com/sandrolain/gomonkey/pkg/parser
package gomonkey

import (
	"fmt"

	"github.com/sandrolain/gomonkey/pkg/ast"
	"github.com/sandrolain/gomonkey/pkg/cache"
	"github.com/sandrolain/gomonkey/pkg/parser"
)

// Version returns the current version of gomonkey.
func Version() string {
	return "v0.1.0-dev"
}

// Parse parses a Monkey program and returns the AST together with any
// parser errors, in the order they were recorded.
//
// Example:
//
//	program, errs := gomonkey.Parse("let x = 5;")
func Parse(src string, opts ...parser.Option) (*ast.Program, []string) {
	return parser.Parse(src, opts...)
}

// MustParse is like Parse but panics if the source does not parse cleanly.
// It simplifies safe initialization of global variables.
func MustParse(src string) *ast.Program {
	program, errs := parser.Parse(src)
	if len(errs) > 0 {
		panic(fmt.Sprintf("gomonkey: Parse(%q): %s", src, errs[0]))
	}
	return program
}

// ParseCached parses through the given cache: the first call for a source
// string parses and stores the result, subsequent calls return the stored
// program and error list.
func ParseCached(c *cache.Cache, src string) (*ast.Program, []string) {
	return c.GetOrParse(src, func() (*ast.Program, []string) {
		return parser.Parse(src)
	})
}
