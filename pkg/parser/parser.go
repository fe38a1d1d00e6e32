package parser

// Package parser implements the Monkey parser.
//
// The parser uses Pratt's "Top Down Operator Precedence" algorithm: each
// token kind maps to a prefix handler and, when it can continue an
// expression, an infix handler guarded by a precedence threshold. Dispatch
// is a switch over the closed token kind enum.
//
// # Architecture
//
// The front end is a straight pipeline: the lexer turns source bytes into
// a token stream, and the parser consumes that stream two tokens at a time
// (current + peek) to build the AST.
//
// # Errors
//
// Errors are accumulated, not thrown. ParseProgram always returns a
// Program, even when errors are present; callers must check Errors before
// trusting the tree.
//
// # Example
//
//	program, errs := parser.Parse("let x = 5;")
//	if len(errs) > 0 {
//	    // handle parse errors
//	}
//	fmt.Println(program.String())

import (
	"io"

	"github.com/sandrolain/gomonkey/pkg/ast"
	"github.com/sandrolain/gomonkey/pkg/lexer"
)

// Parse parses a Monkey program and returns the AST together with any
// parser errors, in the order they were recorded.
func Parse(input string, opts ...Option) (*ast.Program, []string) {
	p := New(lexer.New(input), opts...)
	program := p.ParseProgram()
	return program, p.Errors()
}

// Option configures parser behavior.
type Option func(*Options)

// Options holds parser configuration.
type Options struct {
	// MaxDepth limits expression nesting to prevent stack overflow.
	MaxDepth int
	// TraceWriter receives nested BEGIN/END lines for each parse
	// function when non-nil.
	TraceWriter io.Writer
}

// WithMaxDepth sets the maximum expression nesting depth.
func WithMaxDepth(depth int) Option {
	return func(opts *Options) {
		opts.MaxDepth = depth
	}
}

// WithTracing enables parse tracing to the given writer.
func WithTracing(w io.Writer) Option {
	return func(opts *Options) {
		opts.TraceWriter = w
	}
}
