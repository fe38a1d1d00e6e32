//go:build js && wasm

// Command gomonkey-wasm-js is the WebAssembly entrypoint for browser and Node.js.
//
// It exposes a global `monkey` object with the following API:
//
//	monkey.version()       → string
//	monkey.parse(source)   → { ast: string, errors: string[] }
//	monkey.tokens(source)  → [{ type: string, literal: string }, ...]
//
// Build:
//
//	GOOS=js GOARCH=wasm go build -o monkey.wasm ./cmd/wasm/js/
//
// Usage in Node.js:
//
//	const result = monkey.parse('let x = 5;')
//	if (result.errors.length === 0) console.log(result.ast)
package main

import (
	"syscall/js"

	"github.com/sandrolain/gomonkey"
	"github.com/sandrolain/gomonkey/pkg/lexer"
	"github.com/sandrolain/gomonkey/pkg/token"
)

// jsParse implements monkey.parse(source) → { ast, errors }.
func jsParse(_ js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return map[string]interface{}{
			"ast":    "",
			"errors": []interface{}{"monkey.parse requires 1 argument: source (string)"},
		}
	}

	program, errs := gomonkey.Parse(args[0].String())

	jsErrs := make([]interface{}, 0, len(errs))
	for _, e := range errs {
		jsErrs = append(jsErrs, e)
	}

	// A partial AST is not guaranteed to be printable; render only
	// clean parses.
	rendered := ""
	if len(errs) == 0 {
		rendered = program.String()
	}

	return map[string]interface{}{
		"ast":    rendered,
		"errors": jsErrs,
	}
}

// jsTokens implements monkey.tokens(source) → [{ type, literal }, ...].
func jsTokens(_ js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return []interface{}{}
	}

	l := lexer.New(args[0].String())
	out := []interface{}{}
	for tok := l.Next(); tok.Type != token.EOF; tok = l.Next() {
		out = append(out, map[string]interface{}{
			"type":    tok.Type.String(),
			"literal": tok.Literal,
		})
	}
	return out
}

func jsVersion(_ js.Value, _ []js.Value) interface{} {
	return gomonkey.Version()
}

func main() {
	api := js.Global().Get("Object").New()
	api.Set("version", js.FuncOf(jsVersion))
	api.Set("parse", js.FuncOf(jsParse))
	api.Set("tokens", js.FuncOf(jsTokens))
	js.Global().Set("monkey", api)

	// Keep the Go runtime alive; calls arrive through the registered
	// callbacks.
	select {}
}
