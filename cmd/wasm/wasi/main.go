//go:build wasip1

// Command gomonkey-wasm-wasi is the WASI (wasip1) entrypoint for use from any
// language that supports the WebAssembly System Interface.
//
// Protocol: single JSON object on stdin → single JSON object on stdout.
//
//	stdin:  { "source": "<monkey source>" }
//	stdout: { "ast": "<canonical form>" }        on success
//	        { "errors": ["<message>", ...] }     on parse errors (exit code 1)
//
// Build:
//
//	GOOS=wasip1 GOARCH=wasm go build -o monkey.wasm ./cmd/wasm/wasi/
//
// Usage with wasmtime CLI:
//
//	echo '{"source":"let x = 5;"}' | wasmtime monkey.wasm
package main

import (
	"encoding/json"
	"os"

	"github.com/sandrolain/gomonkey"
)

type request struct {
	Source string `json:"source"`
}

type response struct {
	AST    string   `json:"ast,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

func writeResponse(r response, exitCode int) {
	_ = json.NewEncoder(os.Stdout).Encode(r)
	os.Exit(exitCode)
}

func main() {
	var req request
	if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
		writeResponse(response{Errors: []string{"invalid request JSON: " + err.Error()}}, 1)
	}

	program, errs := gomonkey.Parse(req.Source)
	if len(errs) > 0 {
		writeResponse(response{Errors: errs}, 1)
	}

	writeResponse(response{AST: program.String()}, 0)
}
