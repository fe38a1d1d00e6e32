// Command monkey is the command-line front end for the Monkey language:
// an interactive REPL plus file-oriented lex and parse subcommands.
//
// The REPL reads a line, runs it through the front end, and prints either
// the parsed program in its canonical form or, with --tokens, the raw
// token stream until EOF.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/peterh/liner"

	"github.com/sandrolain/gomonkey"
	"github.com/sandrolain/gomonkey/pkg/ast"
	"github.com/sandrolain/gomonkey/pkg/cache"
	"github.com/sandrolain/gomonkey/pkg/lexer"
	"github.com/sandrolain/gomonkey/pkg/parser"
	"github.com/sandrolain/gomonkey/pkg/token"
)

const (
	appName     = "monkey"
	historyFile = ".gomonkey_history"
	prompt      = ">> "
)

func red(s string) string  { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	switch cmd {
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "lex":
		os.Exit(cmdLex(os.Args[2:]))
	case "parse":
		os.Exit(cmdParse(os.Args[2:]))
	case "version":
		fmt.Println(gomonkey.Version())
		return
	case "-h", "--help", "help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`Monkey front end %s

Usage:
  %s repl [--tokens] [--trace]    Start the REPL.
  %s lex <file.monkey>            Print the token stream of a file.
  %s parse <file.monkey>          Parse a file and print the AST.
  %s version                      Print the version.

`, gomonkey.Version(), appName, appName, appName, appName)
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(args []string) int {
	tokens := false
	trace := false
	for _, a := range args {
		switch a {
		case "--tokens":
			tokens = true
		case "--trace":
			trace = true
		default:
			fmt.Fprintf(os.Stderr, "usage: %s repl [--tokens] [--trace]\n", appName)
			return 2
		}
	}

	fmt.Printf("Monkey %s REPL\nCtrl+C cancels input, Ctrl+D exits.\n", gomonkey.Version())

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	// Identical lines are common in a REPL session; avoid re-parsing
	// recently seen input.
	c := cache.New(256)

	for {
		line, err := ln.Prompt(prompt)
		if err != nil {
			if err == liner.ErrPromptAborted {
				continue
			}
			// io.EOF on Ctrl+D
			fmt.Println()
			return 0
		}
		if line == "" {
			continue
		}
		ln.AppendHistory(line)

		if tokens {
			printTokens(line)
			continue
		}

		if trace {
			prog, errs := gomonkey.Parse(line, parser.WithTracing(os.Stdout))
			report(prog, errs)
			continue
		}

		prog, errs := gomonkey.ParseCached(c, line)
		report(prog, errs)
	}
}

// report prints parse errors, or the canonical program form for a clean
// parse. Rendering is skipped on errors: a partial AST is not guaranteed
// to be printable.
func report(program *ast.Program, errs []string) {
	if len(errs) > 0 {
		printParserErrors(errs)
		return
	}
	fmt.Println(blue(program.String()))
}

func printParserErrors(errs []string) {
	fmt.Fprintln(os.Stderr, red("parser errors:"))
	for _, msg := range errs {
		fmt.Fprintln(os.Stderr, red("\t"+msg))
	}
}

func printTokens(src string) {
	l := lexer.New(src)
	for tok := l.Next(); tok.Type != token.EOF; tok = l.Next() {
		fmt.Printf("%s\t%q\n", tok.Type, tok.Literal)
	}
}

// -----------------------------------------------------------------------------
// lex / parse
// -----------------------------------------------------------------------------

func readSource(args []string, cmd string) (string, int) {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s %s <file.monkey>\n", appName, cmd)
		return "", 2
	}
	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, args[0], err)
		return "", 1
	}
	return string(src), 0
}

func cmdLex(args []string) int {
	src, code := readSource(args, "lex")
	if code != 0 {
		return code
	}
	printTokens(src)
	return 0
}

func cmdParse(args []string) int {
	src, code := readSource(args, "parse")
	if code != 0 {
		return code
	}
	program, errs := gomonkey.Parse(src)
	if len(errs) > 0 {
		printParserErrors(errs)
		return 1
	}
	fmt.Println(program.String())
	return 0
}
