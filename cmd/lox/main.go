package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/agenthands/lox/pkg/compiler/lexer"
	"github.com/agenthands/lox/pkg/compiler/report"
)

// exitLexError is the exit status for source with lexical errors, as
// distinct from usage or I/O failures.
const exitLexError = 65

func main() {
	if len(os.Args) < 2 {
		runPrompt()
		return
	}

	switch os.Args[1] {
	case "run":
		runScript()
	case "tokens":
		dumpTokens()
	default:
		fmt.Println("Usage: lox [run|tokens] <script.lox>")
		os.Exit(1)
	}
}

func runScript() {
	runCmd := flag.NewFlagSet("run", flag.ExitOnError)
	debug := runCmd.Bool("debug", false, "Dump raw token structs")

	if len(os.Args) < 3 {
		fmt.Println("Usage: lox run <script.lox> [-debug]")
		os.Exit(1)
	}
	scriptPath := os.Args[2]
	runCmd.Parse(os.Args[3:])

	tokens, diags := scanFile(scriptPath)

	if *debug {
		fmt.Print(spew.Sdump(tokens))
	} else {
		for _, tok := range tokens {
			fmt.Println(tok)
		}
	}

	report.Print(os.Stderr, diags)
	if len(diags) > 0 {
		os.Exit(exitLexError)
	}
}

func dumpTokens() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: lox tokens <script.lox>")
		os.Exit(1)
	}

	tokens, diags := scanFile(os.Args[2])
	for _, tok := range tokens {
		fmt.Println(tok)
	}

	report.Print(os.Stderr, diags)
	if len(diags) > 0 {
		os.Exit(exitLexError)
	}
}

func scanFile(path string) ([]lexer.Token, []report.Diagnostic) {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		os.Exit(1)
	}

	s := lexer.NewScanner(src)
	tokens := s.ScanTokens()
	return tokens, report.Collect(tokens)
}
