package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/agenthands/lox/pkg/compiler/lexer"
	"github.com/agenthands/lox/pkg/compiler/report"
	"github.com/agenthands/lox/pkg/config"
)

// runPrompt reads lines interactively and scans each one independently.
// Errors on one line never carry over to the next.
func runPrompt() {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to initialize readline: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		runLine(line)
	}
}

func runLine(src string) {
	s := lexer.NewScanner([]byte(src))
	tokens := s.ScanTokens()

	for _, tok := range tokens {
		fmt.Println(tok)
	}
	report.Print(os.Stderr, report.Collect(tokens))
}
