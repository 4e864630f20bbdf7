// Package report turns error-kind tokens into user-facing diagnostics.
// The scanner never prints anything itself; hosts collect diagnostics from
// the token stream and decide how to surface them.
package report

import (
	"fmt"
	"io"

	"github.com/agenthands/lox/pkg/compiler/lexer"
)

// Diagnostic is one lexical error located by source line.
type Diagnostic struct {
	Line    int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[line %d] Error: %s", d.Line, d.Message)
}

// Collect derives the diagnostics for every error-kind token in the stream,
// in token order. The returned slice doubles as the error summary of the
// scan: a clean scan yields an empty slice.
func Collect(tokens []lexer.Token) []Diagnostic {
	var diags []Diagnostic
	for _, tok := range tokens {
		switch tok.Kind {
		case lexer.KindUnexpectedChar:
			diags = append(diags, Diagnostic{Line: tok.Line, Message: "Unexpected character."})
		case lexer.KindUnterminatedString:
			diags = append(diags, Diagnostic{Line: tok.Line, Message: "Unterminated string."})
		}
	}
	return diags
}

// Print writes each diagnostic on its own line.
func Print(w io.Writer, diags []Diagnostic) {
	for _, d := range diags {
		fmt.Fprintln(w, d)
	}
}
