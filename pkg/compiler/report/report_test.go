package report_test

import (
	"strings"
	"testing"

	"github.com/agenthands/lox/pkg/compiler/lexer"
	"github.com/agenthands/lox/pkg/compiler/report"
)

func TestCollectCleanScan(t *testing.T) {
	s := lexer.NewScanner([]byte(`var x = 1; // fine`))
	if diags := report.Collect(s.ScanTokens()); len(diags) != 0 {
		t.Errorf("expected no diagnostics, got %v", diags)
	}
}

func TestCollectDistinguishesErrorKinds(t *testing.T) {
	s := lexer.NewScanner([]byte("@\n\"open"))
	diags := report.Collect(s.ScanTokens())
	if len(diags) != 2 {
		t.Fatalf("expected 2 diagnostics, got %v", diags)
	}
	if diags[0].Line != 1 || diags[0].Message != "Unexpected character." {
		t.Errorf("first diagnostic: %+v", diags[0])
	}
	if diags[1].Line != 2 || diags[1].Message != "Unterminated string." {
		t.Errorf("second diagnostic: %+v", diags[1])
	}
}

func TestDiagnosticString(t *testing.T) {
	d := report.Diagnostic{Line: 7, Message: "Unexpected character."}
	if got := d.String(); got != "[line 7] Error: Unexpected character." {
		t.Errorf("got %q", got)
	}
}

func TestPrint(t *testing.T) {
	var buf strings.Builder
	report.Print(&buf, []report.Diagnostic{
		{Line: 1, Message: "Unexpected character."},
		{Line: 3, Message: "Unterminated string."},
	})
	want := "[line 1] Error: Unexpected character.\n[line 3] Error: Unterminated string.\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}
