package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestTokens_Run(t *testing.T) {
	var out bytes.Buffer

	cmd := Tokens{Expr: []string{"max(x, 2) + 1"}}
	if err := cmd.Run(&out); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := out.String()

	for _, want := range []string{"identifier", "number", "operator", "paren", "comma"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	// Whitespace rows are hidden by default.
	if strings.Contains(got, "whitespace") {
		t.Errorf("whitespace listed without --all:\n%s", got)
	}

	out.Reset()

	cmd.All = true
	if err := cmd.Run(&out); err != nil {
		t.Fatalf("run: %v", err)
	}

	if !strings.Contains(out.String(), "whitespace") {
		t.Errorf("whitespace missing with --all:\n%s", out.String())
	}
}

func TestTokens_RunInvalid(t *testing.T) {
	var out bytes.Buffer

	// Scanning never fails; unrecognized input is marked unknown.
	cmd := Tokens{Expr: []string{`1 @ "open`}}
	if err := cmd.Run(&out); err != nil {
		t.Fatalf("run: %v", err)
	}

	if !strings.Contains(out.String(), "unknown") {
		t.Errorf("output missing unknown tokens:\n%s", out.String())
	}
}
