package repl

import (
	"slices"
	"strings"
	"testing"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/exprkit/lang"
)

func TestWordBounds(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		cursor int
		word   string
		start  int
		end    int
	}{
		{
			name:  "empty",
			input: "", cursor: 0,
			word: "", start: 0, end: 0,
		},
		{
			name:  "single word",
			input: "sqrt", cursor: 4,
			word: "sqrt", start: 0, end: 4,
		},
		{
			name:  "cursor mid word",
			input: "sqrt", cursor: 2,
			word: "sqrt", start: 0, end: 4,
		},
		{
			name:  "after operator",
			input: "1 + ab", cursor: 6,
			word: "ab", start: 4, end: 6,
		},
		{
			name:  "dotted name is one word",
			input: "player.hea", cursor: 10,
			word: "player.hea", start: 0, end: 10,
		},
		{
			name:  "cursor on boundary",
			input: "a + ", cursor: 4,
			word: "", start: 4, end: 4,
		},
		{
			name:  "inside call",
			input: "max(ab, c)", cursor: 6,
			word: "ab", start: 4, end: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, start, end := wordBounds(tt.input, tt.cursor)

			if word != tt.word || start != tt.start || end != tt.end {
				t.Errorf("got (%q, %d, %d), want (%q, %d, %d)",
					word, start, end, tt.word, tt.start, tt.end)
			}
		})
	}
}

func TestCandidates(t *testing.T) {
	env := lang.NewMapEnv()
	env.Set("health", lang.Number(75))
	env.Set("name", lang.String("gopher"))

	names := candidates(env)

	for _, want := range []string{"health", "name", "sqrt", "max", "and", "xor"} {
		if !slices.Contains(names, want) {
			t.Errorf("missing candidate %q", want)
		}
	}

	if !slices.IsSorted(names) {
		t.Error("candidates not sorted")
	}
}

func TestFuzzyRanking(t *testing.T) {
	env := lang.NewMapEnv()
	env.Set("scale", lang.Number(2))

	matches := fuzzy.Find("sca", candidates(env))

	if len(matches) == 0 {
		t.Fatal("no matches")
	}

	if matches[0].Str != "scale" {
		t.Errorf("best match %q, want scale", matches[0].Str)
	}
}

func TestSplitAssignment(t *testing.T) {
	tests := []struct {
		name  string
		input string
		vname string
		expr  string
		ok    bool
	}{
		{
			name:  "simple",
			input: "x = 1 + 2",
			vname: "x", expr: " 1 + 2", ok: true,
		},
		{
			name:  "dotted target",
			input: "player.health = 50",
			vname: "player.health", expr: " 50", ok: true,
		},
		{
			name:  "tight spacing",
			input: "x=1",
			vname: "x", expr: "1", ok: true,
		},
		{
			name:  "comparison is not assignment",
			input: "x == 1",
			ok:    false,
		},
		{
			name:  "plain expression",
			input: "1 + 2",
			ok:    false,
		},
		{
			name:  "leading number",
			input: "1 = 2",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vname, expr, ok := splitAssignment(tt.input)

			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}

			if !ok {
				return
			}

			if vname != tt.vname || expr != tt.expr {
				t.Errorf("got (%q, %q), want (%q, %q)",
					vname, expr, tt.vname, tt.expr)
			}
		})
	}
}

func TestRenderCandidateBar(t *testing.T) {
	matches := fuzzy.Matches{
		{Str: "sqrt"},
		{Str: "scale"},
		{Str: "sin"},
	}

	if got := renderCandidateBar(matches, 0, false, 0); got != "" {
		t.Errorf("zero width produced %q", got)
	}

	if got := renderCandidateBar(nil, 0, false, 80); got != "" {
		t.Errorf("no matches produced %q", got)
	}

	got := renderCandidateBar(matches, 1, true, 80)
	for _, want := range []string{"sqrt", "scale", "sin"} {
		if !strings.Contains(got, want) {
			t.Errorf("bar missing %q: %q", want, got)
		}
	}
}
