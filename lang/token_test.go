package lang

import (
	"sort"
	"strings"
	"testing"
)

func TestTokenize_Kinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Kind
	}{
		{
			name:  "number and operator",
			input: "1+2",
			want:  []Kind{KindNumber, KindOperator, KindNumber},
		},
		{
			name:  "whitespace preserved",
			input: "1 + 2",
			want: []Kind{
				KindNumber, KindWhitespace, KindOperator,
				KindWhitespace, KindNumber,
			},
		},
		{
			name:  "booleans",
			input: "true false",
			want:  []Kind{KindBoolean, KindWhitespace, KindBoolean},
		},
		{
			name:  "keyword operators",
			input: "a and b or not c xor d in e",
			want: []Kind{
				KindIdentifier, KindWhitespace, KindOperator,
				KindWhitespace, KindIdentifier, KindWhitespace,
				KindOperator, KindWhitespace, KindOperator,
				KindWhitespace, KindIdentifier, KindWhitespace,
				KindOperator, KindWhitespace, KindIdentifier,
				KindWhitespace, KindOperator, KindWhitespace,
				KindIdentifier,
			},
		},
		{
			name:  "dotted identifier is one token",
			input: "player.health",
			want:  []Kind{KindIdentifier},
		},
		{
			name:  "call punctuation",
			input: "max(x,y)",
			want: []Kind{
				KindIdentifier, KindParen, KindIdentifier,
				KindComma, KindIdentifier, KindParen,
			},
		},
		{
			name:  "string literal",
			input: `"hi there"`,
			want:  []Kind{KindString},
		},
		{
			name:  "string with escaped quote",
			input: `"a\"b"`,
			want:  []Kind{KindString},
		},
		{
			name:  "unterminated string is unknown",
			input: `"abc`,
			want:  []Kind{KindUnknown},
		},
		{
			name:  "bare equals is unknown",
			input: "a = b",
			want: []Kind{
				KindIdentifier, KindWhitespace, KindUnknown,
				KindWhitespace, KindIdentifier,
			},
		},
		{
			name:  "unknown byte does not stop the scan",
			input: "1 @ 2",
			want: []Kind{
				KindNumber, KindWhitespace, KindUnknown,
				KindWhitespace, KindNumber,
			},
		},
		{
			name:  "leading dot number",
			input: ".5",
			want:  []Kind{KindNumber},
		},
		{
			name:  "greedy digit dot run",
			input: "1.2.3",
			want:  []Kind{KindNumber},
		},
		{
			name:  "two char operators",
			input: "a>=b<=c==d!=e&&f||g",
			want: []Kind{
				KindIdentifier, KindOperator, KindIdentifier,
				KindOperator, KindIdentifier, KindOperator,
				KindIdentifier, KindOperator, KindIdentifier,
				KindOperator, KindIdentifier, KindOperator,
				KindIdentifier,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := Tokenize(tt.input)

			if len(toks) != len(tt.want) {
				t.Fatalf("got %d tokens %v, want %d", len(toks), toks, len(tt.want))
			}

			for i, tok := range toks {
				if tok.Kind != tt.want[i] {
					t.Errorf("token %d: got %v, want %v", i, tok.Kind, tt.want[i])
				}
			}
		})
	}
}

func TestTokenize_Reconstruction(t *testing.T) {
	inputs := []string{
		"",
		"1 + 2 * 3",
		`  "he\"llo" in name  `,
		"max( x.pos , -2.5)>=!done && flag",
		"true?1:0",
		"1.2.3 @@ ??",
	}

	for _, input := range inputs {
		toks := Tokenize(input)

		sort.Slice(toks, func(i, j int) bool {
			return toks[i].Start < toks[j].Start
		})

		var b strings.Builder
		for _, tok := range toks {
			b.WriteString(tok.Text)
		}

		if b.String() != input {
			t.Errorf("reconstructed %q, want %q", b.String(), input)
		}
	}
}

func TestTokenize_Offsets(t *testing.T) {
	toks := Tokenize("x + 12")

	want := []Token{
		{Kind: KindIdentifier, Text: "x", Start: 0, Len: 1},
		{Kind: KindWhitespace, Text: " ", Start: 1, Len: 1},
		{Kind: KindOperator, Text: "+", Start: 2, Len: 1},
		{Kind: KindWhitespace, Text: " ", Start: 3, Len: 1},
		{Kind: KindNumber, Text: "12", Start: 4, Len: 2},
	}

	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}

	for i, tok := range toks {
		if tok != want[i] {
			t.Errorf("token %d: got %+v, want %+v", i, tok, want[i])
		}
	}
}
