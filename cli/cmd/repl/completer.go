package repl

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/exprkit/lang"
)

// keywords are the word-shaped operators and literals that complete
// alongside variable and function names.
var keywords = []string{"and", "false", "in", "not", "or", "true", "xor"}

// isWordBoundary reports whether the rune delimits a word for completion
// purposes. Dots are not boundaries because identifiers may contain them.
func isWordBoundary(r rune) bool {
	switch r {
	case ' ', '\t',
		'(', ')', ',',
		'+', '-', '*', '/', '%', '^',
		'<', '>', '=', '!',
		'&', '|', '?', ':', '"':
		return true
	}

	return false
}

// wordBounds returns the word at the cursor position and its byte
// boundaries within input.
func wordBounds(input string, cursor int) (word string, start, end int) {
	if cursor > len(input) {
		cursor = len(input)
	}

	start = cursor

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	end = cursor

	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	return input[start:end], start, end
}

// candidates lists every name the current session can complete: bound
// variables, standard functions, and keywords.
func candidates(env *lang.MapEnv) []string {
	names := env.Names()
	names = append(names, lang.StandardNames()...)
	names = append(names, keywords...)

	sort.Strings(names)

	return names
}

// computeMatches ranks completion candidates for the word at the cursor.
// An empty word yields no matches so the hint line stays visible.
func (m model) computeMatches() (
	matches fuzzy.Matches,
	wordStart, wordEnd int,
) {
	word, start, end := wordBounds(m.input.Value(), m.input.Position())
	if word == "" {
		return nil, start, end
	}

	return fuzzy.Find(word, candidates(m.env)), start, end
}

// renderCandidateBar builds the single-line completion bar, truncated to
// the terminal width. The selected candidate is highlighted while tabbing.
func renderCandidateBar(
	matches fuzzy.Matches,
	suggIdx int,
	tabActive bool,
	width int,
) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	var b strings.Builder

	used := 0

	for i, match := range matches {
		style := suggestionStyle
		if tabActive && i == suggIdx {
			style = selectedStyle
		}

		rendered := style.Render(match.Str)

		entry := lipgloss.Width(rendered)
		if i > 0 {
			entry += lipgloss.Width(sep)
		}

		if used+entry > width && i > 0 {
			b.WriteString(sep)
			b.WriteString(hintStyle.Render("..."))

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += entry
	}

	return b.String()
}
