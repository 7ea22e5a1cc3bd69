package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/exprkit/lang"
)

// Tokens scans an expression and prints the token stream, with the source
// line reprinted using per-kind colors. Scanning never fails, so invalid
// input is shown with its unrecognized pieces marked.
type Tokens struct {
	Expr []string `arg:"" help:"Expression to scan"`

	All bool `help:"Include whitespace tokens" short:"a"`
}

var tokenStyle = map[lang.Kind]lipgloss.Style{
	lang.KindNumber:     lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	lang.KindBoolean:    lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	lang.KindString:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	lang.KindIdentifier: lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	lang.KindOperator:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	lang.KindParen:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	lang.KindComma:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	lang.KindUnknown: lipgloss.NewStyle().
		Foreground(lipgloss.Color("1")).
		Underline(true),
}

// Run executes the tokens command.
func (t *Tokens) Run(out io.Writer) error {
	src := strings.Join(t.Expr, " ")

	toks := lang.Tokenize(src)

	sort.Slice(toks, func(i, j int) bool {
		return toks[i].Start < toks[j].Start
	})

	var line strings.Builder

	for _, tok := range toks {
		style, ok := tokenStyle[tok.Kind]
		if !ok {
			line.WriteString(tok.Text)

			continue
		}

		line.WriteString(style.Render(tok.Text))
	}

	fmt.Fprintln(out, line.String())

	for _, tok := range toks {
		if tok.Kind == lang.KindWhitespace && !t.All {
			continue
		}

		fmt.Fprintf(out, "%4d  %-10s  %s\n", tok.Start, tok.Kind, tok.Text)
	}

	return nil
}
