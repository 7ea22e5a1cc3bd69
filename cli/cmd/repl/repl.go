// Package repl implements the interactive evaluation session.
package repl

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/exprkit/lang"
	"github.com/ardnew/exprkit/log"
	"github.com/ardnew/exprkit/pkg"
)

const prompt = "➜ "

const baseHistory = "history"

func helpMessage() string {
	return `
Commands:

  help     Print this cruft
  vars     List bound variables
  clear    Clear the transcript
  quit     Exit the session

Usage:
  Type an expression to evaluate it
  Assign with: name = expression
  Press Tab / Shift-Tab to cycle completion candidates
  Use Up/Down arrows for history navigation
  Press Ctrl+C or Ctrl+D to exit
`
}

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	selectedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
)

// model is the Bubble Tea model for the session.
type model struct {
	input        textinput.Model
	env          *lang.MapEnv
	history      *History
	histIdx      int
	lines        []string
	matches      fuzzy.Matches
	wordStart    int
	wordEnd      int
	suggIdx      int
	tabActive    bool
	preTabText   string
	preTabCursor int
	width        int
	quitting     bool
}

// Run starts the interactive session against the given environment. An
// empty history path selects the default under the user cache directory.
func Run(ctx context.Context, env *lang.MapEnv, historyPath string) error {
	if historyPath == "" {
		historyPath = defaultHistoryPath()
	}

	history := NewHistory(historyPath)
	if err := history.Load(); err != nil {
		log.Warn("history unavailable",
			slog.String("path", historyPath),
			slog.Any("error", err),
		)
	}

	input := textinput.New()
	input.Prompt = promptStyle.Render(prompt)
	input.Placeholder = "expression"
	input.Focus()

	m := model{
		input:   input,
		env:     env,
		history: history,
		histIdx: history.Len(),
		width:   80,
	}

	log.Trace("repl start",
		slog.String("history", historyPath),
		slog.Int("bindings", env.Len()),
	)

	_, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()

	return err
}

func defaultHistoryPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}

	dir = filepath.Join(dir, pkg.Name)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return ""
	}

	return filepath.Join(dir, baseHistory)
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+d":
			m.quitting = true

			return m, tea.Quit

		case "enter":
			return m.submit()

		case "tab":
			return m.cycle(1), nil

		case "shift+tab":
			return m.cycle(-1), nil

		case "up":
			return m.recall(-1), nil

		case "down":
			return m.recall(1), nil

		case "esc":
			m.tabActive = false
			m.matches = nil

			return m, nil
		}
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	m.tabActive = false
	m.matches, m.wordStart, m.wordEnd = m.computeMatches()
	m.suggIdx = 0

	return m, cmd
}

func (m model) View() string {
	var b strings.Builder

	for _, line := range m.lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if m.quitting {
		return b.String()
	}

	b.WriteString(m.input.View())
	b.WriteByte('\n')

	if bar := renderCandidateBar(m.matches, m.suggIdx, m.tabActive, m.width); bar != "" {
		b.WriteString(bar)
		b.WriteByte('\n')
	} else {
		b.WriteString(hintStyle.Render("help for commands, ctrl+d to exit"))
		b.WriteByte('\n')
	}

	return b.String()
}

// submit evaluates the current input line and appends the outcome to the
// transcript.
func (m model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())

	m.input.SetValue("")
	m.matches = nil
	m.tabActive = false

	if line == "" {
		return m, nil
	}

	_ = m.history.Append(line)
	m.histIdx = m.history.Len()

	m.lines = append(m.lines, promptStyle.Render(prompt)+line)

	switch line {
	case "quit", "exit":
		m.quitting = true

		return m, tea.Quit

	case "help":
		m.lines = append(m.lines, helpMessage())

		return m, nil

	case "clear":
		m.lines = nil

		return m, nil

	case "vars":
		for _, name := range m.env.Names() {
			val, err := m.env.Get(name)
			if err != nil {
				continue
			}

			m.lines = append(m.lines,
				"  "+name+" = "+resultStyle.Render(val.AsString()))
		}

		return m, nil
	}

	m.lines = append(m.lines, m.evaluate(line))

	return m, nil
}

// evaluate runs a line as an expression, or as an assignment when it has
// the shape "name = expression".
func (m model) evaluate(line string) string {
	name, expr, assign := splitAssignment(line)
	if assign {
		line = expr
	}

	val, err := lang.Eval(line, m.env)
	if err != nil {
		return errorStyle.Render(err.Error())
	}

	if assign {
		m.env.Set(name, val)

		return hintStyle.Render(name+" = ") + resultStyle.Render(val.AsString())
	}

	return resultStyle.Render(val.AsString())
}

// splitAssignment detects the "name = expression" sugar. A bare "=" never
// scans as a valid operator, so the token stream identifies it reliably
// without parsing.
func splitAssignment(line string) (name, expr string, ok bool) {
	var words []lang.Token

	for _, tok := range lang.Tokenize(line) {
		if tok.Kind == lang.KindWhitespace {
			continue
		}

		words = append(words, tok)

		if len(words) == 2 {
			break
		}
	}

	if len(words) < 2 ||
		words[0].Kind != lang.KindIdentifier ||
		words[1].Kind != lang.KindUnknown || words[1].Text != "=" {
		return "", "", false
	}

	return words[0].Text, line[words[1].Start+1:], true
}

// cycle steps through completion candidates, replacing the current word.
func (m model) cycle(dir int) model {
	if len(m.matches) == 0 {
		return m
	}

	if !m.tabActive {
		m.tabActive = true
		m.suggIdx = 0
		m.preTabText = m.input.Value()
		m.preTabCursor = m.input.Position()
	} else {
		m.suggIdx = (m.suggIdx + dir + len(m.matches)) % len(m.matches)
	}

	chosen := m.matches[m.suggIdx].Str

	text := m.preTabText[:m.wordStart] + chosen + m.preTabText[m.wordEnd:]
	m.input.SetValue(text)
	m.input.SetCursor(m.wordStart + len(chosen))

	return m
}

// recall navigates input history; dir is -1 for older, +1 for newer.
func (m model) recall(dir int) model {
	idx := m.histIdx + dir
	if idx < 0 || idx > m.history.Len() {
		return m
	}

	m.histIdx = idx

	if idx == m.history.Len() {
		m.input.SetValue("")

		return m
	}

	if entry, ok := m.history.Entry(idx); ok {
		m.input.SetValue(entry)
		m.input.SetCursor(len(entry))
	}

	return m
}
