package log

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var levelStyle = map[Level]lipgloss.Style{
	LevelTrace: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
}

var (
	timeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	keyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
)

// prettyHandler renders human-oriented single-line output with colored
// level tags. It is for terminals; machine consumers should use the text
// or json formats.
type prettyHandler struct {
	mu         *sync.Mutex
	out        io.Writer
	level      Level
	timeLayout string
	attrs      []slog.Attr
	groups     []string
}

func newPrettyHandler(out io.Writer, level Level, timeLayout string) *prettyHandler {
	return &prettyHandler{
		mu:         &sync.Mutex{},
		out:        out,
		level:      level,
		timeLayout: timeLayout,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.Level(h.level)
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	c := *h
	c.groups = append(append([]string{}, h.groups...), name)

	return &c
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder

	if h.timeLayout != "" && !r.Time.IsZero() {
		b.WriteString(timeStyle.Render(r.Time.Format(h.timeLayout)))
		b.WriteByte(' ')
	}

	lvl := Level(r.Level)

	style, ok := levelStyle[lvl]
	if !ok {
		style = levelStyle[LevelInfo]
	}

	b.WriteString(style.Render(strings.ToUpper(lvl.String())))
	b.WriteByte(' ')
	b.WriteString(r.Message)

	prefix := strings.Join(h.groups, ".")

	writeAttr := func(a slog.Attr) {
		if a.Equal(slog.Attr{}) {
			return
		}

		key := a.Key
		if prefix != "" {
			key = prefix + "." + key
		}

		b.WriteByte(' ')
		b.WriteString(keyStyle.Render(key + "="))
		b.WriteString(a.Value.String())
	}

	for _, a := range h.attrs {
		writeAttr(a)
	}

	r.Attrs(func(a slog.Attr) bool {
		writeAttr(a)

		return true
	})

	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := io.WriteString(h.out, b.String())

	return err
}
