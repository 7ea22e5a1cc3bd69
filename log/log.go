// Package log wraps [log/slog] with a Trace level, selectable output
// formats, and functional-option construction. The zero Logger discards
// everything, so library code can log unconditionally.
package log

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"
)

// Level is the severity of a log message.
type Level slog.Level

const (
	LevelTrace Level = Level(slog.LevelDebug - 4)
	LevelDebug Level = Level(slog.LevelDebug)
	LevelInfo  Level = Level(slog.LevelInfo)
	LevelWarn  Level = Level(slog.LevelWarn)
	LevelError Level = Level(slog.LevelError)
)

// DefaultLevel applies when no level option is given.
const DefaultLevel = LevelInfo

func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	}

	return slog.Level(l).String()
}

// LevelNames lists the accepted level spellings, least to most severe.
func LevelNames() []string {
	return []string{"trace", "debug", "info", "warn", "error"}
}

// ParseLevel maps a level name to its Level, falling back to
// [DefaultLevel] for anything unrecognized. The trace spelling is handled
// here because slog does not know it.
func ParseLevel(s string) Level {
	if strings.EqualFold(strings.TrimSpace(s), "trace") {
		return LevelTrace
	}

	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return DefaultLevel
	}

	return Level(l)
}

// Format selects the wire shape of log output.
type Format int

const (
	FormatText Format = iota
	FormatJSON
	FormatPretty
)

// DefaultFormat applies when no format option is given.
const DefaultFormat = FormatPretty

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatPretty:
		return "pretty"
	}

	return "text"
}

// FormatNames lists the accepted format spellings.
func FormatNames() []string {
	return []string{"pretty", "text", "json"}
}

// ParseFormat maps a format name to its Format, falling back to
// [DefaultFormat] for anything unrecognized.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	case "text":
		return FormatText
	case "pretty":
		return FormatPretty
	}

	return DefaultFormat
}

// Option adjusts the configuration built by [Make].
type Option func(config) config

type config struct {
	output     io.Writer
	level      Level
	format     Format
	timeLayout string
	caller     bool
}

// WithLevel sets the minimum level; lower messages are discarded.
func WithLevel(level Level) Option {
	return func(c config) config {
		c.level = level

		return c
	}
}

// WithFormat sets the output format.
func WithFormat(format Format) Option {
	return func(c config) config {
		c.format = format

		return c
	}
}

// WithTimeLayout sets the [time.Time.Format] layout for timestamps. An
// empty layout omits the timestamp entirely.
func WithTimeLayout(layout string) Option {
	return func(c config) config {
		c.timeLayout = layout

		return c
	}
}

// WithCaller includes source position in log output.
func WithCaller(enable bool) Option {
	return func(c config) config {
		c.caller = enable

		return c
	}
}

// replaceAttr renames the trace level and applies the timestamp layout.
func (c config) replaceAttr(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.LevelKey:
		if lvl, ok := a.Value.Any().(slog.Level); ok {
			a.Value = slog.StringValue(strings.ToUpper(Level(lvl).String()))
		}

	case slog.TimeKey:
		if t, ok := a.Value.Any().(time.Time); ok {
			if c.timeLayout == "" {
				return slog.Attr{}
			}

			a.Value = slog.StringValue(t.Format(c.timeLayout))
		}
	}

	return a
}

func (c config) handler() slog.Handler {
	opts := &slog.HandlerOptions{
		AddSource:   c.caller,
		Level:       slog.Level(c.level),
		ReplaceAttr: c.replaceAttr,
	}

	switch c.format {
	case FormatJSON:
		return slog.NewJSONHandler(c.output, opts)
	case FormatPretty:
		return newPrettyHandler(c.output, c.level, c.timeLayout)
	}

	return slog.NewTextHandler(c.output, opts)
}

// Logger is a thin, copyable wrapper over [slog.Logger] adding the Trace
// level. The zero value is usable and silent.
type Logger struct {
	*slog.Logger
}

// Make builds a Logger writing to w. A nil writer discards output.
func Make(w io.Writer, opts ...Option) Logger {
	if w == nil {
		w = io.Discard
	}

	cfg := config{
		output:     w,
		level:      DefaultLevel,
		format:     DefaultFormat,
		timeLayout: time.StampMilli,
	}

	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return Logger{Logger: slog.New(cfg.handler())}
}

// With returns a Logger carrying additional attributes on every message.
func (l Logger) With(attrs ...slog.Attr) Logger {
	if l.Logger == nil {
		return l
	}

	return Logger{Logger: slog.New(l.Handler().WithAttrs(attrs))}
}

// Slog exposes the wrapped [slog.Logger], or a discarding logger for the
// zero value.
func (l Logger) Slog() *slog.Logger {
	if l.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return l.Logger
}

// Trace logs at [LevelTrace].
func (l Logger) Trace(msg string, attrs ...slog.Attr) {
	l.log(LevelTrace, msg, attrs...)
}

// Debug logs at [LevelDebug].
func (l Logger) Debug(msg string, attrs ...slog.Attr) {
	l.log(LevelDebug, msg, attrs...)
}

// Info logs at [LevelInfo].
func (l Logger) Info(msg string, attrs ...slog.Attr) {
	l.log(LevelInfo, msg, attrs...)
}

// Warn logs at [LevelWarn].
func (l Logger) Warn(msg string, attrs ...slog.Attr) {
	l.log(LevelWarn, msg, attrs...)
}

// Error logs at [LevelError].
func (l Logger) Error(msg string, attrs ...slog.Attr) {
	l.log(LevelError, msg, attrs...)
}

func (l Logger) log(level Level, msg string, attrs ...slog.Attr) {
	if l.Logger == nil {
		return
	}

	l.LogAttrs(context.Background(), slog.Level(level), msg, attrs...)
}
