package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{input: "trace", want: LevelTrace},
		{input: "TRACE", want: LevelTrace},
		{input: "debug", want: LevelDebug},
		{input: "info", want: LevelInfo},
		{input: "WARN", want: LevelWarn},
		{input: "error", want: LevelError},
		{input: "bogus", want: DefaultLevel},
		{input: "", want: DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{input: "json", want: FormatJSON},
		{input: "text", want: FormatText},
		{input: "pretty", want: FormatPretty},
		{input: " JSON ", want: FormatJSON},
		{input: "bogus", want: DefaultFormat},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseFormat(tt.input); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLogger_ZeroValue(t *testing.T) {
	var l Logger

	// Must not panic.
	l.Trace("quiet")
	l.Error("quiet", slog.String("k", "v"))

	if l.Slog() == nil {
		t.Error("Slog returned nil")
	}
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithFormat(FormatText), WithLevel(LevelWarn), WithTimeLayout(""))

	l.Trace("t")
	l.Debug("d")
	l.Info("i")
	l.Warn("w")
	l.Error("e")

	out := buf.String()

	for _, absent := range []string{"msg=t", "msg=d", "msg=i"} {
		if strings.Contains(out, absent) {
			t.Errorf("output contains %q: %s", absent, out)
		}
	}

	for _, present := range []string{"msg=w", "msg=e"} {
		if !strings.Contains(out, present) {
			t.Errorf("output missing %q: %s", present, out)
		}
	}
}

func TestLogger_TraceLabel(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithFormat(FormatText), WithLevel(LevelTrace), WithTimeLayout(""))

	l.Trace("hello")

	out := buf.String()

	if !strings.Contains(out, "level=TRACE") {
		t.Errorf("got %q, want TRACE label", out)
	}

	if strings.Contains(out, "DEBUG-4") {
		t.Errorf("raw slog level leaked: %q", out)
	}
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithFormat(FormatJSON), WithTimeLayout(""))
	l = l.With(slog.String("component", "engine"))

	l.Info("ready", slog.Int("n", 3))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v: %s", err, buf.String())
	}

	if record["msg"] != "ready" {
		t.Errorf("msg = %v", record["msg"])
	}

	if record["component"] != "engine" {
		t.Errorf("component = %v", record["component"])
	}

	if record["n"] != float64(3) {
		t.Errorf("n = %v", record["n"])
	}

	if _, ok := record["time"]; ok {
		t.Error("time present with empty layout")
	}
}

func TestLogger_Pretty(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithFormat(FormatPretty), WithTimeLayout(""))

	l.Info("parsed", slog.String("source", "1+2"))

	out := buf.String()

	if !strings.Contains(out, "INFO") || !strings.Contains(out, "parsed") {
		t.Errorf("got %q", out)
	}

	if !strings.Contains(out, "source=") || !strings.Contains(out, "1+2") {
		t.Errorf("attr missing: %q", out)
	}
}
