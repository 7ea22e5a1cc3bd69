package repl

import (
	"path/filepath"
	"testing"
)

func TestHistory_AppendAndEntry(t *testing.T) {
	h := NewHistory("")

	for _, line := range []string{"1 + 2", "x = 3", "x * 2"} {
		if err := h.Append(line); err != nil {
			t.Fatal(err)
		}
	}

	if h.Len() != 3 {
		t.Fatalf("got %d entries, want 3", h.Len())
	}

	if entry, ok := h.Entry(0); !ok || entry != "1 + 2" {
		t.Errorf("entry 0 = %q, %v", entry, ok)
	}

	if _, ok := h.Entry(3); ok {
		t.Error("out of range index succeeded")
	}

	// Blanks and immediate duplicates are dropped.
	_ = h.Append("   ")
	_ = h.Append("x * 2")

	if h.Len() != 3 {
		t.Errorf("got %d entries, want 3", h.Len())
	}
}

func TestHistory_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	h := NewHistory(path)
	if err := h.Load(); err != nil {
		t.Fatalf("load missing file: %v", err)
	}

	for _, line := range []string{"a + 1", "b * 2"} {
		if err := h.Append(line); err != nil {
			t.Fatal(err)
		}
	}

	reloaded := NewHistory(path)
	if err := reloaded.Load(); err != nil {
		t.Fatal(err)
	}

	if reloaded.Len() != 2 {
		t.Fatalf("got %d entries, want 2", reloaded.Len())
	}

	if entry, _ := reloaded.Entry(1); entry != "b * 2" {
		t.Errorf("entry 1 = %q", entry)
	}
}
