package lang

import (
	"errors"
	"testing"
)

func TestMapEnv_Variables(t *testing.T) {
	env := NewMapEnv()

	if env.Len() != 0 {
		t.Fatalf("fresh env has %d entries", env.Len())
	}

	env.Set("x", Number(1))
	env.Set("y", String("two"))
	env.Set("x", Number(10)) // overwrite

	if env.Len() != 2 {
		t.Errorf("got %d entries, want 2", env.Len())
	}

	got, err := env.Get("x")
	if err != nil {
		t.Fatal(err)
	}

	if !got.Equal(Number(10)) {
		t.Errorf("got %v, want 10", got)
	}

	if !env.Has("y") || env.Has("z") {
		t.Error("Has disagrees with contents")
	}

	if _, err := env.Get("z"); !errors.Is(err, ErrUnknownVariable) {
		t.Errorf("got %v, want unknown variable", err)
	}

	env.Delete("x")

	if env.Has("x") {
		t.Error("x survived Delete")
	}
}

func TestMapEnv_Names(t *testing.T) {
	env := NewMapEnv()
	env.Set("c", Number(3))
	env.Set("a", Number(1))
	env.Set("b", Number(2))

	names := env.Names()

	want := []string{"a", "b", "c"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}

	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("got %v, want %v", names, want)
		}
	}
}

func TestMapEnv_Call(t *testing.T) {
	env := NewMapEnv()

	// Standard functions are reachable through any environment.
	val, err := env.Call("max", []Value{Number(1), Number(2)})
	if err != nil {
		t.Fatal(err)
	}

	if !val.Equal(Number(2)) {
		t.Errorf("got %v, want 2", val)
	}

	if _, err := env.Call("nope", nil); !errors.Is(err, ErrUnknownFunction) {
		t.Errorf("got %v, want unknown function", err)
	}

	// A standard name with unmatched arguments is unknown here too.
	if _, err := env.Call("sqrt", []Value{String("x")}); !errors.Is(err, ErrUnknownFunction) {
		t.Errorf("got %v, want unknown function", err)
	}
}
