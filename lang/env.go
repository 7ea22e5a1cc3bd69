package lang

import (
	"log/slog"
	"sort"
)

// Env resolves free identifiers and function calls on behalf of the host
// application. The engine borrows the environment for the duration of one
// evaluation, never mutates it, and takes no ownership: concurrent
// evaluations sharing an Env are safe exactly when the Env itself is.
type Env interface {
	// Get returns the value bound to name, or a runtime error when the
	// name is undefined.
	Get(name string) (Value, error)

	// Call invokes the host function name with already-evaluated args, or
	// fails with a runtime error when the function is undefined or the
	// arguments are invalid.
	Call(name string, args []Value) (Value, error)
}

// MapEnv is a map-backed Env for tests, the CLI, and simple hosts. Its Call
// delegates to the standard function library and knows no other functions.
//
// MapEnv is not safe for concurrent mutation; populate it before sharing.
type MapEnv struct {
	vars map[string]Value
}

// NewMapEnv returns an empty MapEnv.
func NewMapEnv() *MapEnv {
	return &MapEnv{vars: make(map[string]Value)}
}

// Set binds name to value, replacing any existing binding.
func (e *MapEnv) Set(name string, value Value) {
	e.vars[name] = value
}

// Delete removes a binding, reporting whether it existed.
func (e *MapEnv) Delete(name string) bool {
	_, ok := e.vars[name]
	delete(e.vars, name)

	return ok
}

// Has reports whether name is bound.
func (e *MapEnv) Has(name string) bool {
	_, ok := e.vars[name]

	return ok
}

// Len returns the number of bindings.
func (e *MapEnv) Len() int { return len(e.vars) }

// Names returns the bound names in sorted order.
func (e *MapEnv) Names() []string {
	return sortedStrings(keysOf(e.vars))
}

// Get implements Env.
func (e *MapEnv) Get(name string) (Value, error) {
	val, ok := e.vars[name]
	if !ok {
		return Value{}, ErrUnknownVariable.With(
			slog.String("name", name),
		)
	}

	return val, nil
}

// Call implements Env by delegating to the standard function library.
func (e *MapEnv) Call(name string, args []Value) (Value, error) {
	if val, ok, err := CallStandard(name, args); ok {
		return val, err
	}

	return Value{}, ErrUnknownFunction.With(
		slog.String("name", name),
		slog.Int("arity", len(args)),
	)
}

func keysOf[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	return keys
}

func sortedStrings(s []string) []string {
	sort.Strings(s)

	return s
}
