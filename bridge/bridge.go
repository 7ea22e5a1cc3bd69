// Package bridge exposes the expression engine through a flat, handle-based
// surface suitable for foreign-function layers and plugin hosts that cannot
// hold Go pointers. Parsed trees are referenced by opaque numeric handles
// with retain/release lifetimes, values cross the boundary as plain structs,
// and failures are reported through a sticky last-error slot instead of Go
// error values.
package bridge

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/ardnew/exprkit/lang"
)

// Handle identifies a parsed tree held by a [Bridge]. The zero handle is
// never valid.
type Handle uint64

// Tag mirrors [lang.Tag] as a plain integer for hosts without access to the
// Go type.
type Tag int32

const (
	TagNumber Tag = iota
	TagBoolean
	TagString
)

// RawValue is the boundary representation of a [lang.Value]. Exactly one of
// the payload fields is meaningful, selected by Tag.
type RawValue struct {
	Tag     Tag
	Number  float64
	Boolean bool
	Str     string
}

// FromValue flattens a [lang.Value] for transport.
func FromValue(v lang.Value) RawValue {
	switch v.Tag() {
	case lang.TagBoolean:
		return RawValue{Tag: TagBoolean, Boolean: v.AsBoolean()}
	case lang.TagString:
		return RawValue{Tag: TagString, Str: v.AsString()}
	default:
		n, _ := v.AsNumber()
		return RawValue{Tag: TagNumber, Number: n}
	}
}

// Value rebuilds the [lang.Value] a [RawValue] carries.
func (r RawValue) Value() lang.Value {
	switch r.Tag {
	case TagBoolean:
		return lang.Boolean(r.Boolean)
	case TagString:
		return lang.String(r.Str)
	default:
		return lang.Number(r.Number)
	}
}

// ErrorCode classifies the last failure recorded by a [Bridge].
type ErrorCode int32

const (
	ErrorNone ErrorCode = iota
	ErrorParse
	ErrorRuntime
	ErrorType
	ErrorEnv
)

func (c ErrorCode) String() string {
	switch c {
	case ErrorNone:
		return "none"
	case ErrorParse:
		return "parse"
	case ErrorRuntime:
		return "runtime"
	case ErrorType:
		return "type"
	case ErrorEnv:
		return "env"
	}

	return "unknown"
}

// Callbacks supplies host resolution for variables and functions. Either
// callback may be nil; lookups then fail with [ErrorEnv]. Context is an
// opaque host value passed back on every invocation.
type Callbacks struct {
	GetVariable  func(ctx any, name string) (RawValue, ErrorCode)
	CallFunction func(ctx any, name string, args []RawValue) (RawValue, ErrorCode)
	Context      any
}

// callbackEnv adapts Callbacks to [lang.Env].
type callbackEnv struct {
	cb Callbacks
}

func (e callbackEnv) Get(name string) (lang.Value, error) {
	if e.cb.GetVariable == nil {
		return lang.Value{}, lang.ErrUnknownVariable.With(slog.String("variable", name))
	}

	raw, code := e.cb.GetVariable(e.cb.Context, name)
	if code != ErrorNone {
		return lang.Value{}, codeError(code, name)
	}

	return raw.Value(), nil
}

func (e callbackEnv) Call(name string, args []lang.Value) (lang.Value, error) {
	if e.cb.CallFunction == nil {
		return lang.Value{}, lang.ErrUnknownFunction.With(slog.String("function", name))
	}

	raw := make([]RawValue, len(args))
	for i, arg := range args {
		raw[i] = FromValue(arg)
	}

	out, code := e.cb.CallFunction(e.cb.Context, name, raw)
	if code != ErrorNone {
		return lang.Value{}, codeError(code, name)
	}

	return out.Value(), nil
}

func codeError(code ErrorCode, name string) error {
	switch code {
	case ErrorType:
		return lang.NewTypeError("host rejected " + name)
	case ErrorParse:
		return lang.NewParseError("host rejected " + name)
	default:
		return lang.NewRuntimeError("host rejected " + name)
	}
}

// classify maps an engine error to its boundary code.
func classify(err error) ErrorCode {
	switch {
	case err == nil:
		return ErrorNone
	case errors.Is(err, lang.ErrParse):
		return ErrorParse
	case errors.Is(err, lang.ErrType):
		return ErrorType
	case errors.Is(err, lang.ErrNoEnvironment),
		errors.Is(err, lang.ErrUnknownVariable),
		errors.Is(err, lang.ErrUnknownFunction):
		return ErrorEnv
	default:
		return ErrorRuntime
	}
}

// RawToken is the boundary representation of a [lang.Token].
type RawToken struct {
	Kind  int32
	Text  string
	Start int32
	Len   int32
}

// Bridge owns a table of parsed trees and the last-error slot. Methods are
// safe for concurrent use, though hosts that poll LastError after a failing
// call must serialize their own call/poll pairs.
type Bridge struct {
	mu      sync.Mutex
	next    Handle
	entries map[Handle]*entry

	errCode ErrorCode
	errMsg  string
}

type entry struct {
	root lang.Node
	refs int
}

// New returns an empty Bridge.
func New() *Bridge {
	return &Bridge{
		next:    1,
		entries: make(map[Handle]*entry),
	}
}

func (b *Bridge) setError(err error) ErrorCode {
	code := classify(err)

	b.errCode = code
	if err != nil {
		b.errMsg = err.Error()
	} else {
		b.errMsg = ""
	}

	return code
}

// Parse compiles source into a tree and returns its handle with one
// reference. The zero handle reports failure; consult LastError.
func (b *Bridge) Parse(src string) Handle {
	root, err := lang.Parse(src)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.setError(err) != ErrorNone {
		return 0
	}

	h := b.next
	b.next++
	b.entries[h] = &entry{root: root, refs: 1}

	return h
}

// ParseWithTokens is Parse plus the full source token scan, which survives
// even when parsing fails so hosts can highlight invalid input.
func (b *Bridge) ParseWithTokens(src string) (Handle, []RawToken) {
	var toks []lang.Token

	root, err := lang.Parse(src, lang.WithTokens(&toks))

	raw := make([]RawToken, len(toks))
	for i, tok := range toks {
		raw[i] = RawToken{
			Kind:  int32(tok.Kind),
			Text:  tok.Text,
			Start: int32(tok.Start),
			Len:   int32(tok.Len),
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.setError(err) != ErrorNone {
		return 0, raw
	}

	h := b.next
	b.next++
	b.entries[h] = &entry{root: root, refs: 1}

	return h, raw
}

// Retain adds a reference to a handle. Unknown handles are ignored.
func (b *Bridge) Retain(h Handle) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if e, ok := b.entries[h]; ok {
		e.refs++
	}
}

// Release drops a reference, freeing the tree when the count reaches zero.
func (b *Bridge) Release(h Handle) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.entries[h]
	if !ok {
		return
	}

	e.refs--
	if e.refs <= 0 {
		delete(b.entries, h)
	}
}

// EvaluateAST evaluates a previously parsed handle against the host
// callbacks. The boolean reports success; on failure the zero value is
// returned and the error slot is set.
func (b *Bridge) EvaluateAST(h Handle, cb Callbacks) (RawValue, bool) {
	b.mu.Lock()
	e, ok := b.entries[h]
	b.mu.Unlock()

	if !ok {
		b.mu.Lock()
		b.errCode, b.errMsg = ErrorRuntime, "invalid handle"
		b.mu.Unlock()

		return RawValue{}, false
	}

	val, err := e.root.Eval(callbackEnv{cb: cb})

	b.mu.Lock()
	code := b.setError(err)
	b.mu.Unlock()

	if code != ErrorNone {
		return RawValue{}, false
	}

	return FromValue(val), true
}

// Evaluate parses and evaluates in one call without entering the handle
// table.
func (b *Bridge) Evaluate(src string, cb Callbacks) (RawValue, bool) {
	val, err := lang.Eval(src, callbackEnv{cb: cb})

	b.mu.Lock()
	code := b.setError(err)
	b.mu.Unlock()

	if code != ErrorNone {
		return RawValue{}, false
	}

	return FromValue(val), true
}

// LastError reports the code and message recorded by the most recent Parse
// or Evaluate call.
func (b *Bridge) LastError() (ErrorCode, string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.errCode, b.errMsg
}

// ClearError resets the error slot to [ErrorNone].
func (b *Bridge) ClearError() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.errCode, b.errMsg = ErrorNone, ""
}

// Live reports how many trees the handle table currently holds.
func (b *Bridge) Live() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.entries)
}
