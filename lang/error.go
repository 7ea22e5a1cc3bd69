package lang

import (
	"log/slog"
	"strings"
)

// errKind partitions engine failures into the three reported categories.
type errKind int

const (
	kindParse   errKind = iota // parse error
	kindType                   // type error
	kindRuntime                // runtime error
)

func (k errKind) String() string {
	switch k {
	case kindParse:
		return "parse error"
	case kindType:
		return "type error"
	default:
		return "runtime error"
	}
}

// Kind sentinels. Match with errors.Is to classify any engine error:
//
//	if errors.Is(err, lang.ErrType) { ... }
var (
	ErrParse   = &Error{kind: kindParse}
	ErrType    = &Error{kind: kindType}
	ErrRuntime = &Error{kind: kindRuntime}
)

// Predefined errors (sentinel values).
var (
	ErrEmptyExpression    = NewParseError("empty expression")
	ErrUnexpectedEnd      = NewParseError("unexpected end of expression")
	ErrUnexpectedToken    = NewParseError("unexpected token")
	ErrMissingParen       = NewParseError("missing closing parenthesis")
	ErrMissingColon       = NewParseError("expected ':' in conditional")
	ErrUnterminatedString = NewParseError("unterminated string literal")
	ErrInvalidNumber      = NewParseError("invalid number literal")

	ErrNotANumber     = NewTypeError("cannot convert to number")
	ErrOrderedTags    = NewTypeError("ordering requires operands of one tag")
	ErrContainsString = NewTypeError("in requires string operands")

	ErrDivisionByZero  = NewRuntimeError("division by zero")
	ErrModuloByZero    = NewRuntimeError("modulo by zero")
	ErrMathDomain      = NewRuntimeError("math domain error")
	ErrNoEnvironment   = NewRuntimeError("no environment")
	ErrUnknownVariable = NewRuntimeError("unknown variable")
	ErrUnknownFunction = NewRuntimeError("unknown function")
)

// Error is the engine's error type: a kind (parse, type, or runtime), a
// message, an optional wrapped cause, and structured logging attributes.
// It implements error, errors.Is/Unwrap, and slog.LogValuer.
type Error struct {
	kind  errKind
	msg   string
	err   error
	attrs []slog.Attr
}

// NewParseError creates a malformed-input error.
func NewParseError(msg string) *Error {
	return &Error{kind: kindParse, msg: msg}
}

// NewTypeError creates an incompatible-tags error.
func NewTypeError(msg string) *Error {
	return &Error{kind: kindType, msg: msg}
}

// NewRuntimeError creates an unresolvable-at-evaluation error. Host
// environments should use this for undefined names and invalid arguments.
func NewRuntimeError(msg string) *Error {
	return &Error{kind: kindRuntime, msg: msg}
}

// Error implements the error interface as "<kind>: <msg>: <cause>",
// omitting the parts that are unset.
func (e *Error) Error() string {
	part := make([]string, 0, 3)
	part = append(part, e.kind.String())

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is matches the kind sentinels (any message) and predefined errors
// (same kind and message).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.kind != e.kind {
		return false
	}

	return t.msg == "" || t.msg == e.msg
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		kind:  e.kind,
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes for structured logging. A new Error instance is
// returned so predefined errors stay immutable.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		kind:  e.kind,
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+3)
	attrs = append(attrs, slog.String("kind", e.kind.String()))

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}
