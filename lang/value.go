package lang

import (
	"log/slog"
	"strconv"
	"strings"
)

// Tag identifies which variant a Value holds.
type Tag int

const (
	TagNumber  Tag = iota // number
	TagBoolean             // boolean
	TagString              // string
)

// String returns the lowercase name of the tag.
func (t Tag) String() string {
	switch t {
	case TagNumber:
		return "number"
	case TagBoolean:
		return "boolean"
	case TagString:
		return "string"
	default:
		return "invalid"
	}
}

// Value is the tagged operand and result type of the engine: exactly one of
// number, boolean, or string is active. Values have copy semantics and are
// immutable once constructed.
type Value struct {
	tag Tag
	num float64
	tru bool
	str string
}

// Number returns a number Value.
func Number(f float64) Value { return Value{tag: TagNumber, num: f} }

// Boolean returns a boolean Value.
func Boolean(b bool) Value { return Value{tag: TagBoolean, tru: b} }

// String returns a string Value.
func String(s string) Value { return Value{tag: TagString, str: s} }

// Tag returns the active variant.
func (v Value) Tag() Tag { return v.tag }

func (v Value) IsNumber() bool  { return v.tag == TagNumber }
func (v Value) IsBoolean() bool { return v.tag == TagBoolean }
func (v Value) IsString() bool  { return v.tag == TagString }

// AsNumber converts the value to a number.
//
// Booleans convert to 1 or 0. Strings must be a complete decimal numeral
// (optional sign, digits, optional fraction); anything else, including
// surrounding whitespace, exponents, or an empty string, is a type error.
func (v Value) AsNumber() (float64, error) {
	switch v.tag {
	case TagNumber:
		return v.num, nil

	case TagBoolean:
		if v.tru {
			return 1, nil
		}

		return 0, nil

	default:
		if !isDecimalNumeral(v.str) {
			return 0, ErrNotANumber.
				With(slog.String("value", v.str))
		}

		f, err := strconv.ParseFloat(v.str, 64)
		if err != nil {
			return 0, ErrNotANumber.Wrap(err).
				With(slog.String("value", v.str))
		}

		return f, nil
	}
}

// AsBoolean converts the value to a boolean. The conversion is total:
// numbers are true unless exactly zero, and strings are false only for the
// case-insensitive set {"false", "no", "0", ""}.
func (v Value) AsBoolean() bool {
	switch v.tag {
	case TagBoolean:
		return v.tru

	case TagNumber:
		return v.num != 0

	default:
		switch strings.ToLower(v.str) {
		case "", "false", "no", "0":
			return false
		default:
			return true
		}
	}
}

// AsString converts the value to text. Numbers format as fixed-point with
// six fractional digits (42 -> "42.000000"); booleans as "true"/"false".
func (v Value) AsString() string {
	switch v.tag {
	case TagString:
		return v.str

	case TagBoolean:
		return strconv.FormatBool(v.tru)

	default:
		return strconv.FormatFloat(v.num, 'f', 6, 64)
	}
}

// String implements fmt.Stringer using the AsString conversion.
func (v Value) String() string { return v.AsString() }

// Equal reports cross-type-safe equality: values of different tags are
// unequal, and same-tag values compare by their underlying representation.
func (v Value) Equal(o Value) bool {
	if v.tag != o.tag {
		return false
	}

	switch v.tag {
	case TagNumber:
		return v.num == o.num
	case TagBoolean:
		return v.tru == o.tru
	default:
		return v.str == o.str
	}
}

// LogValue implements slog.LogValuer.
func (v Value) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("tag", v.tag.String()),
		slog.String("value", v.AsString()),
	)
}

// isDecimalNumeral reports whether s is an optional sign, digits, and an
// optional '.' fraction, with no leftover characters. A fraction-only form
// like ".5" or "1." is accepted; a bare sign or dot is not.
func isDecimalNumeral(s string) bool {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}

	digits := 0
	dots := 0

	for i := range len(s) {
		switch {
		case isDigit(s[i]):
			digits++
		case s[i] == '.':
			dots++
		default:
			return false
		}
	}

	return digits > 0 && dots <= 1
}
