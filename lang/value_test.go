package lang

import (
	"errors"
	"strconv"
	"testing"
)

func TestValue_AsNumber(t *testing.T) {
	tests := []struct {
		name    string
		val     Value
		want    float64
		wantErr bool
	}{
		{name: "number", val: Number(3.5), want: 3.5},
		{name: "true", val: Boolean(true), want: 1},
		{name: "false", val: Boolean(false), want: 0},
		{name: "plain numeral", val: String("42"), want: 42},
		{name: "fraction", val: String("3.14"), want: 3.14},
		{name: "signed", val: String("-7"), want: -7},
		{name: "leading dot", val: String(".5"), want: 0.5},
		{name: "empty string", val: String(""), wantErr: true},
		{name: "leftover characters", val: String("42abc"), wantErr: true},
		{name: "whitespace padded", val: String(" 42 "), wantErr: true},
		{name: "exponent rejected", val: String("1e10"), wantErr: true},
		{name: "bare sign", val: String("-"), wantErr: true},
		{name: "words", val: String("hello"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.val.AsNumber()

			if tt.wantErr {
				if err == nil {
					t.Fatalf("got %v, want error", got)
				}

				if !errors.Is(err, ErrType) {
					t.Errorf("error %v is not a type error", err)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValue_AsBoolean(t *testing.T) {
	tests := []struct {
		name string
		val  Value
		want bool
	}{
		{name: "zero", val: Number(0), want: false},
		{name: "nonzero", val: Number(42), want: true},
		{name: "negative", val: Number(-1), want: true},
		{name: "true", val: Boolean(true), want: true},
		{name: "empty string", val: String(""), want: false},
		{name: "false word", val: String("false"), want: false},
		{name: "FALSE folded", val: String("FALSE"), want: false},
		{name: "no", val: String("No"), want: false},
		{name: "zero string", val: String("0"), want: false},
		{name: "yes", val: String("yes"), want: true},
		{name: "one", val: String("1"), want: true},
		{name: "anything", val: String("anything-nonempty"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.val.AsBoolean(); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValue_AsString(t *testing.T) {
	tests := []struct {
		name string
		val  Value
		want string
	}{
		{name: "integer number", val: Number(42), want: "42.000000"},
		{name: "fraction", val: Number(2.5), want: "2.500000"},
		{name: "negative", val: Number(-0.25), want: "-0.250000"},
		{name: "true", val: Boolean(true), want: "true"},
		{name: "false", val: Boolean(false), want: "false"},
		{name: "string passthrough", val: String("hi"), want: "hi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.val.AsString(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// Formatting a number and parsing the text back must round-trip within the
// fixed six-decimal precision.
func TestValue_StringRoundTrip(t *testing.T) {
	for _, n := range []float64{0, 1, -1, 42, 3.141593, -273.15, 1e6} {
		text := Number(n).AsString()

		back, err := strconv.ParseFloat(text, 64)
		if err != nil {
			t.Fatalf("%q did not parse: %v", text, err)
		}

		if diff := back - n; diff > 5e-7 || diff < -5e-7 {
			t.Errorf("round trip %v -> %q -> %v", n, text, back)
		}
	}
}

func TestValue_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{name: "same numbers", a: Number(1), b: Number(1), want: true},
		{name: "different numbers", a: Number(1), b: Number(2), want: false},
		{name: "same strings", a: String("a"), b: String("a"), want: true},
		{name: "same booleans", a: Boolean(true), b: Boolean(true), want: true},
		{name: "number vs string", a: Number(42), b: String("42"), want: false},
		{name: "number vs boolean", a: Number(1), b: Boolean(true), want: false},
		{name: "boolean vs string", a: Boolean(false), b: String("false"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}

			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("reversed: got %v, want %v", got, tt.want)
			}
		})
	}
}
