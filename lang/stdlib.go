package lang

import (
	"log/slog"
	"math"
)

// The standard function library: fixed numeric built-ins dispatched before
// any host environment. Matching is structural — a name, arity, and
// argument-tag combination either matches or it does not, so a host can
// layer its own function of the same name for other arities or tags without
// the library swallowing the call.

// unaryStd are the one-argument built-ins without domain restrictions.
var unaryStd = map[string]func(float64) float64{
	"abs":   math.Abs,
	"floor": math.Floor,
	"ceil":  math.Ceil,
	"round": math.Round,
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
	"exp":   math.Exp,
}

// binaryStd are the two-argument built-ins.
var binaryStd = map[string]func(float64, float64) float64{
	"min": math.Min,
	"max": math.Max,
	"pow": math.Pow,
}

// CallStandard dispatches name(args...) against the built-in table.
//
// The second result reports whether the call matched a built-in: false means
// the name, arity, or argument tags are not recognized (every argument must
// already be a number — no coercion happens at this boundary), and the
// caller should try its own dispatch. A matched call can still fail with a
// runtime error for domain violations (sqrt or log of out-of-range input).
func CallStandard(name string, args []Value) (Value, bool, error) {
	for _, arg := range args {
		if !arg.IsNumber() {
			return Value{}, false, nil
		}
	}

	switch len(args) {
	case 1:
		x, _ := args[0].AsNumber()

		switch name {
		case "sqrt":
			if x < 0 {
				return Value{}, true, ErrMathDomain.With(
					slog.String("function", name),
					slog.Float64("arg", x),
				)
			}

			return Number(math.Sqrt(x)), true, nil

		case "log":
			if x <= 0 {
				return Value{}, true, ErrMathDomain.With(
					slog.String("function", name),
					slog.Float64("arg", x),
				)
			}

			return Number(math.Log(x)), true, nil
		}

		if fn, ok := unaryStd[name]; ok {
			return Number(fn(x)), true, nil
		}

	case 2:
		if fn, ok := binaryStd[name]; ok {
			a, _ := args[0].AsNumber()
			b, _ := args[1].AsNumber()

			return Number(fn(a, b)), true, nil
		}
	}

	return Value{}, false, nil
}

// StandardNames returns the sorted names of all built-in functions, for
// completion and help output.
func StandardNames() []string {
	names := make([]string, 0, len(unaryStd)+len(binaryStd)+2)

	for name := range unaryStd {
		names = append(names, name)
	}

	for name := range binaryStd {
		names = append(names, name)
	}

	names = append(names, "sqrt", "log")

	return sortedStrings(names)
}
