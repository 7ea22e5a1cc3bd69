// Package lang implements a small, side-effect-free expression language for
// embedding: text in, typed value out, with free identifiers and function
// calls resolved through a host-supplied [Env].
//
// # Pipeline
//
//	text → Tokenize → tokens → Parse → tree → Eval(tree, Env) → Value
//
// The tree built by [Parse] is immutable, so the natural usage pattern is
// parse once, evaluate many times — against one environment repeatedly, or
// against different environments, including concurrently.
//
// # Grammar
//
// Lowest to highest binding:
//
//	?:                    conditional (right-assoc, lazy branches)
//	|| or                 logical or (short-circuit)
//	&& and                logical and (short-circuit)
//	xor                   logical exclusive-or
//	== != < <= > >= in    comparison and containment (non-chaining)
//	+ -                   additive ('+' concatenates when a string operand
//	                      is present)
//	* / %                 multiplicative
//	^                     power (right-assoc)
//	! not -               unary prefix
//	literals, identifiers, calls, parentheses
//
// Number literals are plain decimals with an optional fraction (no
// exponents). String literals are double-quoted with \n \t \r \\ \"
// escapes. Identifiers may contain dots, so player.health is one name.
//
// # Values and coercion
//
// [Value] is a tagged union of number (float64), boolean, and string.
// Operators coerce operands to the tag they need; only string-to-number can
// fail. Equality across tags is always false rather than an error, while
// ordering across tags is a type error.
//
// # Errors
//
// Every failure is a *[Error] of one of three kinds, matched with
// errors.Is against [ErrParse], [ErrType], or [ErrRuntime].
package lang
