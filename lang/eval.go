package lang

import (
	"log/slog"
	"math"
	"strings"
)

// This file implements evaluation as methods on the AST node types.
// Evaluation is a pure function of (tree, environment): no engine state is
// shared across calls, and the only side effects are those of a host
// environment's own Get/Call implementations.

func (n *NumberLit) Eval(Env) (Value, error) {
	return Number(n.Value), nil
}

func (n *BooleanLit) Eval(Env) (Value, error) {
	return Boolean(n.Value), nil
}

func (n *StringLit) Eval(Env) (Value, error) {
	return String(n.Value), nil
}

func (n *VariableRef) Eval(env Env) (Value, error) {
	if env == nil {
		return Value{}, ErrNoEnvironment.With(
			slog.String("variable", n.Name),
		)
	}

	return env.Get(n.Name)
}

func (n *UnaryOp) Eval(env Env) (Value, error) {
	val, err := n.Operand.Eval(env)
	if err != nil {
		return Value{}, err
	}

	switch n.Op {
	case OpNot:
		return Boolean(!val.AsBoolean()), nil

	default: // OpNeg
		f, err := val.AsNumber()
		if err != nil {
			return Value{}, err
		}

		return Number(-f), nil
	}
}

func (n *Conditional) Eval(env Env) (Value, error) {
	cond, err := n.Cond.Eval(env)
	if err != nil {
		return Value{}, err
	}

	if cond.AsBoolean() {
		return n.Then.Eval(env)
	}

	return n.Else.Eval(env)
}

func (n *BinaryOp) Eval(env Env) (Value, error) {
	// && and || decide on the left operand alone when they can; the right
	// subtree is not evaluated at all in that case.
	switch n.Op {
	case OpAnd, OpOr:
		return n.evalShortCircuit(env)
	}

	lhs, err := n.Left.Eval(env)
	if err != nil {
		return Value{}, err
	}

	rhs, err := n.Right.Eval(env)
	if err != nil {
		return Value{}, err
	}

	switch n.Op {
	case OpXor:
		return Boolean(lhs.AsBoolean() != rhs.AsBoolean()), nil

	case OpEq:
		return Boolean(lhs.Equal(rhs)), nil

	case OpNe:
		return Boolean(!lhs.Equal(rhs)), nil

	case OpAdd:
		if lhs.IsString() || rhs.IsString() {
			return String(lhs.AsString() + rhs.AsString()), nil
		}

		return numericOp(n.Op, lhs, rhs)

	case OpSub, OpMul, OpDiv, OpMod, OpPow:
		return numericOp(n.Op, lhs, rhs)

	case OpLt, OpLe, OpGt, OpGe:
		return orderedOp(n.Op, lhs, rhs)

	default: // OpIn
		if !lhs.IsString() || !rhs.IsString() {
			return Value{}, ErrContainsString.With(
				slog.String("left", lhs.Tag().String()),
				slog.String("right", rhs.Tag().String()),
			)
		}

		return Boolean(strings.Contains(rhs.AsString(), lhs.AsString())), nil
	}
}

func (n *BinaryOp) evalShortCircuit(env Env) (Value, error) {
	lhs, err := n.Left.Eval(env)
	if err != nil {
		return Value{}, err
	}

	left := lhs.AsBoolean()

	if n.Op == OpAnd && !left {
		return Boolean(false), nil
	}

	if n.Op == OpOr && left {
		return Boolean(true), nil
	}

	rhs, err := n.Right.Eval(env)
	if err != nil {
		return Value{}, err
	}

	return Boolean(rhs.AsBoolean()), nil
}

// numericOp applies an arithmetic operator with both operands coerced to
// numbers. A zero divisor for / and % is a runtime error.
func numericOp(op Op, lhs, rhs Value) (Value, error) {
	a, err := lhs.AsNumber()
	if err != nil {
		return Value{}, err
	}

	b, err := rhs.AsNumber()
	if err != nil {
		return Value{}, err
	}

	switch op {
	case OpAdd:
		return Number(a + b), nil

	case OpSub:
		return Number(a - b), nil

	case OpMul:
		return Number(a * b), nil

	case OpDiv:
		if b == 0 {
			return Value{}, ErrDivisionByZero
		}

		return Number(a / b), nil

	case OpMod:
		if b == 0 {
			return Value{}, ErrModuloByZero
		}

		return Number(math.Mod(a, b)), nil

	default: // OpPow
		return Number(math.Pow(a, b)), nil
	}
}

// orderedOp applies an ordering operator. Ordering is defined only between
// two numbers or two strings (byte order); any other pairing is a type
// error, unlike equality which never fails.
func orderedOp(op Op, lhs, rhs Value) (Value, error) {
	if lhs.Tag() != rhs.Tag() || lhs.IsBoolean() {
		return Value{}, ErrOrderedTags.With(
			slog.String("left", lhs.Tag().String()),
			slog.String("right", rhs.Tag().String()),
		)
	}

	var cmp int

	if lhs.IsNumber() {
		a, _ := lhs.AsNumber()
		b, _ := rhs.AsNumber()

		switch {
		case a < b:
			cmp = -1
		case a > b:
			cmp = 1
		}
	} else {
		cmp = strings.Compare(lhs.AsString(), rhs.AsString())
	}

	switch op {
	case OpLt:
		return Boolean(cmp < 0), nil
	case OpLe:
		return Boolean(cmp <= 0), nil
	case OpGt:
		return Boolean(cmp > 0), nil
	default: // OpGe
		return Boolean(cmp >= 0), nil
	}
}

func (n *FunctionCall) Eval(env Env) (Value, error) {
	args := make([]Value, len(n.Args))

	for i, arg := range n.Args {
		val, err := arg.Eval(env)
		if err != nil {
			return Value{}, err
		}

		args[i] = val
	}

	// The standard library is consulted first. A matched call with bad
	// input (sqrt of a negative) fails here rather than falling through:
	// "not this function" and "this function, bad input" are different.
	if val, ok, err := CallStandard(n.Name, args); ok {
		return val, err
	}

	if env == nil {
		return Value{}, ErrNoEnvironment.With(
			slog.String("function", n.Name),
		)
	}

	return env.Call(n.Name, args)
}
