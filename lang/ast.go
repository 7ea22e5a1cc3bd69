package lang

import (
	"strconv"
	"strings"
)

// Op enumerates the unary and binary operators.
type Op int

const (
	OpAdd Op = iota // +
	OpSub           // -
	OpMul           // *
	OpDiv           // /
	OpMod           // %
	OpPow           // ^
	OpEq            // ==
	OpNe            // !=
	OpLt            // <
	OpLe            // <=
	OpGt            // >
	OpGe            // >=
	OpIn            // in
	OpAnd           // &&
	OpOr            // ||
	OpXor           // xor
	OpNot           // !
	OpNeg           // unary -
)

// String returns the canonical spelling of the operator.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub, OpNeg:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpPow:
		return "^"
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	case OpIn:
		return "in"
	case OpAnd:
		return "&&"
	case OpOr:
		return "||"
	case OpXor:
		return "xor"
	case OpNot:
		return "!"
	default:
		return "?"
	}
}

// Node is one immutable vertex of a parsed expression tree. A tree is built
// once by Parse and never mutated afterward, so a root may be shared freely
// across concurrent evaluations with independent environments.
type Node interface {
	// Eval computes the node's value against env, which may be nil for
	// expressions that reference no variables or host functions.
	Eval(env Env) (Value, error)

	// String renders the subtree as a parenthesized expression.
	String() string
}

// NumberLit is a numeric literal: 42, 3.14, .5
type NumberLit struct {
	Value float64
}

// BooleanLit is a boolean literal: true, false
type BooleanLit struct {
	Value bool
}

// StringLit is a string literal with escapes already processed.
type StringLit struct {
	Value string
}

// VariableRef is a free identifier resolved through the environment.
// Dotted names like player.health are a single reference.
type VariableRef struct {
	Name string
}

// UnaryOp is a prefix operator application: !x, not x, -x
type UnaryOp struct {
	Op      Op
	Operand Node
}

// BinaryOp is an infix operator application.
type BinaryOp struct {
	Op          Op
	Left, Right Node
}

// Conditional is the ternary operator cond ? then : else. Only the selected
// branch is evaluated.
type Conditional struct {
	Cond, Then, Else Node
}

// FunctionCall dispatches name(args...) to the standard function library
// and then to the environment.
type FunctionCall struct {
	Name string
	Args []Node
}

func (n *NumberLit) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (n *BooleanLit) String() string {
	return strconv.FormatBool(n.Value)
}

func (n *StringLit) String() string {
	return strconv.Quote(n.Value)
}

func (n *VariableRef) String() string {
	return n.Name
}

func (n *UnaryOp) String() string {
	return "(" + n.Op.String() + n.Operand.String() + ")"
}

func (n *BinaryOp) String() string {
	return "(" + n.Left.String() +
		" " + n.Op.String() + " " +
		n.Right.String() + ")"
}

func (n *Conditional) String() string {
	return "(" + n.Cond.String() +
		" ? " + n.Then.String() +
		" : " + n.Else.String() + ")"
}

func (n *FunctionCall) String() string {
	args := make([]string, len(n.Args))
	for i, arg := range n.Args {
		args[i] = arg.String()
	}

	return n.Name + "(" + strings.Join(args, ", ") + ")"
}
