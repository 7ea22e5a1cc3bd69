package lang

import (
	"log/slog"
	"strconv"
	"strings"
)

// Option configures a single Parse or Eval call.
type Option func(*parseConfig)

type parseConfig struct {
	tokens *[]Token
}

// WithTokens captures the complete scanned token sequence (whitespace
// included) into dst, for syntax highlighting and other analysis. The
// sequence should be treated as an unordered set: consumers that depend on
// position must sort by Token.Start.
func WithTokens(dst *[]Token) Option {
	return func(cfg *parseConfig) { cfg.tokens = dst }
}

// Parse scans and parses src into an immutable expression tree, or fails
// with a parse error. The returned root can be evaluated any number of
// times, concurrently, against different environments.
func Parse(src string, opts ...Option) (Node, error) {
	var cfg parseConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	toks := Tokenize(src)
	if cfg.tokens != nil {
		*cfg.tokens = append(*cfg.tokens, toks...)
	}

	p := &parser{toks: toks}

	if p.peek() == nil {
		return nil, ErrEmptyExpression
	}

	root, err := p.parseConditional()
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok != nil {
		return nil, errUnexpected(*tok)
	}

	logger().Debug("parsed expression",
		slog.Int("source_bytes", len(src)),
		slog.Int("tokens", len(toks)),
	)

	return root, nil
}

// Eval parses src and evaluates it against env in one call. The env may be
// nil when the expression references no variables or host functions.
func Eval(src string, env Env, opts ...Option) (Value, error) {
	root, err := Parse(src, opts...)
	if err != nil {
		return Value{}, err
	}

	return root.Eval(env)
}

// Evaluate evaluates a previously parsed tree against env.
func Evaluate(root Node, env Env) (Value, error) {
	if root == nil {
		return Value{}, ErrEmptyExpression
	}

	return root.Eval(env)
}

// parser walks the token sequence with single-token lookahead, skipping
// whitespace. Grammar productions appear lowest binding first.
type parser struct {
	toks []Token
	pos  int
}

// peek returns the next significant token without consuming it, or nil at
// end of input.
func (p *parser) peek() *Token {
	for p.pos < len(p.toks) && p.toks[p.pos].Kind == KindWhitespace {
		p.pos++
	}

	if p.pos >= len(p.toks) {
		return nil
	}

	return &p.toks[p.pos]
}

// matchOp consumes the next token if it is the given operator.
func (p *parser) matchOp(text string) bool {
	tok := p.peek()
	if tok == nil || tok.Kind != KindOperator || tok.Text != text {
		return false
	}

	p.pos++

	return true
}

// matchPunct consumes the next token if it is the given paren or comma.
func (p *parser) matchPunct(text string) bool {
	tok := p.peek()
	if tok == nil || tok.Text != text ||
		(tok.Kind != KindParen && tok.Kind != KindComma) {
		return false
	}

	p.pos++

	return true
}

func errUnexpected(tok Token) *Error {
	if tok.Kind == KindUnknown && strings.HasPrefix(tok.Text, `"`) {
		return ErrUnterminatedString
	}

	return ErrUnexpectedToken.With(
		slog.String("token", tok.Text),
		slog.Int("offset", tok.Start),
	)
}

// Conditional : Or ('?' Conditional ':' Conditional)?   (right-assoc)
func (p *parser) parseConditional() (Node, error) {
	cond, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	if !p.matchOp("?") {
		return cond, nil
	}

	then, err := p.parseConditional()
	if err != nil {
		return nil, err
	}

	if !p.matchOp(":") {
		return nil, ErrMissingColon
	}

	els, err := p.parseConditional()
	if err != nil {
		return nil, err
	}

	return &Conditional{Cond: cond, Then: then, Else: els}, nil
}

// Or : And (('||' | 'or') And)*
func (p *parser) parseOr() (Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	for p.matchOp("||") || p.matchOp("or") {
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}

		left = &BinaryOp{Op: OpOr, Left: left, Right: right}
	}

	return left, nil
}

// And : Xor (('&&' | 'and') Xor)*
func (p *parser) parseAnd() (Node, error) {
	left, err := p.parseXor()
	if err != nil {
		return nil, err
	}

	for p.matchOp("&&") || p.matchOp("and") {
		right, err := p.parseXor()
		if err != nil {
			return nil, err
		}

		left = &BinaryOp{Op: OpAnd, Left: left, Right: right}
	}

	return left, nil
}

// Xor : Comparison ('xor' Comparison)*
func (p *parser) parseXor() (Node, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}

	for p.matchOp("xor") {
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}

		left = &BinaryOp{Op: OpXor, Left: left, Right: right}
	}

	return left, nil
}

// comparisonOps maps each equality, ordering, and containment spelling to
// its operator. These do not chain: a < b < c is a parse error.
var comparisonOps = map[string]Op{
	"==": OpEq,
	"!=": OpNe,
	"<":  OpLt,
	"<=": OpLe,
	">":  OpGt,
	">=": OpGe,
	"in": OpIn,
}

// Comparison : Additive (cmpOp Additive)?
func (p *parser) parseComparison() (Node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}

	tok := p.peek()
	if tok == nil || tok.Kind != KindOperator {
		return left, nil
	}

	op, ok := comparisonOps[tok.Text]
	if !ok {
		return left, nil
	}

	p.pos++

	right, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}

	return &BinaryOp{Op: op, Left: left, Right: right}, nil
}

// Additive : Multiplicative (('+' | '-') Multiplicative)*
func (p *parser) parseAdditive() (Node, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}

	for {
		var op Op

		switch {
		case p.matchOp("+"):
			op = OpAdd
		case p.matchOp("-"):
			op = OpSub
		default:
			return left, nil
		}

		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}

		left = &BinaryOp{Op: op, Left: left, Right: right}
	}
}

// Multiplicative : Power (('*' | '/' | '%') Power)*
func (p *parser) parseMultiplicative() (Node, error) {
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}

	for {
		var op Op

		switch {
		case p.matchOp("*"):
			op = OpMul
		case p.matchOp("/"):
			op = OpDiv
		case p.matchOp("%"):
			op = OpMod
		default:
			return left, nil
		}

		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}

		left = &BinaryOp{Op: op, Left: left, Right: right}
	}
}

// Power : Unary ('^' Power)?   (right-assoc)
func (p *parser) parsePower() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	if !p.matchOp("^") {
		return left, nil
	}

	right, err := p.parsePower()
	if err != nil {
		return nil, err
	}

	return &BinaryOp{Op: OpPow, Left: left, Right: right}, nil
}

// Unary : ('!' | 'not' | '-') Unary | Primary
func (p *parser) parseUnary() (Node, error) {
	if p.matchOp("!") || p.matchOp("not") {
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return &UnaryOp{Op: OpNot, Operand: operand}, nil
	}

	if p.matchOp("-") {
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return &UnaryOp{Op: OpNeg, Operand: operand}, nil
	}

	return p.parsePrimary()
}

// Primary : literal | identifier | identifier '(' args ')' | '(' expr ')'
func (p *parser) parsePrimary() (Node, error) {
	tok := p.peek()
	if tok == nil {
		return nil, ErrUnexpectedEnd
	}

	switch tok.Kind {
	case KindNumber:
		p.pos++

		f, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, ErrInvalidNumber.With(
				slog.String("literal", tok.Text),
			)
		}

		return &NumberLit{Value: f}, nil

	case KindBoolean:
		p.pos++

		return &BooleanLit{Value: tok.Text == "true"}, nil

	case KindString:
		p.pos++

		return &StringLit{Value: unescape(tok.Text)}, nil

	case KindIdentifier:
		p.pos++

		if !p.matchPunct("(") {
			return &VariableRef{Name: tok.Text}, nil
		}

		return p.parseCall(tok.Text)

	case KindParen:
		if tok.Text != "(" {
			return nil, errUnexpected(*tok)
		}

		p.pos++

		inner, err := p.parseConditional()
		if err != nil {
			return nil, err
		}

		if !p.matchPunct(")") {
			return nil, ErrMissingParen
		}

		return inner, nil

	default:
		return nil, errUnexpected(*tok)
	}
}

// parseCall parses the argument list of name(...), with '(' consumed.
func (p *parser) parseCall(name string) (Node, error) {
	call := &FunctionCall{Name: name}

	if p.matchPunct(")") {
		return call, nil
	}

	for {
		arg, err := p.parseConditional()
		if err != nil {
			return nil, err
		}

		call.Args = append(call.Args, arg)

		if p.matchPunct(",") {
			continue
		}

		if p.matchPunct(")") {
			return call, nil
		}

		return nil, ErrMissingParen.With(
			slog.String("function", name),
		)
	}
}

// unescape converts a raw string token (quotes included) to its value.
// Recognized escapes are \n, \t, \r, \\, and \"; any other backslash pair
// is preserved as written.
func unescape(raw string) string {
	body := raw[1 : len(raw)-1]

	if !strings.ContainsRune(body, '\\') {
		return body
	}

	var b strings.Builder

	b.Grow(len(body))

	for i := 0; i < len(body); i++ {
		if body[i] != '\\' || i+1 >= len(body) {
			b.WriteByte(body[i])

			continue
		}

		i++

		switch body[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		default:
			b.WriteByte('\\')
			b.WriteByte(body[i])
		}
	}

	return b.String()
}
