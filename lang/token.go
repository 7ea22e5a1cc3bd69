package lang

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind classifies a lexical token.
type Kind int

const (
	KindNumber     Kind = iota // number
	KindBoolean                // boolean
	KindString                 // string
	KindIdentifier             // identifier
	KindOperator               // operator
	KindParen                  // paren
	KindComma                  // comma
	KindWhitespace             // whitespace
	KindUnknown                // unknown
)

// String returns the lowercase name of the token kind.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindString:
		return "string"
	case KindIdentifier:
		return "identifier"
	case KindOperator:
		return "operator"
	case KindParen:
		return "paren"
	case KindComma:
		return "comma"
	case KindWhitespace:
		return "whitespace"
	default:
		return "unknown"
	}
}

// Token is one classified span of source text. Text is always the verbatim
// matched substring, so concatenating a sequence sorted by Start reproduces
// the input exactly.
type Token struct {
	Kind  Kind
	Text  string
	Start int // byte offset into the source
	Len   int // byte length of Text
}

// String renders the token for diagnostics.
func (t Token) String() string {
	return t.Kind.String() + "(" + strconv.Quote(t.Text) +
		"@" + strconv.Itoa(t.Start) + ")"
}

// keywordOps are identifier-shaped words that scan as operators.
var keywordOps = map[string]bool{
	"and": true,
	"or":  true,
	"not": true,
	"xor": true,
	"in":  true,
}

// twoCharOps are matched before their single-character prefixes.
var twoCharOps = []string{"==", "!=", "<=", ">=", "&&", "||"}

const oneCharOps = "+-*/%^<>!?:"

// Tokenize scans src into its complete token sequence, whitespace included.
// It never fails: byte sequences that match no rule become Unknown tokens and
// scanning continues, leaving error reporting to the parser.
func Tokenize(src string) []Token {
	toks := make([]Token, 0, 16)
	pos := 0

	emit := func(kind Kind, start int) {
		toks = append(toks, Token{
			Kind:  kind,
			Text:  src[start:pos],
			Start: start,
			Len:   pos - start,
		})
	}

	for pos < len(src) {
		start := pos

		r, size := utf8.DecodeRuneInString(src[pos:])

		switch {
		case unicode.IsSpace(r):
			for pos < len(src) {
				r, size := utf8.DecodeRuneInString(src[pos:])
				if !unicode.IsSpace(r) {
					break
				}

				pos += size
			}

			emit(KindWhitespace, start)

		case r >= '0' && r <= '9', r == '.' && hasDigitAt(src, pos+1):
			// Digit and dot runs scan as one Number token. Malformed forms
			// like 1.2.3 are caught by the parser, not here.
			for pos < len(src) && (isDigit(src[pos]) || src[pos] == '.') {
				pos++
			}

			emit(KindNumber, start)

		case r == '"':
			pos++ // opening quote

			terminated := false

			for pos < len(src) {
				if src[pos] == '\\' && pos+1 < len(src) {
					pos += 2

					continue
				}

				if src[pos] == '"' {
					pos++
					terminated = true

					break
				}

				pos++
			}

			if terminated {
				emit(KindString, start)
			} else {
				emit(KindUnknown, start)
			}

		case unicode.IsLetter(r) || r == '_':
			pos += size

			for pos < len(src) {
				r, size := utf8.DecodeRuneInString(src[pos:])
				if !unicode.IsLetter(r) && !unicode.IsDigit(r) &&
					r != '_' && r != '.' {
					break
				}

				pos += size
			}

			switch word := src[start:pos]; {
			case word == "true" || word == "false":
				emit(KindBoolean, start)
			case keywordOps[word]:
				emit(KindOperator, start)
			default:
				emit(KindIdentifier, start)
			}

		case r == '(' || r == ')':
			pos++
			emit(KindParen, start)

		case r == ',':
			pos++
			emit(KindComma, start)

		default:
			if op := matchOperator(src[pos:]); op != "" {
				pos += len(op)
				emit(KindOperator, start)

				break
			}

			pos += size
			emit(KindUnknown, start)
		}
	}

	return toks
}

// matchOperator returns the longest operator prefix of s, or "".
func matchOperator(s string) string {
	for _, op := range twoCharOps {
		if strings.HasPrefix(s, op) {
			return op
		}
	}

	// A bare '=' is not an operator; only its two-character forms are.
	if strings.IndexByte(oneCharOps, s[0]) >= 0 {
		return s[:1]
	}

	return ""
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func hasDigitAt(s string, i int) bool {
	return i < len(s) && isDigit(s[i])
}
