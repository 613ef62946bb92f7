package expr

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/benz9527/xdsa/lib/infra"
)

type operator struct {
	prec       int
	rightAssoc bool
}

var operators = map[string]operator{
	"+": {prec: 1},
	"-": {prec: 1},
	"*": {prec: 2},
	"/": {prec: 2},
	"^": {prec: 3, rightAssoc: true},
}

const (
	openParen  = "("
	closeParen = ")"
)

func isOperator(tok string) bool {
	_, ok := operators[tok]
	return ok
}

func isOperandRune(r rune) bool {
	return r == '.' || r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))
}

func isOperand(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if !isOperandRune(r) {
			return false
		}
	}
	return true
}

// Tokenize splits s into operands ([A-Za-z0-9.]+), the binary operators
// + - * / ^ and parentheses. Whitespace only separates tokens.
func Tokenize(s string) ([]string, error) {
	tokens := make([]string, 0, len(s)/2+1)
	var operand strings.Builder
	flush := func() {
		if operand.Len() > 0 {
			tokens = append(tokens, operand.String())
			operand.Reset()
		}
	}
	for i, r := range s {
		switch {
		case isOperandRune(r):
			operand.WriteRune(r)
		case unicode.IsSpace(r):
			flush()
		case isOperator(string(r)) || string(r) == openParen || string(r) == closeParen:
			flush()
			tokens = append(tokens, string(r))
		default:
			return nil, infra.WrapErrorStackWithMessage(
				infra.ErrMalformedExpression,
				fmt.Sprintf("[expr] unexpected %q at offset %d", r, i),
			)
		}
	}
	flush()
	return tokens, nil
}
