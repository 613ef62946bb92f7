package expr

import (
	"fmt"
	"strings"

	"github.com/benz9527/xdsa/lib/infra"
	"github.com/benz9527/xdsa/lib/stack"
)

// Postfix is an expression in reverse Polish notation.
type Postfix []string

func (p Postfix) String() string {
	return strings.Join(p, " ")
}

// Compact joins the tokens without separator, "AB*C+".
func (p Postfix) Compact() string {
	return strings.Join(p, "")
}

func malformed(format string, args ...any) error {
	return infra.WrapErrorStackWithMessage(infra.ErrMalformedExpression, "[expr] "+fmt.Sprintf(format, args...))
}

// InfixToPostfix converts with the shunting yard algorithm. The operator
// stack pops every operator of higher precedence, or equal precedence when
// the incoming operator is left associative, before pushing.
func InfixToPostfix(tokens []string) (Postfix, error) {
	ops := stack.NewArrayStack[string](len(tokens))
	output := make(Postfix, 0, len(tokens))
	for _, tok := range tokens {
		switch {
		case isOperand(tok):
			output = append(output, tok)
		case tok == openParen:
			ops.Push(tok)
		case tok == closeParen:
			matched := false
			for !ops.IsEmpty() {
				top, _ := ops.Pop()
				if top == openParen {
					matched = true
					break
				}
				output = append(output, top)
			}
			if !matched {
				return nil, malformed("unmatched %q", closeParen)
			}
		case isOperator(tok):
			in := operators[tok]
			for !ops.IsEmpty() {
				top, _ := ops.Peek()
				stacked, ok := operators[top]
				if !ok {
					break // open paren
				}
				if stacked.prec > in.prec || stacked.prec == in.prec && !in.rightAssoc {
					_, _ = ops.Pop()
					output = append(output, top)
					continue
				}
				break
			}
			ops.Push(tok)
		default:
			return nil, malformed("unknown token %q", tok)
		}
	}
	for !ops.IsEmpty() {
		top, _ := ops.Pop()
		if top == openParen {
			return nil, malformed("unmatched %q", openParen)
		}
		output = append(output, top)
	}
	return output, nil
}

// ConvertInfix tokenizes s and converts it to postfix.
func ConvertInfix(s string) (Postfix, error) {
	tokens, err := Tokenize(s)
	if err != nil {
		return nil, err
	}
	return InfixToPostfix(tokens)
}
