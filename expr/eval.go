package expr

import (
	"fmt"
	"math"
	"strconv"

	"github.com/benz9527/xdsa/lib/infra"
	"github.com/benz9527/xdsa/lib/stack"
)

// ErrDivideByZero is a malformed expression as well.
var ErrDivideByZero = fmt.Errorf("%w: divide by zero", infra.ErrMalformedExpression)

func apply(op string, left, right float64) (float64, error) {
	switch op {
	case "+":
		return left + right, nil
	case "-":
		return left - right, nil
	case "*":
		return left * right, nil
	case "/":
		if right == 0 {
			return 0, infra.WrapErrorStackWithMessage(ErrDivideByZero, fmt.Sprintf("[expr] %v / %v", left, right))
		}
		return left / right, nil
	case "^":
		return math.Pow(left, right), nil
	default:
	}
	return 0, malformed("unknown operator %q", op)
}

// EvalPostfix evaluates numeric postfix tokens. For every operator the
// first popped operand is the right one and the second popped the left one.
func EvalPostfix(tokens []string) (float64, error) {
	operands := stack.NewArrayStack[float64](len(tokens))
	for _, tok := range tokens {
		if isOperator(tok) {
			right, err := operands.Pop()
			if err != nil {
				return 0, malformed("operator %q lacks operands", tok)
			}
			left, err := operands.Pop()
			if err != nil {
				return 0, malformed("operator %q lacks operands", tok)
			}
			v, err := apply(tok, left, right)
			if err != nil {
				return 0, err
			}
			operands.Push(v)
			continue
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return 0, malformed("operand %q is not a number", tok)
		}
		operands.Push(v)
	}
	if operands.Size() != 1 {
		return 0, malformed("%d operands left", operands.Size())
	}
	return operands.Pop()
}

// EvaluatePostfix tokenizes s and evaluates it as postfix.
func EvaluatePostfix(s string) (float64, error) {
	tokens, err := Tokenize(s)
	if err != nil {
		return 0, err
	}
	return EvalPostfix(tokens)
}
