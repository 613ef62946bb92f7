package expr

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benz9527/xdsa/lib/infra"
)

func TestTokenize(t *testing.T) {
	testcases := []struct {
		in       string
		expected []string
	}{
		{"A * B + C", []string{"A", "*", "B", "+", "C"}},
		{"(A+B)*C", []string{"(", "A", "+", "B", ")", "*", "C"}},
		{"10.5/ 2^3", []string{"10.5", "/", "2", "^", "3"}},
		{"  ", []string{}},
	}
	for _, tc := range testcases {
		tokens, err := Tokenize(tc.in)
		require.NoError(t, err)
		require.Equal(t, tc.expected, tokens)
	}
	_, err := Tokenize("A % B")
	require.ErrorIs(t, err, infra.ErrMalformedExpression)
}

func TestInfixToPostfix(t *testing.T) {
	testcases := []struct {
		infix   string
		compact string
		spaced  string
	}{
		{"A * B + C", "AB*C+", "A B * C +"},
		{"A + B * C", "ABC*+", "A B C * +"},
		{"( A + B ) * C", "AB+C*", "A B + C *"},
		{"A * B + C * D", "AB*CD*+", "A B * C D * +"},
		{"( A + B ) * ( C + D )", "AB+CD+*", "A B + C D + *"},
		{"A + B + C + D", "AB+C+D+", "A B + C + D +"},
		{"A - B - C", "AB-C-", "A B - C -"},
		{"A ^ B ^ C", "ABC^^", "A B C ^ ^"},
		{"A * B ^ C", "ABC^*", "A B C ^ *"},
		{"( A + B ) * C - ( D - E ) * ( F + G )", "AB+C*DE-FG+*-", "A B + C * D E - F G + * -"},
	}
	for _, tc := range testcases {
		t.Run(tc.infix, func(t *testing.T) {
			postfix, err := ConvertInfix(tc.infix)
			require.NoError(t, err)
			require.Equal(t, tc.compact, postfix.Compact())
			require.Equal(t, tc.spaced, postfix.String())
		})
	}
}

func TestInfixToPostfix_Malformed(t *testing.T) {
	for _, in := range []string{"( A + B", "A + B )", ") A ("} {
		_, err := ConvertInfix(in)
		require.ErrorIs(t, err, infra.ErrMalformedExpression, in)
	}
	_, err := InfixToPostfix([]string{"A", "%", "B"})
	require.ErrorIs(t, err, infra.ErrMalformedExpression)
}

func TestEvalPostfix(t *testing.T) {
	testcases := []struct {
		postfix  string
		expected float64
	}{
		{"7 8 + 3 2 + /", 3},
		{"4 5 6 * +", 34},
		{"17 10 + 3 * 9 /", 9},
		{"10 4 -", 6},
		{"8 2 /", 4},
		{"2 3 2 ^ ^", 512},
		{"42", 42},
	}
	for _, tc := range testcases {
		v, err := EvaluatePostfix(tc.postfix)
		require.NoError(t, err)
		require.InDelta(t, tc.expected, v, 1e-9, tc.postfix)
	}
}

func TestEvalPostfix_Failures(t *testing.T) {
	testcases := []string{
		"+",
		"1 +",
		"1 2",
		"",
		"A B +",
	}
	for _, tc := range testcases {
		_, err := EvaluatePostfix(tc)
		require.ErrorIs(t, err, infra.ErrMalformedExpression, tc)
	}

	_, err := EvaluatePostfix("4 2 2 - /")
	require.ErrorIs(t, err, ErrDivideByZero)
	require.ErrorIs(t, err, infra.ErrMalformedExpression)
}

type exprNode struct {
	op          string
	value       float64
	left, right *exprNode
}

func genExpr(r *rand.Rand, depth int) *exprNode {
	if depth == 0 || r.Intn(3) == 0 {
		return &exprNode{value: float64(r.Intn(9) + 1)}
	}
	return &exprNode{
		op:    []string{"+", "-", "*", "/"}[r.Intn(4)],
		left:  genExpr(r, depth-1),
		right: genExpr(r, depth-1),
	}
}

// eval walks the tree directly, ok is false on a zero divisor.
func (n *exprNode) eval() (float64, bool) {
	if n.op == "" {
		return n.value, true
	}
	l, ok := n.left.eval()
	if !ok {
		return 0, false
	}
	r, ok := n.right.eval()
	if !ok {
		return 0, false
	}
	switch n.op {
	case "+":
		return l + r, true
	case "-":
		return l - r, true
	case "*":
		return l * r, true
	}
	if r == 0 {
		return 0, false
	}
	return l / r, true
}

// infix renders with the fewest parentheses the precedence rules allow.
func (n *exprNode) infix() string {
	if n.op == "" {
		return strconv.Itoa(int(n.value))
	}
	prec := operators[n.op].prec
	left, right := n.left.infix(), n.right.infix()
	if n.left.op != "" && operators[n.left.op].prec < prec {
		left = "(" + left + ")"
	}
	if n.right.op != "" && operators[n.right.op].prec <= prec {
		right = "(" + right + ")"
	}
	return left + " " + n.op + " " + right
}

func TestConvertThenEvaluate_MatchesDirectEvaluation(t *testing.T) {
	r := rand.New(rand.NewSource(20241017))
	checked := 0
	for checked < 300 {
		n := genExpr(r, 5)
		expected, ok := n.eval()
		if !ok {
			continue
		}
		infix := n.infix()
		postfix, err := ConvertInfix(infix)
		require.NoError(t, err, infix)
		v, err := EvalPostfix(postfix)
		require.NoError(t, err, infix)
		require.InDelta(t, expected, v, 1e-9*math.Max(1, math.Abs(expected)), infix)
		checked++
	}
}
