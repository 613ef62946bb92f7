package balance

import "github.com/benz9527/xdsa/lib/stack"

var pairs = map[rune]rune{
	')': '(',
	']': '[',
	'}': '{',
}

// CheckBrackets reports whether every (, [ and { is closed by its own kind
// in the right order. Other runes are ignored.
func CheckBrackets(s string) bool {
	opened := stack.NewArrayStack[rune]()
	for _, r := range s {
		switch r {
		case '(', '[', '{':
			opened.Push(r)
		case ')', ']', '}':
			top, err := opened.Pop()
			if err != nil || top != pairs[r] {
				return false
			}
		}
	}
	return opened.IsEmpty()
}

// CheckParentheses only balances round parentheses.
func CheckParentheses(s string) bool {
	opened := stack.NewLinkedStack[struct{}]()
	for _, r := range s {
		switch r {
		case '(':
			opened.Push(struct{}{})
		case ')':
			if _, err := opened.Pop(); err != nil {
				return false
			}
		}
	}
	return opened.IsEmpty()
}
