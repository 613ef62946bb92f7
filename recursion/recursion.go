package recursion

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/benz9527/xdsa/lib/infra"
	"github.com/benz9527/xdsa/lib/stack"
)

const digits = "0123456789ABCDEF"

var ErrInvalidBase = errors.New("base must be in [2, 16]")

func checkBase(base int) error {
	if base < 2 || base > len(digits) {
		return infra.WrapErrorStackWithMessage(ErrInvalidBase, fmt.Sprintf("[recursion] base %d", base))
	}
	return nil
}

// ListSum adds the head to the sum of the tail.
func ListSum[T infra.Number](values []T) T {
	if len(values) == 0 {
		var zero T
		return zero
	}
	return values[0] + ListSum(values[1:])
}

// ConvertBase renders n in base by recursing on n / base and appending the
// digit of n % base.
func ConvertBase(n int64, base int) (string, error) {
	if err := checkBase(base); err != nil {
		return "", err
	}
	if n < 0 {
		return "-" + convertBase(uint64(-n), uint64(base)), nil
	}
	return convertBase(uint64(n), uint64(base)), nil
}

func convertBase(n, base uint64) string {
	if n < base {
		return digits[n : n+1]
	}
	return convertBase(n/base, base) + digits[n%base:n%base+1]
}

// ToStr is the iterative twin of ConvertBase, the remainders are pushed on a
// stack and popped in reverse order.
func ToStr(n int64, base int) (string, error) {
	if err := checkBase(base); err != nil {
		return "", err
	}
	u, b := uint64(n), uint64(base)
	if n < 0 {
		u = uint64(-n)
	}
	remainders := stack.NewArrayStack[byte]()
	for {
		remainders.Push(digits[u%b])
		u /= b
		if u == 0 {
			break
		}
	}
	var sb strings.Builder
	if n < 0 {
		sb.WriteByte('-')
	}
	for !remainders.IsEmpty() {
		d, _ := remainders.Pop()
		sb.WriteByte(d)
	}
	return sb.String(), nil
}

// Reverse returns s with its runes in reverse order.
func Reverse(s string) string {
	return string(reverseRunes([]rune(s)))
}

func reverseRunes(rs []rune) []rune {
	if len(rs) <= 1 {
		return rs
	}
	return append(reverseRunes(rs[1:]), rs[0])
}

// IsPalindrome compares the outer letters and recurses inward. Non-letters
// are skipped and the comparison is case-insensitive.
func IsPalindrome(s string) bool {
	letters := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsLetter(r) {
			letters = append(letters, unicode.ToLower(r))
		}
	}
	return isPalindrome(letters)
}

func isPalindrome(rs []rune) bool {
	if len(rs) <= 1 {
		return true
	}
	return rs[0] == rs[len(rs)-1] && isPalindrome(rs[1:len(rs)-1])
}
