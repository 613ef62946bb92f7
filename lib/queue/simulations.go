package queue

import (
	"unicode"

	"github.com/benz9527/xdsa/lib/infra"
)

// HotPotato passes the potato num times per round, the holder after the
// last pass leaves the circle. Returns the last remaining name.
func HotPotato(names []string, num int) (string, error) {
	if len(names) == 0 {
		return "", infra.WrapErrorStackWithMessage(infra.ErrEmptyContainer, "[hot-potato] no players")
	}
	if num < 0 {
		num = 0
	}
	q := NewLinkedQueue[string]()
	for _, name := range names {
		q.Enqueue(name)
	}
	for q.Size() > 1 {
		for i := 0; i < num; i++ {
			holder, _ := q.Dequeue()
			q.Enqueue(holder)
		}
		_, _ = q.Dequeue()
	}
	return q.Dequeue()
}

// IsPalindrome compares letters from both ends of a deque, ignoring case and
// every non-letter rune.
func IsPalindrome(s string) bool {
	d := NewLinkedDeque[rune]()
	for _, r := range s {
		if unicode.IsLetter(r) {
			d.AddRear(unicode.ToLower(r))
		}
	}
	for d.Size() > 1 {
		front, _ := d.RemoveFront()
		rear, _ := d.RemoveRear()
		if front != rear {
			return false
		}
	}
	return true
}
