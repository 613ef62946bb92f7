package queue

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benz9527/xdsa/lib/infra"
)

func dequeImpls() map[string]func() Deque[int] {
	return map[string]func() Deque[int]{
		"array":  NewArrayDeque[int],
		"linked": NewLinkedDeque[int],
	}
}

func TestDeque_EmptyFailures(t *testing.T) {
	for name, newFn := range dequeImpls() {
		t.Run(name, func(t *testing.T) {
			d := newFn()
			require.True(t, d.IsEmpty())
			for _, fn := range []func() (int, error){d.RemoveFront, d.RemoveRear, d.PeekFront, d.PeekRear} {
				_, err := fn()
				require.ErrorIs(t, err, infra.ErrEmptyContainer)
			}
		})
	}
}

func TestDeque_BothEnds(t *testing.T) {
	for name, newFn := range dequeImpls() {
		t.Run(name, func(t *testing.T) {
			d := newFn()
			d.AddRear(2)
			d.AddFront(1)
			d.AddRear(3)
			d.AddFront(0)
			require.Equal(t, 4, d.Size())

			front, err := d.PeekFront()
			require.NoError(t, err)
			require.Equal(t, 0, front)
			rear, err := d.PeekRear()
			require.NoError(t, err)
			require.Equal(t, 3, rear)

			v, err := d.RemoveRear()
			require.NoError(t, err)
			require.Equal(t, 3, v)
			v, err = d.RemoveFront()
			require.NoError(t, err)
			require.Equal(t, 0, v)
			v, err = d.RemoveFront()
			require.NoError(t, err)
			require.Equal(t, 1, v)
			v, err = d.RemoveRear()
			require.NoError(t, err)
			require.Equal(t, 2, v)
			require.True(t, d.IsEmpty())
		})
	}
}

func TestIsPalindrome(t *testing.T) {
	testcases := []struct {
		s        string
		expected bool
	}{
		{"", true},
		{"a", true},
		{"radar", true},
		{"lsdkjfskf", false},
		{"toot", true},
		{"Madam, I'm Adam", true},
		{"Ab", false},
	}
	for _, tc := range testcases {
		require.Equal(t, tc.expected, IsPalindrome(tc.s), tc.s)
	}
}
