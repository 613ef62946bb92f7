package list

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benz9527/xdsa/lib/infra"
)

func TestSinglyLinkedList_AddAndAppend(t *testing.T) {
	l := NewSinglyLinkedList[int]()
	require.True(t, l.IsEmpty())
	require.Nil(t, l.Head())

	l.Add(2)
	l.Add(1)
	l.Append(3)
	l.Append(4)
	require.False(t, l.IsEmpty())
	require.Equal(t, int64(4), l.Len())
	require.Equal(t, []int{1, 2, 3, 4}, l.Values())
	require.Equal(t, "[1 -> 2 -> 3 -> 4]", l.String())
	require.Equal(t, 1, l.Head().Value)
	require.Equal(t, 2, l.Head().Next().Value)
}

func TestSinglyLinkedList_SearchAndRemove(t *testing.T) {
	l := NewSinglyLinkedList[string]("a", "b", "c", "b")
	require.True(t, l.Search("c"))
	require.False(t, l.Search("z"))

	t.Log("remove the first duplicate only")
	require.NoError(t, l.Remove("b"))
	require.Equal(t, []string{"a", "c", "b"}, l.Values())

	t.Log("remove head")
	require.NoError(t, l.Remove("a"))
	require.Equal(t, []string{"c", "b"}, l.Values())

	t.Log("remove tail")
	require.NoError(t, l.Remove("b"))
	require.Equal(t, []string{"c"}, l.Values())

	err := l.Remove("z")
	require.ErrorIs(t, err, infra.ErrNotFound)
	require.Equal(t, int64(1), l.Len())

	require.NoError(t, l.Remove("c"))
	require.True(t, l.IsEmpty())
	require.ErrorIs(t, l.Remove("c"), infra.ErrEmptyContainer)
}

func TestSinglyLinkedList_Positional(t *testing.T) {
	l := NewSinglyLinkedList[int]()
	require.NoError(t, l.Insert(10, 0))
	require.NoError(t, l.Insert(30, 1))
	require.NoError(t, l.Insert(20, 1))
	require.NoError(t, l.Insert(0, 0))
	require.Equal(t, []int{0, 10, 20, 30}, l.Values())

	testcases := []struct {
		name string
		fn   func() error
	}{
		{"insert negative", func() error { return l.Insert(1, -1) }},
		{"insert beyond len", func() error { return l.Insert(1, 5) }},
		{"pop negative", func() error { _, err := l.Pop(-1); return err }},
		{"pop len", func() error { _, err := l.Pop(4); return err }},
		{"at len", func() error { _, err := l.At(4); return err }},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.fn()
			require.True(t, errors.Is(err, infra.ErrIndexOutOfRange))
		})
	}

	v, err := l.At(2)
	require.NoError(t, err)
	require.Equal(t, 20, v)

	idx, err := l.IndexOf(30)
	require.NoError(t, err)
	require.Equal(t, int64(3), idx)
	_, err = l.IndexOf(99)
	require.ErrorIs(t, err, infra.ErrNotFound)

	v, err = l.Pop(3)
	require.NoError(t, err)
	require.Equal(t, 30, v)
	v, err = l.Pop(0)
	require.NoError(t, err)
	require.Equal(t, 0, v)
	v, err = l.Pop(1)
	require.NoError(t, err)
	require.Equal(t, 20, v)
	require.Equal(t, []int{10}, l.Values())
	require.Equal(t, int64(1), l.Len())

	_, err = l.Pop(0)
	require.NoError(t, err)
	_, err = l.Pop(0)
	require.ErrorIs(t, err, infra.ErrEmptyContainer)
}

func TestSinglyLinkedList_ForeachStops(t *testing.T) {
	l := NewSinglyLinkedList[int](1, 2, 3, 4)
	stop := errors.New("stop")
	visited := make([]int, 0, 4)
	err := l.Foreach(func(idx int64, v int) error {
		visited = append(visited, v)
		if v == 2 {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	require.Equal(t, []int{1, 2}, visited)
	require.NoError(t, l.Foreach(nil))
}

func TestSinglyLinkedList_TraversalTerminates(t *testing.T) {
	l := NewSinglyLinkedList[int]()
	for i := 0; i < 1000; i++ {
		if i%2 == 0 {
			l.Add(i)
		} else {
			l.Append(i)
		}
	}
	seen := make(map[*LinkedNode[int]]struct{}, 1000)
	for n := l.Head(); n != nil; n = n.Next() {
		_, dup := seen[n]
		require.False(t, dup)
		seen[n] = struct{}{}
	}
	require.Len(t, seen, 1000)
}

func BenchmarkSinglyLinkedList_Add(b *testing.B) {
	l := NewSinglyLinkedList[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Add(i)
	}
	b.ReportAllocs()
}
