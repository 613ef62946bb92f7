package infra

import "cmp"

// Number permits the values that can be summed.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// OrderedKey is accepted by the sorted containers, byte is ~uint8.
type OrderedKey interface {
	cmp.Ordered
}

// OrderedKeyComparator returns 0 when i == j, 1 when i > j and -1 when i < j.
// i is the key being inserted.
type OrderedKeyComparator[K OrderedKey] func(i, j K) int64

// DefaultOrderedKeyComparator orders NaN before any other float.
func DefaultOrderedKeyComparator[K OrderedKey](i, j K) int64 {
	return int64(cmp.Compare(i, j))
}
