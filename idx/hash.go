package idx

import "iter"

// HashIndex is a hash-backed equality index: a map from value to the row
// positions holding that value, in insertion order.
type HashIndex[T comparable] struct {
	rows int // total recorded pairs
	data map[T][]int
}

// NewHashIndex creates an empty hash index.
func NewHashIndex[T comparable]() *HashIndex[T] {
	return &HashIndex[T]{
		data: make(map[T][]int),
	}
}

// Estimate returns the average bucket size, rounded up so a fractional
// average never under-costs the index.
func (ix *HashIndex[T]) Estimate() int {
	if len(ix.data) == 0 {
		return 0
	}
	return (ix.rows + len(ix.data) - 1) / len(ix.data)
}

// Lookup returns the row identifiers recorded for value, in the order they
// were recorded (ascending, since rows arrive in insertion order).
func (ix *HashIndex[T]) Lookup(value T) iter.Seq[int] {
	rows := ix.data[value]
	return func(yield func(int) bool) {
		for _, row := range rows {
			if !yield(row) {
				return
			}
		}
	}
}

// Record adds one (value, row) pair.
func (ix *HashIndex[T]) Record(value T, row int) {
	ix.data[value] = append(ix.data[value], row)
	ix.rows++
}

var _ EqualityIndex[string] = (*HashIndex[string])(nil)
