package idx

import (
	"iter"
	"sort"

	"golang.org/x/exp/constraints"
)

// SortedIndex is a range-capable index over an ordered key type. It keeps the
// distinct keys sorted, so equality lookups stay cheap while range lookups
// walk a contiguous run of keys.
//
// Record pays an O(distinct keys) insertion for previously unseen keys; this
// index trades write cost for ordered scans.
type SortedIndex[T constraints.Ordered] struct {
	rows int
	keys []T // sorted, distinct
	data map[T][]int
}

// NewSortedIndex creates an empty sorted index.
func NewSortedIndex[T constraints.Ordered]() *SortedIndex[T] {
	return &SortedIndex[T]{
		data: make(map[T][]int),
	}
}

// Estimate returns the average rows per distinct key, rounded up.
func (ix *SortedIndex[T]) Estimate() int {
	if len(ix.data) == 0 {
		return 0
	}
	return (ix.rows + len(ix.data) - 1) / len(ix.data)
}

// Lookup returns the row identifiers recorded for value, ascending.
func (ix *SortedIndex[T]) Lookup(value T) iter.Seq[int] {
	rows := ix.data[value]
	return func(yield func(int) bool) {
		for _, row := range rows {
			if !yield(row) {
				return
			}
		}
	}
}

// LookupRange returns the row identifiers for keys in [low, high): low
// inclusive, high exclusive. Keys are visited in ascending order, row
// identifiers ascending within each key.
func (ix *SortedIndex[T]) LookupRange(low, high T) iter.Seq[int] {
	return func(yield func(int) bool) {
		start := sort.Search(len(ix.keys), func(i int) bool { return ix.keys[i] >= low })
		for _, key := range ix.keys[start:] {
			if key >= high {
				return
			}
			for _, row := range ix.data[key] {
				if !yield(row) {
					return
				}
			}
		}
	}
}

// Record adds one (value, row) pair, inserting the key into the sorted key
// slice if it has not been seen before.
func (ix *SortedIndex[T]) Record(value T, row int) {
	if _, seen := ix.data[value]; !seen {
		at := sort.Search(len(ix.keys), func(i int) bool { return ix.keys[i] >= value })
		ix.keys = append(ix.keys, value)
		copy(ix.keys[at+1:], ix.keys[at:])
		ix.keys[at] = value
	}
	ix.data[value] = append(ix.data[value], row)
	ix.rows++
}

var _ RangeIndex[int] = (*SortedIndex[int])(nil)
