// Package idx defines the capability contracts an indexing strategy must
// satisfy to be attached to a store, plus default implementations. An index
// maps column values to the row identifiers holding them and is kept current
// incrementally: the store feeds it one (value, row) pair per insertion.
package idx

import "iter"

// EqualityIndex is the minimum capability: exact-value lookup.
//
// Implementations never own row data; they hold row identifiers and their own
// copies of the indexed values.
type EqualityIndex[T comparable] interface {
	// Estimate returns the expected number of rows a lookup of a single
	// value would return. It is a planner heuristic, not a guarantee: it
	// only has to rank indexes meaningfully against each other.
	Estimate() int

	// Lookup returns the row identifiers currently holding value, as a
	// finite, restartable sequence. Absent keys yield an empty sequence.
	Lookup(value T) iter.Seq[int]

	// Record incorporates one new (value, row) pair. The store calls it once
	// per insertion, with strictly rising row identifiers.
	Record(value T, row int)
}

// RangeIndex is an equality index that can additionally answer bounded range
// lookups over the key type's order.
type RangeIndex[T comparable] interface {
	EqualityIndex[T]

	// LookupRange returns the row identifiers whose indexed value lies in
	// [low, high): low inclusive, high exclusive. Results come in the
	// index's key order, ascending row identifier within each key.
	LookupRange(low, high T) iter.Seq[int]
}
