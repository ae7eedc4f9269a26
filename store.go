// Package shortcut provides an embeddable, in-memory, append-only row store
// with pluggable secondary indices and cost-based index selection for
// conjunctive queries.
//
// The store is row-based: every row has the same number of columns, and every
// column holds the same type T. Heterogeneous columns are expressed by making
// T a sum type (a small struct or interface discriminating scalar kinds). A
// row's position in insertion order is its permanent identifier; nothing is
// ever deleted or updated, so identifiers are stable for the store's
// lifetime.
//
// Indexes attached with AddIndex are kept current automatically on every
// Insert, and queries issued through Find pick the cheapest usable index by
// expected result size, falling back to a full scan. Conditions passed to
// Find are ANDed together; OR is not supported, issue multiple queries
// instead.
//
// The store performs no locking. Insert and AddIndex require exclusive
// access; Find sequences borrow the store's data and may run concurrently
// with each other, but never with a mutation. A host that shares a store
// across goroutines must wrap it in a sync.RWMutex at the call boundary. A
// Find sequence that observes a mutation mid-iteration yields
// ErrStaleIterator and stops rather than reading reallocated storage.
package shortcut

import (
	"log/slog"

	"github.com/thulis/shortcut/idx"
)

// Store keeps track of all rows of data as well as what indexes are
// available. Access it through Insert to add a row, AddIndex to attach an
// index, and Find to query.
//
// The row type T must be comparable; indexes additionally retain their own
// copies of indexed values, so T should be a value type (or treated as
// immutable once inserted).
type Store[T comparable] struct {
	cols      int
	rows      [][]T
	indices   map[int]idx.EqualityIndex[T]
	gen       uint64 // bumped on every mutation; invalidates in-flight queries
	observers []Observer
	logger    *slog.Logger
}

// New allocates a store with the given number of columns. The column count is
// checked against every inserted row at runtime.
func New[T comparable](cols int) *Store[T] {
	return &Store[T]{
		cols:      cols,
		indices:   make(map[int]idx.EqualityIndex[T]),
		observers: make([]Observer, 0),
	}
}

// WithCapacity allocates a store with the given number of columns and room
// for the given number of rows. If you know roughly how many rows will be
// inserted this avoids re-allocating the backing slice as it grows; it has no
// observable effect on results.
func WithCapacity[T comparable](cols, rows int) *Store[T] {
	s := New[T](cols)
	s.rows = make([][]T, 0, rows)
	return s
}

// SetLogger attaches a logger for index attachment and planner decisions.
// Without one the store stays silent.
func (s *Store[T]) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Columns returns the store's column count.
func (s *Store[T]) Columns() int { return s.cols }

// Len returns the number of rows inserted so far.
func (s *Store[T]) Len() int { return len(s.rows) }

// AddIndex attaches an index on the given column. The indexer must implement
// at least idx.EqualityIndex; it may also be range-capable.
//
// The index is immediately fed every existing row in ascending row order, so
// its state is identical whether it was attached before or after the rows it
// covers were inserted. Adding an index to a store with many rows is
// correspondingly costly. Any previous index on the column is replaced.
func (s *Store[T]) AddIndex(column int, index idx.EqualityIndex[T]) error {
	if column < 0 || column >= s.cols {
		return &ColumnError{Op: "add_index", Column: column, Columns: s.cols}
	}

	// populate the new index with the backlog
	for row, r := range s.rows {
		index.Record(r[column], row)
	}

	s.indices[column] = index
	s.gen++

	s.notify(Event{Type: EventIndexAttach, Data: map[string]interface{}{
		"column":     column,
		"backfilled": len(s.rows),
	}})
	if s.logger != nil {
		s.logger.Debug("index attached",
			slog.Int("column", column),
			slog.Int("backfilled", len(s.rows)),
			slog.Int("estimate", index.Estimate()))
	}
	return nil
}
