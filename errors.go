package shortcut

import (
	"errors"
	"fmt"
)

// ShapeError reports an Insert whose row length does not match the store's
// column count. The offending row is not appended and no index is touched.
type ShapeError struct {
	Got  int // length of the rejected row
	Want int // the store's column count
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("row has %d columns, store expects %d", e.Got, e.Want)
}

// ColumnError reports a column reference outside the store's column range,
// either in AddIndex or in a Find condition.
type ColumnError struct {
	Op      string // "find" or "add_index"
	Column  int    // the out-of-range column
	Columns int    // the store's column count
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("%s: column %d out of range (store has %d columns)", e.Op, e.Column, e.Columns)
}

// ErrStaleIterator is yielded by a Find sequence when the store was mutated
// while results were still being consumed. The sequence stops after yielding
// it; re-run the query against the mutated store instead.
var ErrStaleIterator = errors.New("store mutated during query iteration")

// errPlanInvariant signals a planner bug: an index was selected for a
// comparison it cannot serve. It should never surface in practice.
var errPlanInvariant = errors.New("internal: planner selected an index for an unservable comparison")
