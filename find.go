package shortcut

import (
	"iter"
	"log/slog"

	"github.com/google/uuid"

	"github.com/thulis/shortcut/cond"
)

// Find returns a lazy sequence of all rows matching all the given
// conditions, in the scan order of whichever access path was chosen. An
// invalid column reference in any condition fails the call up front with a
// ColumnError (all violations combined), before any row is examined.
//
// The access path is picked automatically: among the conditions whose column
// has an attached index supporting the comparison, the index with the lowest
// expected result size wins; with no usable index the store falls back to
// scanning every row. Whatever path is chosen, every condition is re-checked
// against each candidate row before it is yielded, so a partial or
// over-approximate index can never produce false positives.
//
// The yielded slices are views into the store's row storage and must not be
// mutated. The sequence is finite and may be iterated more than once on an
// unmutated store. Mutating the store (Insert, AddIndex) while a sequence is
// being consumed invalidates it: the next pull yields ErrStaleIterator and
// the sequence ends.
func (s *Store[T]) Find(conds ...cond.Condition[T]) (iter.Seq2[[]T, error], error) {
	if err := s.validateConds(conds); err != nil {
		return nil, err
	}

	queryID := uuid.New().String()

	var candidates iter.Seq[int]
	if choice := s.selectIndex(conds); choice != nil {
		value, err := lookupValue(conds[choice.cond].Cmp)
		if err != nil {
			return nil, err
		}
		candidates = choice.index.Lookup(value)

		s.notify(Event{Type: EventQueryPlan, QueryID: queryID, Data: map[string]interface{}{
			"scan":     "index",
			"column":   conds[choice.cond].Column,
			"estimate": choice.estimate,
		}})
		if s.logger != nil {
			s.logger.Debug("query planned",
				slog.String("query_id", queryID),
				slog.String("scan", "index"),
				slog.Int("column", conds[choice.cond].Column),
				slog.Int("estimate", choice.estimate))
		}
	} else {
		candidates = s.allRows()

		s.notify(Event{Type: EventQueryPlan, QueryID: queryID, Data: map[string]interface{}{
			"scan": "full",
			"rows": len(s.rows),
		}})
		if s.logger != nil {
			s.logger.Debug("query planned",
				slog.String("query_id", queryID),
				slog.String("scan", "full"),
				slog.Int("rows", len(s.rows)))
		}
	}

	gen := s.gen
	seq := func(yield func([]T, error) bool) {
		matched := 0
		for rowID := range candidates {
			if s.gen != gen {
				yield(nil, ErrStaleIterator)
				return
			}
			row := s.rows[rowID]
			if !cond.MatchAll(row, conds) {
				continue
			}
			matched++
			if !yield(row, nil) {
				return
			}
		}
		s.notify(Event{Type: EventQueryDone, QueryID: queryID, Data: matched})
	}
	return seq, nil
}

// allRows is the full-scan candidate sequence: every row identifier in
// ascending order, as of the time the query was planned.
func (s *Store[T]) allRows() iter.Seq[int] {
	n := len(s.rows)
	return func(yield func(int) bool) {
		for i := 0; i < n; i++ {
			if !yield(i) {
				return
			}
		}
	}
}
