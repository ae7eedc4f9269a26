package shortcut

import (
	"go.uber.org/multierr"

	"github.com/thulis/shortcut/cond"
	"github.com/thulis/shortcut/idx"
)

// indexChoice is the planner's pick: which condition drives the lookup, the
// index serving it, and the estimate that won.
type indexChoice[T comparable] struct {
	cond     int
	index    idx.EqualityIndex[T]
	estimate int
}

// selectIndex picks the cheapest index able to serve one of the conditions
// exactly: the condition's column must be indexed, the index must support the
// comparison kind, and among those the lowest Estimate wins. Ties go to the
// earliest condition, so selection is deterministic. A nil return means no
// condition is index-servable and the query falls back to a full scan.
func (s *Store[T]) selectIndex(conds []cond.Condition[T]) *indexChoice[T] {
	var best *indexChoice[T]
	for i, c := range conds {
		index, ok := s.indices[c.Column]
		if !ok {
			continue
		}
		if !servable(index, c.Cmp) {
			continue
		}
		est := index.Estimate()
		if best == nil || est < best.estimate {
			best = &indexChoice[T]{cond: i, index: index, estimate: est}
		}
	}
	return best
}

// servable reports whether index can answer the comparison exactly. The
// capability check is an explicit switch per operator so future operators
// (range bounds, served only by idx.RangeIndex) slot in here without
// touching the store.
func servable[T comparable](index idx.EqualityIndex[T], c cond.Comparison[T]) bool {
	switch c.Operator() {
	case cond.OpEqual:
		// Equality against a constant is served by any equality index.
		// Equality against another column of the same row cannot be
		// answered from the index alone.
		_, isConst := c.Operand().Const()
		return isConst
	default:
		return false
	}
}

// lookupValue extracts the constant the chosen index should be probed with.
// The switch is exhaustive: a comparison the planner should not have selected
// surfaces as an internal error instead of being assumed unreachable.
func lookupValue[T comparable](c cond.Comparison[T]) (T, error) {
	switch c.Operator() {
	case cond.OpEqual:
		v, ok := c.Operand().Const()
		if !ok {
			var zero T
			return zero, errPlanInvariant
		}
		return v, nil
	default:
		var zero T
		return zero, errPlanInvariant
	}
}

// validateConds checks every condition's column references against the
// store's column count. All violations are reported together rather than
// stopping at the first, since each is an independent caller mistake.
func (s *Store[T]) validateConds(conds []cond.Condition[T]) error {
	var errs error
	for _, c := range conds {
		if c.Column < 0 || c.Column >= s.cols {
			errs = multierr.Append(errs, &ColumnError{Op: "find", Column: c.Column, Columns: s.cols})
		}
		if ref, ok := c.Cmp.Operand().ColumnRef(); ok && (ref < 0 || ref >= s.cols) {
			errs = multierr.Append(errs, &ColumnError{Op: "find", Column: ref, Columns: s.cols})
		}
	}
	return errs
}
