// Package cond holds the condition model used to query a store: a Condition
// names a column and a Comparison, and a set of conditions is evaluated as a
// logical AND. There is no OR primitive; issue multiple queries instead.
package cond

// Op identifies a comparison operator. Equality is the only operator today;
// the enum exists so range operators can be added without changing the
// Condition or Comparison shapes.
type Op int

const (
	// OpEqual compares a column value for equality against the operand.
	OpEqual Op = iota
)

type valueKind int

const (
	valueConst valueKind = iota
	valueColumn
)

// Value is the operand of a comparison: either a constant, or a reference to
// another column of the row under evaluation.
type Value[T any] struct {
	kind   valueKind
	val    T
	column int
}

// Const returns a Value holding the constant v.
func Const[T any](v T) Value[T] {
	return Value[T]{kind: valueConst, val: v}
}

// Col returns a Value that resolves to the row's value at the given column.
func Col[T any](column int) Value[T] {
	return Value[T]{kind: valueColumn, column: column}
}

// Resolve returns the concrete value this operand stands for in row.
func (v Value[T]) Resolve(row []T) T {
	if v.kind == valueColumn {
		return row[v.column]
	}
	return v.val
}

// Const reports whether the operand is a constant, and returns it.
func (v Value[T]) Const() (T, bool) {
	if v.kind != valueConst {
		var zero T
		return zero, false
	}
	return v.val, true
}

// ColumnRef reports whether the operand references another column, and
// returns that column number.
func (v Value[T]) ColumnRef() (int, bool) {
	if v.kind != valueColumn {
		return 0, false
	}
	return v.column, true
}

// Comparison is an operator applied to an operand, evaluated against a
// single cell of a row.
type Comparison[T comparable] struct {
	op    Op
	value Value[T]
}

// Equal builds an equality comparison against v.
func Equal[T comparable](v Value[T]) Comparison[T] {
	return Comparison[T]{op: OpEqual, value: v}
}

// Operator returns the comparison's operator.
func (c Comparison[T]) Operator() Op { return c.op }

// Operand returns the comparison's operand.
func (c Comparison[T]) Operand() Value[T] { return c.value }

// Matches evaluates the comparison against cell. The full row is needed so
// column-reference operands can resolve.
func (c Comparison[T]) Matches(cell T, row []T) bool {
	switch c.op {
	case OpEqual:
		return cell == c.value.Resolve(row)
	default:
		return false
	}
}

// Condition is a single-column predicate: the value at Column must satisfy
// Cmp. Column must be within the row's bounds; the store checks this before
// any row is evaluated.
type Condition[T comparable] struct {
	Column int
	Cmp    Comparison[T]
}

// Matches evaluates the condition against one row.
func (c Condition[T]) Matches(row []T) bool {
	return c.Cmp.Matches(row[c.Column], row)
}

// MatchAll reports whether row satisfies every condition. An empty condition
// set matches everything.
func MatchAll[T comparable](row []T, conds []Condition[T]) bool {
	for _, c := range conds {
		if !c.Matches(row) {
			return false
		}
	}
	return true
}
