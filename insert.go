package shortcut

// Insert appends a new data row to the store. The row must have the same
// number of columns as specified when the store was created; a mismatched row
// is rejected with a ShapeError and neither the rows nor any index are
// touched.
//
// The new row's identifier is the row count before the append. Insertion has
// the complexity of a slice append and may re-allocate the backing storage;
// existing row identifiers stay valid. Every attached index is updated with
// the new row, which may also re-allocate.
func (s *Store[T]) Insert(row []T) error {
	if len(row) != s.cols {
		return &ShapeError{Got: len(row), Want: s.cols}
	}

	r := make([]T, len(row)) // prevent mutation of caller's data
	copy(r, row)

	rowID := len(s.rows)
	s.rows = append(s.rows, r)

	for column, index := range s.indices {
		index.Record(r[column], rowID)
	}
	s.gen++

	s.notify(Event{Type: EventInsert, Data: rowID})
	return nil
}
