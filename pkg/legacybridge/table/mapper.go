package table

// ActualColumn translates a dense column index into the actual index used
// by src: the dense-th existing column in ascending order.
// It is recomputed on every call since columns come and go between calls.
func ActualColumn(src ColumnSource, dense int) (int, error) {
	if dense >= 0 {
		count := 0
		last := src.LastColumn()
		for i := 0; i <= last; i++ {
			if !src.ColumnExists(i) {
				continue
			}
			if count == dense {
				return i, nil
			}
			count++
		}
	}
	return 0, &IndexError{Index: dense, Dense: true}
}

// DenseColumn translates an actual column index back to its dense index.
func DenseColumn(src ColumnSource, actual int) (int, error) {
	if actual < 0 || actual > src.LastColumn() || !src.ColumnExists(actual) {
		return 0, &IndexError{Index: actual}
	}
	dense := 0
	for i := 0; i < actual; i++ {
		if src.ColumnExists(i) {
			dense++
		}
	}
	return dense, nil
}

// CountColumns returns the number of existing columns. Interior gaps are
// not counted, so this is usually less than LastColumn()+1.
func CountColumns(src ColumnSource) int {
	count := 0
	last := src.LastColumn()
	for i := 0; i <= last; i++ {
		if src.ColumnExists(i) {
			count++
		}
	}
	return count
}
