package table

import (
	"errors"
	"fmt"
)

// ErrIndexNotFound indicates a dense column index has no actual column.
var ErrIndexNotFound = errors.New("column index not found")

// ErrUnsupportedStructuralEdit indicates an edit the sparse table cannot perform.
var ErrUnsupportedStructuralEdit = errors.New("unsupported structural edit")

// ErrUnsupportedValueType indicates a value that is neither numeric nor textual.
var ErrUnsupportedValueType = errors.New("unsupported value type")

// ErrRowOutOfRange indicates a row index outside the table.
var ErrRowOutOfRange = errors.New("row out of range")

// IndexError reports a column index that could not be translated.
type IndexError struct {
	// Index is the requested column index.
	Index int
	// Dense is true when Index is a dense index, false for an actual one.
	Dense bool
	// Header is set when the column was looked up by heading.
	Header string
}

func (e *IndexError) Error() string {
	if e.Header != "" {
		return fmt.Sprintf("column with header %q not defined: %v", e.Header, ErrIndexNotFound)
	}
	kind := "actual"
	if e.Dense {
		kind = "dense"
	}
	return fmt.Sprintf("%s column %d not defined: %v", kind, e.Index, ErrIndexNotFound)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexNotFound
}

// EditError reports a rejected structural edit.
type EditError struct {
	Op string
}

func (e *EditError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, ErrUnsupportedStructuralEdit)
}

func (e *EditError) Unwrap() error {
	return ErrUnsupportedStructuralEdit
}

// ValueTypeError reports a value Set cannot store.
type ValueTypeError struct {
	Value interface{}
}

func (e *ValueTypeError) Error() string {
	return fmt.Sprintf("cannot store %T: %v", e.Value, ErrUnsupportedValueType)
}

func (e *ValueTypeError) Unwrap() error {
	return ErrUnsupportedValueType
}

func rowError(row, size int) error {
	return fmt.Errorf("%w: %d (rows: %d)", ErrRowOutOfRange, row, size)
}
