// Package table exposes a sparse legacy table as a dense, randomly addressable table.
//
// Legacy tables may leave interior column indices unused, so the columns in
// use can be 1, 2, 8 and 10. Clients address columns densely (0..n-1); every
// call translates the dense index against the table's current columns.
package table

import "math"

// ColumnSource reports which actual column indices are in use.
type ColumnSource interface {
	// ColumnExists reports whether actual column col is in use.
	ColumnExists(col int) bool
	// LastColumn returns the highest actual column index, or -1 if there is none.
	LastColumn() int
}

// CellSource reads the two slots stored for every cell.
type CellSource interface {
	// Value returns the numeric slot, NaN if empty.
	Value(col, row int) float64
	// StringValue returns the string slot.
	StringValue(col, row int) string
}

// Source is the sparse legacy table consumed by Facade.
type Source interface {
	ColumnSource
	CellSource

	// Size returns the number of rows.
	Size() int
	// SetValue stores a number, creating the column or rows as needed.
	SetValue(col, row int, v float64)
	// SetStringValue stores explicit text, creating the column or rows as needed.
	SetStringValue(col, row int, s string)
	// ColumnHeading returns the heading of actual column col.
	ColumnHeading(col int) string
	// SetHeading sets the heading of actual column col, creating it if needed.
	SetHeading(col int, heading string)
	// ColumnIndex returns the actual column with the given heading, or -1.
	ColumnIndex(heading string) int
	// Label returns the label of a row.
	Label(row int) string
	// SetLabel sets the label of a row.
	SetLabel(row int, label string)
	// IncrementCounter adds an empty row.
	IncrementCounter()
	// DeleteRow removes a row, shifting later rows up.
	DeleteRow(row int)
	// Reset removes all rows and columns.
	Reset()
}

// FormatConfig is the read-only formatting configuration a Source may expose.
// Sources that do not implement it get automatic formatting and zero fill.
type FormatConfig interface {
	// Precision returns the decimal places of column col, or numfmt.Auto.
	// ok is false when the setting cannot be read.
	Precision(col int) (places int, ok bool)
	// EmptyCellFill returns the fill used for new cells.
	EmptyCellFill() (policy FillPolicy, ok bool)
	// AutoFormat renders d the way the table does in automatic mode.
	AutoFormat(d float64) string
}

// CellFormatter is implemented by sources that can render a number exactly
// as a given cell would display it. It takes precedence over FormatConfig
// when deciding whether a cell holds explicit text.
type CellFormatter interface {
	// FormatValue renders d with the format of the cell at (col, row).
	// ok is false when the format cannot be applied.
	FormatValue(col, row int, d float64) (s string, ok bool)
}

// FillPolicy selects the value of cells created by appends.
type FillPolicy int

const (
	// FillZero fills new cells with 0.
	FillZero FillPolicy = iota
	// FillNaN fills new cells with NaN.
	FillNaN
)

// Value returns the fill value.
func (p FillPolicy) Value() float64 {
	if p == FillNaN {
		return math.NaN()
	}
	return 0
}

func (p FillPolicy) String() string {
	if p == FillNaN {
		return "nan"
	}
	return "zero"
}

// fillValue reads the fill policy of src, defaulting to zero.
func fillValue(src Source) float64 {
	cfg, ok := src.(FormatConfig)
	if !ok {
		return 0
	}
	policy, ok := cfg.EmptyCellFill()
	if !ok {
		return 0
	}
	return policy.Value()
}
