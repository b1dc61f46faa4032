package table

import (
	"github.com/ukaji3/legacybridge-go/pkg/legacybridge/models"
)

// DefaultColumnHeading is the heading given to appended columns.
const DefaultColumnHeading = "---"

// Facade is a dense view over a sparse Source. It holds no state of its own;
// callers needing atomicity across calls must serialize access.
type Facade struct {
	src Source
}

// New returns a Facade over src.
func New(src Source) *Facade {
	return &Facade{src: src}
}

// Source returns the wrapped table.
func (f *Facade) Source() Source {
	return f.src
}

// ColumnCount returns the number of existing columns.
func (f *Facade) ColumnCount() int {
	return CountColumns(f.src)
}

// RowCount returns the number of rows.
func (f *Facade) RowCount() int {
	return f.src.Size()
}

// IsEmpty reports whether the table has neither rows nor columns.
func (f *Facade) IsEmpty() bool {
	return f.RowCount() == 0 && f.ColumnCount() == 0
}

// Clear removes all rows and columns.
func (f *Facade) Clear() {
	f.src.Reset()
}

// Get returns the cell at dense column col.
func (f *Facade) Get(col, row int) (models.Cell, error) {
	actual, err := ActualColumn(f.src, col)
	if err != nil {
		return models.Cell{}, err
	}
	return f.cell(actual, row)
}

// GetByHeader returns the cell in the column with the given heading.
func (f *Facade) GetByHeader(header string, row int) (models.Cell, error) {
	actual := f.src.ColumnIndex(header)
	if actual < 0 {
		return models.Cell{}, &IndexError{Index: actual, Header: header}
	}
	return f.cell(actual, row)
}

func (f *Facade) cell(actual, row int) (models.Cell, error) {
	if err := f.checkRow(row); err != nil {
		return models.Cell{}, err
	}
	if IsExplicitText(f.src, row, actual) {
		return models.TextCell(f.src.StringValue(actual, row)), nil
	}
	return models.NumberCell(f.src.Value(actual, row)), nil
}

// Set stores value at dense column col. Strings and models.Cell text are
// stored as text, numeric kinds as float64; anything else is rejected with
// ErrUnsupportedValueType.
func (f *Facade) Set(col, row int, value interface{}) error {
	actual, err := ActualColumn(f.src, col)
	if err != nil {
		return err
	}
	return f.store(actual, row, value)
}

// SetByHeader stores value in the column with the given heading, appending
// the column if no such heading exists.
func (f *Facade) SetByHeader(header string, row int, value interface{}) error {
	cell, err := toCell(value)
	if err != nil {
		return err
	}
	actual := f.src.ColumnIndex(header)
	if actual < 0 {
		actual = f.appendColumn(header)
	}
	return f.storeCell(actual, row, cell)
}

func (f *Facade) store(actual, row int, value interface{}) error {
	cell, err := toCell(value)
	if err != nil {
		return err
	}
	return f.storeCell(actual, row, cell)
}

func (f *Facade) storeCell(actual, row int, cell models.Cell) error {
	if row < 0 {
		return rowError(row, f.src.Size())
	}
	if cell.IsText() {
		f.src.SetStringValue(actual, row, cell.Text)
	} else {
		f.src.SetValue(actual, row, cell.Number)
	}
	return nil
}

// ColumnHeader returns the heading of dense column col.
func (f *Facade) ColumnHeader(col int) (string, error) {
	actual, err := ActualColumn(f.src, col)
	if err != nil {
		return "", err
	}
	return f.src.ColumnHeading(actual), nil
}

// SetColumnHeader sets the heading of dense column col.
func (f *Facade) SetColumnHeader(col int, header string) error {
	actual, err := ActualColumn(f.src, col)
	if err != nil {
		return err
	}
	f.src.SetHeading(actual, header)
	return nil
}

// ColumnIndex returns the dense index of the column with the given heading, or -1.
func (f *Facade) ColumnIndex(header string) int {
	actual := f.src.ColumnIndex(header)
	if actual < 0 {
		return -1
	}
	dense, err := DenseColumn(f.src, actual)
	if err != nil {
		return -1
	}
	return dense
}

// RowHeader returns the label of row.
func (f *Facade) RowHeader(row int) (string, error) {
	if err := f.checkRow(row); err != nil {
		return "", err
	}
	return f.src.Label(row), nil
}

// SetRowHeader sets the label of row.
func (f *Facade) SetRowHeader(row int, header string) error {
	if err := f.checkRow(row); err != nil {
		return err
	}
	f.src.SetLabel(row, header)
	return nil
}

// RowIndex returns the first row labelled header, or -1.
func (f *Facade) RowIndex(header string) int {
	size := f.src.Size()
	for i := 0; i < size; i++ {
		if f.src.Label(i) == header {
			return i
		}
	}
	return -1
}

// AppendColumn adds a column after the last actual column. Existing rows
// get the table's empty-cell fill value.
func (f *Facade) AppendColumn() *Column {
	return &Column{src: f.src, actual: f.appendColumn(DefaultColumnHeading)}
}

// AppendColumnWithHeader adds a column with the given heading.
func (f *Facade) AppendColumnWithHeader(header string) *Column {
	return &Column{src: f.src, actual: f.appendColumn(header)}
}

func (f *Facade) appendColumn(header string) int {
	actual := f.src.LastColumn() + 1
	fill := fillValue(f.src)
	f.src.SetHeading(actual, header)
	rows := f.src.Size()
	for row := 0; row < rows; row++ {
		f.src.SetValue(actual, row, fill)
	}
	return actual
}

// AddColumn appends a column holding values, one per row.
func (f *Facade) AddColumn(header string, values []interface{}) (*Column, error) {
	cells := make([]models.Cell, len(values))
	for i, v := range values {
		c, err := toCell(v)
		if err != nil {
			return nil, err
		}
		cells[i] = c
	}
	col := f.AppendColumnWithHeader(header)
	for row, c := range cells {
		if err := f.storeCell(col.actual, row, c); err != nil {
			return nil, err
		}
	}
	return col, nil
}

// ReplaceColumn overwrites dense column col with values, starting at row 0.
// The previous contents are discarded, not returned.
func (f *Facade) ReplaceColumn(col int, values []interface{}) error {
	c, err := f.Column(col)
	if err != nil {
		return err
	}
	for row, v := range values {
		if err := c.Set(row, v); err != nil {
			return err
		}
	}
	return nil
}

// Column returns a view of dense column col.
func (f *Facade) Column(col int) (*Column, error) {
	actual, err := ActualColumn(f.src, col)
	if err != nil {
		return nil, err
	}
	return &Column{src: f.src, actual: actual}, nil
}

// Columns returns views of dense columns [from, to).
func (f *Facade) Columns(from, to int) ([]*Column, error) {
	if to < from {
		return nil, &IndexError{Index: to, Dense: true}
	}
	cols := make([]*Column, 0, to-from)
	for i := from; i < to; i++ {
		c, err := f.Column(i)
		if err != nil {
			return nil, err
		}
		cols = append(cols, c)
	}
	return cols, nil
}

// AppendRow adds a row; existing columns get the empty-cell fill value.
func (f *Facade) AppendRow() {
	fill := fillValue(f.src)
	f.src.IncrementCounter()
	row := f.src.Size() - 1
	last := f.src.LastColumn()
	for i := 0; i <= last; i++ {
		if f.src.ColumnExists(i) {
			f.src.SetValue(i, row, fill)
		}
	}
}

// AppendRowWithHeader adds a row labelled header.
func (f *Facade) AppendRowWithHeader(header string) {
	f.AppendRow()
	f.src.SetLabel(f.src.Size()-1, header)
}

// RemoveRow deletes row, shifting later rows up.
func (f *Facade) RemoveRow(row int) error {
	if err := f.checkRow(row); err != nil {
		return err
	}
	f.src.DeleteRow(row)
	return nil
}

// RemoveRowByHeader deletes the first row labelled header and reports
// whether one was found.
func (f *Facade) RemoveRowByHeader(header string) bool {
	row := f.RowIndex(header)
	if row < 0 {
		return false
	}
	f.src.DeleteRow(row)
	return true
}

// RemoveRows deletes count rows starting at row.
func (f *Facade) RemoveRows(row, count int) error {
	if count <= 0 {
		return nil
	}
	if err := f.checkRow(row); err != nil {
		return err
	}
	if err := f.checkRow(row + count - 1); err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		f.src.DeleteRow(row)
	}
	return nil
}

// InsertColumn is not supported by sparse tables.
func (f *Facade) InsertColumn(col int) error {
	return &EditError{Op: "InsertColumn"}
}

// InsertRow is not supported by sparse tables.
func (f *Facade) InsertRow(row int) error {
	return &EditError{Op: "InsertRow"}
}

// RemoveColumn is not supported by sparse tables.
func (f *Facade) RemoveColumn(col int) error {
	return &EditError{Op: "RemoveColumn"}
}

// SetColumnCount is not supported by sparse tables.
func (f *Facade) SetColumnCount(count int) error {
	return &EditError{Op: "SetColumnCount"}
}

// SetRowCount is not supported by sparse tables.
func (f *Facade) SetRowCount(count int) error {
	return &EditError{Op: "SetRowCount"}
}

// SetDimensions is not supported by sparse tables.
func (f *Facade) SetDimensions(cols, rows int) error {
	return &EditError{Op: "SetDimensions"}
}

func (f *Facade) checkRow(row int) error {
	if size := f.src.Size(); row < 0 || row >= size {
		return rowError(row, size)
	}
	return nil
}
