// Package sparse provides legacy sparse tables for the dense table facade.
package sparse

import (
	"math"
	"sort"
	"strconv"

	"github.com/ukaji3/legacybridge-go/pkg/legacybridge/numfmt"
	"github.com/ukaji3/legacybridge-go/pkg/legacybridge/table"
)

var (
	_ table.Source       = (*Memory)(nil)
	_ table.FormatConfig = (*Memory)(nil)
)

// Memory is an in-process results table: numeric columns at arbitrary
// actual indices, an optional text override per cell and a label per row.
type Memory struct {
	// NaNEmptyCells fills new cells with NaN instead of 0.
	NaNEmptyCells bool

	columns   map[int]*memColumn
	precision map[int]int
	labels    []string
	size      int
	last      int
}

type memColumn struct {
	heading string
	values  []float64
	text    map[int]string
}

// NewMemory returns an empty table.
func NewMemory() *Memory {
	m := &Memory{}
	m.Reset()
	return m
}

// Reset removes all rows and columns. Precision settings are kept.
func (m *Memory) Reset() {
	m.columns = make(map[int]*memColumn)
	if m.precision == nil {
		m.precision = make(map[int]int)
	}
	m.labels = nil
	m.size = 0
	m.last = -1
}

func (m *Memory) emptyFill() float64 {
	if m.NaNEmptyCells {
		return math.NaN()
	}
	return 0
}

// ColumnExists reports whether actual column col is in use.
func (m *Memory) ColumnExists(col int) bool {
	_, ok := m.columns[col]
	return ok
}

// LastColumn returns the highest column index in use, or -1.
func (m *Memory) LastColumn() int {
	return m.last
}

// Size returns the number of rows.
func (m *Memory) Size() int {
	return m.size
}

// Columns returns the actual indices in use, ascending.
func (m *Memory) Columns() []int {
	cols := make([]int, 0, len(m.columns))
	for col := range m.columns {
		cols = append(cols, col)
	}
	sort.Ints(cols)
	return cols
}

func (m *Memory) column(col int) *memColumn {
	if c, ok := m.columns[col]; ok {
		return c
	}
	c := &memColumn{
		heading: "C" + strconv.Itoa(col+1),
		values:  make([]float64, m.size),
		text:    make(map[int]string),
	}
	fill := m.emptyFill()
	for i := range c.values {
		c.values[i] = fill
	}
	m.columns[col] = c
	if col > m.last {
		m.last = col
	}
	return c
}

func (m *Memory) grow(row int) {
	if row < m.size {
		return
	}
	fill := m.emptyFill()
	for _, c := range m.columns {
		for len(c.values) <= row {
			c.values = append(c.values, fill)
		}
	}
	for len(m.labels) <= row {
		m.labels = append(m.labels, "")
	}
	m.size = row + 1
}

// Value returns the numeric slot, NaN if the cell does not exist.
func (m *Memory) Value(col, row int) float64 {
	c, ok := m.columns[col]
	if !ok || row < 0 || row >= m.size {
		return math.NaN()
	}
	return c.values[row]
}

// StringValue returns the explicit text of a cell, or its formatted number.
// Empty NaN cells read as "".
func (m *Memory) StringValue(col, row int) string {
	c, ok := m.columns[col]
	if !ok || row < 0 || row >= m.size {
		return ""
	}
	if s, ok := c.text[row]; ok {
		return s
	}
	d := c.values[row]
	if math.IsNaN(d) {
		return ""
	}
	places, _ := m.Precision(col)
	if places == numfmt.Auto {
		return m.AutoFormat(d)
	}
	return numfmt.Format(d, places)
}

// SetValue stores a number and clears any text override.
func (m *Memory) SetValue(col, row int, v float64) {
	if row < 0 {
		return
	}
	c := m.column(col)
	m.grow(row)
	c.values[row] = v
	delete(c.text, row)
}

// SetStringValue stores explicit text; the numeric slot becomes NaN.
func (m *Memory) SetStringValue(col, row int, s string) {
	if row < 0 {
		return
	}
	c := m.column(col)
	m.grow(row)
	c.values[row] = math.NaN()
	c.text[row] = s
}

// ColumnHeading returns the heading of col, "" if it does not exist.
func (m *Memory) ColumnHeading(col int) string {
	if c, ok := m.columns[col]; ok {
		return c.heading
	}
	return ""
}

// SetHeading sets the heading of col, creating the column.
func (m *Memory) SetHeading(col int, heading string) {
	if col < 0 {
		return
	}
	m.column(col).heading = heading
}

// ColumnIndex returns the lowest column with the given heading, or -1.
func (m *Memory) ColumnIndex(heading string) int {
	for _, col := range m.Columns() {
		if m.columns[col].heading == heading {
			return col
		}
	}
	return -1
}

// Label returns the label of row.
func (m *Memory) Label(row int) string {
	if row < 0 || row >= len(m.labels) {
		return ""
	}
	return m.labels[row]
}

// SetLabel sets the label of row, growing the table if needed.
func (m *Memory) SetLabel(row int, label string) {
	if row < 0 {
		return
	}
	m.grow(row)
	m.labels[row] = label
}

// IncrementCounter appends an empty row.
func (m *Memory) IncrementCounter() {
	m.grow(m.size)
}

// DeleteRow removes row and shifts later rows up.
func (m *Memory) DeleteRow(row int) {
	if row < 0 || row >= m.size {
		return
	}
	for _, c := range m.columns {
		c.values = append(c.values[:row], c.values[row+1:]...)
		text := make(map[int]string, len(c.text))
		for r, s := range c.text {
			switch {
			case r < row:
				text[r] = s
			case r > row:
				text[r-1] = s
			}
		}
		c.text = text
	}
	m.labels = append(m.labels[:row], m.labels[row+1:]...)
	m.size--
}

// SetPrecision sets the decimal places of col; numfmt.Auto restores automatic formatting.
func (m *Memory) SetPrecision(col, places int) {
	m.precision[col] = places
}

// Precision returns the decimal places of col.
func (m *Memory) Precision(col int) (int, bool) {
	if p, ok := m.precision[col]; ok {
		return p, true
	}
	return numfmt.Auto, true
}

// EmptyCellFill returns the fill policy for new cells.
func (m *Memory) EmptyCellFill() (table.FillPolicy, bool) {
	if m.NaNEmptyCells {
		return table.FillNaN, true
	}
	return table.FillZero, true
}

// AutoFormat renders d in automatic mode.
func (m *Memory) AutoFormat(d float64) string {
	return numfmt.AutoFormat(d)
}
