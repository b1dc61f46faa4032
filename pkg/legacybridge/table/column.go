package table

import (
	"github.com/ukaji3/legacybridge-go/pkg/legacybridge/models"
)

// Column is a view of one column, bound to its actual index.
type Column struct {
	src    Source
	actual int
}

// Index returns the actual column index.
func (c *Column) Index() int {
	return c.actual
}

// Header returns the column heading.
func (c *Column) Header() string {
	return c.src.ColumnHeading(c.actual)
}

// SetHeader sets the column heading.
func (c *Column) SetHeader(header string) {
	c.src.SetHeading(c.actual, header)
}

// Len returns the number of rows.
func (c *Column) Len() int {
	return c.src.Size()
}

// Get returns the cell at row.
func (c *Column) Get(row int) (models.Cell, error) {
	if size := c.src.Size(); row < 0 || row >= size {
		return models.Cell{}, rowError(row, size)
	}
	if IsExplicitText(c.src, row, c.actual) {
		return models.TextCell(c.src.StringValue(c.actual, row)), nil
	}
	return models.NumberCell(c.src.Value(c.actual, row)), nil
}

// Set stores value at row.
func (c *Column) Set(row int, value interface{}) error {
	cell, err := toCell(value)
	if err != nil {
		return err
	}
	if row < 0 {
		return rowError(row, c.src.Size())
	}
	if cell.IsText() {
		c.src.SetStringValue(c.actual, row, cell.Text)
	} else {
		c.src.SetValue(c.actual, row, cell.Number)
	}
	return nil
}

// Cells returns every cell of the column.
func (c *Column) Cells() []models.Cell {
	cells := make([]models.Cell, c.src.Size())
	for row := range cells {
		cells[row], _ = c.Get(row)
	}
	return cells
}

// toCell converts a caller value into a cell.
func toCell(value interface{}) (models.Cell, error) {
	switch v := value.(type) {
	case models.Cell:
		return v, nil
	case string:
		return models.TextCell(v), nil
	case float64:
		return models.NumberCell(v), nil
	case float32:
		return models.NumberCell(float64(v)), nil
	case int:
		return models.NumberCell(float64(v)), nil
	case int8:
		return models.NumberCell(float64(v)), nil
	case int16:
		return models.NumberCell(float64(v)), nil
	case int32:
		return models.NumberCell(float64(v)), nil
	case int64:
		return models.NumberCell(float64(v)), nil
	case uint:
		return models.NumberCell(float64(v)), nil
	case uint8:
		return models.NumberCell(float64(v)), nil
	case uint16:
		return models.NumberCell(float64(v)), nil
	case uint32:
		return models.NumberCell(float64(v)), nil
	case uint64:
		return models.NumberCell(float64(v)), nil
	}
	return models.Cell{}, &ValueTypeError{Value: value}
}
