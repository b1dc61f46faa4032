package sparse

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/legacybridge-go/pkg/legacybridge/table"
)

func TestMemory_SparseColumns(t *testing.T) {
	m := NewMemory()
	assert.Equal(t, -1, m.LastColumn())
	assert.Equal(t, 0, m.Size())

	m.SetValue(1, 0, 1.5)
	m.SetValue(4, 2, 7)

	assert.Equal(t, []int{1, 4}, m.Columns())
	assert.Equal(t, 4, m.LastColumn())
	assert.Equal(t, 3, m.Size())
	assert.False(t, m.ColumnExists(0))
	assert.True(t, m.ColumnExists(1))
	assert.Equal(t, 0.0, m.Value(1, 1))
	assert.Equal(t, 7.0, m.Value(4, 2))
	assert.True(t, math.IsNaN(m.Value(2, 0)))
}

func TestMemory_StringSlot(t *testing.T) {
	m := NewMemory()
	m.SetPrecision(0, 2)
	m.SetValue(0, 0, 3.14159)
	assert.Equal(t, "3.14", m.StringValue(0, 0))

	m.SetStringValue(0, 0, "pending")
	assert.Equal(t, "pending", m.StringValue(0, 0))
	assert.True(t, math.IsNaN(m.Value(0, 0)))

	m.SetValue(0, 0, 2)
	assert.Equal(t, "2.00", m.StringValue(0, 0))

	m.SetValue(1, 0, math.NaN())
	assert.Equal(t, "", m.StringValue(1, 0))

	m.SetValue(1, 1, 0.25)
	assert.Equal(t, "0.250", m.StringValue(1, 1))
}

func TestMemory_NaNEmptyCells(t *testing.T) {
	m := NewMemory()
	m.NaNEmptyCells = true
	m.SetValue(0, 2, 1)
	assert.True(t, math.IsNaN(m.Value(0, 0)))

	policy, ok := m.EmptyCellFill()
	require.True(t, ok)
	assert.Equal(t, table.FillNaN, policy)
}

func TestMemory_Headings(t *testing.T) {
	m := NewMemory()
	m.SetHeading(3, "Area")
	m.SetValue(5, 0, 1)

	assert.Equal(t, "Area", m.ColumnHeading(3))
	assert.Equal(t, "C6", m.ColumnHeading(5))
	assert.Equal(t, "", m.ColumnHeading(0))
	assert.Equal(t, 3, m.ColumnIndex("Area"))
	assert.Equal(t, -1, m.ColumnIndex("Mean"))
}

func TestMemory_DeleteRow(t *testing.T) {
	m := NewMemory()
	for row := 0; row < 3; row++ {
		m.SetValue(0, row, float64(row))
		m.SetLabel(row, string(rune('a'+row)))
	}
	m.SetStringValue(1, 2, "last")

	m.DeleteRow(1)

	assert.Equal(t, 2, m.Size())
	assert.Equal(t, 0.0, m.Value(0, 0))
	assert.Equal(t, 2.0, m.Value(0, 1))
	assert.Equal(t, "c", m.Label(1))
	assert.Equal(t, "last", m.StringValue(1, 1))

	m.DeleteRow(5)
	assert.Equal(t, 2, m.Size())
}

func TestMemory_IncrementCounterAndReset(t *testing.T) {
	m := NewMemory()
	m.SetPrecision(0, 1)
	m.IncrementCounter()
	m.IncrementCounter()
	assert.Equal(t, 2, m.Size())
	assert.Equal(t, "", m.Label(1))

	m.SetValue(2, 0, 1)
	m.Reset()
	assert.Equal(t, 0, m.Size())
	assert.Equal(t, -1, m.LastColumn())

	places, ok := m.Precision(0)
	require.True(t, ok)
	assert.Equal(t, 1, places)
}
