// Package models defines data structures shared by the catalog and table adapters.
package models

import (
	"encoding/json"
	"math"
	"strconv"
)

// CellKind tags which slot of a Cell is authoritative.
type CellKind int

const (
	// CellNumber marks a cell whose numeric value is authoritative.
	CellNumber CellKind = iota
	// CellText marks a cell holding an explicit text override.
	CellText
)

// Cell is a single table value: either a number or a text override.
type Cell struct {
	Kind   CellKind
	Number float64
	Text   string
}

// NumberCell returns a numeric cell.
func NumberCell(v float64) Cell {
	return Cell{Kind: CellNumber, Number: v}
}

// TextCell returns a text cell.
func TextCell(s string) Cell {
	return Cell{Kind: CellText, Text: s, Number: math.NaN()}
}

// IsText reports whether the cell holds text.
func (c Cell) IsText() bool {
	return c.Kind == CellText
}

// Value returns the authoritative value as float64 or string.
func (c Cell) Value() interface{} {
	if c.Kind == CellText {
		return c.Text
	}
	return c.Number
}

// String renders the cell for display. NaN renders as an empty string.
func (c Cell) String() string {
	if c.Kind == CellText {
		return c.Text
	}
	if math.IsNaN(c.Number) {
		return ""
	}
	return strconv.FormatFloat(c.Number, 'g', -1, 64)
}

// MarshalJSON encodes text as a JSON string and numbers as JSON numbers.
// NaN and infinities have no JSON form and encode as null.
func (c Cell) MarshalJSON() ([]byte, error) {
	if c.Kind == CellText {
		return json.Marshal(c.Text)
	}
	if math.IsNaN(c.Number) || math.IsInf(c.Number, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(c.Number)
}

// CellRow represents a single row of a dense table view.
type CellRow struct {
	// R is the row index (0-based).
	R int `json:"r"`
	// Label is the row header, if any.
	Label string `json:"label,omitempty"`
	// C maps column header to cell value.
	C map[string]Cell `json:"c"`
}
