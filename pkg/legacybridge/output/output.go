// Package output renders catalogs and tables as JSON or text tables.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/ukaji3/legacybridge-go/pkg/legacybridge/models"
	dense "github.com/ukaji3/legacybridge-go/pkg/legacybridge/table"
)

// ToJSON serializes v to JSON.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// ColumnKeys returns the key used for each dense column in TableRows.
// Empty headings become "C<n>" and repeated headings get a "#<n>" suffix.
func ColumnKeys(f *dense.Facade) []string {
	count := f.ColumnCount()
	keys := make([]string, count)
	seen := make(map[string]int, count)
	for col := 0; col < count; col++ {
		key, err := f.ColumnHeader(col)
		if err != nil || key == "" {
			key = "C" + strconv.Itoa(col+1)
		}
		seen[key]++
		if n := seen[key]; n > 1 {
			key = key + "#" + strconv.Itoa(n)
		}
		keys[col] = key
	}
	return keys
}

// TableRows returns one CellRow per table row, cells keyed by ColumnKeys.
func TableRows(f *dense.Facade) []models.CellRow {
	keys := ColumnKeys(f)
	count := f.RowCount()
	rows := make([]models.CellRow, 0, count)
	for r := 0; r < count; r++ {
		label, _ := f.RowHeader(r)
		row := models.CellRow{
			R:     r,
			Label: label,
			C:     make(map[string]models.Cell, len(keys)),
		}
		for col, key := range keys {
			c, err := f.Get(col, r)
			if err != nil {
				continue
			}
			row.C[key] = c
		}
		rows = append(rows, row)
	}
	return rows
}

// RenderTable writes the facade as a text table with a leading label column.
func RenderTable(w io.Writer, f *dense.Facade) {
	keys := ColumnKeys(f)
	if f.RowCount() == 0 && len(keys) == 0 {
		_, _ = fmt.Fprintln(w, "(empty table)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, 0, len(keys)+1)
	header = append(header, "Label")
	for _, k := range keys {
		header = append(header, k)
	}
	t.AppendHeader(header)

	for _, r := range TableRows(f) {
		row := make(table.Row, 0, len(keys)+1)
		row = append(row, r.Label)
		for _, k := range keys {
			row = append(row, r.C[k].String())
		}
		t.AppendRow(row)
	}

	t.Render()
	_, _ = fmt.Fprintf(w, "(%d rows)\n", f.RowCount())
}

// RenderCatalog writes command records as a text table.
func RenderCatalog(w io.Writer, records []models.CommandRecord) {
	if len(records) == 0 {
		_, _ = fmt.Fprintln(w, "(0 commands)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Command", "Menu", "Shortcut", "Class", "Argument"})

	for _, r := range records {
		menu, shortcut := "", ""
		if r.MenuPath != nil {
			menu = r.MenuPath.String()
			if leaf, ok := r.MenuPath.Leaf(); ok && leaf.Accelerator != nil {
				shortcut = leaf.Accelerator.String()
			}
		}
		t.AppendRow(table.Row{r.Key, menu, shortcut, r.ClassName, r.Argument})
	}

	t.Render()
	_, _ = fmt.Fprintf(w, "(%d commands)\n", len(records))
}
