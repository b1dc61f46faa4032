package sparse

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/ukaji3/legacybridge-go/pkg/legacybridge/models"
	"github.com/ukaji3/legacybridge-go/pkg/legacybridge/numfmt"
	"github.com/ukaji3/legacybridge-go/pkg/legacybridge/table"
	"github.com/xuri/excelize/v2"
)

func newTestWorkbook(t *testing.T) *Workbook {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { f.Close() })

	w, err := NewWorkbook(f, "")
	if err != nil {
		t.Fatalf("NewWorkbook failed: %v", err)
	}
	return w
}

func TestWorkbookLayout(t *testing.T) {
	w := newTestWorkbook(t)

	if w.Sheet() != DefaultSheet {
		t.Errorf("Expected sheet %q, got %q", DefaultSheet, w.Sheet())
	}
	if got := w.LastColumn(); got != -1 {
		t.Errorf("Expected no columns, got last column %d", got)
	}
	if got := w.Size(); got != 0 {
		t.Errorf("Expected 0 rows, got %d", got)
	}

	w.SetHeading(1, "Mean")
	w.SetValue(1, 0, 2.5)
	w.SetHeading(3, "Max")
	w.SetValue(3, 1, 42)
	w.SetLabel(1, "cell-2")

	if got, _ := w.File().GetCellValue(DefaultSheet, "C1"); got != "Mean" {
		t.Errorf("Expected heading in C1, got %q", got)
	}
	if got, _ := w.File().GetCellValue(DefaultSheet, "E3"); got != "42" {
		t.Errorf("Expected 42 in E3, got %q", got)
	}
	if got, _ := w.File().GetCellValue(DefaultSheet, "A3"); got != "cell-2" {
		t.Errorf("Expected label in A3, got %q", got)
	}

	tests := []struct {
		col  int
		want bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{3, true},
		{4, false},
		{-1, false},
	}
	for _, tt := range tests {
		if got := w.ColumnExists(tt.col); got != tt.want {
			t.Errorf("ColumnExists(%d) = %v, expected %v", tt.col, got, tt.want)
		}
	}

	if got := w.LastColumn(); got != 3 {
		t.Errorf("Expected last column 3, got %d", got)
	}
	if got := w.Size(); got != 2 {
		t.Errorf("Expected 2 rows, got %d", got)
	}
	if got := w.ColumnIndex("Max"); got != 3 {
		t.Errorf("ColumnIndex(Max) = %d, expected 3", got)
	}
	if got := w.Value(1, 0); got != 2.5 {
		t.Errorf("Value(1, 0) = %v, expected 2.5", got)
	}
	if got := w.Value(1, 1); !math.IsNaN(got) {
		t.Errorf("Value(1, 1) = %v, expected NaN", got)
	}
	if err := w.Err(); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestWorkbookTextAndNaN(t *testing.T) {
	w := newTestWorkbook(t)

	w.SetStringValue(0, 0, "pending")
	w.SetValue(0, 1, math.NaN())

	if got := w.StringValue(0, 0); got != "pending" {
		t.Errorf("StringValue(0, 0) = %q, expected pending", got)
	}
	if got := w.Value(0, 0); !math.IsNaN(got) {
		t.Errorf("Value(0, 0) = %v, expected NaN", got)
	}
	if got := w.Value(0, 1); !math.IsNaN(got) {
		t.Errorf("Value(0, 1) = %v, expected NaN", got)
	}
	if !table.IsExplicitText(w, 0, 0) {
		t.Errorf("Expected text override at (0, 0)")
	}
	if table.IsExplicitText(w, 1, 0) {
		t.Errorf("Expected NaN cell at (0, 1) to read as a number")
	}
	w.SetStringValue(0, 2, "42")
	if got := w.Value(0, 2); !math.IsNaN(got) {
		t.Errorf("Value(0, 2) = %v, expected NaN for numeric-looking text", got)
	}
	if !table.IsExplicitText(w, 2, 0) {
		t.Errorf("Expected text override at (0, 2)")
	}
	if got := w.ColumnHeading(0); got != "C1" {
		t.Errorf("Expected default heading C1, got %q", got)
	}
}

func TestWorkbookPrecision(t *testing.T) {
	w := newTestWorkbook(t)
	w.SetHeading(0, "Area")

	if places, ok := w.Precision(0); !ok || places != numfmt.Auto {
		t.Errorf("Precision(0) = %d, %v, expected Auto", places, ok)
	}

	if err := w.SetPrecision(0, 2); err != nil {
		t.Fatalf("SetPrecision failed: %v", err)
	}
	if places, ok := w.Precision(0); !ok || places != 2 {
		t.Errorf("Precision(0) = %d, %v, expected 2", places, ok)
	}

	w.SetValue(0, 0, 3.14159)
	if got := w.StringValue(0, 0); got != "3.14" {
		t.Errorf("StringValue(0, 0) = %q, expected 3.14", got)
	}
	if table.IsExplicitText(w, 0, 0) {
		t.Errorf("Expected formatted number at (0, 0)")
	}

	if err := w.SetPrecision(0, -3); err == nil {
		t.Errorf("Expected error for scientific precision")
	}
}

func TestWorkbookFormatValue(t *testing.T) {
	tests := []struct {
		name    string
		places  int
		value   float64
		display string
	}{
		{"general third", numfmt.Auto, 1.0 / 3, "0.333333333333333"},
		{"general large", numfmt.Auto, 1e20, "1E+20"},
		{"general integer", numfmt.Auto, 42, "42"},
		{"two places half up", 2, 0.125, "0.13"},
		{"two places binary half", 2, 2.675, "2.68"},
		{"zero places", 0, 2.5, "3"},
		{"three places", 3, 3.14159, "3.142"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorkbook(t)
			w.SetHeading(0, "Area")
			if err := w.SetPrecision(0, tt.places); err != nil {
				t.Fatalf("SetPrecision failed: %v", err)
			}
			w.SetValue(0, 0, tt.value)

			got := w.StringValue(0, 0)
			if got != tt.display {
				t.Errorf("StringValue(0, 0) = %q, expected %q", got, tt.display)
			}
			if s, ok := w.FormatValue(0, 0, w.Value(0, 0)); !ok || s != got {
				t.Errorf("FormatValue = %q, %v, expected %q", s, ok, got)
			}
			if table.IsExplicitText(w, 0, 0) {
				t.Errorf("Expected %v to read back as a number", tt.value)
			}
		})
	}
}

func TestWorkbookNumbersReadBackAsNumbers(t *testing.T) {
	values := []float64{1.0 / 3, 1e20, 0.125, 2.675, 2.5, 42, -0.1, 3.14159, 0}

	for _, places := range []int{numfmt.Auto, 0, 2} {
		w := newTestWorkbook(t)
		w.SetHeading(0, "Value")
		if err := w.SetPrecision(0, places); err != nil {
			t.Fatalf("SetPrecision(%d) failed: %v", places, err)
		}
		for row, v := range values {
			w.SetValue(0, row, v)
		}

		f := table.New(w)
		for row, v := range values {
			cell, err := f.Get(0, row)
			if err != nil {
				t.Fatalf("Get(0, %d) failed: %v", row, err)
			}
			if cell.Kind != models.CellNumber {
				t.Errorf("places %d: %v read back as %v %q", places, v, cell.Kind, cell.Text)
				continue
			}
			if cell.Number != v {
				t.Errorf("places %d: expected %v, got %v", places, v, cell.Number)
			}
		}
		if err := w.Err(); err != nil {
			t.Errorf("places %d: unexpected workbook error: %v", places, err)
		}
	}
}

func TestDataRows(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want int
	}{
		{"empty sheet", nil, 0},
		{"headings only", [][]string{{"Label", "Area"}}, 0},
		{"one row", [][]string{{"Label", "Area"}, {"1", "2"}}, 1},
		{"value without label", [][]string{{"Label", "Area"}, {}, {"", "5"}}, 2},
		{"trailing blank rows", [][]string{{"Label", "Area"}, {"x"}, {}, {"", ""}}, 1},
		{"label beyond columns", [][]string{{"Label"}, {}, {}, {"3"}}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dataRows(tt.rows); got != tt.want {
				t.Errorf("dataRows() = %d, expected %d", got, tt.want)
			}
		})
	}
}

func TestPlacesFromCode(t *testing.T) {
	tests := []struct {
		code   string
		places int
		ok     bool
	}{
		{"0", 0, true},
		{"0.0", 1, true},
		{"0.0000", 4, true},
		{"#,##0.00", 0, false},
		{"0.00%", 0, false},
		{"0.", 0, false},
	}
	for _, tt := range tests {
		places, ok := placesFromCode(tt.code)
		if places != tt.places || ok != tt.ok {
			t.Errorf("placesFromCode(%q) = %d, %v, expected %d, %v",
				tt.code, places, ok, tt.places, tt.ok)
		}
	}
}

func TestWorkbookRowsAndReset(t *testing.T) {
	w := newTestWorkbook(t)

	w.IncrementCounter()
	w.IncrementCounter()
	if got := w.Size(); got != 2 {
		t.Errorf("Expected 2 rows, got %d", got)
	}
	if got := w.Label(1); got != "2" {
		t.Errorf("Expected default label 2, got %q", got)
	}

	w.SetValue(0, 0, 1)
	w.SetValue(0, 1, 2)
	w.DeleteRow(0)
	if got := w.Size(); got != 1 {
		t.Errorf("Expected 1 row after delete, got %d", got)
	}
	if got := w.Value(0, 0); got != 2 {
		t.Errorf("Expected shifted value 2, got %v", got)
	}

	w.Reset()
	if got := w.Size(); got != 0 {
		t.Errorf("Expected 0 rows after reset, got %d", got)
	}
	if got := w.LastColumn(); got != -1 {
		t.Errorf("Expected no columns after reset, got %d", got)
	}
	if got, _ := w.File().GetCellValue(DefaultSheet, "A1"); got != LabelHeading {
		t.Errorf("Expected %q in A1, got %q", LabelHeading, got)
	}
}

func TestWorkbookRoundTrip(t *testing.T) {
	w := newTestWorkbook(t)
	w.SetHeading(0, "Area")
	w.SetValue(0, 0, 10)
	w.SetHeading(2, "Name")
	w.SetStringValue(2, 0, "nucleus")

	tmpFile := filepath.Join(t.TempDir(), "results.xlsx")
	if err := w.File().SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	w2, err := OpenWorkbook(tmpFile, DefaultSheet)
	if err != nil {
		t.Fatalf("OpenWorkbook failed: %v", err)
	}
	defer w2.Close()

	if got := w2.LastColumn(); got != 2 {
		t.Errorf("Expected last column 2, got %d", got)
	}
	if w2.ColumnExists(1) {
		t.Errorf("Expected gap at column 1")
	}
	if got := w2.Value(0, 0); got != 10 {
		t.Errorf("Expected 10, got %v", got)
	}
	if got := w2.StringValue(2, 0); got != "nucleus" {
		t.Errorf("Expected nucleus, got %q", got)
	}
}
