package sparse

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/legacybridge-go/pkg/legacybridge/numfmt"
	"github.com/ukaji3/legacybridge-go/pkg/legacybridge/table"
	"github.com/xuri/excelize/v2"
)

var (
	_ table.Source        = (*Workbook)(nil)
	_ table.FormatConfig  = (*Workbook)(nil)
	_ table.CellFormatter = (*Workbook)(nil)
)

// Sheet layout: row 1 holds column headings, column A holds row labels.
// Actual column c lives in spreadsheet column c+2, row r in spreadsheet row r+2.
const (
	headerRow   = 1
	labelColumn = 1
	firstColumn = 2
	firstRow    = 2

	// LabelHeading is written to the top-left cell of a new sheet.
	LabelHeading = "Label"

	// nanText stores NaN, which spreadsheets cannot represent as a number.
	nanText = "NaN"
)

// DefaultSheet is the sheet used when none is given.
const DefaultSheet = "Results"

// Workbook is a legacy sparse table stored in one sheet of an xlsx file.
// A column exists when its heading cell is non-empty; decimal places are the
// column's number format.
//
// Source methods cannot return errors; the first excelize failure is kept and
// reported by Err.
type Workbook struct {
	// NaNEmptyCells fills new cells with NaN instead of 0.
	NaNEmptyCells bool

	file  *excelize.File
	sheet string
	err   error

	// scratch renders numbers through excelize's display formatting without
	// touching the sheet. styles maps style IDs of file to scratch.
	scratch *excelize.File
	styles  map[int]int
}

// NewWorkbook wraps sheet of f, creating the sheet if it does not exist.
func NewWorkbook(f *excelize.File, sheet string) (*Workbook, error) {
	if sheet == "" {
		sheet = DefaultSheet
	}
	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	w := &Workbook{file: f, sheet: sheet}
	corner, err := f.GetCellValue(sheet, "A1")
	if err != nil {
		return nil, err
	}
	if corner == "" {
		if err := f.SetCellStr(sheet, "A1", LabelHeading); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// OpenWorkbook opens an xlsx file and wraps sheet.
func OpenWorkbook(path, sheet string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	w, err := NewWorkbook(f, sheet)
	if err != nil {
		f.Close()
		return nil, err
	}
	return w, nil
}

// File returns the underlying excelize file.
func (w *Workbook) File() *excelize.File {
	return w.file
}

// Sheet returns the sheet name.
func (w *Workbook) Sheet() string {
	return w.sheet
}

// Err returns the first error hit by a Source method.
func (w *Workbook) Err() error {
	return w.err
}

// Close closes the underlying file.
func (w *Workbook) Close() error {
	if w.scratch != nil {
		w.scratch.Close()
		w.scratch = nil
	}
	return w.file.Close()
}

func (w *Workbook) fail(err error) {
	if err != nil && w.err == nil {
		w.err = fmt.Errorf("sheet %q: %w", w.sheet, err)
	}
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func dataCell(col, row int) string {
	return cellName(col+firstColumn, row+firstRow)
}

func headingCell(col int) string {
	return cellName(col+firstColumn, headerRow)
}

func labelCell(row int) string {
	return cellName(labelColumn, row+firstRow)
}

func columnName(col int) string {
	name, _ := excelize.ColumnNumberToName(col + firstColumn)
	return name
}

func (w *Workbook) rows() [][]string {
	rows, err := w.file.GetRows(w.sheet)
	w.fail(err)
	return rows
}

func (w *Workbook) get(cell string, raw bool) string {
	v, err := w.file.GetCellValue(w.sheet, cell, excelize.Options{RawCellValue: raw})
	w.fail(err)
	return v
}

// ColumnExists reports whether the heading of col is set.
func (w *Workbook) ColumnExists(col int) bool {
	if col < 0 {
		return false
	}
	return w.get(headingCell(col), false) != ""
}

// LastColumn returns the highest column with a heading, or -1.
func (w *Workbook) LastColumn() int {
	rows := w.rows()
	if len(rows) == 0 {
		return -1
	}
	last := -1
	for i, h := range rows[0] {
		if i >= firstColumn-1 && h != "" {
			last = i - (firstColumn - 1)
		}
	}
	return last
}

// Size returns the number of data rows: the last sheet row below the
// headings holding a label or a value.
func (w *Workbook) Size() int {
	return dataRows(w.rows())
}

func dataRows(rows [][]string) int {
	for r := len(rows) - 1; r >= firstRow-1; r-- {
		for _, cell := range rows[r] {
			if cell != "" {
				return r - (firstRow - 1) + 1
			}
		}
	}
	return 0
}

// Value returns the stored number, NaN for empty or text cells.
func (w *Workbook) Value(col, row int) float64 {
	cell := dataCell(col, row)
	typ, err := w.file.GetCellType(w.sheet, cell)
	if err != nil {
		w.fail(err)
		return math.NaN()
	}
	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return math.NaN()
	}
	raw := w.get(cell, true)
	if raw == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// StringValue returns the cell as displayed, applying its number format.
func (w *Workbook) StringValue(col, row int) string {
	return w.get(dataCell(col, row), false)
}

// SetValue stores a number using the column's number format.
func (w *Workbook) SetValue(col, row int, v float64) {
	cell := dataCell(col, row)
	w.ensureHeading(col)
	if math.IsNaN(v) {
		w.fail(w.file.SetCellStr(w.sheet, cell, nanText))
		return
	}
	w.fail(w.file.SetCellFloat(w.sheet, cell, v, -1, 64))
	styleID, err := w.file.GetColStyle(w.sheet, columnName(col))
	if err == nil && styleID != 0 {
		w.fail(w.file.SetCellStyle(w.sheet, cell, cell, styleID))
	}
}

// SetStringValue stores explicit text.
func (w *Workbook) SetStringValue(col, row int, s string) {
	w.ensureHeading(col)
	w.fail(w.file.SetCellStr(w.sheet, dataCell(col, row), s))
}

func (w *Workbook) ensureHeading(col int) {
	if !w.ColumnExists(col) {
		w.SetHeading(col, "C"+strconv.Itoa(col+1))
	}
}

// ColumnHeading returns the heading of col.
func (w *Workbook) ColumnHeading(col int) string {
	return w.get(headingCell(col), false)
}

// SetHeading sets the heading of col.
func (w *Workbook) SetHeading(col int, heading string) {
	w.fail(w.file.SetCellStr(w.sheet, headingCell(col), heading))
}

// ColumnIndex returns the lowest column with the given heading, or -1.
func (w *Workbook) ColumnIndex(heading string) int {
	rows := w.rows()
	if len(rows) == 0 {
		return -1
	}
	for i, h := range rows[0] {
		if i >= firstColumn-1 && h == heading {
			return i - (firstColumn - 1)
		}
	}
	return -1
}

// Label returns the label of row.
func (w *Workbook) Label(row int) string {
	return w.get(labelCell(row), false)
}

// SetLabel sets the label of row.
func (w *Workbook) SetLabel(row int, label string) {
	w.fail(w.file.SetCellStr(w.sheet, labelCell(row), label))
}

// IncrementCounter appends a row labelled with its 1-based number, so that
// the row is kept even when no column holds a value yet.
func (w *Workbook) IncrementCounter() {
	row := w.Size()
	w.SetLabel(row, strconv.Itoa(row+1))
}

// DeleteRow removes row and shifts later rows up.
func (w *Workbook) DeleteRow(row int) {
	if row < 0 || row >= w.Size() {
		return
	}
	w.fail(w.file.RemoveRow(w.sheet, row+firstRow))
}

// Reset removes every row, headings included, and rewrites the label heading.
func (w *Workbook) Reset() {
	for r := len(w.rows()); r >= headerRow; r-- {
		w.fail(w.file.RemoveRow(w.sheet, r))
	}
	w.fail(w.file.SetCellStr(w.sheet, "A1", LabelHeading))
}

// SetPrecision applies a fixed-decimals number format to col.
// numfmt.Auto restores the General format; negative places are not supported.
func (w *Workbook) SetPrecision(col, places int) error {
	styleID := 0
	switch {
	case places == numfmt.Auto:
	case places < 0:
		return fmt.Errorf("scientific precision %d: %w", places, errors.ErrUnsupported)
	default:
		style := &excelize.Style{}
		switch places {
		case 0:
			style.NumFmt = 1
		case 2:
			style.NumFmt = 2
		default:
			code := "0." + strings.Repeat("0", places)
			style.CustomNumFmt = &code
		}
		id, err := w.file.NewStyle(style)
		if err != nil {
			return err
		}
		styleID = id
	}
	return w.file.SetColStyle(w.sheet, columnName(col), styleID)
}

// Precision derives the decimal places of col from its number format.
// Formats other than General and fixed decimals are reported as unreadable.
func (w *Workbook) Precision(col int) (int, bool) {
	styleID, err := w.file.GetColStyle(w.sheet, columnName(col))
	if err != nil {
		return 0, false
	}
	if styleID == 0 {
		return numfmt.Auto, true
	}
	style, err := w.file.GetStyle(styleID)
	if err != nil {
		return 0, false
	}
	return placesFromStyle(style)
}

func placesFromStyle(style *excelize.Style) (int, bool) {
	if style.CustomNumFmt != nil {
		return placesFromCode(*style.CustomNumFmt)
	}
	switch style.NumFmt {
	case 0:
		return numfmt.Auto, true
	case 1:
		return 0, true
	case 2:
		return 2, true
	}
	return 0, false
}

// placesFromCode reads format codes of the form "0" or "0.000".
func placesFromCode(code string) (int, bool) {
	intPart, frac, hasDot := strings.Cut(code, ".")
	if intPart != "0" {
		return 0, false
	}
	if !hasDot {
		return 0, true
	}
	if frac == "" || strings.Trim(frac, "0") != "" {
		return 0, false
	}
	return len(frac), true
}

// EmptyCellFill returns the fill policy for new cells.
func (w *Workbook) EmptyCellFill() (table.FillPolicy, bool) {
	if w.NaNEmptyCells {
		return table.FillNaN, true
	}
	return table.FillZero, true
}

// AutoFormat renders d the way an unformatted numeric cell reads back.
func (w *Workbook) AutoFormat(d float64) string {
	if math.IsNaN(d) {
		return nanText
	}
	s, err := w.render(d, 0)
	if err != nil {
		return numfmt.AutoFormat(d)
	}
	return s
}

// FormatValue renders d the way the cell at (col, row) displays a stored
// number, using the cell's own number format.
func (w *Workbook) FormatValue(col, row int, d float64) (string, bool) {
	if math.IsNaN(d) {
		return nanText, true
	}
	styleID, err := w.file.GetCellStyle(w.sheet, dataCell(col, row))
	if err != nil {
		return "", false
	}
	s, err := w.render(d, styleID)
	if err != nil {
		return "", false
	}
	return s, true
}

// render writes d to a scratch cell styled like styleID of the workbook and
// reads back the displayed text.
func (w *Workbook) render(d float64, styleID int) (string, error) {
	if w.scratch == nil {
		w.scratch = excelize.NewFile()
		w.styles = map[int]int{0: 0}
	}
	scratchID, ok := w.styles[styleID]
	if !ok {
		style, err := w.file.GetStyle(styleID)
		if err != nil {
			return "", err
		}
		if scratchID, err = w.scratch.NewStyle(style); err != nil {
			return "", err
		}
		w.styles[styleID] = scratchID
	}
	sheet := w.scratch.GetSheetName(0)
	if err := w.scratch.SetCellFloat(sheet, "A1", d, -1, 64); err != nil {
		return "", err
	}
	if err := w.scratch.SetCellStyle(sheet, "A1", "A1", scratchID); err != nil {
		return "", err
	}
	return w.scratch.GetCellValue(sheet, "A1")
}
