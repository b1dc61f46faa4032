package table

import (
	"math"

	"github.com/ukaji3/legacybridge-go/pkg/legacybridge/numfmt"
)

// IsExplicitText reports whether the string slot at (row, col) overrides the
// numeric slot. col is an actual column index.
//
// Without explicit text the string slot holds the number as the table would
// format it, so the cell is text exactly when the two disagree. NaN with an
// empty string is the empty cell and never text.
func IsExplicitText(src CellSource, row, col int) bool {
	d := src.Value(col, row)
	s := src.StringValue(col, row)

	if math.IsNaN(d) && s == "" {
		return false
	}
	return s != formatted(src, row, col, d)
}

// formatted reconstructs the string slot the table would hold for d.
func formatted(src CellSource, row, col int, d float64) string {
	if cf, ok := src.(CellFormatter); ok {
		if s, ok := cf.FormatValue(col, row, d); ok {
			return s
		}
	}
	cfg, ok := src.(FormatConfig)
	if !ok {
		return numfmt.AutoFormat(d)
	}
	places, ok := cfg.Precision(col)
	if !ok {
		return numfmt.AutoFormat(d)
	}
	if places == numfmt.Auto {
		return cfg.AutoFormat(d)
	}
	return numfmt.Format(d, places)
}
