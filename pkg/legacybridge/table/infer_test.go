package table

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/legacybridge-go/pkg/legacybridge/numfmt"
)

// slots is a single-cell source with independent numeric and string slots.
type slots struct {
	d float64
	s string
}

func (c slots) Value(col, row int) float64      { return c.d }
func (c slots) StringValue(col, row int) string { return c.s }

// configured adds a readable formatting configuration.
type configured struct {
	slots
	places   int
	readable bool
	auto     func(float64) string
}

func (c configured) Precision(col int) (int, bool)     { return c.places, c.readable }
func (c configured) EmptyCellFill() (FillPolicy, bool) { return FillZero, true }
func (c configured) AutoFormat(d float64) string       { return c.auto(d) }

// rendered formats through the cell's own number format.
type rendered struct {
	configured
	display string
	ok      bool
}

func (c rendered) FormatValue(col, row int, d float64) (string, bool) { return c.display, c.ok }

func TestIsExplicitText(t *testing.T) {
	auto := func(d float64) string { return "auto" }

	tests := []struct {
		name string
		src  CellSource
		want bool
	}{
		{"formatted number", configured{slots{3.14159, "3.14"}, 2, true, auto}, false},
		{"text override", configured{slots{3.14159, "pending"}, 2, true, auto}, true},
		{"other precision", configured{slots{3.14159, "3.14"}, 3, true, auto}, true},
		{"table auto format", configured{slots{1, "auto"}, numfmt.Auto, true, auto}, false},
		{"table auto format mismatch", configured{slots{1, "1"}, numfmt.Auto, true, auto}, true},
		{"unreadable precision falls back", configured{slots{3.14159, "3.142"}, 2, false, auto}, false},
		{"no config falls back", slots{42, "42"}, false},
		{"no config text", slots{42, "forty-two"}, true},
		{"cell format wins", rendered{configured{slots{1.0 / 3, "0.333333333333333"}, numfmt.Auto, true, auto}, "0.333333333333333", true}, false},
		{"cell format rounds half up", rendered{configured{slots{0.125, "0.13"}, 2, true, auto}, "0.13", true}, false},
		{"cell format text", rendered{configured{slots{0.125, "pending"}, 2, true, auto}, "0.13", true}, true},
		{"cell format unavailable falls back", rendered{configured{slots{1, "auto"}, numfmt.Auto, true, auto}, "", false}, false},
		{"nan empty", configured{slots{math.NaN(), ""}, 2, true, auto}, false},
		{"nan empty without config", slots{math.NaN(), ""}, false},
		{"nan with text", slots{math.NaN(), "n/a"}, true},
		{"nan formatted", slots{math.NaN(), "NaN"}, false},
		{"empty string for number", slots{0, ""}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsExplicitText(tt.src, 0, 0))
		})
	}
}

func TestFillPolicy(t *testing.T) {
	assert.Equal(t, 0.0, FillZero.Value())
	assert.True(t, math.IsNaN(FillNaN.Value()))
	assert.Equal(t, "zero", FillZero.String())
	assert.Equal(t, "nan", FillNaN.String())
}
