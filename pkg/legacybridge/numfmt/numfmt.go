// Package numfmt reproduces the legacy table's number-to-text conversion.
//
// A legacy table keeps a string slot next to every numeric cell. Unless text
// was set explicitly, that slot holds exactly what Format produces for the
// stored number and the column's decimal places, which is how explicit text
// overrides are told apart from formatted numbers.
package numfmt

import (
	"math"
	"strconv"
	"strings"
)

// Auto is the decimal-places sentinel selecting automatic formatting.
const Auto = math.MinInt16

// autoPlaces is the precision used for non-integral values in automatic mode.
const autoPlaces = 3

// Format renders d with the given decimal places.
// Negative places select scientific notation with -places fraction digits;
// Auto selects automatic formatting.
func Format(d float64, places int) string {
	switch {
	case math.IsNaN(d):
		return "NaN"
	case math.IsInf(d, 1):
		return "Infinity"
	case math.IsInf(d, -1):
		return "-Infinity"
	case places == Auto:
		return autoFormat(d)
	case places < 0:
		return scientific(d, -places)
	}
	return strconv.FormatFloat(d, 'f', places, 64)
}

// AutoFormat renders d in automatic mode.
func AutoFormat(d float64) string {
	return Format(d, Auto)
}

// Integral values below 1e9 print without decimals; other values print with
// three decimals unless that would hide them, in which case scientific
// notation is used.
func autoFormat(d float64) string {
	abs := math.Abs(d)
	if d == math.Trunc(d) && abs < 1e9 {
		return strconv.FormatFloat(d, 'f', 0, 64)
	}
	if abs >= 1e9 {
		return scientific(d, autoPlaces)
	}
	s := strconv.FormatFloat(d, 'f', autoPlaces, 64)
	if strings.Trim(s, "-0.") == "" {
		return scientific(d, autoPlaces)
	}
	return s
}

// scientific renders d as e.g. "1.235E4" or "-2.000E-5".
func scientific(d float64, digits int) string {
	s := strconv.FormatFloat(d, 'E', digits, 64)
	mantissa, exp, ok := strings.Cut(s, "E")
	if !ok {
		return s
	}
	sign := ""
	switch exp[0] {
	case '-':
		sign = "-"
		exp = exp[1:]
	case '+':
		exp = exp[1:]
	}
	exp = strings.TrimLeft(exp, "0")
	if exp == "" {
		exp = "0"
	}
	return mantissa + "E" + sign + exp
}
