package table

import (
	"strconv"
	"strings"
)

// ParseValue converts command-line text into a value Set accepts.
// Integers become int64 and decimals float64; anything else, or text wrapped
// in double quotes, stays a string.
func ParseValue(s string) interface{} {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
