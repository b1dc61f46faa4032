// Package catalog builds command records from a legacy menu tree and descriptor table.
package catalog

import "strings"

// ParseDescriptor splits a legacy descriptor such as `ij.plugin.Commands("open")`
// into its class identifier and quoted argument.
//
// Malformed input never fails: a missing "(" yields the whole string as class,
// a missing closing quote yields everything after the opening quote.
func ParseDescriptor(raw string) (className, argument string) {
	return parseClass(raw), parseArg(raw)
}

func parseClass(raw string) string {
	paren := strings.Index(raw, "(")
	if paren < 0 {
		return raw
	}
	return raw[:paren]
}

func parseArg(raw string) string {
	open := strings.Index(raw, `"`)
	if open < 0 {
		return ""
	}
	rest := raw[open+1:]
	end := strings.Index(rest, `"`)
	if end < 0 {
		return rest
	}
	return rest[:end]
}
