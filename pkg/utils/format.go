package utils

import (
	"math"
	"strconv"
	"strings"
)

// FormatCurrency renders a value the way the dashboard displays it:
// "R$ 1.234,56" (Brazilian grouping, comma decimal mark).
func FormatCurrency(v float64) string {
	if math.IsNaN(v) {
		return "R$ 0,00"
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	s := strconv.FormatFloat(v, 'f', 2, 64)
	intPart, frac, _ := strings.Cut(s, ".")

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	return "R$ " + sign + grouped.String() + "," + frac
}

// IsLink reports whether a cell value is a URL worth rendering as a link.
func IsLink(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Linkify wraps URLs in the markdown form the table renderer expects;
// non-URLs pass through unchanged.
func Linkify(s string) string {
	if IsLink(s) {
		return "[abrir](" + s + ")"
	}
	return s
}
