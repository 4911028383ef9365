package metrics

import (
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatValue renders v with thousands separators, keeping at most three
// decimals: 12000 -> "12,000", 45.5 -> "45.5".
func FormatValue(v float64) string {
	rounded := math.Round(v*1000) / 1000
	if rounded == 0 {
		return "0"
	}
	return humanize.Commaf(rounded)
}

// InsertValue replaces the first {value} placeholder in text.
func InsertValue(text string, v float64) string {
	return strings.Replace(text, "{value}", FormatValue(v), 1)
}
