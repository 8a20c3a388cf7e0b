package exporter

import (
	"fmt"
	"strconv"
)

// formatFloatPtr formats an optional float with two decimal places, so
// values like 13.4 appear as 13.40 in exports. Nil stays empty.
func formatFloatPtr(f *float64) string {
	if f == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *f)
}

// formatIntPtr formats an optional int64; nil stays empty.
func formatIntPtr(i *int64) string {
	if i == nil {
		return ""
	}
	return strconv.FormatInt(*i, 10)
}

// formatBoolPtr formats the tri-state liquidity flag; nil stays empty.
func formatBoolPtr(b *bool) string {
	if b == nil {
		return ""
	}
	if *b {
		return "true"
	}
	return "false"
}
