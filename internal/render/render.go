// Package render formats engine output as fixed-width text tables. It is
// pure presentation: every number it prints was already rounded and sorted
// by the reports package.
package render

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	nameWidth   = 30
	amountWidth = 14
)

func fmtAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
