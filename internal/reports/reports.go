// Package reports derives financial statements from journal entries: income
// statement for a date range, balance sheet as of a date, and trial balance.
// All derivation runs at full decimal precision; amounts are rounded to two
// places (half up) only when exposed in a statement.
package reports

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"
)

var (
	// ErrMissingPeriod is returned when an income statement is requested
	// without both period dates.
	ErrMissingPeriod = errors.New("income statement requires from and to dates")

	// ErrMissingDate is returned when a balance sheet is requested without
	// an as-of date.
	ErrMissingDate = errors.New("balance sheet requires an as-of date")
)

// AccountAmount is one statement line: a normalized account name and its
// rounded amount.
type AccountAmount struct {
	Account string
	Amount  decimal.Decimal
}

// sortedLines converts an accumulation map into rounded lines sorted by
// account name.
func sortedLines(m map[string]decimal.Decimal) []AccountAmount {
	lines := make([]AccountAmount, 0, len(m))
	for account, amount := range m {
		lines = append(lines, AccountAmount{Account: account, Amount: round2(amount)})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].Account < lines[j].Account })
	return lines
}

// sumValues totals an accumulation map at full precision.
func sumValues(m map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range m {
		total = total.Add(v)
	}
	return total
}

// round2 rounds half away from zero to two decimal places.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// sortedSet returns the members of a string set in sorted order.
func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
