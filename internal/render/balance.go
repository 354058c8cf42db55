package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jawadberjawi/UnifiedAccountingProject/internal/reports"
)

// BalanceSheet writes a fixed-width balance sheet with the closing balance
// check.
func BalanceSheet(w io.Writer, bs *reports.BalanceSheet) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "BALANCE SHEET (As of %s)\n", bs.AsOf.Format("2006-01-02"))
	fmt.Fprintln(w, strings.Repeat("=", 50))

	section(w, "ASSETS", bs.Assets, "Total ASSETS", bs.TotalAssets)
	section(w, "LIABILITIES", bs.Liabilities, "Total LIABILITIES", bs.TotalLiabilities)
	section(w, "EQUITY", bs.Equity, "Total EQUITY", bs.TotalEquity)

	fmt.Fprintln(w, strings.Repeat("-", 50))
	fmt.Fprintln(w, padRight("Total Assets", nameWidth)+padLeft(fmtAmount(bs.TotalAssets), amountWidth))
	fmt.Fprintln(w, padRight("Total Liabilities + Equity", nameWidth)+
		padLeft(fmtAmount(bs.TotalLiabilities.Add(bs.TotalEquity)), amountWidth))
	fmt.Fprintln(w, strings.Repeat("-", 50))
	if bs.Balanced {
		fmt.Fprintln(w, "Balanced")
	} else {
		fmt.Fprintln(w, "NOT BALANCED")
	}
	fmt.Fprintln(w, strings.Repeat("=", 50))

	if len(bs.IgnoredAccounts) > 0 {
		fmt.Fprintf(w, "Note: ignored (unclassified): %s\n", strings.Join(bs.IgnoredAccounts, ", "))
	}
}
