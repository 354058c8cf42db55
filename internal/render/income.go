package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jawadberjawi/UnifiedAccountingProject/internal/reports"
)

// IncomeStatement writes a fixed-width income statement.
func IncomeStatement(w io.Writer, is *reports.IncomeStatement) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Income Statement")
	fmt.Fprintf(w, "For the period: %s to %s\n", is.From.Format("2006-01-02"), is.To.Format("2006-01-02"))
	fmt.Fprintln(w, strings.Repeat("=", 50))

	section(w, "Revenues", is.Revenues, "Total Revenues", is.TotalRevenue)
	section(w, "Expenses", is.Expenses, "Total Expenses", is.TotalExpense)

	fmt.Fprintln(w, padRight("Net Income", nameWidth+2)+padLeft(fmtAmount(is.NetIncome), amountWidth))
	fmt.Fprintln(w, strings.Repeat("=", 50))

	if len(is.IgnoredAccounts) > 0 {
		fmt.Fprintf(w, "Note: ignored (not revenue/expense): %s\n", strings.Join(is.IgnoredAccounts, ", "))
	}
}

func section(w io.Writer, title string, lines []reports.AccountAmount, totalLabel string, total decimal.Decimal) {
	fmt.Fprintln(w, title)
	if len(lines) == 0 {
		fmt.Fprintln(w, " (none)")
	} else {
		for _, line := range lines {
			fmt.Fprintln(w, " "+padRight(line.Account, nameWidth)+padLeft(fmtAmount(line.Amount), amountWidth))
		}
	}
	fmt.Fprintln(w, " "+padRight(totalLabel, nameWidth)+padLeft(fmtAmount(total), amountWidth))
	fmt.Fprintln(w)
}
