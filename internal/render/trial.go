package render

import (
	"fmt"
	"io"

	"github.com/jawadberjawi/UnifiedAccountingProject/internal/reports"
)

// TrialBalance writes the debit/credit totals and the balance verdict.
func TrialBalance(w io.Writer, tb *reports.TrialBalanceReport) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Trial Balance Report")
	fmt.Fprintln(w, "--------------------------")
	fmt.Fprintf(w, "Total Debit  : %s\n", fmtAmount(tb.TotalDebit))
	fmt.Fprintf(w, "Total Credit : %s\n", fmtAmount(tb.TotalCredit))

	if tb.Balanced {
		fmt.Fprintln(w, "Balanced.")
	} else {
		fmt.Fprintf(w, "Not balanced. Difference: %s\n", fmtAmount(tb.Difference))
	}
}
