package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jawadberjawi/UnifiedAccountingProject/internal/model"
)

// Entries writes a full listing of journal entries, one block per entry with
// both sides shown. The debit/credit headings switch on the line's side tag.
func Entries(w io.Writer, entries []model.JournalEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No entries available.")
		return
	}

	for _, e := range entries {
		date := "N/A"
		if e.HasDate() {
			date = e.Date.Format("2006-01-02")
		}
		fmt.Fprintf(w, "Transaction ID : %s\n", e.TransactionID)
		fmt.Fprintf(w, "Date           : %s\n", date)
		fmt.Fprintf(w, "Created By     : %s\n", e.CreatedBy)
		fmt.Fprintf(w, "Status         : %s\n", e.Status)
		entryLine(w, model.SideDebit, e.Debit)
		entryLine(w, model.SideCredit, e.Credit)
		fmt.Fprintln(w, strings.Repeat("=", 31))
	}
}

func entryLine(w io.Writer, side model.Side, line model.Line) {
	fmt.Fprintf(w, "----- %s Entry -----\n", side.Label())
	fmt.Fprintf(w, "Account: %s\n", line.Account)
	fmt.Fprintf(w, "Amount : %s\n", fmtAmount(line.Amount))
}
