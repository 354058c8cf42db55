package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jawadberjawi/UnifiedAccountingProject/internal/ledger"
)

const ledgerAmountWidth = 12

// GeneralLedger writes all accounts in the ledger.
func GeneralLedger(w io.Writer, led *ledger.Ledger) {
	if len(led.Accounts()) == 0 {
		fmt.Fprintln(w, "General ledger is empty.")
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "General Ledger (All Accounts)")
	fmt.Fprintln(w, strings.Repeat("=", 32))

	for _, account := range led.Accounts() {
		LedgerAccount(w, led, account)
	}
}

// LedgerAccount writes one account's lines with running balances and a
// totals row.
func LedgerAccount(w io.Writer, led *ledger.Ledger, account string) {
	lines := led.Lines(account)
	if len(lines) == 0 {
		fmt.Fprintf(w, "\nNo entries for account: %s\n", account)
		return
	}

	fmt.Fprintf(w, "\nAccount: %s\n", account)
	fmt.Fprintln(w, "Date       | Debit        | Credit       | Balance")
	fmt.Fprintln(w, strings.Repeat("-", 51))

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, line := range lines {
		date := "N/A"
		if !line.Date.IsZero() {
			date = line.Date.Format("2006-01-02")
		}

		debit, credit := "", ""
		if !line.Debit.IsZero() {
			debit = fmtAmount(line.Debit)
		}
		if !line.Credit.IsZero() {
			credit = fmtAmount(line.Credit)
		}

		fmt.Fprintf(w, "%s | %s | %s | %s\n",
			padRight(date, 10),
			padLeft(debit, ledgerAmountWidth),
			padLeft(credit, ledgerAmountWidth),
			padLeft(fmtAmount(line.Balance), ledgerAmountWidth))

		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
	}

	fmt.Fprintln(w, strings.Repeat("-", 51))
	fmt.Fprintf(w, "%s | %s | %s | %s\n",
		padRight("Totals", 10),
		padLeft(fmtAmount(totalDebit), ledgerAmountWidth),
		padLeft(fmtAmount(totalCredit), ledgerAmountWidth),
		padLeft(fmtAmount(lines[len(lines)-1].Balance), ledgerAmountWidth))
}
