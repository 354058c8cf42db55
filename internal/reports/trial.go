package reports

import (
	"github.com/shopspring/decimal"

	"github.com/jawadberjawi/UnifiedAccountingProject/internal/model"
)

// TrialBalanceReport totals the debit and credit columns over approved
// entries. Since every entry is constructed balanced, a difference indicates
// corrupted input rather than an engine failure; it is reported, not thrown.
type TrialBalanceReport struct {
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	Difference  decimal.Decimal
	Balanced    bool
}

// TrialBalance computes debit/credit totals over approved entries.
func TrialBalance(entries []model.JournalEntry) *TrialBalanceReport {
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero

	for _, e := range entries {
		if !e.IsApproved() {
			continue
		}
		totalDebit = totalDebit.Add(e.Debit.Amount)
		totalCredit = totalCredit.Add(e.Credit.Amount)
	}

	return &TrialBalanceReport{
		TotalDebit:  round2(totalDebit),
		TotalCredit: round2(totalCredit),
		Difference:  round2(totalDebit.Sub(totalCredit).Abs()),
		Balanced:    totalDebit.Equal(totalCredit),
	}
}
