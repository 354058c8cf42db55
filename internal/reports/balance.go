package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jawadberjawi/UnifiedAccountingProject/internal/accounts"
	"github.com/jawadberjawi/UnifiedAccountingProject/internal/ledger"
	"github.com/jawadberjawi/UnifiedAccountingProject/internal/model"
)

// RetainedEarningsLine is the synthetic equity line carrying net income from
// an accompanying income statement.
const RetainedEarningsLine = "Retained Earnings / Net Income"

// BalanceSheet is the derived point-in-time statement as of a date. Lines
// are sorted by account name and rounded to two decimal places; accounts
// with a zero closing balance are omitted. Balanced reports whether
// TotalAssets == TotalLiabilities + TotalEquity after rounding; an
// out-of-balance sheet is a reportable outcome, not an error.
type BalanceSheet struct {
	AsOf             time.Time
	Assets           []AccountAmount
	Liabilities      []AccountAmount
	Equity           []AccountAmount
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	TotalEquity      decimal.Decimal
	Balanced         bool
	IgnoredAccounts  []string
}

// Balance builds a balance sheet over approved entries dated on or before
// asOf (a cumulative snapshot, no lower bound). Closing balances come from a
// fresh ledger build over the filtered entries. is may be nil; when present
// its net income is merged into equity under RetainedEarningsLine. clf may
// be nil, in which case the default balance-sheet classifier is used.
func Balance(entries []model.JournalEntry, asOf time.Time, is *IncomeStatement, clf *accounts.Classifier) (*BalanceSheet, error) {
	if asOf.IsZero() {
		return nil, ErrMissingDate
	}
	if clf == nil {
		clf = accounts.NewBalanceClassifier(nil)
	}

	var filtered []model.JournalEntry
	for _, e := range entries {
		if !e.IsApproved() || !e.HasDate() {
			continue
		}
		if e.Date.After(asOf) {
			continue
		}
		filtered = append(filtered, e)
	}

	led := ledger.Build(filtered)

	assets := make(map[string]decimal.Decimal)
	liabilities := make(map[string]decimal.Decimal)
	equity := make(map[string]decimal.Decimal)
	ignored := make(map[string]struct{})

	for _, account := range led.Accounts() {
		balance := round2(led.FinalBalance(account))
		if balance.IsZero() {
			continue
		}

		switch clf.Classify(account) {
		case accounts.CategoryAsset:
			assets[account] = assets[account].Add(balance)
		case accounts.CategoryContraAsset:
			// Credit-normal: the negative closing balance folds into the
			// asset bucket under the account's own name, reducing the
			// displayed total. Keeping the ledger sign is what lets the
			// accounting equation hold for balanced input.
			assets[account] = assets[account].Add(balance)
		case accounts.CategoryLiability:
			// Credit-normal accounts close with a negative ledger balance;
			// display the magnitude.
			liabilities[account] = liabilities[account].Add(balance.Abs())
		case accounts.CategoryEquity:
			equity[account] = equity[account].Add(balance.Abs())
		default:
			ignored[account] = struct{}{}
		}
	}

	if is != nil {
		equity[RetainedEarningsLine] = equity[RetainedEarningsLine].Add(is.NetIncome)
	}

	totalAssets := round2(sumValues(assets))
	totalLiabilities := round2(sumValues(liabilities))
	totalEquity := round2(sumValues(equity))

	return &BalanceSheet{
		AsOf:             asOf,
		Assets:           sortedLines(assets),
		Liabilities:      sortedLines(liabilities),
		Equity:           sortedLines(equity),
		TotalAssets:      totalAssets,
		TotalLiabilities: totalLiabilities,
		TotalEquity:      totalEquity,
		Balanced:         totalAssets.Equal(totalLiabilities.Add(totalEquity)),
		IgnoredAccounts:  sortedSet(ignored),
	}, nil
}
