package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jawadberjawi/UnifiedAccountingProject/internal/accounts"
	"github.com/jawadberjawi/UnifiedAccountingProject/internal/model"
)

// IncomeStatement is the derived revenue/expense statement for a period.
// Revenue and expense lines are sorted by account name; all exposed amounts
// are rounded to two decimal places. IgnoredAccounts lists accounts seen in
// the period that classify to neither revenue nor expense.
type IncomeStatement struct {
	From            time.Time
	To              time.Time
	Revenues        []AccountAmount
	Expenses        []AccountAmount
	TotalRevenue    decimal.Decimal
	TotalExpense    decimal.Decimal
	NetIncome       decimal.Decimal
	IgnoredAccounts []string
}

// Income builds an income statement over approved entries dated within
// [from, to], both bounds inclusive. An empty entry list is valid and yields
// zero totals; missing period dates are an error. clf may be nil, in which
// case the default income classifier is used.
func Income(entries []model.JournalEntry, from, to time.Time, clf *accounts.Classifier) (*IncomeStatement, error) {
	if from.IsZero() || to.IsZero() {
		return nil, ErrMissingPeriod
	}
	if clf == nil {
		clf = accounts.NewIncomeClassifier(nil)
	}

	revenues := make(map[string]decimal.Decimal)
	expenses := make(map[string]decimal.Decimal)
	ignored := make(map[string]struct{})

	for _, e := range entries {
		if !e.IsApproved() || !e.HasDate() {
			continue
		}
		if e.Date.Before(from) || e.Date.After(to) {
			continue
		}

		// Debit and credit sides accumulate independently; an entry can
		// touch a revenue account on one side and an expense on the other.
		if e.Debit.Account != "" {
			accumulate(clf, e.Debit.Account, e.Debit.Amount, true, revenues, expenses, ignored)
		}
		if e.Credit.Account != "" {
			accumulate(clf, e.Credit.Account, e.Credit.Amount, false, revenues, expenses, ignored)
		}
	}

	totalRevenue := sumValues(revenues)
	totalExpense := sumValues(expenses)

	return &IncomeStatement{
		From:            from,
		To:              to,
		Revenues:        sortedLines(revenues),
		Expenses:        sortedLines(expenses),
		TotalRevenue:    round2(totalRevenue),
		TotalExpense:    round2(totalExpense),
		NetIncome:       round2(totalRevenue.Sub(totalExpense)),
		IgnoredAccounts: sortedSet(ignored),
	}, nil
}

// accumulate classifies one transaction line and applies the sign convention
// for its category:
//
//	Revenue:       credit increases, debit decreases.
//	ContraRevenue: reduces net revenue on either side; the amount is
//	               subtracted from the account's line in the revenue bucket.
//	Expense:       debit increases, credit decreases.
//	Other:         no amount; recorded as ignored.
func accumulate(clf *accounts.Classifier, account string, amount decimal.Decimal, isDebit bool,
	revenues, expenses map[string]decimal.Decimal, ignored map[string]struct{}) {

	name := accounts.Normalize(account)

	switch clf.Classify(account) {
	case accounts.CategoryRevenue:
		signed := amount
		if isDebit {
			signed = amount.Neg()
		}
		revenues[name] = revenues[name].Add(signed)
	case accounts.CategoryContraRevenue:
		revenues[name] = revenues[name].Sub(amount)
	case accounts.CategoryExpense:
		signed := amount
		if !isDebit {
			signed = amount.Neg()
		}
		expenses[name] = expenses[name].Add(signed)
	default:
		ignored[name] = struct{}{}
	}
}
