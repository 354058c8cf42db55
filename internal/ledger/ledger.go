// Package ledger expands journal entries into per-account lines with
// chronological running balances (the general ledger).
package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jawadberjawi/UnifiedAccountingProject/internal/accounts"
	"github.com/jawadberjawi/UnifiedAccountingProject/internal/model"
)

// Line is one ledger row for a specific account. Debit and Credit are
// non-negative; exactly one of them is set. Delta is +Debit or -Credit, and
// Balance is the account's running balance after applying this line.
type Line struct {
	Date          time.Time
	TransactionID string
	Side          model.Side
	Debit         decimal.Decimal
	Credit        decimal.Decimal
	Delta         decimal.Decimal
	Balance       decimal.Decimal
}

// Ledger is the built general ledger: account name (normalized) → ordered
// lines. A Ledger is a value owned by whoever called Build; it is never
// mutated afterwards.
type Ledger struct {
	lines    map[string][]Line
	accounts []string
}

// Build expands entries into per-account lines, orders each account by
// (date, transaction ID), and computes running balances from zero. Entry
// status is not considered here; callers filter before building. Entries
// without a date order last within their account. Build is deterministic:
// the same entries always produce the same ledger.
func Build(entries []model.JournalEntry) *Ledger {
	l := &Ledger{lines: make(map[string][]Line)}

	for _, e := range entries {
		if e.Debit.Account != "" {
			l.add(e.Debit.Account, Line{
				Date:          e.Date,
				TransactionID: e.TransactionID,
				Side:          model.SideDebit,
				Debit:         e.Debit.Amount,
				Delta:         e.Debit.Amount,
			})
		}
		if e.Credit.Account != "" {
			l.add(e.Credit.Account, Line{
				Date:          e.Date,
				TransactionID: e.TransactionID,
				Side:          model.SideCredit,
				Credit:        e.Credit.Amount,
				Delta:         e.Credit.Amount.Neg(),
			})
		}
	}

	for account, lines := range l.lines {
		sort.SliceStable(lines, func(i, j int) bool {
			return lineLess(lines[i], lines[j])
		})

		running := decimal.Zero
		for i := range lines {
			running = running.Add(lines[i].Delta)
			lines[i].Balance = running
		}
		l.accounts = append(l.accounts, account)
	}
	sort.Strings(l.accounts)

	return l
}

// lineLess orders lines by date ascending with missing dates last, then by
// transaction ID ascending with missing IDs last.
func lineLess(a, b Line) bool {
	switch {
	case a.Date.IsZero() != b.Date.IsZero():
		return !a.Date.IsZero()
	case !a.Date.Equal(b.Date):
		return a.Date.Before(b.Date)
	case (a.TransactionID == "") != (b.TransactionID == ""):
		return a.TransactionID != ""
	default:
		return a.TransactionID < b.TransactionID
	}
}

func (l *Ledger) add(account string, line Line) {
	key := accounts.Normalize(account)
	l.lines[key] = append(l.lines[key], line)
}

// Accounts returns the normalized account names in alphabetical order.
func (l *Ledger) Accounts() []string {
	return l.accounts
}

// Lines returns the ordered lines for an account, or nil if the account has
// no activity. The name is normalized before lookup.
func (l *Ledger) Lines(account string) []Line {
	return l.lines[accounts.Normalize(account)]
}

// FinalBalance returns the closing running balance for an account, or exact
// zero for an account with no lines.
func (l *Ledger) FinalBalance(account string) decimal.Decimal {
	lines := l.lines[accounts.Normalize(account)]
	if len(lines) == 0 {
		return decimal.Zero
	}
	return lines[len(lines)-1].Balance
}
