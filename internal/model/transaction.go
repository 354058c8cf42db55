package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Side tags a transaction line as the debit or credit half of an entry.
type Side string

const (
	SideDebit  Side = "debit"
	SideCredit Side = "credit"
)

// Label returns the display heading for a line on the given side.
func (s Side) Label() string {
	if s == SideCredit {
		return "Credit"
	}
	return "Debit"
}

// Line is one side of a double entry: an account and a positive amount.
// An empty Account means the side is absent (not expected from the capture
// layer, but the engine tolerates it).
type Line struct {
	Account string
	Amount  decimal.Decimal
}

// BankTransaction represents a parsed bank CSV row, prior to conversion into
// a journal entry. Negative amounts are money out, positive money in.
type BankTransaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Reference   string
}
