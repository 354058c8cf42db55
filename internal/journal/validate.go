package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jawadberjawi/UnifiedAccountingProject/internal/model"
)

// ValidationError describes a single invariant violation on an entry.
type ValidationError struct {
	Invariant     int
	TransactionID string
	Description   string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.TransactionID, e.Description)
}

// ValidateEntry enforces the capture invariants on one entry:
//
//	1: debit and credit account names are non-blank
//	2: the creator name is non-blank
//	3: the amount is strictly positive with at most 2 decimal places
//	4: the date is present and not after now
//	5: the status is approved, pending, or rejected
//
// Reporting code assumes entries have passed these checks; it never
// re-validates.
func ValidateEntry(e model.JournalEntry, now time.Time) []ValidationError {
	var errs []ValidationError

	fail := func(invariant int, description string) {
		errs = append(errs, ValidationError{
			Invariant:     invariant,
			TransactionID: e.TransactionID,
			Description:   description,
		})
	}

	if isBlank(e.Debit.Account) {
		fail(1, "debit account name is blank")
	}
	if isBlank(e.Credit.Account) {
		fail(1, "credit account name is blank")
	}

	if isBlank(e.CreatedBy) {
		fail(2, "creator name is blank")
	}

	amount := e.Amount()
	if !amount.IsPositive() {
		fail(3, fmt.Sprintf("amount %s is not positive", amount))
	}
	cents := amount.Mul(decimal.NewFromInt(100))
	if !cents.Equal(cents.Floor()) {
		fail(3, fmt.Sprintf("amount %s has more than 2 decimal places", amount))
	}

	switch {
	case !e.HasDate():
		fail(4, "date is missing")
	case e.Date.After(now):
		fail(4, fmt.Sprintf("date %s is in the future", e.Date.Format(dateFormat)))
	}

	if !model.ValidStatus(string(e.Status)) {
		fail(5, fmt.Sprintf("unknown status %q", e.Status))
	}

	return errs
}

// ValidateEntries validates a batch and collects all violations.
func ValidateEntries(entries []model.JournalEntry, now time.Time) []ValidationError {
	var errs []ValidationError
	for _, e := range entries {
		errs = append(errs, ValidateEntry(e, now)...)
	}
	return errs
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
