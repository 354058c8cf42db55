package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus represents the lifecycle state of a journal entry.
type EntryStatus string

const (
	StatusApproved EntryStatus = "approved"
	StatusPending  EntryStatus = "pending"
	StatusRejected EntryStatus = "rejected"
)

// NormalizeStatus folds case and surrounding whitespace so user input like
// "Approved " matches StatusApproved.
func NormalizeStatus(s string) EntryStatus {
	return EntryStatus(strings.ToLower(strings.TrimSpace(s)))
}

// ValidStatus reports whether s is one of the three known statuses.
func ValidStatus(s string) bool {
	switch NormalizeStatus(s) {
	case StatusApproved, StatusPending, StatusRejected:
		return true
	}
	return false
}

// JournalEntry is one full double entry: a debit line and a credit line of
// equal amount. Entries are constructed by the capture layer and treated as
// immutable by the reporting engine.
type JournalEntry struct {
	TransactionID string
	Date          time.Time // zero value = no date recorded
	CreatedBy     string
	Status        EntryStatus
	Debit         Line
	Credit        Line
}

// Amount returns the entry amount. Debit and credit amounts are equal by
// construction, so the debit side is authoritative.
func (e JournalEntry) Amount() decimal.Decimal {
	return e.Debit.Amount
}

// IsApproved reports whether the entry status normalizes to approved.
func (e JournalEntry) IsApproved() bool {
	return NormalizeStatus(string(e.Status)) == StatusApproved
}

// HasDate reports whether the entry carries a date.
func (e JournalEntry) HasDate() bool {
	return !e.Date.IsZero()
}
