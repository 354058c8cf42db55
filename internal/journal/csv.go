package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jawadberjawi/UnifiedAccountingProject/internal/model"
)

// Header is the CSV header for journal.csv.
const Header = "transaction_id,date,created_by,status,debit_account,credit_account,amount"

const (
	numFields  = 7
	dateFormat = "2006-01-02"
	colTxnID   = 0
	colDate    = 1
	colCreator = 2
	colStatus  = 3
	colDebit   = 4
	colCredit  = 5
	colAmount  = 6
)

// ReadEntries reads all journal entries from a journal.csv reader.
func ReadEntries(r io.Reader) ([]model.JournalEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading journal CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var entries []model.JournalEntry
	for i, rec := range records[1:] {
		entry, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// WriteEntries writes entries to a journal.csv writer (including header).
func WriteEntries(w io.Writer, entries []model.JournalEntry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, entry := range entries {
		if err := cw.Write(MarshalEntry(entry)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// AppendEntries appends entries to an existing journal.csv writer (no header).
func AppendEntries(w io.Writer, entries []model.JournalEntry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, entry := range entries {
		if err := cw.Write(MarshalEntry(entry)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// MarshalEntry converts a JournalEntry to a CSV row ([]string).
func MarshalEntry(e model.JournalEntry) []string {
	row := make([]string, numFields)
	row[colTxnID] = e.TransactionID
	if e.HasDate() {
		row[colDate] = e.Date.Format(dateFormat)
	}
	row[colCreator] = e.CreatedBy
	row[colStatus] = string(e.Status)
	row[colDebit] = e.Debit.Account
	row[colCredit] = e.Credit.Account
	row[colAmount] = e.Amount().StringFixed(2)
	return row
}

// UnmarshalEntry converts a CSV row to a JournalEntry. The single amount
// column populates both sides, which keeps stored entries balanced by
// construction.
func UnmarshalEntry(record []string) (model.JournalEntry, error) {
	if len(record) != numFields {
		return model.JournalEntry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	var date time.Time
	if record[colDate] != "" {
		var err error
		date, err = time.Parse(dateFormat, record[colDate])
		if err != nil {
			return model.JournalEntry{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
		}
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.JournalEntry{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	return model.JournalEntry{
		TransactionID: record[colTxnID],
		Date:          date,
		CreatedBy:     record[colCreator],
		Status:        model.EntryStatus(record[colStatus]),
		Debit:         model.Line{Account: record[colDebit], Amount: amount},
		Credit:        model.Line{Account: record[colCredit], Amount: amount},
	}, nil
}
