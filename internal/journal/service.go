package journal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jawadberjawi/UnifiedAccountingProject/internal/id"
	"github.com/jawadberjawi/UnifiedAccountingProject/internal/model"
)

// Service holds the working set of journal entries for one run and provides
// capture, filtering, and file round-tripping. Reports consume Entries()
// directly; the Service never mutates entries after they are added.
type Service struct {
	path    string
	entries []model.JournalEntry
	now     func() time.Time
}

// NewService creates a journal Service backed by the given journal.csv path.
// The path may name a file that does not exist yet.
func NewService(path string) *Service {
	return &Service{path: path, now: time.Now}
}

// Load reads the journal file into memory. A missing file is an empty
// journal, not an error.
func (s *Service) Load() error {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.entries = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("opening journal %s: %w", s.path, err)
	}
	defer f.Close()

	entries, err := ReadEntries(f)
	if err != nil {
		return fmt.Errorf("reading journal %s: %w", s.path, err)
	}
	s.entries = entries
	return nil
}

// Entries returns the in-memory entries in insertion order.
func (s *Service) Entries() []model.JournalEntry {
	return s.entries
}

// AddParams holds parameters for capturing a new journal entry.
type AddParams struct {
	Date          time.Time
	CreatedBy     string
	Status        model.EntryStatus
	DebitAccount  string
	CreditAccount string
	Amount        decimal.Decimal
}

// Add validates and captures a new entry, assigning the next sequential
// transaction ID for the entry's month, and appends it to the journal file.
// Returns the transaction ID.
func (s *Service) Add(params AddParams) (string, error) {
	entry := model.JournalEntry{
		TransactionID: id.Format(params.Date.Year(), int(params.Date.Month()), s.nextSeq(params.Date)),
		Date:          params.Date,
		CreatedBy:     params.CreatedBy,
		Status:        model.NormalizeStatus(string(params.Status)),
		Debit:         model.Line{Account: params.DebitAccount, Amount: params.Amount},
		Credit:        model.Line{Account: params.CreditAccount, Amount: params.Amount},
	}

	if verrs := ValidateEntry(entry, s.now()); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return "", fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}

	if err := s.append(entry); err != nil {
		return "", err
	}
	s.entries = append(s.entries, entry)
	return entry.TransactionID, nil
}

// Filter returns entries matching all supplied criteria. Zero values (empty
// status/creator, nil minAmount) mean "no constraint". Status and creator
// match case-insensitively.
func (s *Service) Filter(status, createdBy string, minAmount *decimal.Decimal) []model.JournalEntry {
	var out []model.JournalEntry
	for _, e := range s.entries {
		if status != "" && model.NormalizeStatus(string(e.Status)) != model.NormalizeStatus(status) {
			continue
		}
		if createdBy != "" && !strings.EqualFold(e.CreatedBy, createdBy) {
			continue
		}
		if minAmount != nil && e.Amount().LessThan(*minAmount) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// nextSeq returns the next sequence number among entries in date's month.
func (s *Service) nextSeq(date time.Time) int {
	maxSeq := 0
	for _, e := range s.entries {
		year, month, seq, err := id.Parse(e.TransactionID)
		if err != nil {
			continue
		}
		if year == date.Year() && month == int(date.Month()) && seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq + 1
}

func (s *Service) append(entry model.JournalEntry) error {
	isNew := false
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendEntries(f, []model.JournalEntry{entry}); err != nil {
		return fmt.Errorf("appending entry: %w", err)
	}
	return nil
}
