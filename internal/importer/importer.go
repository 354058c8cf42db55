package importer

import (
	"io"
	"strings"

	"github.com/jawadberjawi/UnifiedAccountingProject/internal/model"
)

// Parser converts a bank CSV file into BankTransactions.
type Parser interface {
	Parse(r io.Reader) ([]model.BankTransaction, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// Formats returns the registered format names.
func (r *Registry) Formats() []string {
	out := make([]string, 0, len(r.parsers))
	for k := range r.parsers {
		out = append(out, k)
	}
	return out
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&GenericParser{})
	return r
}

// ToEntries converts bank transactions into pending journal entries against
// the given cash account: money in debits cash and credits the transaction
// description as the revenue-side account, money out does the reverse.
// Entries are pending so they can be reviewed and approved before they reach
// any report.
func ToEntries(txs []model.BankTransaction, cashAccount, createdBy string) []model.JournalEntry {
	entries := make([]model.JournalEntry, 0, len(txs))
	for _, tx := range txs {
		amount := tx.Amount.Abs()
		entry := model.JournalEntry{
			TransactionID: tx.Reference,
			Date:          tx.Date,
			CreatedBy:     createdBy,
			Status:        model.StatusPending,
		}
		if tx.Amount.IsNegative() {
			entry.Debit = model.Line{Account: tx.Description, Amount: amount}
			entry.Credit = model.Line{Account: cashAccount, Amount: amount}
		} else {
			entry.Debit = model.Line{Account: cashAccount, Amount: amount}
			entry.Credit = model.Line{Account: tx.Description, Amount: amount}
		}
		entries = append(entries, entry)
	}
	return entries
}
