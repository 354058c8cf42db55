package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jawadberjawi/UnifiedAccountingProject/internal/model"
)

// GenericParser parses a plain bank CSV export with a
// date,description,amount,reference header row. Amounts are negative for
// money out.
type GenericParser struct{}

const (
	genericDateFormat = "2006-01-02"
	genericNumFields  = 4
	genericColDate    = 0
	genericColDesc    = 1
	genericColAmount  = 2
	genericColRef     = 3
)

// Format returns the parser name.
func (p *GenericParser) Format() string { return "generic" }

// Parse reads a generic bank CSV and returns BankTransactions.
func (p *GenericParser) Parse(r io.Reader) ([]model.BankTransaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = genericNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading bank CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var txs []model.BankTransaction
	for i, rec := range records[1:] {
		date, err := time.Parse(genericDateFormat, rec[genericColDate])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing date %q: %w", i+2, rec[genericColDate], err)
		}

		amount, err := decimal.NewFromString(rec[genericColAmount])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing amount %q: %w", i+2, rec[genericColAmount], err)
		}

		txs = append(txs, model.BankTransaction{
			Date:        date,
			Description: rec[genericColDesc],
			Amount:      amount,
			Reference:   rec[genericColRef],
		})
	}
	return txs, nil
}
