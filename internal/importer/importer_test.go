package importer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jawadberjawi/UnifiedAccountingProject/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestGenericParser(t *testing.T) {
	in := "date,description,amount,reference\n" +
		"2024-01-05,Client payment,1500.00,INV-101\n" +
		"2024-01-08,Office rent,-900.00,ACH-202\n"

	txs, err := (&GenericParser{}).Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, "Client payment", txs[0].Description)
	assert.True(t, txs[0].Amount.Equal(dec("1500.00")))
	assert.Equal(t, "INV-101", txs[0].Reference)
	assert.True(t, txs[1].Amount.Equal(dec("-900.00")))
}

func TestGenericParser_HeaderOnly(t *testing.T) {
	txs, err := (&GenericParser{}).Parse(strings.NewReader("date,description,amount,reference\n"))
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestGenericParser_BadAmount(t *testing.T) {
	in := "date,description,amount,reference\n" +
		"2024-01-05,Client payment,lots,INV-101\n"

	_, err := (&GenericParser{}).Parse(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestToEntries(t *testing.T) {
	txs := []model.BankTransaction{
		{Description: "Client payment", Amount: dec("1500.00"), Reference: "INV-101"},
		{Description: "Office rent", Amount: dec("-900.00"), Reference: "ACH-202"},
	}

	entries := ToEntries(txs, "Business Checking", "import")
	require.Len(t, entries, 2)

	// Money in debits cash.
	in := entries[0]
	assert.Equal(t, model.StatusPending, in.Status)
	assert.Equal(t, "Business Checking", in.Debit.Account)
	assert.Equal(t, "Client payment", in.Credit.Account)
	assert.True(t, in.Amount().Equal(dec("1500.00")))

	// Money out credits cash.
	out := entries[1]
	assert.Equal(t, "Office rent", out.Debit.Account)
	assert.Equal(t, "Business Checking", out.Credit.Account)
	assert.True(t, out.Amount().Equal(dec("900.00")))
	assert.Equal(t, "import", out.CreatedBy)
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()

	assert.NotNil(t, r.Get("generic"))
	assert.NotNil(t, r.Get("GENERIC"), "format lookup is case-insensitive")
	assert.Nil(t, r.Get("chase"))
	assert.Equal(t, []string{"generic"}, r.Formats())

	assert.Panics(t, func() { r.Register(&GenericParser{}) }, "duplicate format")
}
