package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jawadberjawi/UnifiedAccountingProject/internal/ledger"
	"github.com/jawadberjawi/UnifiedAccountingProject/internal/model"
	"github.com/jawadberjawi/UnifiedAccountingProject/internal/reports"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func sampleEntries() []model.JournalEntry {
	mk := func(id string, d time.Time, debit, credit, amount string) model.JournalEntry {
		return model.JournalEntry{
			TransactionID: id,
			Date:          d,
			CreatedBy:     "jawad",
			Status:        model.StatusApproved,
			Debit:         model.Line{Account: debit, Amount: dec(amount)},
			Credit:        model.Line{Account: credit, Amount: dec(amount)},
		}
	}
	return []model.JournalEntry{
		mk("2024-01-001", date(2024, 1, 10), "Cash", "Service Revenue", "1000.00"),
		mk("2024-01-002", date(2024, 1, 15), "Rent Expense", "Cash", "300.00"),
	}
}

func TestIncomeStatement(t *testing.T) {
	is, err := reports.Income(sampleEntries(), date(2024, 1, 1), date(2024, 1, 31), nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	IncomeStatement(&buf, is)
	out := buf.String()

	assert.Contains(t, out, "Income Statement")
	assert.Contains(t, out, "For the period: 2024-01-01 to 2024-01-31")
	assert.Contains(t, out, "service revenue")
	assert.Contains(t, out, "1000.00")
	assert.Contains(t, out, "rent expense")
	assert.Contains(t, out, "Net Income")
	assert.Contains(t, out, "700.00")
	assert.Contains(t, out, "ignored (not revenue/expense): cash")
}

func TestIncomeStatement_EmptySections(t *testing.T) {
	is, err := reports.Income(nil, date(2024, 1, 1), date(2024, 1, 31), nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	IncomeStatement(&buf, is)

	assert.Contains(t, buf.String(), "(none)")
	assert.NotContains(t, buf.String(), "Note:")
}

func TestBalanceSheet(t *testing.T) {
	entries := sampleEntries()
	is, err := reports.Income(entries, date(2024, 1, 1), date(2024, 1, 31), nil)
	require.NoError(t, err)
	bs, err := reports.Balance(entries, date(2024, 1, 31), is, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	BalanceSheet(&buf, bs)
	out := buf.String()

	assert.Contains(t, out, "BALANCE SHEET (As of 2024-01-31)")
	assert.Contains(t, out, "ASSETS")
	assert.Contains(t, out, "cash")
	assert.Contains(t, out, reports.RetainedEarningsLine)
	assert.Contains(t, out, "Total Liabilities + Equity")
	assert.Contains(t, out, "Balanced")
	assert.NotContains(t, out, "NOT BALANCED")
}

func TestTrialBalance_Unbalanced(t *testing.T) {
	entries := sampleEntries()
	entries[0].Credit.Amount = dec("999.00")

	var buf bytes.Buffer
	TrialBalance(&buf, reports.TrialBalance(entries))
	out := buf.String()

	assert.Contains(t, out, "Total Debit  : 1300.00")
	assert.Contains(t, out, "Total Credit : 1299.00")
	assert.Contains(t, out, "Not balanced. Difference: 1.00")
}

func TestGeneralLedger(t *testing.T) {
	led := ledger.Build(sampleEntries())

	var buf bytes.Buffer
	GeneralLedger(&buf, led)
	out := buf.String()

	assert.Contains(t, out, "General Ledger (All Accounts)")
	assert.Contains(t, out, "Account: cash")
	assert.Contains(t, out, "Account: service revenue")
	assert.Contains(t, out, "Date       | Debit        | Credit       | Balance")
	assert.Contains(t, out, "Totals")
}

func TestLedgerAccount_Missing(t *testing.T) {
	led := ledger.Build(nil)

	var buf bytes.Buffer
	LedgerAccount(&buf, led, "ghost")

	assert.Contains(t, buf.String(), "No entries for account: ghost")
}

func TestGeneralLedger_Empty(t *testing.T) {
	var buf bytes.Buffer
	GeneralLedger(&buf, ledger.Build(nil))

	assert.Contains(t, buf.String(), "General ledger is empty.")
}

func TestEntries(t *testing.T) {
	var buf bytes.Buffer
	Entries(&buf, sampleEntries())
	out := buf.String()

	assert.Contains(t, out, "Transaction ID : 2024-01-001")
	assert.Contains(t, out, "----- Debit Entry -----")
	assert.Contains(t, out, "----- Credit Entry -----")
	assert.Contains(t, out, "Created By     : jawad")
	assert.Equal(t, 2, strings.Count(out, "Status         : approved"))
}

func TestEntries_Empty(t *testing.T) {
	var buf bytes.Buffer
	Entries(&buf, nil)

	assert.Contains(t, buf.String(), "No entries available.")
}
