package journal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jawadberjawi/UnifiedAccountingProject/internal/model"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc := NewService(filepath.Join(t.TempDir(), "journal.csv"))
	svc.now = func() time.Time { return date(2024, 6, 1) }
	return svc
}

func TestAdd_AssignsSequentialIDs(t *testing.T) {
	svc := newTestService(t)

	txnID, err := svc.Add(AddParams{
		Date:          date(2024, 1, 10),
		CreatedBy:     "jawad",
		Status:        model.StatusApproved,
		DebitAccount:  "Cash",
		CreditAccount: "Service Revenue",
		Amount:        dec("1000.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-001", txnID)

	txnID, err = svc.Add(AddParams{
		Date:          date(2024, 1, 15),
		CreatedBy:     "jawad",
		Status:        model.StatusApproved,
		DebitAccount:  "Rent Expense",
		CreditAccount: "Cash",
		Amount:        dec("300.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-002", txnID)

	// A different month restarts the sequence.
	txnID, err = svc.Add(AddParams{
		Date:          date(2024, 2, 1),
		CreatedBy:     "jawad",
		Status:        model.StatusPending,
		DebitAccount:  "Supplies Expense",
		CreditAccount: "Cash",
		Amount:        dec("25.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-02-001", txnID)
}

func TestAdd_PersistsAndReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.csv")
	svc := NewService(path)
	svc.now = func() time.Time { return date(2024, 6, 1) }

	_, err := svc.Add(AddParams{
		Date:          date(2024, 1, 10),
		CreatedBy:     "jawad",
		Status:        model.StatusApproved,
		DebitAccount:  "Cash",
		CreditAccount: "Service Revenue",
		Amount:        dec("10.00"),
	})
	require.NoError(t, err)

	_, err = os.Stat(path)
	require.NoError(t, err)

	reloaded := NewService(path)
	require.NoError(t, reloaded.Load())
	require.Len(t, reloaded.Entries(), 1)
	assert.Equal(t, "2024-01-001", reloaded.Entries()[0].TransactionID)
}

func TestAdd_ValidationFailure(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Add(AddParams{
		Date:          date(2024, 1, 10),
		CreatedBy:     "",
		Status:        model.StatusApproved,
		DebitAccount:  "Cash",
		CreditAccount: "Service Revenue",
		Amount:        dec("10.00"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	// Nothing captured.
	assert.Empty(t, svc.Entries())
	require.NoError(t, svc.Load())
	assert.Empty(t, svc.Entries())
}

func TestLoad_MissingFile(t *testing.T) {
	svc := NewService(filepath.Join(t.TempDir(), "nope.csv"))
	require.NoError(t, svc.Load())
	assert.Empty(t, svc.Entries())
}

func TestFilter(t *testing.T) {
	svc := newTestService(t)

	add := func(createdBy string, status model.EntryStatus, amount string) {
		t.Helper()
		_, err := svc.Add(AddParams{
			Date:          date(2024, 1, 10),
			CreatedBy:     createdBy,
			Status:        status,
			DebitAccount:  "Cash",
			CreditAccount: "Service Revenue",
			Amount:        dec(amount),
		})
		require.NoError(t, err)
	}

	add("jawad", model.StatusApproved, "100.00")
	add("maya", model.StatusPending, "50.00")
	add("jawad", model.StatusRejected, "200.00")

	assert.Len(t, svc.Filter("approved", "", nil), 1)
	assert.Len(t, svc.Filter("Approved", "", nil), 1, "status matching is case-insensitive")
	assert.Len(t, svc.Filter("", "JAWAD", nil), 2, "creator matching is case-insensitive")

	min := decimal.RequireFromString("100.00")
	assert.Len(t, svc.Filter("", "", &min), 2)
	assert.Len(t, svc.Filter("rejected", "jawad", &min), 1)
	assert.Len(t, svc.Filter("", "", nil), 3, "no criteria returns everything")
}
