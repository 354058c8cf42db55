package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jawadberjawi/UnifiedAccountingProject/internal/model"
)

func TestTrialBalance(t *testing.T) {
	entries := []model.JournalEntry{
		approved("a", date(2024, 1, 5), "Cash", "Service Revenue", "100.00"),
		approved("b", date(2024, 1, 6), "Rent Expense", "Cash", "40.00"),
		entry("c", date(2024, 1, 7), model.StatusPending, "Cash", "Service Revenue", "999.00"),
	}

	tb := TrialBalance(entries)

	assert.True(t, tb.TotalDebit.Equal(dec("140.00")), "got %s", tb.TotalDebit)
	assert.True(t, tb.TotalCredit.Equal(dec("140.00")), "got %s", tb.TotalCredit)
	assert.True(t, tb.Balanced)
	assert.True(t, tb.Difference.IsZero())
}

func TestTrialBalance_Empty(t *testing.T) {
	tb := TrialBalance(nil)

	assert.True(t, tb.TotalDebit.IsZero())
	assert.True(t, tb.TotalCredit.IsZero())
	assert.True(t, tb.Balanced)
}

func TestTrialBalance_Unbalanced(t *testing.T) {
	e := approved("a", date(2024, 1, 5), "Cash", "Service Revenue", "100.00")
	e.Credit.Amount = dec("90.00")

	tb := TrialBalance([]model.JournalEntry{e})

	assert.False(t, tb.Balanced)
	assert.True(t, tb.Difference.Equal(dec("10.00")), "got %s", tb.Difference)
}
