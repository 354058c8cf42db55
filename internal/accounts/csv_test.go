package accounts

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadChart(t *testing.T) {
	in := "account_name,category\n" +
		"Cash,asset\n" +
		"Accounts  Payable,liability\n" +
		"Service Revenue,revenue\n"

	chart, err := ReadChart(strings.NewReader(in))
	require.NoError(t, err)
	assert.Len(t, chart, 3)
	assert.Equal(t, CategoryAsset, chart["cash"])
	assert.Equal(t, CategoryLiability, chart["accounts payable"])
	assert.Equal(t, CategoryRevenue, chart["service revenue"])
}

func TestReadChart_UnknownCategory(t *testing.T) {
	in := "account_name,category\nCash,treasure\n"

	_, err := ReadChart(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestReadChart_BlankName(t *testing.T) {
	in := "account_name,category\n  ,asset\n"

	_, err := ReadChart(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blank account name")
}

func TestWriteChartRoundTrip(t *testing.T) {
	chart := map[string]Category{
		"cash":             CategoryAsset,
		"accounts payable": CategoryLiability,
		"owner's equity":   CategoryEquity,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteChart(&buf, chart))

	got, err := ReadChart(&buf)
	require.NoError(t, err)
	assert.Equal(t, chart, got)
}
