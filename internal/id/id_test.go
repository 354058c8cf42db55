package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "2024-01-001", Format(2024, 1, 1))
	assert.Equal(t, "2024-12-099", Format(2024, 12, 99))
	assert.Equal(t, "2025-03-100", Format(2025, 3, 100))
}

func TestParse(t *testing.T) {
	year, month, seq, err := Parse("2024-01-007")
	require.NoError(t, err)
	assert.Equal(t, 2024, year)
	assert.Equal(t, 1, month)
	assert.Equal(t, 7, seq)
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "2024", "2024-01", "abcd-01-001", "2024-xx-001", "2024-01-xxx"} {
		_, _, _, err := Parse(in)
		assert.Error(t, err, "Parse(%q)", in)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	year, month, seq, err := Parse(Format(2024, 7, 42))
	require.NoError(t, err)
	assert.Equal(t, 2024, year)
	assert.Equal(t, 7, month)
	assert.Equal(t, 42, seq)
}
