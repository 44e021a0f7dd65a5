package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"123.45", "123.45"},
		{"-123.45", "-123.45"},
		{"$1,234.56", "1234.56"},
		{"£54.20", "54.2"},
		{"€ 99", "99"},
		{"(45.00)", "-45"},
		{"(£45.00)", "-45"},
		{"54.20 CR", "54.2"},
		{"54.20 DR", "-54.2"},
		{"54.20DR", "-54.2"},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.raw)
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got.String(), tt.raw)
	}
}

func TestParseAmountErrors(t *testing.T) {
	for _, raw := range []string{"", "  ", "twelve", "12.3.4", "N/A"} {
		_, err := ParseAmount(raw)
		assert.Error(t, err, "%q", raw)
	}
}

func TestCombinePair(t *testing.T) {
	tests := []struct {
		debit, credit string
		want          string
	}{
		{"120.00", "", "-120"},
		{"", "3100.00", "3100"},
		{"-120.00", "", "-120"}, // already-signed debit stays negative
		{"", "", "0"},
		{"10.00", "25.00", "15"}, // both populated: net
	}
	for _, tt := range tests {
		got, err := CombinePair(tt.debit, tt.credit)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.String(), "%q/%q", tt.debit, tt.credit)
	}
}

func TestCombinePairBadCell(t *testing.T) {
	_, err := CombinePair("oops", "")
	assert.Error(t, err)
}

func TestLooksNumeric(t *testing.T) {
	assert.True(t, LooksNumeric("£1,234.56 CR"))
	assert.False(t, LooksNumeric("TESCO STORES"))
}
