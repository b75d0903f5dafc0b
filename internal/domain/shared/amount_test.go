package shared

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		input    string
		expected Amount
	}{
		{"0.0001", 1},
		{"0.0011", 11},
		{"4.0001", 40001},
		{"1", 10000},
		{"1.0", 10000},
		{"1.5", 15000},
		{"1.50", 15000},
		{"1.05", 10500},
		{".10", 1000},
		{"-1.5", -15000},
		// Digits beyond the fourth fractional place are truncated.
		{"0.00001", 0},
		{"0.00009", 0},
		{"2.00019", 20001},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseAmount(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestParseAmount_Malformed(t *testing.T) {
	for _, input := range []string{"", "abc", "1.2.3", "1,5"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseAmount(input)
			assert.Error(t, err)
		})
	}
}

func TestParseAmount_OutOfRange(t *testing.T) {
	_, err := ParseAmount("99999999999999999999999")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAmountRange)
}

func TestAmount_String(t *testing.T) {
	testCases := []struct {
		amount   Amount
		expected string
	}{
		{1, "0.0001"},
		{10, "0.0010"},
		{2000, "0.2000"},
		{22000, "2.2000"},
		{220000, "22.0000"},
		{-15000, "-1.5000"},
		{0, "0.0000"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.amount.String())
		})
	}
}

func TestAmount_CheckedAdd(t *testing.T) {
	t.Run("Plain", func(t *testing.T) {
		sum, ok := Amount(10000).CheckedAdd(Amount(5000))
		require.True(t, ok)
		assert.Equal(t, Amount(15000), sum)
	})

	t.Run("OverflowDetected", func(t *testing.T) {
		_, ok := Amount(math.MaxInt64).CheckedAdd(1)
		assert.False(t, ok)
	})

	t.Run("NegativeOverflowDetected", func(t *testing.T) {
		_, ok := Amount(math.MinInt64).CheckedAdd(-1)
		assert.False(t, ok)
	})
}

func TestAmount_CheckedSub(t *testing.T) {
	t.Run("Plain", func(t *testing.T) {
		diff, ok := Amount(10000).CheckedSub(Amount(15000))
		require.True(t, ok)
		assert.Equal(t, Amount(-5000), diff)
	})

	t.Run("UnderflowDetected", func(t *testing.T) {
		_, ok := Amount(math.MinInt64).CheckedSub(1)
		assert.False(t, ok)
	})

	t.Run("SubtractingNegativeOverflows", func(t *testing.T) {
		_, ok := Amount(math.MaxInt64).CheckedSub(-1)
		assert.False(t, ok)
	})
}

func TestAmount_RoundTrip(t *testing.T) {
	parsed, err := ParseAmount("220000000000.0001")
	require.NoError(t, err)
	assert.Equal(t, "220000000000.0001", parsed.String())
}
