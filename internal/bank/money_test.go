package bank

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want Money
	}{
		{in: "250", want: 25000},
		{in: "1,234.50", want: 123450},
		{in: "$32,000", want: 3200000},
		{in: " 15420.5 ", want: 1542050},
		{in: ".75", want: 75},
		{in: "0", want: 0},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseAmountRejects(t *testing.T) {
	for _, in := range []string{"", "  ", "abc", "-5", "1.234", "12.", "$", "1e3",
		"+5", "1.+5", "1.-5", "200000000000000000", "92233720368547758.08", "99999999999999999999"} {
		_, err := ParseAmount(in)
		require.ErrorIs(t, err, ErrInvalidAmount, in)
	}
}

func TestParseAmountLargest(t *testing.T) {
	got, err := ParseAmount("92,233,720,368,547,758.07")
	require.NoError(t, err)
	require.Equal(t, Money(math.MaxInt64), got)
}

func TestMoneyFormatting(t *testing.T) {
	require.Equal(t, "$15,420.50", Money(1542050).String())
	require.Equal(t, "$250.00", Money(-25000).String())
	require.Equal(t, "-$250.00", Money(-25000).Signed())
	require.Equal(t, "$1,000,000", Dollars(1000000).Whole())
	require.Equal(t, "$0.05", Money(5).Whole())
}

func TestFromPrizeLabel(t *testing.T) {
	got, err := FromPrizeLabel("$1,000,000")
	require.NoError(t, err)
	require.Equal(t, Dollars(1000000), got)
}
