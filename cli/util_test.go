package cli

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	for _, tc := range []struct {
		amount   uint64
		decimals uint8
		out      string
	}{
		{0, 0, "0"},
		{1234567, 0, "1,234,567"},
		{1234567, 2, "12,345.67"},
		{1234500, 2, "12,345"},
		{5, 6, "0.000005"},
		{1_000_000, 6, "1"},
		{math.MaxUint64, 0, "18,446,744,073,709,551,615"},
		{1, 20, "0.00000000000000000001"},
	} {
		require.Equal(t, tc.out, formatAmount(tc.amount, tc.decimals), "%d/%d", tc.amount, tc.decimals)
	}
}
