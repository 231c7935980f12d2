package market

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitFee(t *testing.T) {
	cases := []struct {
		total  uint64
		bps    uint16
		seller uint64
		fee    uint64
	}{
		{3000, 250, 2925, 75},
		{5000, 250, 4875, 125},
		{7000, 250, 6825, 175},
		{1000, 0, 1000, 0},
		{1000, MaxFeeBps, 900, 100},
		{39, 250, 39, 0},  // truncated toward zero
		{399, 250, 390, 9}, // 9.975 -> 9
		{0, 500, 0, 0},
	}
	for _, c := range cases {
		seller, fee, err := SplitFee(c.total, c.bps)
		require.NoError(t, err)
		require.Equal(t, c.seller, seller, "total %d at %d bps", c.total, c.bps)
		require.Equal(t, c.fee, fee, "total %d at %d bps", c.total, c.bps)
		require.Equal(t, c.total, seller+fee)
	}

	_, _, err := SplitFee(math.MaxUint64/100, 250)
	require.ErrorIs(t, err, ErrOverflow)

	seller, fee, err := SplitFee(math.MaxUint64, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), seller)
	require.Zero(t, fee)
}

func TestCheckedMul(t *testing.T) {
	v, err := CheckedMul(1000, 3)
	require.NoError(t, err)
	require.Equal(t, uint64(3000), v)

	v, err = CheckedMul(math.MaxUint64, 1)
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), v)

	_, err = CheckedMul(math.MaxUint64, 2)
	require.ErrorIs(t, err, ErrOverflow)

	_, err = CheckedMul(1<<32, 1<<32)
	require.ErrorIs(t, err, ErrOverflow)
}

func TestCheckedSub(t *testing.T) {
	v, err := CheckedSub(10, 3)
	require.NoError(t, err)
	require.Equal(t, uint64(7), v)

	v, err = CheckedSub(3, 3)
	require.NoError(t, err)
	require.Zero(t, v)

	_, err = CheckedSub(3, 4)
	require.ErrorIs(t, err, ErrOverflow)

	_, err = CheckedSub(0, math.MaxUint64)
	require.ErrorIs(t, err, ErrOverflow)
}
