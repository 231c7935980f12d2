package market

import (
	"github.com/filecoin-project/go-state-types/big"
	"golang.org/x/xerrors"
)

const (
	// MaxFeeBps caps the marketplace fee at 10%.
	MaxFeeBps = 1000

	BpsDenominator = 10_000
)

var ErrOverflow = xerrors.New("amount overflows uint64")

func checkedUint64(v big.Int) (uint64, error) {
	if v.Sign() < 0 || !v.IsUint64() {
		return 0, ErrOverflow
	}
	return v.Uint64(), nil
}

// CheckedMul returns a*b, failing if the product does not fit in a uint64.
func CheckedMul(a, b uint64) (uint64, error) {
	return checkedUint64(big.Mul(big.NewIntUnsigned(a), big.NewIntUnsigned(b)))
}

// CheckedSub returns a-b, failing if b is larger than a.
func CheckedSub(a, b uint64) (uint64, error) {
	return checkedUint64(big.Sub(big.NewIntUnsigned(a), big.NewIntUnsigned(b)))
}

// SplitFee splits total into the seller amount and the marketplace fee.
// The fee is truncated toward zero, so seller+fee == total. The intermediate
// total*feeBps must fit in a uint64.
func SplitFee(total uint64, feeBps uint16) (seller uint64, fee uint64, err error) {
	scaled, err := CheckedMul(total, uint64(feeBps))
	if err != nil {
		return 0, 0, err
	}
	fee = scaled / BpsDenominator
	if fee > total {
		return 0, 0, ErrOverflow
	}
	return total - fee, fee, nil
}
