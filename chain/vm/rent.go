package vm

import (
	"github.com/filecoin-project/go-state-types/big"
	"golang.org/x/xerrors"
)

// MaxAccountDataSize bounds the data a single record may allocate.
const MaxAccountDataSize = 10 << 20

// RentPolicy prices storage. A record is rent exempt when its native balance
// covers ExemptionYears of rent for its data plus the fixed account overhead.
type RentPolicy struct {
	LamportsPerByteYear uint64
	ExemptionYears      uint64
	AccountOverhead     uint64
}

func DefaultRentPolicy() RentPolicy {
	return RentPolicy{
		LamportsPerByteYear: 3480,
		ExemptionYears:      2,
		AccountOverhead:     128,
	}
}

// MinimumBalance returns the rent-exempt balance of a record holding space
// bytes of data.
func (p RentPolicy) MinimumBalance(space uint64) (uint64, error) {
	if space > MaxAccountDataSize {
		return 0, xerrors.Errorf("data size %d exceeds maximum %d", space, MaxAccountDataSize)
	}

	v := big.Mul(
		big.Mul(big.NewIntUnsigned(p.AccountOverhead+space), big.NewIntUnsigned(p.LamportsPerByteYear)),
		big.NewIntUnsigned(p.ExemptionYears),
	)
	if !v.IsUint64() {
		return 0, xerrors.Errorf("rent for %d bytes overflows", space)
	}
	return v.Uint64(), nil
}
