package token

import (
	"encoding/binary"

	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/xerrors"

	"github.com/konnect-labs/konnect/chain/actors/builtin"
	"github.com/konnect-labs/konnect/chain/types"
)

var log = logging.Logger("token")

const (
	// AssetSize is the record size of an asset: authority, supply, decimals, bump.
	AssetSize = 32 + 8 + 1 + 1
	// HoldingSize is the record size of a holding: asset, owner, amount, bump.
	HoldingSize = 32 + 32 + 8 + 1
)

var (
	ErrNotTokenRecord = xerrors.New("account is not owned by the token program")
	ErrBadRecordSize  = xerrors.New("unexpected record size")
)

// Asset is a fungible asset. Only Authority may mint it.
type Asset struct {
	Authority types.Key
	Supply    uint64
	Decimals  uint8
	Bump      uint8
}

// Holding is an account that holds an amount of one asset on behalf of Owner.
type Holding struct {
	Asset  types.Key
	Owner  types.Key
	Amount uint64
	Bump   uint8
}

func (a *Asset) Bytes() []byte {
	out := make([]byte, AssetSize)
	copy(out[0:32], a.Authority[:])
	binary.LittleEndian.PutUint64(out[32:40], a.Supply)
	out[40] = a.Decimals
	out[41] = a.Bump
	return out
}

func (h *Holding) Bytes() []byte {
	out := make([]byte, HoldingSize)
	copy(out[0:32], h.Asset[:])
	copy(out[32:64], h.Owner[:])
	binary.LittleEndian.PutUint64(out[64:72], h.Amount)
	out[72] = h.Bump
	return out
}

// LoadAsset decodes an asset record, checking it is owned by the token
// program.
func LoadAsset(acct *types.Account) (*Asset, error) {
	if acct.Owner != builtin.TokenProgramKey {
		return nil, ErrNotTokenRecord
	}
	if len(acct.Data) != AssetSize {
		return nil, xerrors.Errorf("asset: %w (%d)", ErrBadRecordSize, len(acct.Data))
	}

	d := acct.Data
	var a Asset
	copy(a.Authority[:], d[0:32])
	a.Supply = binary.LittleEndian.Uint64(d[32:40])
	a.Decimals = d[40]
	a.Bump = d[41]
	return &a, nil
}

// LoadHolding decodes a holding record, checking it is owned by the token
// program.
func LoadHolding(acct *types.Account) (*Holding, error) {
	if acct.Owner != builtin.TokenProgramKey {
		return nil, ErrNotTokenRecord
	}
	if len(acct.Data) != HoldingSize {
		return nil, xerrors.Errorf("holding: %w (%d)", ErrBadRecordSize, len(acct.Data))
	}

	d := acct.Data
	var h Holding
	copy(h.Asset[:], d[0:32])
	copy(h.Owner[:], d[32:64])
	h.Amount = binary.LittleEndian.Uint64(d[64:72])
	h.Bump = d[72]
	return &h, nil
}

func assetSeeds(authority types.Key, seed []byte) [][]byte {
	return [][]byte{[]byte("asset"), authority[:], seed}
}

func holdingSeeds(owner, asset types.Key) [][]byte {
	return [][]byte{owner[:], builtin.TokenProgramKey[:], asset[:]}
}

// AssetKey returns the key of the asset created by authority with seed.
func AssetKey(authority types.Key, seed []byte) (types.Key, error) {
	k, _, err := types.FindDerivedKey(builtin.TokenProgramKey, assetSeeds(authority, seed)...)
	return k, err
}

// AssociatedHolding returns the canonical holding key of owner for asset.
func AssociatedHolding(owner, asset types.Key) types.Key {
	k, _ := types.MustFindDerivedKey(builtin.TokenProgramKey, holdingSeeds(owner, asset)...)
	return k
}
