package token

import (
	"github.com/konnect-labs/konnect/chain/types"
)

type CreateAssetParams struct {
	Authority types.Key
	Decimals  uint8
	Seed      []byte
}

type MintToParams struct {
	Asset   types.Key
	Holding types.Key
	Amount  uint64
}

// OpenHoldingParams opens the associated holding of Owner for Asset. Payer
// signs and funds the record.
type OpenHoldingParams struct {
	Payer types.Key
	Owner types.Key
	Asset types.Key
}

type TransferParams struct {
	From      types.Key
	To        types.Key
	Authority types.Key
	Amount    uint64
}

type CloseHoldingParams struct {
	Holding     types.Key
	Destination types.Key
}
