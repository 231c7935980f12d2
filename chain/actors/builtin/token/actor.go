package token

import (
	"math"

	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/konnect-labs/konnect/chain/actors/aerrors"
	"github.com/konnect-labs/konnect/chain/actors/runtime"
	"github.com/konnect-labs/konnect/chain/types"
)

// Actor is the transfer service: it keeps asset balances in holding records
// and moves them on the authority of the holding owner.
type Actor struct{}

func (a Actor) Exports() []interface{} {
	return []interface{}{
		1: a.CreateAsset,
		2: a.MintTo,
		3: a.OpenHolding,
		4: a.Transfer,
		5: a.CloseHolding,
	}
}

func loadAsset(rt runtime.Runtime, k types.Key) (*Asset, aerrors.ActorError) {
	acct, aerr := rt.GetAccount(k)
	if aerr != nil {
		return nil, aerrors.Wrapf(aerr, "loading asset %s", k)
	}
	asset, err := LoadAsset(acct)
	if err != nil {
		return nil, aerrors.Absorb(err, exitcode.ErrIllegalArgument, "decoding asset "+k.String())
	}
	return asset, nil
}

func loadHolding(rt runtime.Runtime, k types.Key) (*Holding, aerrors.ActorError) {
	acct, aerr := rt.GetAccount(k)
	if aerr != nil {
		return nil, aerrors.Wrapf(aerr, "loading holding %s", k)
	}
	h, err := LoadHolding(acct)
	if err != nil {
		return nil, aerrors.Absorb(err, exitcode.ErrIllegalArgument, "decoding holding "+k.String())
	}
	return h, nil
}

func (a Actor) CreateAsset(rt runtime.Runtime, params *CreateAssetParams) ([]byte, aerrors.ActorError) {
	k, bump, aerr := rt.CreateAccount(rt.Caller(), AssetSize, assetSeeds(params.Authority, params.Seed)...)
	if aerr != nil {
		return nil, aerrors.Wrap(aerr, "creating asset record")
	}

	asset := &Asset{
		Authority: params.Authority,
		Decimals:  params.Decimals,
		Bump:      bump,
	}
	if aerr := rt.WriteData(k, asset.Bytes()); aerr != nil {
		return nil, aerr
	}

	log.Debugw("asset created", "asset", k, "authority", params.Authority)
	return k.Bytes(), nil
}

func (a Actor) MintTo(rt runtime.Runtime, params *MintToParams) ([]byte, aerrors.ActorError) {
	asset, aerr := loadAsset(rt, params.Asset)
	if aerr != nil {
		return nil, aerr
	}
	if !rt.IsSigner(asset.Authority) {
		return nil, aerrors.Newf(exitcode.ErrForbidden, "mint authority %s did not sign", asset.Authority)
	}

	h, aerr := loadHolding(rt, params.Holding)
	if aerr != nil {
		return nil, aerr
	}
	if h.Asset != params.Asset {
		return nil, aerrors.Newf(exitcode.ErrIllegalArgument, "holding %s is for asset %s, not %s", params.Holding, h.Asset, params.Asset)
	}

	if asset.Supply > math.MaxUint64-params.Amount || h.Amount > math.MaxUint64-params.Amount {
		return nil, aerrors.New(exitcode.ErrIllegalArgument, "mint overflows supply")
	}
	asset.Supply += params.Amount
	h.Amount += params.Amount

	if aerr := rt.WriteData(params.Asset, asset.Bytes()); aerr != nil {
		return nil, aerr
	}
	if aerr := rt.WriteData(params.Holding, h.Bytes()); aerr != nil {
		return nil, aerr
	}
	return nil, nil
}

func (a Actor) OpenHolding(rt runtime.Runtime, params *OpenHoldingParams) ([]byte, aerrors.ActorError) {
	if _, aerr := loadAsset(rt, params.Asset); aerr != nil {
		return nil, aerr
	}

	k, bump, aerr := rt.CreateAccount(params.Payer, HoldingSize, holdingSeeds(params.Owner, params.Asset)...)
	if aerr != nil {
		return nil, aerrors.Wrap(aerr, "creating holding record")
	}

	h := &Holding{
		Asset: params.Asset,
		Owner: params.Owner,
		Bump:  bump,
	}
	if aerr := rt.WriteData(k, h.Bytes()); aerr != nil {
		return nil, aerr
	}
	return k.Bytes(), nil
}

func (a Actor) Transfer(rt runtime.Runtime, params *TransferParams) ([]byte, aerrors.ActorError) {
	if !rt.IsSigner(params.Authority) {
		return nil, aerrors.Newf(exitcode.ErrForbidden, "transfer authority %s did not sign", params.Authority)
	}

	from, aerr := loadHolding(rt, params.From)
	if aerr != nil {
		return nil, aerr
	}
	if from.Owner != params.Authority {
		return nil, aerrors.Newf(exitcode.ErrForbidden, "%s is not the owner of holding %s", params.Authority, params.From)
	}

	to, aerr := loadHolding(rt, params.To)
	if aerr != nil {
		return nil, aerr
	}
	if from.Asset != to.Asset {
		return nil, aerrors.Newf(exitcode.ErrIllegalArgument, "asset mismatch: %s != %s", from.Asset, to.Asset)
	}

	if from.Amount < params.Amount {
		return nil, aerrors.Newf(exitcode.ErrInsufficientFunds, "holding %s has %d, needs %d", params.From, from.Amount, params.Amount)
	}

	if params.From == params.To {
		return nil, nil
	}

	if to.Amount > math.MaxUint64-params.Amount {
		return nil, aerrors.New(exitcode.ErrIllegalArgument, "transfer overflows destination")
	}
	from.Amount -= params.Amount
	to.Amount += params.Amount

	if aerr := rt.WriteData(params.From, from.Bytes()); aerr != nil {
		return nil, aerr
	}
	if aerr := rt.WriteData(params.To, to.Bytes()); aerr != nil {
		return nil, aerr
	}
	return nil, nil
}

func (a Actor) CloseHolding(rt runtime.Runtime, params *CloseHoldingParams) ([]byte, aerrors.ActorError) {
	h, aerr := loadHolding(rt, params.Holding)
	if aerr != nil {
		return nil, aerr
	}
	if !rt.IsSigner(h.Owner) {
		return nil, aerrors.Newf(exitcode.ErrForbidden, "holding owner %s did not sign", h.Owner)
	}
	if h.Amount != 0 {
		return nil, aerrors.Newf(exitcode.ErrIllegalState, "holding %s still has %d", params.Holding, h.Amount)
	}

	if aerr := rt.CloseAccount(params.Holding, params.Destination); aerr != nil {
		return nil, aerr
	}
	return nil, nil
}
