package market

import (
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/konnect-labs/konnect/chain/actors/aerrors"
	"github.com/konnect-labs/konnect/chain/actors/builtin"
	"github.com/konnect-labs/konnect/chain/actors/builtin/token"
	"github.com/konnect-labs/konnect/chain/actors/runtime"
	"github.com/konnect-labs/konnect/chain/types"
)

func loadRecord[T any](rt runtime.Runtime, k types.Key, what string, load func(*types.Account) (*T, error)) (*T, aerrors.ActorError) {
	acct, aerr := rt.GetAccount(k)
	if aerr != nil {
		return nil, aerrors.Wrapf(aerr, "loading %s %s", what, k)
	}
	rec, err := load(acct)
	if err != nil {
		return nil, aerrors.Absorb(err, exitcode.ErrSerialization, "decoding "+what+" "+k.String())
	}
	return rec, nil
}

func loadMarketplace(rt runtime.Runtime, k types.Key) (*Marketplace, aerrors.ActorError) {
	return loadRecord(rt, k, "marketplace", LoadMarketplace)
}

func loadMerchant(rt runtime.Runtime, k types.Key) (*Merchant, aerrors.ActorError) {
	return loadRecord(rt, k, "merchant", LoadMerchant)
}

func loadListing(rt runtime.Runtime, k types.Key) (*Listing, aerrors.ActorError) {
	return loadRecord(rt, k, "listing", LoadListing)
}

func loadEscrow(rt runtime.Runtime, k types.Key) (*Escrow, aerrors.ActorError) {
	return loadRecord(rt, k, "escrow", LoadEscrow)
}

// requireSigner checks that who signed the call and is the expected
// principal of a record.
func requireSigner(rt runtime.Runtime, who, expected types.Key) aerrors.ActorError {
	if who != expected {
		return aerrors.Newf(exitcode.ErrForbidden, "%s is not %s", who, expected)
	}
	if !rt.IsSigner(who) {
		return aerrors.Newf(exitcode.ErrForbidden, "%s did not sign", who)
	}
	return nil
}

// requireHolding loads a holding and checks it belongs to owner for asset.
func requireHolding(rt runtime.Runtime, k, owner, asset types.Key) (*token.Holding, aerrors.ActorError) {
	acct, aerr := rt.GetAccount(k)
	if aerr != nil {
		return nil, aerrors.Wrapf(aerr, "loading holding %s", k)
	}
	h, err := token.LoadHolding(acct)
	if err != nil {
		return nil, marketErrf(ErrInvalidAccount, "holding %s: %s", k, err)
	}
	if h.Owner != owner || h.Asset != asset {
		return nil, marketErrf(ErrInvalidAccount, "holding %s is owned by %s for asset %s", k, h.Owner, h.Asset)
	}
	return h, nil
}

// checkReference matches the declared reference against the first read-only
// key of the message.
func checkReference(rt runtime.Runtime, reference types.Key) aerrors.ActorError {
	remaining := rt.Remaining()
	if len(remaining) == 0 {
		return marketErr(ErrMissingReference)
	}
	if remaining[0] != reference {
		return marketErrf(ErrWrongReference, "%s != %s", remaining[0], reference)
	}
	return nil
}

// loadEscrowForSettlement loads an escrow and its marketplace and checks that
// signer may settle it: either the buyer or the marketplace authority.
func loadEscrowForSettlement(rt runtime.Runtime, escrowKey, marketplace, signer types.Key) (*Escrow, *Marketplace, aerrors.ActorError) {
	e, aerr := loadEscrow(rt, escrowKey)
	if aerr != nil {
		return nil, nil, aerr
	}
	if e.Marketplace != marketplace {
		return nil, nil, marketErrf(ErrWrongMarketplace, "escrow belongs to %s", e.Marketplace)
	}
	mp, aerr := loadMarketplace(rt, marketplace)
	if aerr != nil {
		return nil, nil, aerr
	}

	if signer != e.Buyer && signer != mp.Authority {
		return nil, nil, aerrors.Newf(exitcode.ErrForbidden, "%s is neither the buyer nor the marketplace authority", signer)
	}
	if !rt.IsSigner(signer) {
		return nil, nil, aerrors.Newf(exitcode.ErrForbidden, "%s did not sign", signer)
	}
	return e, mp, nil
}

// signerSeeds is the seed path, bump included, that lets the market act as
// the escrow key.
func (e *Escrow) signerSeeds() [][]byte {
	return append(escrowSeeds(e.Listing, e.Buyer), []byte{e.Bump})
}

func transfer(rt runtime.Runtime, from, to, authority types.Key, amount uint64, signerSeeds ...[][]byte) aerrors.ActorError {
	_, aerr := rt.Send(builtin.TokenProgramKey, builtin.MethodsToken.Transfer, &token.TransferParams{
		From:      from,
		To:        to,
		Authority: authority,
		Amount:    amount,
	}, signerSeeds...)
	if aerr != nil {
		return aerrors.Wrapf(aerr, "transferring %d from %s to %s", amount, from, to)
	}
	return nil
}

// openVault opens the holding of escrow for asset. Opening a holding is
// permissionless, so a vault someone opened ahead of the escrow is adopted
// when it is empty.
func openVault(rt runtime.Runtime, payer, escrow, asset, vault types.Key) aerrors.ActorError {
	acct, aerr := rt.GetAccount(vault)
	if aerr == nil {
		h, err := token.LoadHolding(acct)
		if err != nil {
			return marketErrf(ErrInvalidAccount, "vault %s: %s", vault, err)
		}
		if h.Owner != escrow || h.Asset != asset || h.Amount != 0 {
			return marketErrf(ErrInvalidAccount, "vault %s is not an empty holding of escrow %s", vault, escrow)
		}
		log.Infow("adopting pre-opened escrow vault", "escrow", escrow, "vault", vault)
		return nil
	}
	if aerrors.RetCode(aerr) != exitcode.ErrNotFound {
		return aerrors.Wrapf(aerr, "loading vault %s", vault)
	}

	if _, aerr := rt.Send(builtin.TokenProgramKey, builtin.MethodsToken.OpenHolding, &token.OpenHoldingParams{
		Payer: payer,
		Owner: escrow,
		Asset: asset,
	}); aerr != nil {
		return aerrors.Wrap(aerr, "opening escrow vault")
	}
	return nil
}

func closeVault(rt runtime.Runtime, vault, beneficiary types.Key, signerSeeds [][]byte) aerrors.ActorError {
	_, aerr := rt.Send(builtin.TokenProgramKey, builtin.MethodsToken.CloseHolding, &token.CloseHoldingParams{
		Holding:     vault,
		Destination: beneficiary,
	}, signerSeeds)
	if aerr != nil {
		return aerrors.Wrapf(aerr, "closing vault %s", vault)
	}
	return nil
}

func emit(rt runtime.Runtime, me MarketEvent) aerrors.ActorError {
	ev, err := ToEvent(me)
	if err != nil {
		return aerrors.Escalate(err, "encoding market event")
	}
	log.Debugw("market event", "type", me.EventType())
	return rt.EmitEvent(ev)
}
