package market_test

import (
	"context"
	"testing"

	"github.com/ipfs/go-datastore"
	ds_sync "github.com/ipfs/go-datastore/sync"
	"github.com/stretchr/testify/require"
	cbg "github.com/whyrusleeping/cbor-gen"

	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/konnect-labs/konnect/chain/actors/builtin"
	"github.com/konnect-labs/konnect/chain/actors/builtin/market"
	"github.com/konnect-labs/konnect/chain/actors/builtin/token"
	"github.com/konnect-labs/konnect/chain/state"
	"github.com/konnect-labs/konnect/chain/types"
	"github.com/konnect-labs/konnect/chain/types/mock"
	"github.com/konnect-labs/konnect/chain/vm"
	"github.com/konnect-labs/konnect/chain/wallet"
	"github.com/konnect-labs/konnect/journal"
)

const startingBalance = 10_000_000_000

type HarnessOpt func(testing.TB, *harness) error

// HarnessFee sets the fee of the marketplace created by the harness.
func HarnessFee(bps uint16) HarnessOpt {
	return func(_ testing.TB, h *harness) error {
		h.feeBps = bps
		return nil
	}
}

type harness struct {
	t  testing.TB
	vm *vm.VM
	st *state.StateTree
	w  *wallet.Wallet
	j  *journal.MemJournal

	feeBps uint16

	issuer   types.Key
	operator types.Key
	seller   types.Key
	buyer    types.Key
	stranger types.Key

	asset       types.Key
	marketplace types.Key
	merchant    types.Key

	treasury      types.Key
	sellerHolding types.Key
	buyerHolding  types.Key
}

// newHarness sets up an asset, a marketplace run by operator, a merchant
// registered by seller, and holdings for treasury, seller and buyer. The
// buyer starts with 1,000,000 units of the asset.
func newHarness(t testing.TB, opts ...HarnessOpt) *harness {
	st := state.NewStateTree(ds_sync.MutexWrap(datastore.NewMapDatastore()))
	j := journal.NewMemJournal(journal.DefaultDisabledEvents)
	v, err := vm.NewVM(&vm.VMOpts{
		State:   st,
		Rent:    vm.DefaultRentPolicy(),
		Journal: j,
	})
	require.NoError(t, err)

	w, err := wallet.NewWallet(wallet.NewMemKeyStore())
	require.NoError(t, err)

	h := &harness{t: t, vm: v, st: st, w: w, j: j, feeBps: 250}
	for _, opt := range opts {
		require.NoError(t, opt(t, h))
	}

	h.issuer = h.principal(1)
	h.operator = h.principal(2)
	h.seller = h.principal(3)
	h.buyer = h.principal(4)
	h.stranger = h.principal(5)

	ret := h.apply(h.issuer, builtin.TokenProgramKey, builtin.MethodsToken.CreateAsset, &token.CreateAssetParams{
		Authority: h.issuer,
		Decimals:  6,
		Seed:      []byte("usdc"),
	})
	ApplyOK(t, ret)
	h.asset, err = types.NewKeyFromBytes(ret.Return)
	require.NoError(t, err)

	h.treasury = h.openHolding(h.operator)
	h.sellerHolding = h.openHolding(h.seller)
	h.buyerHolding = h.openHolding(h.buyer)

	ApplyOK(t, h.apply(h.issuer, builtin.TokenProgramKey, builtin.MethodsToken.MintTo, &token.MintToParams{
		Asset:   h.asset,
		Holding: h.buyerHolding,
		Amount:  1_000_000,
	}))

	ret = h.market(h.operator, builtin.MethodsMarket.InitMarketplace, &market.InitMarketplaceParams{
		Authority: h.operator,
		FeeBps:    uint64(h.feeBps),
	})
	ApplyOK(t, ret)
	h.marketplace = market.MarketplaceKey(h.operator)
	require.Equal(t, h.marketplace.Bytes(), ret.Return)

	ret = h.market(h.seller, builtin.MethodsMarket.RegisterMerchant, &market.RegisterMerchantParams{
		Marketplace: h.marketplace,
		Owner:       h.seller,
	})
	ApplyOK(t, ret)
	h.merchant = market.MerchantKey(h.marketplace, h.seller)
	require.Equal(t, h.merchant.Bytes(), ret.Return)

	return h
}

func ApplyOK(t testing.TB, ret *vm.ApplyRet) {
	t.Helper()
	if ret.ExitCode != exitcode.Ok {
		t.Fatalf("unexpected exit code %s: %+v", market.ExitCodeName(ret.ExitCode), ret.ActorErr)
	}
}

func ApplyCode(t testing.TB, code exitcode.ExitCode, ret *vm.ApplyRet) {
	t.Helper()
	if ret.ExitCode != code {
		t.Fatalf("expected exit code %s, got %s: %+v", market.ExitCodeName(code), market.ExitCodeName(ret.ExitCode), ret.ActorErr)
	}
}

func (h *harness) principal(i uint64) types.Key {
	k := mock.Signer(h.w, i)
	require.NoError(h.t, h.vm.Fund(k, startingBalance))
	return k
}

func (h *harness) openHolding(owner types.Key) types.Key {
	ret := h.apply(owner, builtin.TokenProgramKey, builtin.MethodsToken.OpenHolding, &token.OpenHoldingParams{
		Payer: owner,
		Owner: owner,
		Asset: h.asset,
	})
	ApplyOK(h.t, ret)
	return token.AssociatedHolding(owner, h.asset)
}

func (h *harness) applyRemaining(from, to types.Key, method abi.MethodNum, params cbg.CBORMarshaler, remaining []types.Key) *vm.ApplyRet {
	enc, aerr := vm.SerializeParams(params)
	require.Nil(h.t, aerr)

	acct, err := h.st.GetAccount(from)
	require.NoError(h.t, err)

	msg := mock.UnsignedMessage(from, to, acct.Nonce, method, enc)
	msg.Remaining = remaining
	smsg, err := h.w.SignMessage(context.TODO(), msg)
	require.NoError(h.t, err)

	ret, err := h.vm.ApplyMessage(context.TODO(), smsg)
	require.NoError(h.t, err)
	require.Equal(h.t, 0, h.st.Depth())
	return ret
}

func (h *harness) apply(from, to types.Key, method abi.MethodNum, params cbg.CBORMarshaler) *vm.ApplyRet {
	return h.applyRemaining(from, to, method, params, nil)
}

func (h *harness) market(from types.Key, method abi.MethodNum, params cbg.CBORMarshaler) *vm.ApplyRet {
	return h.apply(from, builtin.MarketProgramKey, method, params)
}

func (h *harness) createListing(price uint64, quantity uint64, isService bool) types.Key {
	ret := h.market(h.seller, builtin.MethodsMarket.CreateListing, &market.CreateListingParams{
		Marketplace: h.marketplace,
		Merchant:    h.merchant,
		Owner:       h.seller,
		Asset:       h.asset,
		Price:       price,
		Quantity:    quantity,
		IsService:   isService,
	})
	ApplyOK(h.t, ret)
	k := market.ListingKey(h.marketplace, h.merchant, h.asset)
	require.Equal(h.t, k.Bytes(), ret.Return)
	return k
}

func (h *harness) buyNow(listing types.Key, quantity uint64, reference types.Key, remaining ...types.Key) *vm.ApplyRet {
	return h.applyRemaining(h.buyer, builtin.MarketProgramKey, builtin.MethodsMarket.BuyNow, &market.BuyNowParams{
		Listing:         listing,
		Marketplace:     h.marketplace,
		Buyer:           h.buyer,
		BuyerHolding:    h.buyerHolding,
		SellerHolding:   h.sellerHolding,
		TreasuryHolding: h.treasury,
		Asset:           h.asset,
		Quantity:        quantity,
		Reference:       reference,
	}, remaining)
}

func (h *harness) createServiceOrder(listing, reference types.Key) *vm.ApplyRet {
	return h.applyRemaining(h.buyer, builtin.MarketProgramKey, builtin.MethodsMarket.CreateServiceOrder, &market.CreateServiceOrderParams{
		Marketplace:  h.marketplace,
		Listing:      listing,
		Buyer:        h.buyer,
		BuyerHolding: h.buyerHolding,
		Asset:        h.asset,
		Reference:    reference,
	}, []types.Key{reference})
}

func (h *harness) release(signer, escrow, listing types.Key) *vm.ApplyRet {
	return h.market(signer, builtin.MethodsMarket.ReleaseServiceOrder, &market.ReleaseServiceOrderParams{
		Escrow:          escrow,
		Marketplace:     h.marketplace,
		Listing:         listing,
		Signer:          signer,
		SellerHolding:   h.sellerHolding,
		TreasuryHolding: h.treasury,
	})
}

func (h *harness) cancel(signer, escrow types.Key) *vm.ApplyRet {
	return h.market(signer, builtin.MethodsMarket.CancelServiceOrder, &market.CancelServiceOrderParams{
		Escrow:       escrow,
		Marketplace:  h.marketplace,
		Signer:       signer,
		BuyerHolding: h.buyerHolding,
	})
}

func (h *harness) account(k types.Key) *types.Account {
	acct, err := h.st.GetAccount(k)
	require.NoError(h.t, err)
	return acct
}

func (h *harness) exists(k types.Key) bool {
	has, err := h.st.HasAccount(k)
	require.NoError(h.t, err)
	return has
}

func (h *harness) native(k types.Key) uint64 {
	return h.account(k).Balance
}

func (h *harness) holding(k types.Key) uint64 {
	hl, err := token.LoadHolding(h.account(k))
	require.NoError(h.t, err)
	return hl.Amount
}

func (h *harness) getMarketplace() *market.Marketplace {
	mp, err := market.LoadMarketplace(h.account(h.marketplace))
	require.NoError(h.t, err)
	return mp
}

func (h *harness) getMerchant(k types.Key) *market.Merchant {
	m, err := market.LoadMerchant(h.account(k))
	require.NoError(h.t, err)
	return m
}

func (h *harness) getListing(k types.Key) *market.Listing {
	l, err := market.LoadListing(h.account(k))
	require.NoError(h.t, err)
	return l
}

func (h *harness) getEscrow(k types.Key) *market.Escrow {
	e, err := market.LoadEscrow(h.account(k))
	require.NoError(h.t, err)
	return e
}

func (h *harness) rent(space uint64) uint64 {
	r, err := h.vm.Rent().MinimumBalance(space)
	require.NoError(h.t, err)
	return r
}

func decodeOnlyEvent(t testing.TB, ret *vm.ApplyRet) market.MarketEvent {
	require.Len(t, ret.Events, 1)
	require.Equal(t, builtin.MarketProgramKey, ret.Events[0].Emitter)
	me, err := market.DecodeEvent(&ret.Events[0])
	require.NoError(t, err)
	return me
}
