package vm

import (
	"context"
	"testing"

	"github.com/ipfs/go-datastore"
	ds_sync "github.com/ipfs/go-datastore/sync"
	"github.com/stretchr/testify/require"
	cbg "github.com/whyrusleeping/cbor-gen"

	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/konnect-labs/konnect/chain/actors/aerrors"
	"github.com/konnect-labs/konnect/chain/actors/builtin"
	"github.com/konnect-labs/konnect/chain/actors/builtin/token"
	"github.com/konnect-labs/konnect/chain/actors/runtime"
	"github.com/konnect-labs/konnect/chain/state"
	"github.com/konnect-labs/konnect/chain/types"
	"github.com/konnect-labs/konnect/chain/types/mock"
	"github.com/konnect-labs/konnect/chain/wallet"
	"github.com/konnect-labs/konnect/journal"
)

var eventProgramKey = builtin.ProgramKey("events")

// eventContract emits a "Ping" event. A non-zero B makes it fail with exit
// code B after emitting.
type eventContract struct{}

func (c eventContract) Exports() []interface{} {
	return []interface{}{
		1: c.Ping,
		2: c.PingNested,
	}
}

func pingEvent() *types.Event {
	typ := "Ping"
	val := append(cbg.CborEncodeMajorType(cbg.MajTextString, uint64(len(typ))), typ...)
	return &types.Event{Entries: []types.EventEntry{{
		Flags: types.EventFlagIndexedAll,
		Key:   "$type",
		Codec: types.CodecCBOR,
		Value: val,
	}}}
}

func (eventContract) Ping(rt runtime.Runtime, params *basicParams) ([]byte, aerrors.ActorError) {
	if aerr := rt.EmitEvent(pingEvent()); aerr != nil {
		return nil, aerr
	}
	if params.B != 0 {
		return nil, aerrors.New(exitcode.ExitCode(params.B), "ping failed")
	}
	return nil, nil
}

// PingNested emits, then calls Ping with B set and swallows its failure.
func (eventContract) PingNested(rt runtime.Runtime, params *basicParams) ([]byte, aerrors.ActorError) {
	if aerr := rt.EmitEvent(pingEvent()); aerr != nil {
		return nil, aerr
	}
	_, aerr := rt.Send(rt.Receiver(), 1, &basicParams{B: params.B})
	if aerr != nil && aerrors.IsFatal(aerr) {
		return nil, aerr
	}
	return nil, nil
}

type testVM struct {
	t  *testing.T
	vm *VM
	st *state.StateTree
	w  *wallet.Wallet
	j  *journal.MemJournal
}

func newTestVM(t *testing.T) *testVM {
	st := state.NewStateTree(ds_sync.MutexWrap(datastore.NewMapDatastore()))
	programs := builtin.NewRegistry(
		builtin.NewRegistryEntry("token", builtin.TokenProgramKey, token.Actor{}),
		builtin.NewRegistryEntry("events", eventProgramKey, eventContract{}),
	)
	j := journal.NewMemJournal(journal.DefaultDisabledEvents)

	v, err := NewVM(&VMOpts{
		State:    st,
		Programs: programs,
		Rent:     DefaultRentPolicy(),
		Journal:  j,
	})
	require.NoError(t, err)

	w, err := wallet.NewWallet(wallet.NewMemKeyStore())
	require.NoError(t, err)

	return &testVM{t: t, vm: v, st: st, w: w, j: j}
}

func (h *testVM) principal(i uint64, balance uint64) types.Key {
	k := mock.Signer(h.w, i)
	require.NoError(h.t, h.vm.Fund(k, balance))
	return k
}

func (h *testVM) nonce(k types.Key) uint64 {
	acct, err := h.st.GetAccount(k)
	require.NoError(h.t, err)
	return acct.Nonce
}

func (h *testVM) apply(from, to types.Key, method abi.MethodNum, params cbg.CBORMarshaler, extra ...types.Key) *ApplyRet {
	enc, aerr := SerializeParams(params)
	require.Nil(h.t, aerr)

	msg := mock.UnsignedMessage(from, to, h.nonce(from), method, enc)
	smsg, err := h.w.SignMessage(context.TODO(), msg, extra...)
	require.NoError(h.t, err)

	ret, err := h.vm.ApplyMessage(context.TODO(), smsg)
	require.NoError(h.t, err)
	return ret
}

func (h *testVM) balance(k types.Key) uint64 {
	acct, err := h.st.GetAccount(k)
	require.NoError(h.t, err)
	return acct.Balance
}

func TestRentMinimumBalance(t *testing.T) {
	p := DefaultRentPolicy()

	minBal, err := p.MinimumBalance(0)
	require.NoError(t, err)
	require.Equal(t, uint64(128*3480*2), minBal)

	minBal, err = p.MinimumBalance(token.HoldingSize)
	require.NoError(t, err)
	require.Equal(t, uint64((128+token.HoldingSize)*3480*2), minBal)

	_, err = p.MinimumBalance(MaxAccountDataSize + 1)
	require.Error(t, err)

	_, err = RentPolicy{LamportsPerByteYear: 1 << 40, ExemptionYears: 1 << 40, AccountOverhead: 1}.MinimumBalance(0)
	require.Error(t, err)
}

func TestApplyTokenFlow(t *testing.T) {
	h := newTestVM(t)
	alice := h.principal(1, 1_000_000_000)
	bob := h.principal(2, 1_000_000_000)

	ret := h.apply(alice, builtin.TokenProgramKey, builtin.MethodsToken.CreateAsset, &token.CreateAssetParams{
		Authority: alice,
		Decimals:  6,
		Seed:      []byte("usd"),
	})
	require.Equal(t, exitcode.Ok, ret.ExitCode, "%+v", ret.ActorErr)

	asset, err := token.AssetKey(alice, []byte("usd"))
	require.NoError(t, err)
	require.Equal(t, asset.Bytes(), ret.Return)

	for _, owner := range []types.Key{alice, bob} {
		ret = h.apply(alice, builtin.TokenProgramKey, builtin.MethodsToken.OpenHolding, &token.OpenHoldingParams{
			Payer: alice,
			Owner: owner,
			Asset: asset,
		})
		require.Equal(t, exitcode.Ok, ret.ExitCode, "%+v", ret.ActorErr)
	}
	aliceHolding := token.AssociatedHolding(alice, asset)
	bobHolding := token.AssociatedHolding(bob, asset)

	ret = h.apply(alice, builtin.TokenProgramKey, builtin.MethodsToken.MintTo, &token.MintToParams{
		Asset:   asset,
		Holding: aliceHolding,
		Amount:  500,
	})
	require.Equal(t, exitcode.Ok, ret.ExitCode, "%+v", ret.ActorErr)

	// bob cannot move alice's funds
	ret = h.apply(bob, builtin.TokenProgramKey, builtin.MethodsToken.Transfer, &token.TransferParams{
		From:      aliceHolding,
		To:        bobHolding,
		Authority: bob,
		Amount:    1,
	})
	require.Equal(t, exitcode.ErrForbidden, ret.ExitCode)

	ret = h.apply(alice, builtin.TokenProgramKey, builtin.MethodsToken.Transfer, &token.TransferParams{
		From:      aliceHolding,
		To:        bobHolding,
		Authority: alice,
		Amount:    501,
	})
	require.Equal(t, exitcode.ErrInsufficientFunds, ret.ExitCode)

	ret = h.apply(alice, builtin.TokenProgramKey, builtin.MethodsToken.Transfer, &token.TransferParams{
		From:      aliceHolding,
		To:        bobHolding,
		Authority: alice,
		Amount:    200,
	})
	require.Equal(t, exitcode.Ok, ret.ExitCode, "%+v", ret.ActorErr)

	holdingAmount := func(k types.Key) uint64 {
		acct, err := h.st.GetAccount(k)
		require.NoError(t, err)
		hl, err := token.LoadHolding(acct)
		require.NoError(t, err)
		return hl.Amount
	}
	require.Equal(t, uint64(300), holdingAmount(aliceHolding))
	require.Equal(t, uint64(200), holdingAmount(bobHolding))

	// closing a non-empty holding fails, the empty one refunds its rent
	ret = h.apply(bob, builtin.TokenProgramKey, builtin.MethodsToken.CloseHolding, &token.CloseHoldingParams{
		Holding:     bobHolding,
		Destination: bob,
	})
	require.Equal(t, exitcode.ErrIllegalState, ret.ExitCode)

	ret = h.apply(bob, builtin.TokenProgramKey, builtin.MethodsToken.Transfer, &token.TransferParams{
		From:      bobHolding,
		To:        aliceHolding,
		Authority: bob,
		Amount:    200,
	})
	require.Equal(t, exitcode.Ok, ret.ExitCode, "%+v", ret.ActorErr)

	rent := h.balance(bobHolding)
	before := h.balance(bob)
	ret = h.apply(bob, builtin.TokenProgramKey, builtin.MethodsToken.CloseHolding, &token.CloseHoldingParams{
		Holding:     bobHolding,
		Destination: bob,
	})
	require.Equal(t, exitcode.Ok, ret.ExitCode, "%+v", ret.ActorErr)
	require.Equal(t, before+rent, h.balance(bob))

	has, err := h.st.HasAccount(bobHolding)
	require.NoError(t, err)
	require.False(t, has)
}

func TestApplyRevertKeepsNonce(t *testing.T) {
	h := newTestVM(t)
	alice := h.principal(1, 1_000_000_000)

	ret := h.apply(alice, builtin.TokenProgramKey, builtin.MethodsToken.CreateAsset, &token.CreateAssetParams{
		Authority: alice,
		Seed:      []byte("a"),
	})
	require.Equal(t, exitcode.Ok, ret.ExitCode)
	afterFirst := h.balance(alice)

	// creating the same asset again fails and costs nothing but the nonce
	ret = h.apply(alice, builtin.TokenProgramKey, builtin.MethodsToken.CreateAsset, &token.CreateAssetParams{
		Authority: alice,
		Seed:      []byte("a"),
	})
	require.Equal(t, exitcode.ErrIllegalState, ret.ExitCode)
	require.Equal(t, afterFirst, h.balance(alice))
	require.Equal(t, uint64(2), h.nonce(alice))
	require.Equal(t, 0, h.st.Depth())
}

func TestApplyRejections(t *testing.T) {
	h := newTestVM(t)
	alice := h.principal(1, 1_000_000_000)
	bob := h.principal(2, 1_000_000_000)

	enc, aerr := SerializeParams(&basicParams{})
	require.Nil(t, aerr)

	t.Run("bad nonce", func(t *testing.T) {
		msg := mock.UnsignedMessage(alice, eventProgramKey, 7, 1, enc)
		smsg, err := h.w.SignMessage(context.TODO(), msg)
		require.NoError(t, err)

		ret, err := h.vm.ApplyMessage(context.TODO(), smsg)
		require.NoError(t, err)
		require.Equal(t, exitcode.SysErrSenderStateInvalid, ret.ExitCode)
		require.Equal(t, uint64(0), h.nonce(alice))
	})

	t.Run("tampered message", func(t *testing.T) {
		msg := mock.UnsignedMessage(alice, eventProgramKey, 0, 1, enc)
		smsg, err := h.w.SignMessage(context.TODO(), msg)
		require.NoError(t, err)
		smsg.Message.Method = 2

		ret, err := h.vm.ApplyMessage(context.TODO(), smsg)
		require.NoError(t, err)
		require.Equal(t, exitcode.SysErrSenderInvalid, ret.ExitCode)
	})

	t.Run("sender did not sign", func(t *testing.T) {
		msg := mock.UnsignedMessage(alice, eventProgramKey, 0, 1, enc)
		sb, err := msg.SigningBytes()
		require.NoError(t, err)
		sig, err := h.w.Sign(context.TODO(), bob, sb)
		require.NoError(t, err)
		smsg := &types.SignedMessage{Message: *msg, Signatures: []types.Signature{*sig}}

		ret, err := h.vm.ApplyMessage(context.TODO(), smsg)
		require.NoError(t, err)
		require.Equal(t, exitcode.SysErrSenderInvalid, ret.ExitCode)
	})

	t.Run("unknown sender", func(t *testing.T) {
		carol := mock.Signer(h.w, 3)
		msg := mock.UnsignedMessage(carol, eventProgramKey, 0, 1, enc)
		smsg, err := h.w.SignMessage(context.TODO(), msg)
		require.NoError(t, err)

		ret, err := h.vm.ApplyMessage(context.TODO(), smsg)
		require.NoError(t, err)
		require.Equal(t, exitcode.SysErrSenderInvalid, ret.ExitCode)
	})

	t.Run("unknown program", func(t *testing.T) {
		ret := h.apply(alice, mock.Key(99), 1, &basicParams{})
		require.Equal(t, exitcode.SysErrInvalidReceiver, ret.ExitCode)
	})

	t.Run("unknown method", func(t *testing.T) {
		ret := h.apply(alice, eventProgramKey, 9, &basicParams{})
		require.Equal(t, exitcode.SysErrInvalidMethod, ret.ExitCode)
	})
}

func TestApplyEvents(t *testing.T) {
	h := newTestVM(t)
	alice := h.principal(1, 1_000_000_000)

	ret := h.apply(alice, eventProgramKey, 1, &basicParams{})
	require.Equal(t, exitcode.Ok, ret.ExitCode)
	require.Len(t, ret.Events, 1)
	require.Equal(t, eventProgramKey, ret.Events[0].Emitter)
	require.Len(t, h.j.Events("events"), 1)
	require.Equal(t, "Ping", h.j.Events("events")[0].Event)

	// a failed message drops its events
	ret = h.apply(alice, eventProgramKey, 1, &basicParams{B: 33})
	require.Equal(t, exitcode.ExitCode(33), ret.ExitCode)
	require.Empty(t, ret.Events)
	require.Len(t, h.j.Events("events"), 1)

	// a failed nested call drops only its own events
	ret = h.apply(alice, eventProgramKey, 2, &basicParams{B: 33})
	require.Equal(t, exitcode.Ok, ret.ExitCode)
	require.Len(t, ret.Events, 1)

	ret = h.apply(alice, eventProgramKey, 2, &basicParams{})
	require.Equal(t, exitcode.Ok, ret.ExitCode)
	require.Len(t, ret.Events, 2)

	// vm:apply is disabled by default
	require.Empty(t, h.j.Events("vm"))
}

func TestFund(t *testing.T) {
	h := newTestVM(t)
	k := mock.Key(1)

	require.NoError(t, h.vm.Fund(k, 10))
	require.NoError(t, h.vm.Fund(k, 5))
	require.Equal(t, uint64(15), h.balance(k))

	require.NoError(t, h.st.SetAccount(mock.Key(2), &types.Account{Owner: builtin.TokenProgramKey}))
	require.Error(t, h.vm.Fund(mock.Key(2), 1))
}
