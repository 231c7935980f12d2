package vm

import (
	"bytes"
	"context"
	"math"

	cbg "github.com/whyrusleeping/cbor-gen"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/konnect-labs/konnect/chain/actors/aerrors"
	"github.com/konnect-labs/konnect/chain/actors/builtin"
	"github.com/konnect-labs/konnect/chain/actors/runtime"
	"github.com/konnect-labs/konnect/chain/state"
	"github.com/konnect-labs/konnect/chain/types"
)

var _ runtime.Runtime = (*Runtime)(nil)

type Runtime struct {
	ctx context.Context

	vm    *VM
	state *state.StateTree
	msg   *types.Message

	caller   types.Key
	receiver types.Key
	signers  map[types.Key]struct{}
	depth    int

	// events is shared by every call frame of a message.
	events *[]types.Event
}

func (rt *Runtime) Context() context.Context {
	return rt.ctx
}

func (rt *Runtime) Caller() types.Key {
	return rt.caller
}

func (rt *Runtime) Receiver() types.Key {
	return rt.receiver
}

func (rt *Runtime) IsSigner(k types.Key) bool {
	_, ok := rt.signers[k]
	return ok
}

func (rt *Runtime) Remaining() []types.Key {
	return append([]types.Key(nil), rt.msg.Remaining...)
}

func (rt *Runtime) GetAccount(k types.Key) (*types.Account, aerrors.ActorError) {
	acct, err := rt.state.GetAccount(k)
	if err != nil {
		if xerrors.Is(err, types.ErrAccountNotFound) {
			return nil, aerrors.Newf(exitcode.ErrNotFound, "account %s not found", k)
		}
		return nil, aerrors.Escalate(err, "loading account")
	}
	return acct, nil
}

func (rt *Runtime) CreateAccount(payer types.Key, space uint64, seeds ...[]byte) (types.Key, uint8, aerrors.ActorError) {
	k, bump, err := types.FindDerivedKey(rt.receiver, seeds...)
	if err != nil {
		return types.Undef, 0, aerrors.Absorb(err, exitcode.ErrIllegalArgument, "deriving account key")
	}

	has, err := rt.state.HasAccount(k)
	if err != nil {
		return types.Undef, 0, aerrors.Escalate(err, "checking account")
	}
	if has {
		return types.Undef, 0, aerrors.Newf(exitcode.ErrIllegalState, "account %s already exists", k)
	}

	if !rt.IsSigner(payer) {
		return types.Undef, 0, aerrors.Newf(exitcode.ErrForbidden, "payer %s did not sign", payer)
	}

	rent, err := rt.vm.rent.MinimumBalance(space)
	if err != nil {
		return types.Undef, 0, aerrors.Absorb(err, exitcode.ErrIllegalArgument, "computing rent")
	}

	payerAcct, aerr := rt.GetAccount(payer)
	if aerr != nil {
		return types.Undef, 0, aerrors.Wrap(aerr, "loading payer")
	}
	if payerAcct.Balance < rent {
		return types.Undef, 0, aerrors.Newf(exitcode.ErrInsufficientFunds, "payer %s has %d, rent is %d", payer, payerAcct.Balance, rent)
	}
	payerAcct.Balance -= rent
	if err := rt.state.SetAccount(payer, payerAcct); err != nil {
		return types.Undef, 0, aerrors.Escalate(err, "debiting payer")
	}

	if err := rt.state.SetAccount(k, &types.Account{
		Owner:   rt.receiver,
		Balance: rent,
		Data:    make([]byte, space),
	}); err != nil {
		return types.Undef, 0, aerrors.Escalate(err, "creating account")
	}

	log.Debugw("account created", "key", k, "owner", rt.receiver, "space", space, "rent", rent)
	return k, bump, nil
}

func (rt *Runtime) WriteData(k types.Key, data []byte) aerrors.ActorError {
	acct, aerr := rt.GetAccount(k)
	if aerr != nil {
		return aerr
	}
	if acct.Owner != rt.receiver {
		return aerrors.Newf(exitcode.ErrForbidden, "account %s is not owned by %s", k, rt.receiver)
	}
	if len(data) != len(acct.Data) {
		return aerrors.Newf(exitcode.ErrIllegalArgument, "data length %d does not match allocated %d", len(data), len(acct.Data))
	}

	acct.Data = append(acct.Data[:0], data...)
	if err := rt.state.SetAccount(k, acct); err != nil {
		return aerrors.Escalate(err, "writing account data")
	}
	return nil
}

func (rt *Runtime) CloseAccount(k, beneficiary types.Key) aerrors.ActorError {
	if k == beneficiary {
		return aerrors.Newf(exitcode.ErrIllegalArgument, "cannot close %s into itself", k)
	}

	acct, aerr := rt.GetAccount(k)
	if aerr != nil {
		return aerr
	}
	if acct.Owner != rt.receiver {
		return aerrors.Newf(exitcode.ErrForbidden, "account %s is not owned by %s", k, rt.receiver)
	}

	ben, err := rt.state.GetAccount(beneficiary)
	switch {
	case xerrors.Is(err, types.ErrAccountNotFound):
		ben = &types.Account{Owner: builtin.SystemOwner}
	case err != nil:
		return aerrors.Escalate(err, "loading beneficiary")
	}
	if ben.Balance > math.MaxUint64-acct.Balance {
		return aerrors.Newf(exitcode.ErrIllegalState, "crediting %s overflows", beneficiary)
	}
	ben.Balance += acct.Balance

	if err := rt.state.SetAccount(beneficiary, ben); err != nil {
		return aerrors.Escalate(err, "crediting beneficiary")
	}
	if err := rt.state.DeleteAccount(k); err != nil {
		return aerrors.Escalate(err, "deleting account")
	}

	log.Debugw("account closed", "key", k, "beneficiary", beneficiary, "refund", acct.Balance)
	return nil
}

func (rt *Runtime) Send(program types.Key, method abi.MethodNum, params cbg.CBORMarshaler, signerSeeds ...[][]byte) ([]byte, aerrors.ActorError) {
	buf := new(bytes.Buffer)
	if params != nil {
		if err := params.MarshalCBOR(buf); err != nil {
			return nil, aerrors.Absorb(err, exitcode.ErrSerialization, "failed to marshal input parameters")
		}
	}

	signers := make(map[types.Key]struct{}, len(rt.signers)+len(signerSeeds))
	for k := range rt.signers {
		signers[k] = struct{}{}
	}
	for _, path := range signerSeeds {
		k, aerr := rt.signerFromSeeds(path)
		if aerr != nil {
			return nil, aerr
		}
		signers[k] = struct{}{}
	}

	return rt.vm.send(rt.ctx, rt, rt.receiver, program, method, buf.Bytes(), signers)
}

// signerFromSeeds recomputes a derived key of the receiver. The last seed of
// path is the one byte bump.
func (rt *Runtime) signerFromSeeds(path [][]byte) (types.Key, aerrors.ActorError) {
	if len(path) == 0 || len(path[len(path)-1]) != 1 {
		return types.Undef, aerrors.New(exitcode.ErrIllegalArgument, "signer seeds must end with a one byte bump")
	}
	bump := path[len(path)-1][0]
	k, err := types.CreateDerivedKey(rt.receiver, bump, path[:len(path)-1]...)
	if err != nil {
		return types.Undef, aerrors.Absorb(err, exitcode.ErrIllegalArgument, "deriving signer key")
	}
	return k, nil
}

func (rt *Runtime) EmitEvent(ev *types.Event) aerrors.ActorError {
	if len(ev.Entries) > MaxEventEntries {
		return aerrors.Newf(exitcode.ErrIllegalArgument, "event has %d entries, max %d", len(ev.Entries), MaxEventEntries)
	}
	out := types.Event{
		Emitter: rt.receiver,
		Entries: append([]types.EventEntry(nil), ev.Entries...),
	}
	*rt.events = append(*rt.events, out)
	return nil
}

// MaxEventEntries bounds the entries of a single event.
const MaxEventEntries = 32
