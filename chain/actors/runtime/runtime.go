package runtime

import (
	"context"

	cbg "github.com/whyrusleeping/cbor-gen"

	"github.com/filecoin-project/go-state-types/abi"

	"github.com/konnect-labs/konnect/chain/actors/aerrors"
	"github.com/konnect-labs/konnect/chain/types"
)

// Runtime is the VM's internal runtime object.
// this is everything that is accessible to programs, beyond parameters.
type Runtime interface {
	Context() context.Context

	// Caller is the message sender for top level calls, or the calling
	// program for cross-program calls.
	Caller() types.Key

	// Receiver is the program currently executing.
	Receiver() types.Key

	// IsSigner reports whether k authorized the current call, either by
	// signing the message or as a derived key of the calling program.
	IsSigner(k types.Key) bool

	// Remaining lists the read-only keys attached to the message.
	Remaining() []types.Key

	// GetAccount returns a copy of the account at k. Missing accounts abort
	// with ErrNotFound.
	GetAccount(k types.Key) (*types.Account, aerrors.ActorError)

	// CreateAccount allocates a zeroed record of space bytes owned by the
	// receiver, at the key derived from the receiver and seeds. The payer must
	// sign and is charged the rent-exempt minimum. Creating over a live key
	// fails with ErrIllegalState.
	CreateAccount(payer types.Key, space uint64, seeds ...[]byte) (types.Key, uint8, aerrors.ActorError)

	// WriteData replaces the data of a record owned by the receiver. The
	// length of data must match the allocated space.
	WriteData(k types.Key, data []byte) aerrors.ActorError

	// CloseAccount deletes a record owned by the receiver and credits its
	// native balance to beneficiary.
	CloseAccount(k, beneficiary types.Key) aerrors.ActorError

	// Send invokes method on another program. Each entry of signerSeeds is a
	// seed path; the key it derives under the receiver is added to the
	// callee's signers.
	Send(program types.Key, method abi.MethodNum, params cbg.CBORMarshaler, signerSeeds ...[][]byte) ([]byte, aerrors.ActorError)

	// EmitEvent appends an event to the message receipt. Events of a call
	// that fails are discarded with the rest of its effects.
	EmitEvent(ev *types.Event) aerrors.ActorError
}
