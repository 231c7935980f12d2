package vm

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/ipfs/go-cid"
	logging "github.com/ipfs/go-log/v2"
	cbg "github.com/whyrusleeping/cbor-gen"
	"go.opencensus.io/stats"
	"go.opencensus.io/tag"
	"go.opencensus.io/trace"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/konnect-labs/konnect/chain/actors/aerrors"
	"github.com/konnect-labs/konnect/chain/actors/builtin"
	"github.com/konnect-labs/konnect/chain/state"
	"github.com/konnect-labs/konnect/chain/types"
	"github.com/konnect-labs/konnect/journal"
	"github.com/konnect-labs/konnect/lib/sigs"
	_ "github.com/konnect-labs/konnect/lib/sigs/ed25519"
	"github.com/konnect-labs/konnect/metrics"
)

var log = logging.Logger("vm")

// MaxCallDepth bounds nested cross-program calls, the top level call
// included.
const MaxCallDepth = 5

type VMOpts struct {
	State    *state.StateTree
	Programs *builtin.Registry
	Rent     RentPolicy
	Journal  journal.Journal
}

type VM struct {
	cstate  *state.StateTree
	inv     *invoker
	rent    RentPolicy
	journal journal.Journal

	applyEvt journal.EventType
}

func NewVM(opts *VMOpts) (*VM, error) {
	programs := opts.Programs
	if programs == nil {
		programs = BuiltinPrograms()
	}
	inv, err := newInvoker(programs)
	if err != nil {
		return nil, xerrors.Errorf("loading programs: %w", err)
	}

	j := opts.Journal
	if j == nil {
		j = journal.NilJournal()
	}

	return &VM{
		cstate:   opts.State,
		inv:      inv,
		rent:     opts.Rent,
		journal:  j,
		applyEvt: j.RegisterEventType("vm", "apply"),
	}, nil
}

type ApplyRet struct {
	types.MessageReceipt
	ActorErr aerrors.ActorError
	Duration time.Duration
}

// ApplyEvt is journaled for every message that reached execution.
type ApplyEvt struct {
	Message  cid.Cid
	From     types.Key
	To       types.Key
	Method   abi.MethodNum
	ExitCode exitcode.ExitCode
	Events   int
	Duration time.Duration
}

// ProgramEvt is journaled for every event of a successful message, under the
// emitting program's name and the event's type.
type ProgramEvt struct {
	Message cid.Cid
	Event   types.Event
}

func (vm *VM) StateTree() *state.StateTree {
	return vm.cstate
}

func (vm *VM) Programs() *builtin.Registry {
	return vm.inv.registry
}

func (vm *VM) Rent() RentPolicy {
	return vm.rent
}

// send runs a cross-program call from parent. The callee runs in its own
// snapshot; a failure reverts its state and drops its events.
func (vm *VM) send(ctx context.Context, parent *Runtime, from, to types.Key, method abi.MethodNum, params []byte, signers map[types.Key]struct{}) ([]byte, aerrors.ActorError) {
	depth := parent.depth + 1
	if depth > MaxCallDepth {
		return nil, aerrors.Newf(exitcode.SysErrForbidden, "call depth %d exceeds %d", depth, MaxCallDepth)
	}

	rt := &Runtime{
		ctx:      ctx,
		vm:       vm,
		state:    vm.cstate,
		msg:      parent.msg,
		caller:   from,
		receiver: to,
		signers:  signers,
		depth:    depth,
		events:   parent.events,
	}

	if err := vm.cstate.Snapshot(ctx); err != nil {
		return nil, aerrors.Escalate(err, "snapshot failed")
	}
	defer vm.cstate.ClearSnapshot()

	nevents := len(*rt.events)
	ret, aerr := vm.Invoke(rt, to, method, params)
	if aerr != nil {
		if err := vm.cstate.Revert(); err != nil {
			return nil, aerrors.Escalate(err, "revert state failed")
		}
		*rt.events = (*rt.events)[:nevents]
		return nil, aerr
	}
	return ret, nil
}

func (vm *VM) Invoke(rt *Runtime, program types.Key, method abi.MethodNum, params []byte) ([]byte, aerrors.ActorError) {
	ctx, span := trace.StartSpan(rt.ctx, "vm.Invoke")
	defer span.End()
	if span.IsRecordingEvents() {
		span.AddAttributes(
			trace.StringAttribute("to", program.String()),
			trace.Int64Attribute("method", int64(method)),
		)
	}

	var oldCtx context.Context
	oldCtx, rt.ctx = rt.ctx, ctx
	defer func() {
		rt.ctx = oldCtx
	}()
	return vm.inv.Invoke(program, rt, method, params)
}

func (vm *VM) reject(ctx context.Context, start time.Time, msg *types.Message, code exitcode.ExitCode, reason error) *ApplyRet {
	log.Infow("message rejected", "from", msg.From, "to", msg.To, "nonce", msg.Nonce, "exitcode", code, "reason", reason)
	if ctx, err := tag.New(ctx, tag.Upsert(metrics.ExitCode, strconv.FormatInt(int64(code), 10))); err == nil {
		stats.Record(ctx, metrics.MessageRejected.M(1))
	}
	return &ApplyRet{
		MessageReceipt: types.MessageReceipt{
			ExitCode: code,
		},
		Duration: time.Since(start),
	}
}

// ApplyMessage verifies and executes a signed message. Messages that fail
// verification are rejected without touching state. Once the sender's nonce
// is bumped, the program call either commits every change or none.
func (vm *VM) ApplyMessage(ctx context.Context, smsg *types.SignedMessage) (*ApplyRet, error) {
	start := time.Now()
	ctx, span := trace.StartSpan(ctx, "vm.ApplyMessage")
	defer span.End()
	msg := smsg.VMMessage()
	if span.IsRecordingEvents() {
		span.AddAttributes(
			trace.StringAttribute("from", msg.From.String()),
			trace.StringAttribute("to", msg.To.String()),
			trace.Int64Attribute("method", int64(msg.Method)),
		)
	}

	if err := msg.ValidForBlockInclusion(); err != nil {
		return nil, xerrors.Errorf("invalid message: %w", err)
	}

	if err := sigs.CheckMessageSignatures(ctx, smsg); err != nil {
		return vm.reject(ctx, start, msg, exitcode.SysErrSenderInvalid, err), nil
	}

	signers := make(map[types.Key]struct{}, len(smsg.Signatures))
	for _, k := range smsg.Signers() {
		signers[k] = struct{}{}
	}
	if _, ok := signers[msg.From]; !ok {
		return vm.reject(ctx, start, msg, exitcode.SysErrSenderInvalid, xerrors.New("sender did not sign")), nil
	}

	st := vm.cstate

	fromAcct, err := st.GetAccount(msg.From)
	if err != nil {
		if xerrors.Is(err, types.ErrAccountNotFound) {
			return vm.reject(ctx, start, msg, exitcode.SysErrSenderInvalid, err), nil
		}
		return nil, xerrors.Errorf("failed to look up sender: %w", err)
	}
	if fromAcct.Owner != builtin.SystemOwner {
		return vm.reject(ctx, start, msg, exitcode.SysErrSenderInvalid, xerrors.New("sender is not a principal")), nil
	}
	if msg.Nonce != fromAcct.Nonce {
		return vm.reject(ctx, start, msg, exitcode.SysErrSenderStateInvalid,
			xerrors.Errorf("expected nonce %d, got %d", fromAcct.Nonce, msg.Nonce)), nil
	}

	if err := vm.incrementNonce(msg.From); err != nil {
		return nil, err
	}

	if err := st.Snapshot(ctx); err != nil {
		return nil, xerrors.Errorf("snapshot failed: %w", err)
	}
	defer st.ClearSnapshot()

	var events []types.Event
	rt := &Runtime{
		ctx:      ctx,
		vm:       vm,
		state:    st,
		msg:      msg,
		caller:   msg.From,
		receiver: msg.To,
		signers:  signers,
		depth:    1,
		events:   &events,
	}

	ret, actorErr := vm.Invoke(rt, msg.To, msg.Method, msg.Params)
	if aerrors.IsFatal(actorErr) {
		return nil, xerrors.Errorf("[from=%s,to=%s,n=%d,m=%d] fatal error: %w", msg.From, msg.To, msg.Nonce, msg.Method, actorErr)
	}

	if actorErr != nil {
		log.Warnw("Send actor error", "from", msg.From, "to", msg.To, "nonce", msg.Nonce, "method", msg.Method, "error", fmt.Sprintf("%+v", actorErr))
	}

	if actorErr != nil && len(ret) != 0 {
		// This should not happen, something is wonky
		return nil, xerrors.Errorf("message invocation errored, but had a return value anyway: %w", actorErr)
	}

	errcode := aerrors.RetCode(actorErr)
	if errcode != 0 {
		// revert all state changes since snapshot
		if err := st.Revert(); err != nil {
			return nil, xerrors.Errorf("revert state failed: %w", err)
		}
		events = nil
	}

	ar := &ApplyRet{
		MessageReceipt: types.MessageReceipt{
			ExitCode: errcode,
			Return:   ret,
			Events:   events,
		},
		ActorErr: actorErr,
		Duration: time.Since(start),
	}

	vm.record(ctx, smsg, ar)
	return ar, nil
}

func (vm *VM) record(ctx context.Context, smsg *types.SignedMessage, ar *ApplyRet) {
	msg := smsg.VMMessage()

	programName, methodName := "unknown", strconv.FormatUint(uint64(msg.Method), 10)
	if e, ok := vm.inv.registry.Lookup(msg.To); ok {
		programName = e.Name()
		if n := e.MethodName(msg.Method); n != "" {
			methodName = n
		}
	}

	if mctx, err := tag.New(ctx,
		tag.Upsert(metrics.Program, programName),
		tag.Upsert(metrics.Method, methodName),
		tag.Upsert(metrics.ExitCode, strconv.FormatInt(int64(ar.ExitCode), 10)),
	); err == nil {
		stats.Record(mctx, metrics.MessageApplied.M(1), metrics.MessageApplyDuration.M(float64(ar.Duration.Nanoseconds())/1e6))
	}

	mcid := smsg.Cid()
	journal.MaybeRecordEvent(vm.journal, vm.applyEvt, func() interface{} {
		return &ApplyEvt{
			Message:  mcid,
			From:     msg.From,
			To:       msg.To,
			Method:   msg.Method,
			ExitCode: ar.ExitCode,
			Events:   len(ar.Events),
			Duration: ar.Duration,
		}
	})

	for i := range ar.Events {
		ev := ar.Events[i]
		system := "unknown"
		if e, ok := vm.inv.registry.Lookup(ev.Emitter); ok {
			system = e.Name()
		}
		evType := eventType(&ev)
		if evType == "" {
			continue
		}
		et := vm.journal.RegisterEventType(system, evType)
		journal.MaybeRecordEvent(vm.journal, et, func() interface{} {
			return &ProgramEvt{Message: mcid, Event: ev}
		})
		if sctx, err := tag.New(ctx, tag.Upsert(metrics.Program, system)); err == nil {
			stats.Record(sctx, metrics.JournalEventsRecorded.M(1))
		}
	}
}

// eventType reads the "$type" entry of an event.
func eventType(ev *types.Event) string {
	ent, ok := ev.Entry("$type")
	if !ok || ent.Codec != types.CodecCBOR || len(ent.Value) < 1 {
		return ""
	}
	s, err := cbg.ReadStringWithMax(bytes.NewReader(ent.Value), 64)
	if err != nil {
		return ""
	}
	return s
}

func (vm *VM) incrementNonce(k types.Key) error {
	return vm.cstate.MutateAccount(k, func(a *types.Account) error {
		if a.Nonce == math.MaxUint64 {
			return xerrors.Errorf("nonce of %s exhausted", k)
		}
		a.Nonce++
		return nil
	})
}

// Fund credits amount to a principal, creating it if needed. It is how a
// local node mints native balance outside of messages.
func (vm *VM) Fund(k types.Key, amount uint64) error {
	acct, err := vm.cstate.GetAccount(k)
	switch {
	case xerrors.Is(err, types.ErrAccountNotFound):
		acct = &types.Account{Owner: builtin.SystemOwner}
	case err != nil:
		return err
	}
	if acct.Owner != builtin.SystemOwner {
		return xerrors.Errorf("%s is not a principal", k)
	}
	if acct.Balance > math.MaxUint64-amount {
		return xerrors.Errorf("funding %s overflows", k)
	}
	acct.Balance += amount
	return vm.cstate.SetAccount(k, acct)
}
