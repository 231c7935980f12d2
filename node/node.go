package node

import (
	"context"

	cbg "github.com/whyrusleeping/cbor-gen"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-state-types/abi"

	"github.com/konnect-labs/konnect/chain/state"
	"github.com/konnect-labs/konnect/chain/types"
	"github.com/konnect-labs/konnect/chain/vm"
	"github.com/konnect-labs/konnect/chain/wallet"
	"github.com/konnect-labs/konnect/journal"
	"github.com/konnect-labs/konnect/metrics"
	"github.com/konnect-labs/konnect/node/config"
	"github.com/konnect-labs/konnect/node/repo"
)

// Node is a single process ledger: a state tree in the repo datastore, a VM
// with the builtin programs, and the repo wallet to sign with.
type Node struct {
	Repo    repo.LockedRepo
	Config  *config.Node
	State   *state.StateTree
	VM      *vm.VM
	Wallet  *wallet.Wallet
	Journal journal.Journal

	stop StopFunc
}

// Open locks r and assembles a node on it.
func Open(ctx context.Context, r repo.Repo, opts ...Option) (*Node, error) {
	lr, err := r.Lock()
	if err != nil {
		return nil, xerrors.Errorf("locking repo: %w", err)
	}

	n := new(Node)
	n.stop, err = New(ctx, lr, n, opts...)
	if err != nil {
		_ = lr.Close()
		return nil, xerrors.Errorf("initializing node: %w", err)
	}
	return n, nil
}

// OpenPath opens the filesystem repo at path, which must be initialized.
func OpenPath(ctx context.Context, path string, opts ...Option) (*Node, error) {
	r, err := repo.NewFS(path)
	if err != nil {
		return nil, err
	}
	ok, err := r.Exists()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, xerrors.Errorf("repo at '%s' is not initialized, run 'konnect init' to set it up", path)
	}
	return Open(ctx, r, opts...)
}

// Close stops the node, closing the journal and the repo.
func (n *Node) Close(ctx context.Context) error {
	if n.stop == nil {
		return nil
	}
	stop := n.stop
	n.stop = nil
	return stop(ctx)
}

// Push signs a message from `from` to program `to`, applies it and flushes
// the resulting state to the repo. Extra signers must be in the wallet.
// A failed execution is not an error: its exit code is in the receipt.
func (n *Node) Push(ctx context.Context, from, to types.Key, method abi.MethodNum, params cbg.CBORMarshaler, remaining []types.Key, extra ...types.Key) (*vm.ApplyRet, error) {
	enc, aerr := vm.SerializeParams(params)
	if aerr != nil {
		return nil, xerrors.Errorf("serializing params: %w", aerr)
	}

	nonce, err := n.nonce(from)
	if err != nil {
		return nil, err
	}

	msg := &types.Message{
		From:      from,
		To:        to,
		Nonce:     nonce,
		Method:    method,
		Params:    enc,
		Remaining: remaining,
	}

	smsg, err := n.Wallet.SignMessage(ctx, msg, extra...)
	if err != nil {
		return nil, xerrors.Errorf("signing message: %w", err)
	}

	ret, err := n.VM.ApplyMessage(ctx, smsg)
	if err != nil {
		return nil, xerrors.Errorf("applying message: %w", err)
	}

	if err := n.flush(ctx); err != nil {
		return nil, err
	}
	return ret, nil
}

// Fund credits native balance to a principal.
func (n *Node) Fund(ctx context.Context, k types.Key, amount uint64) error {
	if err := n.VM.Fund(k, amount); err != nil {
		return err
	}
	return n.flush(ctx)
}

func (n *Node) nonce(k types.Key) (uint64, error) {
	acct, err := n.State.GetAccount(k)
	switch {
	case xerrors.Is(err, types.ErrAccountNotFound):
		return 0, nil
	case err != nil:
		return 0, xerrors.Errorf("loading %s: %w", k, err)
	}
	return acct.Nonce, nil
}

func (n *Node) flush(ctx context.Context) error {
	done := metrics.Timer(ctx, metrics.StateFlushDuration)
	defer done()

	if err := n.State.Flush(ctx); err != nil {
		return xerrors.Errorf("flushing state: %w", err)
	}
	return nil
}
