package state

import (
	"context"
	"sort"

	"github.com/ipfs/go-datastore"
	"github.com/ipfs/go-datastore/namespace"
	dsq "github.com/ipfs/go-datastore/query"
	logging "github.com/ipfs/go-log/v2"
	"go.opencensus.io/trace"
	"golang.org/x/xerrors"

	"github.com/konnect-labs/konnect/chain/types"
)

var log = logging.Logger("statetree")

// AccountsPrefix is the datastore namespace holding flushed accounts.
var AccountsPrefix = datastore.NewKey("/state/accounts")

// Stores accounts by their key. Writes are staged in snapshot layers and only
// reach the datastore on Flush.
type StateTree struct {
	ds datastore.Batching

	snaps *stateSnaps
}

type stateSnaps struct {
	layers []map[types.Key]streeOp
}

type streeOp struct {
	Acct   types.Account
	Delete bool
}

func newStateSnaps() *stateSnaps {
	return &stateSnaps{
		layers: []map[types.Key]streeOp{make(map[types.Key]streeOp)},
	}
}

func (ss *stateSnaps) addLayer() {
	ss.layers = append(ss.layers, make(map[types.Key]streeOp))
}

func (ss *stateSnaps) dropLayer() {
	ss.layers[len(ss.layers)-1] = nil // allow it to be GCed
	ss.layers = ss.layers[:len(ss.layers)-1]
}

func (ss *stateSnaps) mergeLastLayer() {
	last := ss.layers[len(ss.layers)-1]
	nextLast := ss.layers[len(ss.layers)-2]

	for k, v := range last {
		nextLast[k] = v
	}

	ss.dropLayer()
}

func (ss *stateSnaps) getAccount(k types.Key) (*types.Account, error) {
	for i := len(ss.layers) - 1; i >= 0; i-- {
		op, ok := ss.layers[i][k]
		if ok {
			if op.Delete {
				return nil, types.ErrAccountNotFound
			}

			return op.Acct.Copy(), nil
		}
	}
	return nil, nil
}

func (ss *stateSnaps) setAccount(k types.Key, a *types.Account) {
	ss.layers[len(ss.layers)-1][k] = streeOp{Acct: *a.Copy()}
}

func (ss *stateSnaps) deleteAccount(k types.Key) {
	ss.layers[len(ss.layers)-1][k] = streeOp{Delete: true}
}

// NewStateTree opens a state tree over ds. Previously flushed accounts are
// read lazily.
func NewStateTree(ds datastore.Batching) *StateTree {
	return &StateTree{
		ds:    namespace.Wrap(ds, AccountsPrefix),
		snaps: newStateSnaps(),
	}
}

func dskey(k types.Key) datastore.Key {
	return datastore.NewKey(k.String())
}

func (st *StateTree) SetAccount(k types.Key, a *types.Account) error {
	if k.Empty() {
		return xerrors.Errorf("SetAccount called on undefined key")
	}
	st.snaps.setAccount(k, a)
	return nil
}

// GetAccount returns a copy of the account stored under k. Mutations of the
// returned value only take effect through SetAccount.
func (st *StateTree) GetAccount(k types.Key) (*types.Account, error) {
	if k.Empty() {
		return nil, xerrors.Errorf("GetAccount called on undefined key")
	}

	snapAcct, err := st.snaps.getAccount(k)
	if err != nil {
		return nil, err
	}
	if snapAcct != nil {
		return snapAcct, nil
	}

	b, err := st.ds.Get(context.TODO(), dskey(k))
	if err != nil {
		if err == datastore.ErrNotFound {
			return nil, types.ErrAccountNotFound
		}
		return nil, xerrors.Errorf("datastore get failed: %w", err)
	}

	acct, err := types.DecodeAccount(b)
	if err != nil {
		return nil, xerrors.Errorf("decoding account %s: %w", k, err)
	}

	st.snaps.setAccount(k, acct)

	return acct, nil
}

func (st *StateTree) HasAccount(k types.Key) (bool, error) {
	_, err := st.GetAccount(k)
	switch {
	case err == nil:
		return true, nil
	case xerrors.Is(err, types.ErrAccountNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (st *StateTree) DeleteAccount(k types.Key) error {
	if k.Empty() {
		return xerrors.Errorf("DeleteAccount called on undefined key")
	}

	if _, err := st.GetAccount(k); err != nil {
		return err
	}

	st.snaps.deleteAccount(k)

	return nil
}

func (st *StateTree) MutateAccount(k types.Key, f func(*types.Account) error) error {
	acct, err := st.GetAccount(k)
	if err != nil {
		return err
	}

	if err := f(acct); err != nil {
		return err
	}

	return st.SetAccount(k, acct)
}

// Flush writes the base layer to the datastore in a single batch.
func (st *StateTree) Flush(ctx context.Context) error {
	ctx, span := trace.StartSpan(ctx, "stateTree.Flush")
	defer span.End()
	if len(st.snaps.layers) != 1 {
		return xerrors.Errorf("tried to flush state tree with snapshots on the stack")
	}

	b, err := st.ds.Batch(ctx)
	if err != nil {
		return xerrors.Errorf("opening batch: %w", err)
	}

	for k, sto := range st.snaps.layers[0] {
		if sto.Delete {
			if err := b.Delete(ctx, dskey(k)); err != nil {
				return err
			}
			continue
		}

		data, err := sto.Acct.Serialize()
		if err != nil {
			return xerrors.Errorf("serializing account %s: %w", k, err)
		}
		if err := b.Put(ctx, dskey(k), data); err != nil {
			return err
		}
	}

	if err := b.Commit(ctx); err != nil {
		return xerrors.Errorf("committing state batch: %w", err)
	}

	log.Debugw("flushed state", "accounts", len(st.snaps.layers[0]))
	st.snaps.layers[0] = make(map[types.Key]streeOp)
	return nil
}

func (st *StateTree) Snapshot(ctx context.Context) error {
	_, span := trace.StartSpan(ctx, "stateTree.SnapShot")
	defer span.End()

	st.snaps.addLayer()

	return nil
}

func (st *StateTree) ClearSnapshot() {
	st.snaps.mergeLastLayer()
}

// Revert discards everything written since the last Snapshot. The snapshot
// itself stays open and still has to be cleared.
func (st *StateTree) Revert() error {
	st.snaps.dropLayer()
	st.snaps.addLayer()

	return nil
}

// Depth reports the number of open snapshots.
func (st *StateTree) Depth() int {
	return len(st.snaps.layers) - 1
}

// ListAccounts returns the keys of all accounts owned by owner, including
// unflushed ones, in ascending order. An empty owner lists every account.
func (st *StateTree) ListAccounts(ctx context.Context, owner types.Key) ([]types.Key, error) {
	seen := make(map[types.Key]bool)

	res, err := st.ds.Query(ctx, dsq.Query{})
	if err != nil {
		return nil, xerrors.Errorf("querying accounts: %w", err)
	}
	defer res.Close() //nolint:errcheck

	for r := range res.Next() {
		if r.Error != nil {
			return nil, xerrors.Errorf("reading query result: %w", r.Error)
		}

		k, err := types.NewKeyFromString(datastore.RawKey(r.Key).BaseNamespace())
		if err != nil {
			log.Warnw("skipping malformed state key", "key", r.Key, "error", err)
			continue
		}
		seen[k] = true
	}

	for _, layer := range st.snaps.layers {
		for k := range layer {
			seen[k] = true
		}
	}

	var out []types.Key
	for k := range seen {
		acct, err := st.GetAccount(k)
		if xerrors.Is(err, types.ErrAccountNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if owner.Empty() || acct.Owner == owner {
			out = append(out, k)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})
	return out, nil
}
