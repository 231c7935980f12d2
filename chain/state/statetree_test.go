package state

import (
	"context"
	"testing"

	ds "github.com/ipfs/go-datastore"
	ds_sync "github.com/ipfs/go-datastore/sync"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/konnect-labs/konnect/chain/types"
	"github.com/konnect-labs/konnect/chain/types/mock"
)

func BenchmarkStateTreeSet(b *testing.B) {
	st := NewStateTree(ds_sync.MutexWrap(ds.NewMapDatastore()))

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		err := st.SetAccount(mock.Key(uint64(i)), &types.Account{
			Balance: 1258812523,
			Nonce:   uint64(i),
		})
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkStateTreeSetFlush(b *testing.B) {
	ctx := context.Background()
	st := NewStateTree(ds_sync.MutexWrap(ds.NewMapDatastore()))

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		err := st.SetAccount(mock.Key(uint64(i)), &types.Account{
			Balance: 1258812523,
			Nonce:   uint64(i),
		})
		if err != nil {
			b.Fatal(err)
		}
		if err := st.Flush(ctx); err != nil {
			b.Fatal(err)
		}
	}
}

func TestSnapshotRevert(t *testing.T) {
	ctx := context.Background()
	st := NewStateTree(ds_sync.MutexWrap(ds.NewMapDatastore()))

	k := mock.Key(1)
	require.NoError(t, st.SetAccount(k, &types.Account{Balance: 10}))

	require.NoError(t, st.Snapshot(ctx))
	require.NoError(t, st.MutateAccount(k, func(a *types.Account) error {
		a.Balance = 5
		a.Data = []byte{1, 2, 3}
		return nil
	}))
	k2 := mock.Key(2)
	require.NoError(t, st.SetAccount(k2, &types.Account{Balance: 1}))

	a, err := st.GetAccount(k)
	require.NoError(t, err)
	require.Equal(t, uint64(5), a.Balance)

	require.NoError(t, st.Revert())
	st.ClearSnapshot()

	a, err = st.GetAccount(k)
	require.NoError(t, err)
	require.Equal(t, uint64(10), a.Balance)
	require.Empty(t, a.Data)

	_, err = st.GetAccount(k2)
	require.True(t, xerrors.Is(err, types.ErrAccountNotFound))
}

func TestSnapshotMerge(t *testing.T) {
	ctx := context.Background()
	st := NewStateTree(ds_sync.MutexWrap(ds.NewMapDatastore()))

	k := mock.Key(1)
	require.NoError(t, st.Snapshot(ctx))
	require.NoError(t, st.Snapshot(ctx))
	require.NoError(t, st.SetAccount(k, &types.Account{Balance: 7}))
	st.ClearSnapshot()
	require.Equal(t, 1, st.Depth())
	st.ClearSnapshot()

	a, err := st.GetAccount(k)
	require.NoError(t, err)
	require.Equal(t, uint64(7), a.Balance)
}

func TestGetAccountReturnsCopy(t *testing.T) {
	st := NewStateTree(ds_sync.MutexWrap(ds.NewMapDatastore()))

	k := mock.Key(1)
	require.NoError(t, st.SetAccount(k, &types.Account{Data: []byte{1}}))

	a, err := st.GetAccount(k)
	require.NoError(t, err)
	a.Data[0] = 9
	a.Balance = 100

	b, err := st.GetAccount(k)
	require.NoError(t, err)
	require.Equal(t, []byte{1}, b.Data)
	require.Zero(t, b.Balance)
}

func TestFlushAndReload(t *testing.T) {
	ctx := context.Background()
	mds := ds_sync.MutexWrap(ds.NewMapDatastore())
	st := NewStateTree(mds)

	owner := mock.Key(100)
	k1, k2, k3 := mock.Key(1), mock.Key(2), mock.Key(3)
	require.NoError(t, st.SetAccount(k1, &types.Account{Owner: owner, Balance: 1, Data: []byte("one")}))
	require.NoError(t, st.SetAccount(k2, &types.Account{Owner: owner, Balance: 2}))
	require.NoError(t, st.SetAccount(k3, &types.Account{Balance: 3}))

	require.NoError(t, st.Snapshot(ctx))
	require.Error(t, st.Flush(ctx), "flush with open snapshot")
	st.ClearSnapshot()

	require.NoError(t, st.Flush(ctx))

	// the batch landed in the backing datastore under the accounts prefix
	has, err := mds.Has(ctx, AccountsPrefix.Child(ds.NewKey(k3.String())))
	require.NoError(t, err)
	require.True(t, has)

	st2 := NewStateTree(mds)
	a, err := st2.GetAccount(k1)
	require.NoError(t, err)
	require.Equal(t, owner, a.Owner)
	require.Equal(t, []byte("one"), a.Data)

	owned, err := st2.ListAccounts(ctx, owner)
	require.NoError(t, err)
	require.ElementsMatch(t, []types.Key{k1, k2}, owned)

	require.NoError(t, st2.DeleteAccount(k2))
	owned, err = st2.ListAccounts(ctx, owner)
	require.NoError(t, err)
	require.Equal(t, []types.Key{k1}, owned)

	require.NoError(t, st2.Flush(ctx))
	has, err = NewStateTree(mds).HasAccount(k2)
	require.NoError(t, err)
	require.False(t, has)

	all, err := st2.ListAccounts(ctx, types.Undef)
	require.NoError(t, err)
	require.Len(t, all, 2)
}
