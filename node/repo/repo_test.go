package repo

import (
	"context"
	"testing"

	"github.com/ipfs/go-datastore"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/konnect-labs/konnect/chain/types"
	"github.com/konnect-labs/konnect/node/config"
)

func basicTest(t *testing.T, repo Repo) {
	lrepo, err := repo.Lock()
	require.NoError(t, err, "should be able to lock once")
	require.NotNil(t, lrepo, "locked repo shouldn't be nil")

	{
		lrepo2, err := repo.Lock()
		if assert := require.New(t); true {
			assert.Error(err)
			assert.True(xerrors.Is(err, ErrRepoAlreadyLocked))
			assert.Nil(lrepo2, "with locking error, lrepo2 should be nil")
		}
	}

	err = lrepo.Close()
	require.NoError(t, err, "should be able to unlock")

	lrepo, err = repo.Lock()
	require.NoError(t, err, "should be able to relock")
	require.NotNil(t, lrepo, "locked repo shouldn't be nil")

	ds, err := lrepo.Datastore(context.Background())
	require.NoError(t, err)
	k := datastore.NewKey("/accounts/x")
	require.NoError(t, ds.Put(context.Background(), k, []byte("v")))
	v, err := ds.Get(context.Background(), k)
	require.NoError(t, err)
	require.Equal(t, []byte("v"), v)

	cfg, err := lrepo.Config()
	require.NoError(t, err)
	require.Equal(t, config.DefaultNode().Rent, cfg.Rent)

	require.NoError(t, lrepo.SetConfig(func(c *config.Node) {
		c.Market.DefaultMarketplace = "mp"
	}))
	cfg, err = lrepo.Config()
	require.NoError(t, err)
	require.Equal(t, "mp", cfg.Market.DefaultMarketplace)

	kstr, err := lrepo.KeyStore()
	require.NoError(t, err, "should be able to get keystore")
	require.NotNil(t, lrepo, "keystore shouldn't be nil")

	list, err := kstr.List()
	require.NoError(t, err, "should be able to list key")
	require.Empty(t, list, "there should be no keys")

	k1 := types.KeyInfo{Type: types.KTEd25519, PrivateKey: []byte("foo")}
	err = kstr.Put("k1", k1)
	require.NoError(t, err, "should be able to put k1")

	err = kstr.Put("k1", k1)
	if assert := require.New(t); true {
		assert.Error(err, "putting key under the same name should error")
		assert.True(xerrors.Is(err, types.ErrKeyExists), "returned error is ErrKeyExists")
	}

	k1prim, err := kstr.Get("k1")
	require.NoError(t, err, "should be able to get k1")
	require.Equal(t, k1, k1prim, "returned key should be the same")

	k2prim, err := kstr.Get("k2")
	if assert := require.New(t); true {
		assert.Error(err, "should be able to get k2")
		assert.True(xerrors.Is(err, types.ErrKeyInfoNotFound), "returned error is ErrKeyNotFound")
		assert.Empty(k2prim, "there should be no output for k2")
	}

	list, err = kstr.List()
	require.NoError(t, err, "should be able to list keys")
	require.Equal(t, []string{"k1"}, list)

	err = kstr.Delete("k2")
	require.True(t, xerrors.Is(err, types.ErrKeyInfoNotFound))

	require.NoError(t, kstr.Delete("k1"))
	list, err = kstr.List()
	require.NoError(t, err)
	require.Empty(t, list)

	require.NoError(t, lrepo.Close())
	_, err = lrepo.KeyStore()
	require.True(t, xerrors.Is(err, ErrClosedRepo))
}

func TestMemBasic(t *testing.T) {
	repo := NewMemory(nil)
	defer repo.Cleanup()
	basicTest(t, repo)
}
