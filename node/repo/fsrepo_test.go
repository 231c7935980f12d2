package repo

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ipfs/go-datastore"
	"github.com/stretchr/testify/require"

	"github.com/konnect-labs/konnect/node/config"
)

func genFsRepo(t *testing.T) *FsRepo {
	path := t.TempDir()

	repo, err := NewFS(path)
	require.NoError(t, err)

	err = repo.Init()
	require.NoError(t, err)
	return repo
}

func TestFsBasic(t *testing.T) {
	repo := genFsRepo(t)
	basicTest(t, repo)
}

func TestFsInit(t *testing.T) {
	repo := genFsRepo(t)
	require.ErrorIs(t, repo.Init(), ErrRepoExists)

	b, err := os.ReadFile(filepath.Join(repo.Path(), fsConfig))
	require.NoError(t, err)
	require.Contains(t, string(b), "# Default config:")

	fi, err := os.Stat(filepath.Join(repo.Path(), fsKeystore))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0700), fi.Mode().Perm())
}

func TestFsDatastorePersists(t *testing.T) {
	repo := genFsRepo(t)
	ctx := context.Background()
	k := datastore.NewKey("/accounts/x")

	lr, err := repo.Lock()
	require.NoError(t, err)
	require.NoError(t, lr.SetConfig(func(c *config.Node) {
		c.Datastore.Path = "state"
	}))
	ds, err := lr.Datastore(ctx)
	require.NoError(t, err)
	require.NoError(t, ds.Put(ctx, k, []byte("v")))
	require.NoError(t, lr.Close())

	_, err = os.Stat(filepath.Join(repo.Path(), "state"))
	require.NoError(t, err)

	lr, err = repo.LockRO()
	require.NoError(t, err)
	require.True(t, lr.Readonly())
	ds, err = lr.Datastore(ctx)
	require.NoError(t, err)
	v, err := ds.Get(ctx, k)
	require.NoError(t, err)
	require.Equal(t, []byte("v"), v)
	require.NoError(t, lr.Close())
}

func TestFsVersionMismatch(t *testing.T) {
	repo := genFsRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(repo.Path(), fsVersion), []byte("0.9.0"), 0644))

	_, err := repo.Lock()
	require.Error(t, err)
	require.Contains(t, err.Error(), "incompatible")
}

func TestPathFromEnv(t *testing.T) {
	t.Setenv(EnvPath, "")
	require.Equal(t, DefaultPath, PathFromEnv())

	t.Setenv(EnvPath, "/tmp/konnect")
	require.Equal(t, "/tmp/konnect", PathFromEnv())
}
