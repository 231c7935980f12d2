package repo

import (
	"context"

	"github.com/ipfs/go-datastore"
	"golang.org/x/xerrors"

	"github.com/konnect-labs/konnect/chain/types"
	"github.com/konnect-labs/konnect/node/config"
)

var (
	ErrRepoAlreadyLocked = xerrors.New("repo is already locked")
	ErrClosedRepo        = xerrors.New("repo is no longer open")
)

type Repo interface {
	// Lock locks the repo for exclusive use.
	Lock() (LockedRepo, error)
}

type LockedRepo interface {
	// Close closes repo and removes lock.
	Close() error

	// Path returns the directory of the repo. Journal files live under it.
	Path() string

	// Readonly reports whether the datastore was opened read-only.
	Readonly() bool

	// Returns the state datastore of this repo.
	Datastore(ctx context.Context) (datastore.Batching, error)

	// Returns config in this repo
	Config() (*config.Node, error)
	SetConfig(func(*config.Node)) error

	// KeyStore returns store of private keys for signing messages
	KeyStore() (types.KeyStore, error)
}
