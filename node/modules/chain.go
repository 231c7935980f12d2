package modules

import (
	"golang.org/x/xerrors"

	"github.com/konnect-labs/konnect/chain/state"
	"github.com/konnect-labs/konnect/chain/types"
	"github.com/konnect-labs/konnect/chain/vm"
	"github.com/konnect-labs/konnect/chain/wallet"
	"github.com/konnect-labs/konnect/journal"
	"github.com/konnect-labs/konnect/node/config"
	"github.com/konnect-labs/konnect/node/modules/dtypes"
)

func StateTree(ds dtypes.MetadataDS) *state.StateTree {
	return state.NewStateTree(ds)
}

func VM(st *state.StateTree, j journal.Journal, cfg *config.Node) (*vm.VM, error) {
	v, err := vm.NewVM(&vm.VMOpts{
		State:   st,
		Rent:    cfg.Rent.RentPolicy(),
		Journal: j,
	})
	if err != nil {
		return nil, xerrors.Errorf("creating vm: %w", err)
	}
	log.Debugw("vm ready", "programs", len(v.Programs().Entries()))
	return v, nil
}

func Wallet(ks types.KeyStore) (*wallet.Wallet, error) {
	return wallet.NewWallet(ks)
}
