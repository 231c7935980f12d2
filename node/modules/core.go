package modules

import (
	"context"

	logging "github.com/ipfs/go-log/v2"
	"go.opencensus.io/stats"
	"go.opencensus.io/tag"
	"go.uber.org/fx"
	"golang.org/x/xerrors"

	"github.com/konnect-labs/konnect/build"
	"github.com/konnect-labs/konnect/chain/types"
	"github.com/konnect-labs/konnect/lib/konnectlog"
	"github.com/konnect-labs/konnect/metrics"
	"github.com/konnect-labs/konnect/node/config"
	"github.com/konnect-labs/konnect/node/modules/dtypes"
	"github.com/konnect-labs/konnect/node/modules/helpers"
	"github.com/konnect-labs/konnect/node/repo"
)

var log = logging.Logger("modules")

func LockedRepo(lr repo.LockedRepo) func(lc fx.Lifecycle) repo.LockedRepo {
	return func(lc fx.Lifecycle) repo.LockedRepo {
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return lr.Close()
			},
		})

		return lr
	}
}

func Config(lr repo.LockedRepo) (*config.Node, error) {
	return lr.Config()
}

func KeyStore(lr repo.LockedRepo) (types.KeyStore, error) {
	return lr.KeyStore()
}

func Datastore(mctx helpers.MetricsCtx, lr repo.LockedRepo) (dtypes.MetadataDS, error) {
	ds, err := lr.Datastore(mctx)
	if err != nil {
		return nil, xerrors.Errorf("opening datastore: %w", err)
	}
	return ds, nil
}

func SetLogLevels(cfg *config.Node) error {
	if err := konnectlog.SetLevels(cfg.Logging.SubsystemLevels); err != nil {
		return xerrors.Errorf("applying Logging.SubsystemLevels: %w", err)
	}
	return nil
}

// RecordInfo tags the info metric with the version of this binary.
func RecordInfo(mctx helpers.MetricsCtx) error {
	ctx, err := tag.New(mctx,
		tag.Insert(metrics.Version, build.UserVersion()),
		tag.Insert(metrics.Commit, build.CurrentCommit),
	)
	if err != nil {
		return err
	}
	stats.Record(ctx, metrics.KonnectInfo.M(1))
	return nil
}
