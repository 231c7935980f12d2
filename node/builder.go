package node

import (
	"context"

	logging "github.com/ipfs/go-log/v2"
	"go.uber.org/fx"
	"golang.org/x/xerrors"

	"github.com/konnect-labs/konnect/node/modules"
	"github.com/konnect-labs/konnect/node/modules/helpers"
	"github.com/konnect-labs/konnect/node/repo"
)

var log = logging.Logger("builder")

// StopFunc is used to stop a node
type StopFunc func(context.Context) error

// Option customizes the fx app assembled by New, mostly for tests.
type Option func(*Settings)

type Settings struct {
	decorators []interface{}
	invokes    []interface{}
}

// Override decorates a default component, e.g. to tweak the config before
// anything else sees it.
func Override(decorators ...interface{}) Option {
	return func(s *Settings) {
		s.decorators = append(s.decorators, decorators...)
	}
}

// Invoke runs fn after the node has been assembled.
func Invoke(fn interface{}) Option {
	return func(s *Settings) {
		s.invokes = append(s.invokes, fn)
	}
}

func defaults(ctx context.Context, lr repo.LockedRepo) []interface{} {
	return []interface{}{
		func() helpers.MetricsCtx { return helpers.MetricsCtx(ctx) },
		modules.LockedRepo(lr),
		modules.Config,
		modules.KeyStore,
		modules.Datastore,
		modules.OpenFilesystemJournal,
		modules.StateTree,
		modules.VM,
		modules.Wallet,
	}
}

// New assembles a node on top of an already locked repo and populates out.
// The returned StopFunc closes the journal and releases the repo lock.
func New(ctx context.Context, lr repo.LockedRepo, out *Node, opts ...Option) (StopFunc, error) {
	settings := &Settings{}
	for _, opt := range opts {
		opt(settings)
	}

	invokes := []interface{}{
		modules.SetLogLevels,
		modules.InitJournal,
		modules.RecordInfo,
	}
	invokes = append(invokes, settings.invokes...)

	fxopts := []fx.Option{
		fx.NopLogger,
		fx.Provide(defaults(ctx, lr)...),
	}
	if len(settings.decorators) > 0 {
		fxopts = append(fxopts, fx.Decorate(settings.decorators...))
	}
	for _, inv := range invokes {
		fxopts = append(fxopts, fx.Invoke(inv))
	}
	fxopts = append(fxopts, fx.Populate(&out.Repo, &out.Config, &out.State, &out.VM, &out.Wallet, &out.Journal))

	app := fx.New(fxopts...)

	if err := app.Start(ctx); err != nil {
		// comment fx.NopLogger few lines above for easier debugging
		return nil, xerrors.Errorf("starting node: %w", err)
	}

	log.Debugw("node started", "repo", lr.Path())
	return app.Stop, nil
}
