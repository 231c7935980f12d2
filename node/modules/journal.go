package modules

import (
	"context"

	"go.uber.org/fx"
	"golang.org/x/xerrors"

	"github.com/konnect-labs/konnect/journal"
	"github.com/konnect-labs/konnect/journal/fsjournal"
	"github.com/konnect-labs/konnect/node/config"
	"github.com/konnect-labs/konnect/node/repo"
)

// OpenFilesystemJournal constructs a rolling filesystem journal, with a
// lifecycle hook to close it on stop. A disabled journal records nothing.
func OpenFilesystemJournal(lr repo.LockedRepo, lc fx.Lifecycle, cfg *config.Node) (journal.Journal, error) {
	if cfg.Journal.Disabled {
		return journal.NilJournal(), nil
	}

	disabled, err := cfg.Journal.ParseDisabledEvents()
	if err != nil {
		return nil, xerrors.Errorf("parsing Journal.DisabledEvents: %w", err)
	}

	j, err := fsjournal.OpenFSJournal(lr, disabled,
		fsjournal.WithMaxSize(cfg.Journal.MaxFileSize),
		fsjournal.WithMaxBackups(cfg.Journal.MaxBackups),
	)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error { return j.Close() },
	})

	return j, nil
}

// InitJournal publishes j as the process wide journal.
func InitJournal(j journal.Journal) {
	journal.J = j
}
