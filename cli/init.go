package cli

import (
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/konnect-labs/konnect/lib/sigs"
	"github.com/konnect-labs/konnect/node/config"
	"github.com/konnect-labs/konnect/node/repo"
)

var InitCmd = &cli.Command{
	Name:  "init",
	Usage: "Initialize a konnect repo",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "no-key",
			Usage: "don't generate a default wallet key",
		},
	},
	Action: func(cctx *cli.Context) error {
		afmt := NewAppFmt(cctx.App)

		r, err := repo.NewFS(cctx.String(FlagRepo.Name))
		if err != nil {
			return err
		}

		log.Infow("initializing repo", "path", r.Path())
		if err := r.Init(); err != nil {
			if xerrors.Is(err, repo.ErrRepoExists) {
				return xerrors.Errorf("repo at '%s' is already initialized", r.Path())
			}
			return err
		}

		afmt.Printf("initialized repo at %s\n", r.Path())
		if cctx.Bool("no-key") {
			return nil
		}

		n, closer, err := GetNode(cctx)
		if err != nil {
			return err
		}
		defer closer()

		k, err := n.Wallet.GenerateKey(sigs.SigTypeEd25519)
		if err != nil {
			return xerrors.Errorf("generating default key: %w", err)
		}
		afmt.Printf("default key: %s\n", k)
		return nil
	},
}

var ConfigCmd = &cli.Command{
	Name:  "config",
	Usage: "Inspect the node configuration",
	Subcommands: []*cli.Command{
		configDefault,
		configShow,
	},
}

var configDefault = &cli.Command{
	Name:  "default",
	Usage: "Print the default config with every value commented out",
	Action: func(cctx *cli.Context) error {
		afmt := NewAppFmt(cctx.App)

		cb, err := config.ConfigComment(config.DefaultNode())
		if err != nil {
			return err
		}
		afmt.Print(string(cb))
		return nil
	},
}

var configShow = &cli.Command{
	Name:  "show",
	Usage: "Print the config of the repo as loaded",
	Action: func(cctx *cli.Context) error {
		afmt := NewAppFmt(cctx.App)

		n, closer, err := GetNode(cctx)
		if err != nil {
			return err
		}
		defer closer()

		cb, err := config.Encode(n.Config)
		if err != nil {
			return err
		}
		afmt.Print(string(cb))
		return nil
	},
}
