package main

import (
	logging "github.com/ipfs/go-log/v2"
	"github.com/urfave/cli/v2"
	"go.opencensus.io/stats/view"
	"golang.org/x/xerrors"

	"github.com/konnect-labs/konnect/build"
	lcli "github.com/konnect-labs/konnect/cli"
	"github.com/konnect-labs/konnect/lib/konnectlog"
	"github.com/konnect-labs/konnect/lib/tracing"
	"github.com/konnect-labs/konnect/metrics"
)

var log = logging.Logger("konnect")

func main() {
	konnectlog.SetupLogLevels()

	if err := view.Register(metrics.DefaultViews...); err != nil {
		log.Fatalf("Cannot register the view: %v", err)
	}

	tp := tracing.SetupJaegerTracing("konnect")

	app := &cli.App{
		Name:                 "konnect",
		Usage:                "Marketplace and escrow programs over a local ledger",
		Version:              build.UserVersion(),
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			lcli.FlagRepo,
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "level of every subsystem, overriding the defaults",
			},
		},
		Before: func(cctx *cli.Context) error {
			if lvl := cctx.String("log-level"); lvl != "" {
				if err := logging.SetLogLevel("*", lvl); err != nil {
					return xerrors.Errorf("setting log level: %w", err)
				}
			}
			return nil
		},
		After: func(cctx *cli.Context) error {
			if tp != nil {
				return tp.Shutdown(cctx.Context)
			}
			return nil
		},
		Commands: lcli.Commands,
	}

	lcli.RunApp(app)
}
