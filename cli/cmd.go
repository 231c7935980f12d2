package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	logging "github.com/ipfs/go-log/v2"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/konnect-labs/konnect/chain/types"
	"github.com/konnect-labs/konnect/node"
	"github.com/konnect-labs/konnect/node/repo"
)

var log = logging.Logger("cli")

const (
	metadataContext = "context"
)

// FlagRepo is the repo every command operates on.
var FlagRepo = &cli.StringFlag{
	Name:    "repo",
	EnvVars: []string{repo.EnvPath},
	Value:   repo.DefaultPath,
	Usage:   "path to the konnect repo",
}

var flagFrom = &cli.StringFlag{
	Name:  "from",
	Usage: "signing key, defaults to the wallet default",
}

var flagMarketplace = &cli.StringFlag{
	Name:  "marketplace",
	Usage: "marketplace record, defaults to Market.DefaultMarketplace",
}

// ReqContext returns context for cli execution. Calling it for the first time
// installs SIGTERM handler that will close returned context.
// Not safe for concurrent execution.
func ReqContext(cctx *cli.Context) context.Context {
	if uctx, ok := cctx.App.Metadata[metadataContext]; ok {
		// unchecked cast as if something else is in there
		// it is crash worthy either way
		return uctx.(context.Context)
	}

	ctx, done := context.WithCancel(cctx.Context)
	sigChan := make(chan os.Signal, 2)
	go func() {
		<-sigChan
		done()
	}()
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	if cctx.App.Metadata == nil {
		cctx.App.Metadata = map[string]interface{}{}
	}
	cctx.App.Metadata[metadataContext] = ctx
	return ctx
}

// GetNode opens the node of the repo selected by --repo. The closer must be
// called to flush the journal and release the repo lock.
func GetNode(cctx *cli.Context) (*node.Node, func(), error) {
	ctx := ReqContext(cctx)
	n, err := node.OpenPath(ctx, cctx.String(FlagRepo.Name))
	if err != nil {
		return nil, nil, err
	}
	return n, func() {
		if err := n.Close(context.Background()); err != nil {
			log.Errorw("closing node", "error", err)
		}
	}, nil
}

// fromKey returns --from, or the wallet default key.
func fromKey(cctx *cli.Context, n *node.Node) (types.Key, error) {
	if s := cctx.String(flagFrom.Name); s != "" {
		return types.NewKeyFromString(s)
	}
	k, err := n.Wallet.GetDefault()
	if err != nil {
		return types.Undef, xerrors.Errorf("no --from given and %w", err)
	}
	return k, nil
}

// marketplaceKey returns --marketplace, or the configured default.
func marketplaceKey(cctx *cli.Context, n *node.Node) (types.Key, error) {
	s := cctx.String(flagMarketplace.Name)
	if s == "" {
		s = n.Config.Market.DefaultMarketplace
	}
	if s == "" {
		return types.Undef, xerrors.New("no --marketplace given and Market.DefaultMarketplace is not set")
	}
	return types.NewKeyFromString(s)
}

// keyArg parses positional argument i as a key.
func keyArg(cctx *cli.Context, i int, what string) (types.Key, error) {
	if cctx.Args().Len() <= i {
		return types.Undef, ShowHelp(cctx, xerrors.Errorf("missing %s argument", what))
	}
	k, err := types.NewKeyFromString(cctx.Args().Get(i))
	if err != nil {
		return types.Undef, ShowHelp(cctx, xerrors.Errorf("parsing %s: %w", what, err))
	}
	return k, nil
}

func keyFlag(cctx *cli.Context, name string) (types.Key, error) {
	s := cctx.String(name)
	if s == "" {
		return types.Undef, ShowHelp(cctx, xerrors.Errorf("--%s is required", name))
	}
	k, err := types.NewKeyFromString(s)
	if err != nil {
		return types.Undef, xerrors.Errorf("parsing --%s: %w", name, err)
	}
	return k, nil
}

type AppFmt struct {
	w io.Writer
}

func NewAppFmt(a *cli.App) *AppFmt {
	return &AppFmt{w: a.Writer}
}

func (a *AppFmt) Print(args ...interface{}) {
	fmt.Fprint(a.w, args...)
}

func (a *AppFmt) Println(args ...interface{}) {
	fmt.Fprintln(a.w, args...)
}

func (a *AppFmt) Printf(fmtstr string, args ...interface{}) {
	fmt.Fprintf(a.w, fmtstr, args...)
}

var Commands = []*cli.Command{
	InitCmd,
	ConfigCmd,
	WalletCmd,
	TokenCmd,
	MarketplaceCmd,
	MerchantCmd,
	ListingCmd,
	BuyCmd,
	OrderCmd,
	StateCmd,
	KeysCmd,
}
