package cli

import (
	"strconv"

	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/konnect-labs/konnect/chain/types"
	"github.com/konnect-labs/konnect/lib/sigs"
)

var WalletCmd = &cli.Command{
	Name:  "wallet",
	Usage: "Manage wallet",
	Subcommands: []*cli.Command{
		walletNew,
		walletList,
		walletFund,
		walletSetDefault,
	},
}

var walletNew = &cli.Command{
	Name:  "new",
	Usage: "Generate a new ed25519 key",
	Action: func(cctx *cli.Context) error {
		n, closer, err := GetNode(cctx)
		if err != nil {
			return err
		}
		defer closer()

		afmt := NewAppFmt(cctx.App)

		nk, err := n.Wallet.GenerateKey(sigs.SigTypeEd25519)
		if err != nil {
			return err
		}

		afmt.Println(nk.String())
		return nil
	},
}

var walletList = &cli.Command{
	Name:  "list",
	Usage: "List wallet keys with their native balance",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "addr-only",
			Usage:   "Only print addresses",
			Aliases: []string{"a"},
		},
	},
	Action: func(cctx *cli.Context) error {
		n, closer, err := GetNode(cctx)
		if err != nil {
			return err
		}
		defer closer()

		afmt := NewAppFmt(cctx.App)

		addrs, err := n.Wallet.ListAddrs()
		if err != nil {
			return err
		}

		// Assume an error means no default key is set
		def, _ := n.Wallet.GetDefault()

		for _, addr := range addrs {
			if cctx.Bool("addr-only") {
				afmt.Println(addr.String())
				continue
			}

			var balance, nonce uint64
			acct, err := n.State.GetAccount(addr)
			switch {
			case err == nil:
				balance, nonce = acct.Balance, acct.Nonce
			case !xerrors.Is(err, types.ErrAccountNotFound):
				return err
			}

			mark := ""
			if addr == def {
				mark = " X"
			}
			afmt.Printf("%s\t%s\tnonce %d%s\n", addr, formatAmount(balance, 0), nonce, mark)
		}
		return nil
	},
}

var walletFund = &cli.Command{
	Name:      "fund",
	Usage:     "Credit native balance to a key",
	ArgsUsage: "[key] [amount]",
	Action: func(cctx *cli.Context) error {
		if cctx.NArg() != 2 {
			return ShowHelp(cctx, xerrors.New("expected a key and an amount"))
		}

		k, err := keyArg(cctx, 0, "key")
		if err != nil {
			return err
		}
		amount, err := strconv.ParseUint(cctx.Args().Get(1), 10, 64)
		if err != nil {
			return ShowHelp(cctx, xerrors.Errorf("parsing amount: %w", err))
		}

		n, closer, err := GetNode(cctx)
		if err != nil {
			return err
		}
		defer closer()

		if err := n.Fund(ReqContext(cctx), k, amount); err != nil {
			return err
		}

		acct, err := n.State.GetAccount(k)
		if err != nil {
			return err
		}
		NewAppFmt(cctx.App).Printf("%s balance %s\n", k, formatAmount(acct.Balance, 0))
		return nil
	},
}

var walletSetDefault = &cli.Command{
	Name:      "set-default",
	Usage:     "Set default wallet key",
	ArgsUsage: "[key]",
	Action: func(cctx *cli.Context) error {
		k, err := keyArg(cctx, 0, "key")
		if err != nil {
			return err
		}

		n, closer, err := GetNode(cctx)
		if err != nil {
			return err
		}
		defer closer()

		return n.Wallet.SetDefault(k)
	},
}
