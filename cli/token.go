package cli

import (
	"strconv"

	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/konnect-labs/konnect/chain/actors/builtin"
	"github.com/konnect-labs/konnect/chain/actors/builtin/token"
	"github.com/konnect-labs/konnect/chain/types"
)

var TokenCmd = &cli.Command{
	Name:  "token",
	Usage: "Interact with the token program",
	Subcommands: []*cli.Command{
		tokenCreateAsset,
		tokenMint,
		tokenOpen,
		tokenBalance,
	},
}

var tokenCreateAsset = &cli.Command{
	Name:      "create-asset",
	Usage:     "Create an asset minted by the signer",
	ArgsUsage: "[seed]",
	Flags: []cli.Flag{
		flagFrom,
		&cli.UintFlag{
			Name:  "decimals",
			Value: 6,
		},
	},
	Action: func(cctx *cli.Context) error {
		if cctx.NArg() != 1 {
			return ShowHelp(cctx, xerrors.New("expected an asset seed"))
		}
		decimals := cctx.Uint("decimals")
		if decimals > 255 {
			return xerrors.Errorf("decimals %d out of range", decimals)
		}

		n, closer, err := GetNode(cctx)
		if err != nil {
			return err
		}
		defer closer()
		ctx := ReqContext(cctx)
		afmt := NewAppFmt(cctx.App)

		from, err := fromKey(cctx, n)
		if err != nil {
			return err
		}

		ret, err := n.Push(ctx, from, builtin.TokenProgramKey, builtin.MethodsToken.CreateAsset, &token.CreateAssetParams{
			Authority: from,
			Decimals:  uint8(decimals),
			Seed:      []byte(cctx.Args().First()),
		}, nil)
		if err != nil {
			return err
		}
		if err := printReceipt(afmt, ret); err != nil {
			return err
		}

		asset, err := types.NewKeyFromBytes(ret.Return)
		if err != nil {
			return err
		}
		afmt.Printf("asset: %s\n", asset)
		return nil
	},
}

var tokenMint = &cli.Command{
	Name:      "mint",
	Usage:     "Mint an amount of an asset into the associated holding of owner",
	ArgsUsage: "[asset] [owner] [amount]",
	Flags: []cli.Flag{
		flagFrom,
	},
	Action: func(cctx *cli.Context) error {
		if cctx.NArg() != 3 {
			return ShowHelp(cctx, xerrors.New("expected an asset, an owner and an amount"))
		}
		asset, err := keyArg(cctx, 0, "asset")
		if err != nil {
			return err
		}
		owner, err := keyArg(cctx, 1, "owner")
		if err != nil {
			return err
		}
		amount, err := strconv.ParseUint(cctx.Args().Get(2), 10, 64)
		if err != nil {
			return ShowHelp(cctx, xerrors.Errorf("parsing amount: %w", err))
		}

		n, closer, err := GetNode(cctx)
		if err != nil {
			return err
		}
		defer closer()

		from, err := fromKey(cctx, n)
		if err != nil {
			return err
		}

		ret, err := n.Push(ReqContext(cctx), from, builtin.TokenProgramKey, builtin.MethodsToken.MintTo, &token.MintToParams{
			Asset:   asset,
			Holding: token.AssociatedHolding(owner, asset),
			Amount:  amount,
		}, nil)
		if err != nil {
			return err
		}
		return printReceipt(NewAppFmt(cctx.App), ret)
	},
}

var tokenOpen = &cli.Command{
	Name:      "open",
	Usage:     "Open the associated holding of owner for an asset",
	ArgsUsage: "[asset] [owner (default: signer)]",
	Flags: []cli.Flag{
		flagFrom,
	},
	Action: func(cctx *cli.Context) error {
		asset, err := keyArg(cctx, 0, "asset")
		if err != nil {
			return err
		}

		n, closer, err := GetNode(cctx)
		if err != nil {
			return err
		}
		defer closer()
		afmt := NewAppFmt(cctx.App)

		from, err := fromKey(cctx, n)
		if err != nil {
			return err
		}
		owner := from
		if cctx.NArg() > 1 {
			if owner, err = keyArg(cctx, 1, "owner"); err != nil {
				return err
			}
		}

		ret, err := n.Push(ReqContext(cctx), from, builtin.TokenProgramKey, builtin.MethodsToken.OpenHolding, &token.OpenHoldingParams{
			Payer: from,
			Owner: owner,
			Asset: asset,
		}, nil)
		if err != nil {
			return err
		}
		if err := printReceipt(afmt, ret); err != nil {
			return err
		}
		afmt.Printf("holding: %s\n", token.AssociatedHolding(owner, asset))
		return nil
	},
}

var tokenBalance = &cli.Command{
	Name:      "balance",
	Usage:     "Print the amount in the associated holding of owner",
	ArgsUsage: "[asset] [owner (default: wallet default)]",
	Action: func(cctx *cli.Context) error {
		asset, err := keyArg(cctx, 0, "asset")
		if err != nil {
			return err
		}

		n, closer, err := GetNode(cctx)
		if err != nil {
			return err
		}
		defer closer()

		owner, err := fromKey(cctx, n)
		if err != nil {
			return err
		}
		if cctx.NArg() > 1 {
			if owner, err = keyArg(cctx, 1, "owner"); err != nil {
				return err
			}
		}

		assetAcct, err := n.State.GetAccount(asset)
		if err != nil {
			return xerrors.Errorf("loading asset: %w", err)
		}
		a, err := token.LoadAsset(assetAcct)
		if err != nil {
			return err
		}

		hk := token.AssociatedHolding(owner, asset)
		acct, err := n.State.GetAccount(hk)
		if err != nil {
			return xerrors.Errorf("loading holding %s: %w", hk, err)
		}
		h, err := token.LoadHolding(acct)
		if err != nil {
			return err
		}

		NewAppFmt(cctx.App).Printf("%s (%d base units)\n", formatAmount(h.Amount, a.Decimals), h.Amount)
		return nil
	},
}
