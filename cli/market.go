package cli

import (
	"strconv"

	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/konnect-labs/konnect/chain/actors/builtin"
	"github.com/konnect-labs/konnect/chain/actors/builtin/market"
	"github.com/konnect-labs/konnect/chain/actors/builtin/token"
	"github.com/konnect-labs/konnect/chain/types"
	"github.com/konnect-labs/konnect/node"
	"github.com/konnect-labs/konnect/node/config"
)

func loadRecord[T any](n *node.Node, k types.Key, what string, load func(*types.Account) (*T, error)) (*T, error) {
	acct, err := n.State.GetAccount(k)
	if err != nil {
		return nil, xerrors.Errorf("loading %s %s: %w", what, k, err)
	}
	rec, err := load(acct)
	if err != nil {
		return nil, xerrors.Errorf("decoding %s %s: %w", what, k, err)
	}
	return rec, nil
}

func parseFee(s string) (uint64, error) {
	fee, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, xerrors.Errorf("parsing fee: %w", err)
	}
	return fee, nil
}

var MarketplaceCmd = &cli.Command{
	Name:  "marketplace",
	Usage: "Manage marketplaces",
	Subcommands: []*cli.Command{
		marketplaceInit,
		marketplaceUpdate,
	},
}

var marketplaceInit = &cli.Command{
	Name:      "init",
	Usage:     "Create the marketplace of the signer",
	ArgsUsage: "[fee bps]",
	Flags: []cli.Flag{
		flagFrom,
		&cli.BoolFlag{
			Name:  "set-default",
			Usage: "store the marketplace as Market.DefaultMarketplace",
		},
	},
	Action: func(cctx *cli.Context) error {
		if cctx.NArg() != 1 {
			return ShowHelp(cctx, xerrors.New("expected a fee in basis points"))
		}
		fee, err := parseFee(cctx.Args().First())
		if err != nil {
			return ShowHelp(cctx, err)
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

		ret, err := n.Push(ReqContext(cctx), from, builtin.MarketProgramKey, builtin.MethodsMarket.InitMarketplace, &market.InitMarketplaceParams{
			Authority: from,
			FeeBps:    fee,
		}, nil)
		if err != nil {
			return err
		}
		if err := printReceipt(afmt, ret); err != nil {
			return err
		}

		mk := market.MarketplaceKey(from)
		afmt.Printf("marketplace: %s\n", mk)

		if cctx.Bool("set-default") {
			return n.Repo.SetConfig(func(cfg *config.Node) {
				cfg.Market.DefaultMarketplace = mk.String()
			})
		}
		return nil
	},
}

var marketplaceUpdate = &cli.Command{
	Name:  "update",
	Usage: "Change the fee or the authority of a marketplace",
	Flags: []cli.Flag{
		flagFrom,
		flagMarketplace,
		&cli.StringFlag{
			Name:  "fee",
			Usage: "new fee in basis points",
		},
		&cli.StringFlag{
			Name:  "authority",
			Usage: "new authority key",
		},
	},
	Action: func(cctx *cli.Context) error {
		params := &market.UpdateMarketplaceParams{}
		if cctx.IsSet("fee") {
			fee, err := parseFee(cctx.String("fee"))
			if err != nil {
				return ShowHelp(cctx, err)
			}
			params.NewFeeBps = &fee
		}
		if cctx.IsSet("authority") {
			k, err := keyFlag(cctx, "authority")
			if err != nil {
				return err
			}
			params.NewAuthority = &k
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
		mk, err := marketplaceKey(cctx, n)
		if err != nil {
			return err
		}
		params.Marketplace = mk
		params.Authority = from

		ret, err := n.Push(ReqContext(cctx), from, builtin.MarketProgramKey, builtin.MethodsMarket.UpdateMarketplace, params, nil)
		if err != nil {
			return err
		}
		return printReceipt(NewAppFmt(cctx.App), ret)
	},
}

var MerchantCmd = &cli.Command{
	Name:  "merchant",
	Usage: "Manage merchants",
	Subcommands: []*cli.Command{
		merchantRegister,
		merchantVerify,
	},
}

var merchantRegister = &cli.Command{
	Name:  "register",
	Usage: "Register the signer as a merchant of a marketplace",
	Flags: []cli.Flag{
		flagFrom,
		flagMarketplace,
	},
	Action: func(cctx *cli.Context) error {
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
		mk, err := marketplaceKey(cctx, n)
		if err != nil {
			return err
		}

		ret, err := n.Push(ReqContext(cctx), from, builtin.MarketProgramKey, builtin.MethodsMarket.RegisterMerchant, &market.RegisterMerchantParams{
			Marketplace: mk,
			Owner:       from,
		}, nil)
		if err != nil {
			return err
		}
		if err := printReceipt(afmt, ret); err != nil {
			return err
		}
		afmt.Printf("merchant: %s\n", market.MerchantKey(mk, from))
		return nil
	},
}

var merchantVerify = &cli.Command{
	Name:      "verify",
	Usage:     "Set the verified flag of a merchant, as the marketplace authority",
	ArgsUsage: "[merchant]",
	Flags: []cli.Flag{
		flagFrom,
		flagMarketplace,
		&cli.BoolFlag{
			Name:  "revoke",
			Usage: "clear the flag instead",
		},
	},
	Action: func(cctx *cli.Context) error {
		merchant, err := keyArg(cctx, 0, "merchant")
		if err != nil {
			return err
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
		mk, err := marketplaceKey(cctx, n)
		if err != nil {
			return err
		}

		ret, err := n.Push(ReqContext(cctx), from, builtin.MarketProgramKey, builtin.MethodsMarket.SetMerchantStatus, &market.SetMerchantStatusParams{
			Merchant:    merchant,
			Marketplace: mk,
			Authority:   from,
			Verified:    !cctx.Bool("revoke"),
		}, nil)
		if err != nil {
			return err
		}
		return printReceipt(NewAppFmt(cctx.App), ret)
	},
}

var ListingCmd = &cli.Command{
	Name:  "listing",
	Usage: "Manage listings",
	Subcommands: []*cli.Command{
		listingCreate,
		listingUpdate,
	},
}

var listingCreate = &cli.Command{
	Name:      "create",
	Usage:     "List an asset priced offer under the signer's merchant",
	ArgsUsage: "[asset] [unit price] [quantity]",
	Flags: []cli.Flag{
		flagFrom,
		flagMarketplace,
		&cli.BoolFlag{
			Name:  "service",
			Usage: "sell a service paid through escrow",
		},
	},
	Action: func(cctx *cli.Context) error {
		if cctx.NArg() != 3 {
			return ShowHelp(cctx, xerrors.New("expected an asset, a price and a quantity"))
		}
		asset, err := keyArg(cctx, 0, "asset")
		if err != nil {
			return err
		}
		price, err := strconv.ParseUint(cctx.Args().Get(1), 10, 64)
		if err != nil {
			return ShowHelp(cctx, xerrors.Errorf("parsing price: %w", err))
		}
		quantity, err := strconv.ParseUint(cctx.Args().Get(2), 10, 32)
		if err != nil {
			return ShowHelp(cctx, xerrors.Errorf("parsing quantity: %w", err))
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
		mk, err := marketplaceKey(cctx, n)
		if err != nil {
			return err
		}
		merchant := market.MerchantKey(mk, from)

		ret, err := n.Push(ReqContext(cctx), from, builtin.MarketProgramKey, builtin.MethodsMarket.CreateListing, &market.CreateListingParams{
			Marketplace: mk,
			Merchant:    merchant,
			Owner:       from,
			Asset:       asset,
			Price:       price,
			Quantity:    quantity,
			IsService:   cctx.Bool("service"),
		}, nil)
		if err != nil {
			return err
		}
		if err := printReceipt(afmt, ret); err != nil {
			return err
		}
		afmt.Printf("listing: %s\n", market.ListingKey(mk, merchant, asset))
		return nil
	},
}

var listingUpdate = &cli.Command{
	Name:      "update",
	Usage:     "Change the price, quantity or active flag of a listing",
	ArgsUsage: "[listing]",
	Flags: []cli.Flag{
		flagFrom,
		&cli.StringFlag{
			Name:  "price",
			Usage: "new unit price",
		},
		&cli.StringFlag{
			Name:  "quantity",
			Usage: "new quantity",
		},
		&cli.StringFlag{
			Name:  "active",
			Usage: "true or false",
		},
	},
	Action: func(cctx *cli.Context) error {
		listing, err := keyArg(cctx, 0, "listing")
		if err != nil {
			return err
		}

		params := &market.UpdateListingParams{Listing: listing}
		if cctx.IsSet("price") {
			v, err := strconv.ParseUint(cctx.String("price"), 10, 64)
			if err != nil {
				return ShowHelp(cctx, xerrors.Errorf("parsing price: %w", err))
			}
			params.NewPrice = &v
		}
		if cctx.IsSet("quantity") {
			v, err := strconv.ParseUint(cctx.String("quantity"), 10, 32)
			if err != nil {
				return ShowHelp(cctx, xerrors.Errorf("parsing quantity: %w", err))
			}
			params.NewQuantity = &v
		}
		if cctx.IsSet("active") {
			v, err := strconv.ParseBool(cctx.String("active"))
			if err != nil {
				return ShowHelp(cctx, xerrors.Errorf("parsing active: %w", err))
			}
			params.NewActive = &v
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
		params.Seller = from

		ret, err := n.Push(ReqContext(cctx), from, builtin.MarketProgramKey, builtin.MethodsMarket.UpdateListing, params, nil)
		if err != nil {
			return err
		}
		return printReceipt(NewAppFmt(cctx.App), ret)
	},
}

var flagReference = &cli.StringFlag{
	Name:     "reference",
	Usage:    "correlation key echoed in the order events",
	Required: true,
}

var BuyCmd = &cli.Command{
	Name:      "buy",
	Usage:     "Buy units of a goods listing, paying seller and treasury at once",
	ArgsUsage: "[listing] [quantity]",
	Flags: []cli.Flag{
		flagFrom,
		flagReference,
	},
	Action: func(cctx *cli.Context) error {
		if cctx.NArg() != 2 {
			return ShowHelp(cctx, xerrors.New("expected a listing and a quantity"))
		}
		lk, err := keyArg(cctx, 0, "listing")
		if err != nil {
			return err
		}
		quantity, err := strconv.ParseUint(cctx.Args().Get(1), 10, 32)
		if err != nil {
			return ShowHelp(cctx, xerrors.Errorf("parsing quantity: %w", err))
		}
		reference, err := keyFlag(cctx, flagReference.Name)
		if err != nil {
			return err
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

		l, err := loadRecord(n, lk, "listing", market.LoadListing)
		if err != nil {
			return err
		}
		mp, err := loadRecord(n, l.Marketplace, "marketplace", market.LoadMarketplace)
		if err != nil {
			return err
		}

		ret, err := n.Push(ReqContext(cctx), from, builtin.MarketProgramKey, builtin.MethodsMarket.BuyNow, &market.BuyNowParams{
			Listing:         lk,
			Marketplace:     l.Marketplace,
			Buyer:           from,
			BuyerHolding:    token.AssociatedHolding(from, l.Asset),
			SellerHolding:   token.AssociatedHolding(l.Seller, l.Asset),
			TreasuryHolding: token.AssociatedHolding(mp.Authority, l.Asset),
			Asset:           l.Asset,
			Quantity:        quantity,
			Reference:       reference,
		}, []types.Key{reference})
		if err != nil {
			return err
		}
		return printReceipt(NewAppFmt(cctx.App), ret)
	},
}

var OrderCmd = &cli.Command{
	Name:  "order",
	Usage: "Manage escrowed service orders",
	Subcommands: []*cli.Command{
		orderCreate,
		orderRelease,
		orderCancel,
	},
}

var orderCreate = &cli.Command{
	Name:      "create",
	Usage:     "Lock the price of a service listing in escrow",
	ArgsUsage: "[listing]",
	Flags: []cli.Flag{
		flagFrom,
		flagReference,
	},
	Action: func(cctx *cli.Context) error {
		lk, err := keyArg(cctx, 0, "listing")
		if err != nil {
			return err
		}
		reference, err := keyFlag(cctx, flagReference.Name)
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

		l, err := loadRecord(n, lk, "listing", market.LoadListing)
		if err != nil {
			return err
		}

		ret, err := n.Push(ReqContext(cctx), from, builtin.MarketProgramKey, builtin.MethodsMarket.CreateServiceOrder, &market.CreateServiceOrderParams{
			Marketplace:  l.Marketplace,
			Listing:      lk,
			Buyer:        from,
			BuyerHolding: token.AssociatedHolding(from, l.Asset),
			Asset:        l.Asset,
			Reference:    reference,
		}, []types.Key{reference})
		if err != nil {
			return err
		}
		if err := printReceipt(afmt, ret); err != nil {
			return err
		}
		afmt.Printf("escrow: %s\n", market.EscrowKey(lk, from))
		return nil
	},
}

var orderRelease = &cli.Command{
	Name:      "release",
	Usage:     "Pay an escrow out to the seller, less the current marketplace fee",
	ArgsUsage: "[escrow]",
	Flags: []cli.Flag{
		flagFrom,
	},
	Action: func(cctx *cli.Context) error {
		ek, err := keyArg(cctx, 0, "escrow")
		if err != nil {
			return err
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

		e, err := loadRecord(n, ek, "escrow", market.LoadEscrow)
		if err != nil {
			return err
		}
		mp, err := loadRecord(n, e.Marketplace, "marketplace", market.LoadMarketplace)
		if err != nil {
			return err
		}

		ret, err := n.Push(ReqContext(cctx), from, builtin.MarketProgramKey, builtin.MethodsMarket.ReleaseServiceOrder, &market.ReleaseServiceOrderParams{
			Escrow:          ek,
			Marketplace:     e.Marketplace,
			Listing:         e.Listing,
			Signer:          from,
			SellerHolding:   token.AssociatedHolding(e.Seller, e.Asset),
			TreasuryHolding: token.AssociatedHolding(mp.Authority, e.Asset),
		}, nil)
		if err != nil {
			return err
		}
		return printReceipt(NewAppFmt(cctx.App), ret)
	},
}

var orderCancel = &cli.Command{
	Name:      "cancel",
	Usage:     "Refund an escrow to the buyer",
	ArgsUsage: "[escrow]",
	Flags: []cli.Flag{
		flagFrom,
	},
	Action: func(cctx *cli.Context) error {
		ek, err := keyArg(cctx, 0, "escrow")
		if err != nil {
			return err
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

		e, err := loadRecord(n, ek, "escrow", market.LoadEscrow)
		if err != nil {
			return err
		}

		ret, err := n.Push(ReqContext(cctx), from, builtin.MarketProgramKey, builtin.MethodsMarket.CancelServiceOrder, &market.CancelServiceOrderParams{
			Escrow:       ek,
			Marketplace:  e.Marketplace,
			Signer:       from,
			BuyerHolding: token.AssociatedHolding(e.Buyer, e.Asset),
		}, nil)
		if err != nil {
			return err
		}
		return printReceipt(NewAppFmt(cctx.App), ret)
	},
}
