package cli

import (
	"encoding/json"

	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/konnect-labs/konnect/chain/actors/builtin"
	"github.com/konnect-labs/konnect/chain/actors/builtin/market"
	"github.com/konnect-labs/konnect/chain/actors/builtin/token"
	"github.com/konnect-labs/konnect/chain/types"
)

var StateCmd = &cli.Command{
	Name:  "state",
	Usage: "Inspect accounts",
	Subcommands: []*cli.Command{
		stateGet,
		stateList,
	},
}

type accountInfo struct {
	Key     types.Key
	Owner   string
	Balance uint64
	Nonce   uint64
	Size    int
	Kind    string      `json:",omitempty"`
	Record  interface{} `json:",omitempty"`
}

// decodeRecord recognizes the records of the builtin programs.
func decodeRecord(acct *types.Account) (string, interface{}) {
	switch acct.Owner {
	case builtin.MarketProgramKey:
		if r, err := market.LoadMarketplace(acct); err == nil {
			return "marketplace", r
		}
		if r, err := market.LoadMerchant(acct); err == nil {
			return "merchant", r
		}
		if r, err := market.LoadListing(acct); err == nil {
			return "listing", r
		}
		if r, err := market.LoadEscrow(acct); err == nil {
			return "escrow", r
		}
	case builtin.TokenProgramKey:
		if r, err := token.LoadAsset(acct); err == nil {
			return "asset", r
		}
		if r, err := token.LoadHolding(acct); err == nil {
			return "holding", r
		}
	case builtin.SystemOwner:
		return "principal", nil
	}
	return "", nil
}

func ownerName(owner types.Key) string {
	switch owner {
	case builtin.SystemOwner:
		return "system"
	case builtin.MarketProgramKey:
		return "market"
	case builtin.TokenProgramKey:
		return "token"
	}
	return owner.String()
}

var stateGet = &cli.Command{
	Name:      "get",
	Usage:     "Print an account and its decoded record as JSON",
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

		acct, err := n.State.GetAccount(k)
		if err != nil {
			return xerrors.Errorf("loading %s: %w", k, err)
		}

		kind, rec := decodeRecord(acct)
		b, err := json.MarshalIndent(&accountInfo{
			Key:     k,
			Owner:   ownerName(acct.Owner),
			Balance: acct.Balance,
			Nonce:   acct.Nonce,
			Size:    len(acct.Data),
			Kind:    kind,
			Record:  rec,
		}, "", "  ")
		if err != nil {
			return err
		}
		NewAppFmt(cctx.App).Println(string(b))
		return nil
	},
}

var stateList = &cli.Command{
	Name:      "list",
	Usage:     "List the records owned by a builtin program",
	ArgsUsage: "[market|token]",
	Action: func(cctx *cli.Context) error {
		var owner types.Key
		switch cctx.Args().First() {
		case "market":
			owner = builtin.MarketProgramKey
		case "token":
			owner = builtin.TokenProgramKey
		default:
			return ShowHelp(cctx, xerrors.New("expected market or token"))
		}

		n, closer, err := GetNode(cctx)
		if err != nil {
			return err
		}
		defer closer()
		afmt := NewAppFmt(cctx.App)

		keys, err := n.State.ListAccounts(ReqContext(cctx), owner)
		if err != nil {
			return err
		}
		for _, k := range keys {
			acct, err := n.State.GetAccount(k)
			if err != nil {
				return err
			}
			kind, _ := decodeRecord(acct)
			afmt.Printf("%s\t%s\n", k, kind)
		}
		return nil
	},
}

var KeysCmd = &cli.Command{
	Name:  "keys",
	Usage: "Compute record keys",
	Subcommands: []*cli.Command{
		keysDerive,
	},
}

var keysDerive = &cli.Command{
	Name:  "derive",
	Usage: "Derive the key of a record from the keys it is seeded with",
	ArgsUsage: "marketplace <authority> | merchant <marketplace> <owner> | listing <marketplace> <merchant> <asset> |\n" +
		"   escrow <listing> <buyer> | vault <escrow> <asset> | holding <owner> <asset> | asset <authority> <seed>",
	Action: func(cctx *cli.Context) error {
		kind := cctx.Args().First()
		args := cctx.Args().Tail()

		arity := map[string]int{
			"marketplace": 1,
			"merchant":    2,
			"listing":     3,
			"escrow":      2,
			"vault":       2,
			"holding":     2,
			"asset":       2,
		}
		want, ok := arity[kind]
		if !ok {
			return ShowHelp(cctx, xerrors.Errorf("unknown record kind %q", kind))
		}
		if len(args) != want {
			return ShowHelp(cctx, xerrors.Errorf("%s takes %d arguments", kind, want))
		}

		keys := make([]types.Key, want)
		for i := range keys {
			if kind == "asset" && i == 1 {
				break
			}
			k, err := keyArg(cctx, i+1, "key")
			if err != nil {
				return err
			}
			keys[i] = k
		}

		var out types.Key
		switch kind {
		case "marketplace":
			out = market.MarketplaceKey(keys[0])
		case "merchant":
			out = market.MerchantKey(keys[0], keys[1])
		case "listing":
			out = market.ListingKey(keys[0], keys[1], keys[2])
		case "escrow":
			out = market.EscrowKey(keys[0], keys[1])
		case "vault", "holding":
			out = token.AssociatedHolding(keys[0], keys[1])
		case "asset":
			k, err := token.AssetKey(keys[0], []byte(args[1]))
			if err != nil {
				return err
			}
			out = k
		}

		NewAppFmt(cctx.App).Println(out.String())
		return nil
	},
}
