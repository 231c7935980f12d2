package main

import (
	"fmt"
	"os"

	gen "github.com/whyrusleeping/cbor-gen"

	"github.com/konnect-labs/konnect/chain/actors/builtin/market"
	"github.com/konnect-labs/konnect/chain/actors/builtin/token"
	"github.com/konnect-labs/konnect/chain/types"
)

func main() {
	err := gen.WriteTupleEncodersToFile("./chain/types/cbor_gen.go", "types",
		types.Account{},
		types.Signature{},
		types.SignedMessage{},
		types.MessageReceipt{},
		types.Event{},
		types.EventEntry{},
	)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	err = gen.WriteTupleEncodersToFile("./chain/actors/builtin/token/cbor_gen.go", "token",
		token.CreateAssetParams{},
		token.MintToParams{},
		token.OpenHoldingParams{},
		token.TransferParams{},
		token.CloseHoldingParams{},
	)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	err = gen.WriteTupleEncodersToFile("./chain/actors/builtin/market/cbor_gen.go", "market",
		market.InitMarketplaceParams{},
		market.RegisterMerchantParams{},
		market.SetMerchantStatusParams{},
		market.CreateListingParams{},
		market.UpdateListingParams{},
		market.BuyNowParams{},
		market.CreateServiceOrderParams{},
		market.ReleaseServiceOrderParams{},
		market.CancelServiceOrderParams{},
	)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
