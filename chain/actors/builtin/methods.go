package builtin

import (
	"github.com/filecoin-project/go-state-types/abi"
)

var MethodsToken = struct {
	CreateAsset  abi.MethodNum
	MintTo       abi.MethodNum
	OpenHolding  abi.MethodNum
	Transfer     abi.MethodNum
	CloseHolding abi.MethodNum
}{1, 2, 3, 4, 5}

var MethodsMarket = struct {
	InitMarketplace     abi.MethodNum
	UpdateMarketplace   abi.MethodNum
	RegisterMerchant    abi.MethodNum
	SetMerchantStatus   abi.MethodNum
	CreateListing       abi.MethodNum
	UpdateListing       abi.MethodNum
	BuyNow              abi.MethodNum
	CreateServiceOrder  abi.MethodNum
	ReleaseServiceOrder abi.MethodNum
	CancelServiceOrder  abi.MethodNum
}{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
