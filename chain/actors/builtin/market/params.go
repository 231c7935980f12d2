package market

import (
	"github.com/konnect-labs/konnect/chain/types"
)

// InitMarketplaceParams creates the marketplace of Authority, who signs and
// pays for the record.
type InitMarketplaceParams struct {
	Authority types.Key
	FeeBps    uint64
}

// UpdateMarketplaceParams is a sparse update: nil fields are left untouched.
// Its codec lives in params_cbor.go.
type UpdateMarketplaceParams struct {
	Marketplace  types.Key
	Authority    types.Key
	NewFeeBps    *uint64
	NewAuthority *types.Key
}

type RegisterMerchantParams struct {
	Marketplace types.Key
	Owner       types.Key
}

type SetMerchantStatusParams struct {
	Merchant    types.Key
	Marketplace types.Key
	Authority   types.Key
	Verified    bool
}

type CreateListingParams struct {
	Marketplace types.Key
	Merchant    types.Key
	Owner       types.Key
	Asset       types.Key
	Price       uint64
	Quantity    uint64
	IsService   bool
}

// UpdateListingParams is a sparse update: nil fields are left untouched.
type UpdateListingParams struct {
	Listing     types.Key
	Seller      types.Key
	NewPrice    *uint64
	NewQuantity *uint64
	NewActive   *bool
}

// BuyNowParams buys Quantity units of a goods listing. Reference must also
// be the first remaining key of the message.
type BuyNowParams struct {
	Listing         types.Key
	Marketplace     types.Key
	Buyer           types.Key
	BuyerHolding    types.Key
	SellerHolding   types.Key
	TreasuryHolding types.Key
	Asset           types.Key
	Quantity        uint64
	Reference       types.Key
}

// CreateServiceOrderParams locks the listing price in a new escrow. The
// escrow record and its vault are derived from the listing and buyer.
type CreateServiceOrderParams struct {
	Marketplace  types.Key
	Listing      types.Key
	Buyer        types.Key
	BuyerHolding types.Key
	Asset        types.Key
	Reference    types.Key
}

// ReleaseServiceOrderParams pays out an escrow. Signer must be the escrow
// buyer or the marketplace authority.
type ReleaseServiceOrderParams struct {
	Escrow          types.Key
	Marketplace     types.Key
	Listing         types.Key
	Signer          types.Key
	SellerHolding   types.Key
	TreasuryHolding types.Key
}

// CancelServiceOrderParams refunds an escrow to its buyer. Signer must be the
// escrow buyer or the marketplace authority.
type CancelServiceOrderParams struct {
	Escrow       types.Key
	Marketplace  types.Key
	Signer       types.Key
	BuyerHolding types.Key
}
