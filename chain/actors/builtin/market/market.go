package market

import (
	"fmt"
	"math"

	logging "github.com/ipfs/go-log/v2"

	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/konnect-labs/konnect/chain/actors/aerrors"
	"github.com/konnect-labs/konnect/chain/actors/builtin/token"
	"github.com/konnect-labs/konnect/chain/actors/runtime"
)

var log = logging.Logger("market")

// Actor is the marketplace program. Its records are owned by
// builtin.MarketProgramKey and live at keys derived from their seed paths.
type Actor struct{}

func (a Actor) Exports() []interface{} {
	return []interface{}{
		1:  a.InitMarketplace,
		2:  a.UpdateMarketplace,
		3:  a.RegisterMerchant,
		4:  a.SetMerchantStatus,
		5:  a.CreateListing,
		6:  a.UpdateListing,
		7:  a.BuyNow,
		8:  a.CreateServiceOrder,
		9:  a.ReleaseServiceOrder,
		10: a.CancelServiceOrder,
	}
}

func marketErr(code exitcode.ExitCode) aerrors.ActorError {
	return aerrors.New(code, ExitCodeMessage(code))
}

func marketErrf(code exitcode.ExitCode, format string, args ...interface{}) aerrors.ActorError {
	return aerrors.New(code, ExitCodeMessage(code)+": "+fmt.Sprintf(format, args...))
}

func (a Actor) InitMarketplace(rt runtime.Runtime, params *InitMarketplaceParams) ([]byte, aerrors.ActorError) {
	if params.FeeBps > MaxFeeBps {
		return nil, marketErrf(ErrFeeTooHigh, "%d bps", params.FeeBps)
	}

	k, bump, aerr := rt.CreateAccount(params.Authority, MarketplaceSize, marketplaceSeeds(params.Authority)...)
	if aerr != nil {
		return nil, aerrors.Wrap(aerr, "creating marketplace record")
	}

	mp := &Marketplace{
		Authority: params.Authority,
		FeeBps:    uint16(params.FeeBps),
		Bump:      bump,
	}
	if aerr := rt.WriteData(k, mp.Bytes()); aerr != nil {
		return nil, aerr
	}

	log.Infow("marketplace initialized", "marketplace", k, "authority", params.Authority, "feeBps", params.FeeBps)
	return k.Bytes(), nil
}

func (a Actor) UpdateMarketplace(rt runtime.Runtime, params *UpdateMarketplaceParams) ([]byte, aerrors.ActorError) {
	mp, aerr := loadMarketplace(rt, params.Marketplace)
	if aerr != nil {
		return nil, aerr
	}
	if aerr := requireSigner(rt, params.Authority, mp.Authority); aerr != nil {
		return nil, aerr
	}

	if params.NewFeeBps != nil {
		if *params.NewFeeBps > MaxFeeBps {
			return nil, marketErrf(ErrFeeTooHigh, "%d bps", *params.NewFeeBps)
		}
		mp.FeeBps = uint16(*params.NewFeeBps)
	}
	if params.NewAuthority != nil {
		mp.Authority = *params.NewAuthority
	}

	return nil, rt.WriteData(params.Marketplace, mp.Bytes())
}

func (a Actor) RegisterMerchant(rt runtime.Runtime, params *RegisterMerchantParams) ([]byte, aerrors.ActorError) {
	if _, aerr := loadMarketplace(rt, params.Marketplace); aerr != nil {
		return nil, aerr
	}

	k, bump, aerr := rt.CreateAccount(params.Owner, MerchantSize, merchantSeeds(params.Marketplace, params.Owner)...)
	if aerr != nil {
		return nil, aerrors.Wrap(aerr, "creating merchant record")
	}

	m := &Merchant{
		Marketplace: params.Marketplace,
		Owner:       params.Owner,
		Bump:        bump,
	}
	if aerr := rt.WriteData(k, m.Bytes()); aerr != nil {
		return nil, aerr
	}
	return k.Bytes(), nil
}

func (a Actor) SetMerchantStatus(rt runtime.Runtime, params *SetMerchantStatusParams) ([]byte, aerrors.ActorError) {
	m, aerr := loadMerchant(rt, params.Merchant)
	if aerr != nil {
		return nil, aerr
	}
	if m.Marketplace != params.Marketplace {
		return nil, marketErrf(ErrWrongMarketplace, "merchant belongs to %s", m.Marketplace)
	}

	mp, aerr := loadMarketplace(rt, params.Marketplace)
	if aerr != nil {
		return nil, aerr
	}
	if aerr := requireSigner(rt, params.Authority, mp.Authority); aerr != nil {
		return nil, aerr
	}

	m.Verified = params.Verified
	return nil, rt.WriteData(params.Merchant, m.Bytes())
}

func (a Actor) CreateListing(rt runtime.Runtime, params *CreateListingParams) ([]byte, aerrors.ActorError) {
	if _, aerr := loadMarketplace(rt, params.Marketplace); aerr != nil {
		return nil, aerr
	}
	m, aerr := loadMerchant(rt, params.Merchant)
	if aerr != nil {
		return nil, aerr
	}
	if m.Marketplace != params.Marketplace {
		return nil, marketErrf(ErrWrongMarketplace, "merchant belongs to %s", m.Marketplace)
	}
	if aerr := requireSigner(rt, params.Owner, m.Owner); aerr != nil {
		return nil, aerr
	}

	assetAcct, aerr := rt.GetAccount(params.Asset)
	if aerr != nil {
		return nil, aerrors.Wrapf(aerr, "loading asset %s", params.Asset)
	}
	if _, err := token.LoadAsset(assetAcct); err != nil {
		return nil, marketErrf(ErrInvalidAccount, "asset %s: %s", params.Asset, err)
	}

	if params.Price == 0 {
		return nil, marketErr(ErrInvalidAmount)
	}
	if params.Quantity > math.MaxUint32 {
		return nil, marketErrf(ErrInvalidQuantity, "%d exceeds listing capacity", params.Quantity)
	}

	k, bump, aerr := rt.CreateAccount(params.Owner, ListingSize, listingSeeds(params.Marketplace, params.Merchant, params.Asset)...)
	if aerr != nil {
		return nil, aerrors.Wrap(aerr, "creating listing record")
	}

	l := &Listing{
		Marketplace: params.Marketplace,
		Seller:      m.Owner,
		Asset:       params.Asset,
		Price:       params.Price,
		Quantity:    uint32(params.Quantity),
		IsService:   params.IsService,
		Active:      true,
		Bump:        bump,
	}
	if aerr := rt.WriteData(k, l.Bytes()); aerr != nil {
		return nil, aerr
	}
	return k.Bytes(), nil
}

func (a Actor) UpdateListing(rt runtime.Runtime, params *UpdateListingParams) ([]byte, aerrors.ActorError) {
	l, aerr := loadListing(rt, params.Listing)
	if aerr != nil {
		return nil, aerr
	}
	if aerr := requireSigner(rt, params.Seller, l.Seller); aerr != nil {
		return nil, aerr
	}

	if params.NewPrice != nil {
		if *params.NewPrice == 0 {
			return nil, marketErr(ErrInvalidAmount)
		}
		l.Price = *params.NewPrice
	}
	if params.NewQuantity != nil {
		if *params.NewQuantity > math.MaxUint32 {
			return nil, marketErrf(ErrInvalidQuantity, "%d exceeds listing capacity", *params.NewQuantity)
		}
		l.Quantity = uint32(*params.NewQuantity)
	}
	if params.NewActive != nil {
		l.Active = *params.NewActive
	}

	return nil, rt.WriteData(params.Listing, l.Bytes())
}

func (a Actor) BuyNow(rt runtime.Runtime, params *BuyNowParams) ([]byte, aerrors.ActorError) {
	l, aerr := loadListing(rt, params.Listing)
	if aerr != nil {
		return nil, aerr
	}
	if l.Marketplace != params.Marketplace {
		return nil, marketErrf(ErrWrongMarketplace, "listing belongs to %s", l.Marketplace)
	}
	if l.Asset != params.Asset {
		return nil, marketErrf(ErrInvalidAccount, "listing is priced in %s", l.Asset)
	}
	mp, aerr := loadMarketplace(rt, params.Marketplace)
	if aerr != nil {
		return nil, aerr
	}
	if !rt.IsSigner(params.Buyer) {
		return nil, aerrors.Newf(exitcode.ErrForbidden, "buyer %s did not sign", params.Buyer)
	}
	if _, aerr := requireHolding(rt, params.BuyerHolding, params.Buyer, l.Asset); aerr != nil {
		return nil, aerr
	}
	if _, aerr := requireHolding(rt, params.TreasuryHolding, mp.Authority, l.Asset); aerr != nil {
		return nil, aerr
	}

	if !l.Active {
		return nil, marketErr(ErrListingInactive)
	}
	if l.IsService {
		return nil, marketErr(ErrWrongFlowForService)
	}
	if params.Quantity == 0 || params.Quantity > uint64(l.Quantity) {
		return nil, marketErrf(ErrInvalidQuantity, "requested %d, available %d", params.Quantity, l.Quantity)
	}
	if aerr := checkReference(rt, params.Reference); aerr != nil {
		return nil, aerr
	}
	if _, aerr := requireHolding(rt, params.SellerHolding, l.Seller, l.Asset); aerr != nil {
		return nil, aerr
	}

	total, err := CheckedMul(l.Price, params.Quantity)
	if err != nil {
		return nil, marketErrf(ErrMathOverflow, "%d * %d", l.Price, params.Quantity)
	}
	sellerAmount, fee, err := SplitFee(total, mp.FeeBps)
	if err != nil {
		return nil, marketErrf(ErrMathOverflow, "fee on %d at %d bps", total, mp.FeeBps)
	}

	if aerr := transfer(rt, params.BuyerHolding, params.SellerHolding, params.Buyer, sellerAmount); aerr != nil {
		return nil, aerr
	}
	if fee > 0 {
		if aerr := transfer(rt, params.BuyerHolding, params.TreasuryHolding, params.Buyer, fee); aerr != nil {
			return nil, aerr
		}
	}

	remaining, err := CheckedSub(uint64(l.Quantity), params.Quantity)
	if err != nil {
		return nil, marketErrf(ErrMathOverflow, "%d - %d", l.Quantity, params.Quantity)
	}
	l.Quantity = uint32(remaining)
	if l.Quantity == 0 {
		l.Active = false
	}
	if aerr := rt.WriteData(params.Listing, l.Bytes()); aerr != nil {
		return nil, aerr
	}

	return nil, emit(rt, &OrderCompleted{
		Marketplace: params.Marketplace,
		Listing:     params.Listing,
		Buyer:       params.Buyer,
		Seller:      l.Seller,
		Asset:       l.Asset,
		Quantity:    uint32(params.Quantity),
		Total:       total,
		Reference:   params.Reference,
	})
}

func (a Actor) CreateServiceOrder(rt runtime.Runtime, params *CreateServiceOrderParams) ([]byte, aerrors.ActorError) {
	if _, aerr := loadMarketplace(rt, params.Marketplace); aerr != nil {
		return nil, aerr
	}

	l, aerr := loadListing(rt, params.Listing)
	if aerr != nil {
		return nil, aerr
	}
	if l.Marketplace != params.Marketplace {
		return nil, marketErrf(ErrWrongMarketplace, "listing belongs to %s", l.Marketplace)
	}
	if l.Asset != params.Asset {
		return nil, marketErrf(ErrInvalidAccount, "listing is priced in %s", l.Asset)
	}
	if !rt.IsSigner(params.Buyer) {
		return nil, aerrors.Newf(exitcode.ErrForbidden, "buyer %s did not sign", params.Buyer)
	}
	if _, aerr := requireHolding(rt, params.BuyerHolding, params.Buyer, l.Asset); aerr != nil {
		return nil, aerr
	}

	if !l.Active {
		return nil, marketErr(ErrListingInactive)
	}
	if !l.IsService {
		return nil, marketErr(ErrWrongFlowForGoods)
	}
	if aerr := checkReference(rt, params.Reference); aerr != nil {
		return nil, aerr
	}

	escrowKey, bump, aerr := rt.CreateAccount(params.Buyer, EscrowSize, escrowSeeds(params.Listing, params.Buyer)...)
	if aerr != nil {
		return nil, aerrors.Wrap(aerr, "creating escrow record")
	}
	vault := token.AssociatedHolding(escrowKey, l.Asset)
	if aerr := openVault(rt, params.Buyer, escrowKey, l.Asset, vault); aerr != nil {
		return nil, aerr
	}

	if aerr := transfer(rt, params.BuyerHolding, vault, params.Buyer, l.Price); aerr != nil {
		return nil, aerr
	}

	e := &Escrow{
		Marketplace: params.Marketplace,
		Listing:     params.Listing,
		Seller:      l.Seller,
		Buyer:       params.Buyer,
		Asset:       l.Asset,
		Amount:      l.Price,
		Reference:   params.Reference,
		Bump:        bump,
	}
	if aerr := rt.WriteData(escrowKey, e.Bytes()); aerr != nil {
		return nil, aerr
	}

	if aerr := emit(rt, &ServiceOrderCreated{
		Marketplace: e.Marketplace,
		Listing:     e.Listing,
		Buyer:       e.Buyer,
		Seller:      e.Seller,
		Asset:       e.Asset,
		Amount:      e.Amount,
		Reference:   e.Reference,
		Escrow:      escrowKey,
	}); aerr != nil {
		return nil, aerr
	}
	return escrowKey.Bytes(), nil
}

func (a Actor) ReleaseServiceOrder(rt runtime.Runtime, params *ReleaseServiceOrderParams) ([]byte, aerrors.ActorError) {
	e, mp, aerr := loadEscrowForSettlement(rt, params.Escrow, params.Marketplace, params.Signer)
	if aerr != nil {
		return nil, aerr
	}
	if e.Listing != params.Listing {
		return nil, marketErrf(ErrInvalidAccount, "escrow is for listing %s", e.Listing)
	}
	if e.Released {
		return nil, marketErr(ErrAlreadyReleased)
	}
	if _, aerr := requireHolding(rt, params.SellerHolding, e.Seller, e.Asset); aerr != nil {
		return nil, aerr
	}
	if _, aerr := requireHolding(rt, params.TreasuryHolding, mp.Authority, e.Asset); aerr != nil {
		return nil, aerr
	}

	sellerAmount, fee, err := SplitFee(e.Amount, mp.FeeBps)
	if err != nil {
		return nil, marketErrf(ErrMathOverflow, "fee on %d at %d bps", e.Amount, mp.FeeBps)
	}

	vault := token.AssociatedHolding(params.Escrow, e.Asset)
	seeds := e.signerSeeds()

	if aerr := transfer(rt, vault, params.SellerHolding, params.Escrow, sellerAmount, seeds); aerr != nil {
		return nil, aerr
	}
	if fee > 0 {
		if aerr := transfer(rt, vault, params.TreasuryHolding, params.Escrow, fee, seeds); aerr != nil {
			return nil, aerr
		}
	}
	if aerr := closeVault(rt, vault, e.Buyer, seeds); aerr != nil {
		return nil, aerr
	}

	e.Released = true
	if aerr := rt.WriteData(params.Escrow, e.Bytes()); aerr != nil {
		return nil, aerr
	}

	return nil, emit(rt, &ServiceOrderReleased{
		Marketplace: e.Marketplace,
		Escrow:      params.Escrow,
		Buyer:       e.Buyer,
		Seller:      e.Seller,
		Asset:       e.Asset,
		Amount:      e.Amount,
		Fee:         fee,
		Reference:   e.Reference,
	})
}

func (a Actor) CancelServiceOrder(rt runtime.Runtime, params *CancelServiceOrderParams) ([]byte, aerrors.ActorError) {
	e, _, aerr := loadEscrowForSettlement(rt, params.Escrow, params.Marketplace, params.Signer)
	if aerr != nil {
		return nil, aerr
	}
	if e.Released {
		return nil, marketErr(ErrAlreadyReleased)
	}
	if _, aerr := requireHolding(rt, params.BuyerHolding, e.Buyer, e.Asset); aerr != nil {
		return nil, aerr
	}

	vault := token.AssociatedHolding(params.Escrow, e.Asset)
	seeds := e.signerSeeds()

	if aerr := transfer(rt, vault, params.BuyerHolding, params.Escrow, e.Amount, seeds); aerr != nil {
		return nil, aerr
	}
	if aerr := closeVault(rt, vault, e.Buyer, seeds); aerr != nil {
		return nil, aerr
	}

	e.Released = true
	if aerr := rt.WriteData(params.Escrow, e.Bytes()); aerr != nil {
		return nil, aerr
	}
	if aerr := rt.CloseAccount(params.Escrow, e.Buyer); aerr != nil {
		return nil, aerr
	}

	return nil, emit(rt, &ServiceOrderCancelled{
		Marketplace: e.Marketplace,
		Escrow:      params.Escrow,
		Buyer:       e.Buyer,
		Amount:      e.Amount,
		Reference:   e.Reference,
	})
}
