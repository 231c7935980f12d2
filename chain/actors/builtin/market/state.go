package market

import (
	"bytes"
	"encoding/binary"

	"github.com/minio/sha256-simd"
	"golang.org/x/xerrors"

	"github.com/konnect-labs/konnect/chain/actors/builtin"
	"github.com/konnect-labs/konnect/chain/types"
)

// DiscriminatorLength is the size of the tag that prefixes every record.
const DiscriminatorLength = 8

const (
	MarketplaceSize = DiscriminatorLength + 32 + 2 + 1
	MerchantSize    = DiscriminatorLength + 32 + 32 + 1 + 1
	ListingSize     = DiscriminatorLength + 32 + 32 + 32 + 8 + 4 + 1 + 1 + 1
	EscrowSize      = DiscriminatorLength + 32 + 32 + 32 + 32 + 32 + 8 + 32 + 1 + 1
)

var (
	ErrNotMarketRecord   = xerrors.New("account is not owned by the market program")
	ErrWrongRecordType   = xerrors.New("record discriminator mismatch")
	ErrUnexpectedRecSize = xerrors.New("unexpected record size")
)

var (
	marketplaceTag = discriminator("Marketplace")
	merchantTag    = discriminator("Merchant")
	listingTag     = discriminator("Listing")
	escrowTag      = discriminator("Escrow")
)

func discriminator(name string) [DiscriminatorLength]byte {
	var out [DiscriminatorLength]byte
	h := sha256.Sum256([]byte("account:" + name))
	copy(out[:], h[:DiscriminatorLength])
	return out
}

// Marketplace holds the fee rate of an operator. Only Authority may change it.
type Marketplace struct {
	Authority types.Key
	FeeBps    uint16
	Bump      uint8
}

// Merchant is a seller registered under a marketplace.
type Merchant struct {
	Marketplace types.Key
	Owner       types.Key
	Verified    bool
	Bump        uint8
}

// Listing is a unit-priced offer of goods, or a service when IsService is set.
type Listing struct {
	Marketplace types.Key
	Seller      types.Key
	Asset       types.Key
	Price       uint64
	Quantity    uint32
	IsService   bool
	Active      bool
	Bump        uint8
}

// Escrow locks Amount of Asset in the vault owned by the escrow key until the
// order is released to the seller or cancelled back to the buyer.
type Escrow struct {
	Marketplace types.Key
	Listing     types.Key
	Seller      types.Key
	Buyer       types.Key
	Asset       types.Key
	Amount      uint64
	Reference   types.Key
	Released    bool
	Bump        uint8
}

type recordWriter struct {
	buf []byte
	off int
}

func newRecordWriter(size int, tag [DiscriminatorLength]byte) *recordWriter {
	w := &recordWriter{buf: make([]byte, size)}
	w.off = copy(w.buf, tag[:])
	return w
}

func (w *recordWriter) key(k types.Key) {
	w.off += copy(w.buf[w.off:], k[:])
}

func (w *recordWriter) u64(v uint64) {
	binary.LittleEndian.PutUint64(w.buf[w.off:], v)
	w.off += 8
}

func (w *recordWriter) u32(v uint32) {
	binary.LittleEndian.PutUint32(w.buf[w.off:], v)
	w.off += 4
}

func (w *recordWriter) u16(v uint16) {
	binary.LittleEndian.PutUint16(w.buf[w.off:], v)
	w.off += 2
}

func (w *recordWriter) u8(v uint8) {
	w.buf[w.off] = v
	w.off++
}

func (w *recordWriter) flag(v bool) {
	if v {
		w.u8(1)
	} else {
		w.u8(0)
	}
}

type recordReader struct {
	buf []byte
	off int
}

func newRecordReader(acct *types.Account, size int, tag [DiscriminatorLength]byte) (*recordReader, error) {
	if acct.Owner != builtin.MarketProgramKey {
		return nil, ErrNotMarketRecord
	}
	if len(acct.Data) != size {
		return nil, xerrors.Errorf("%w: %d != %d", ErrUnexpectedRecSize, len(acct.Data), size)
	}
	if !bytes.Equal(acct.Data[:DiscriminatorLength], tag[:]) {
		return nil, ErrWrongRecordType
	}
	return &recordReader{buf: acct.Data, off: DiscriminatorLength}, nil
}

func (r *recordReader) key() (k types.Key) {
	r.off += copy(k[:], r.buf[r.off:])
	return k
}

func (r *recordReader) u64() uint64 {
	v := binary.LittleEndian.Uint64(r.buf[r.off:])
	r.off += 8
	return v
}

func (r *recordReader) u32() uint32 {
	v := binary.LittleEndian.Uint32(r.buf[r.off:])
	r.off += 4
	return v
}

func (r *recordReader) u16() uint16 {
	v := binary.LittleEndian.Uint16(r.buf[r.off:])
	r.off += 2
	return v
}

func (r *recordReader) u8() uint8 {
	v := r.buf[r.off]
	r.off++
	return v
}

func (r *recordReader) flag() (bool, error) {
	switch v := r.u8(); v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, xerrors.Errorf("invalid bool byte %d at offset %d", v, r.off-1)
	}
}

func (m *Marketplace) Bytes() []byte {
	w := newRecordWriter(MarketplaceSize, marketplaceTag)
	w.key(m.Authority)
	w.u16(m.FeeBps)
	w.u8(m.Bump)
	return w.buf
}

func LoadMarketplace(acct *types.Account) (*Marketplace, error) {
	r, err := newRecordReader(acct, MarketplaceSize, marketplaceTag)
	if err != nil {
		return nil, xerrors.Errorf("marketplace: %w", err)
	}
	return &Marketplace{
		Authority: r.key(),
		FeeBps:    r.u16(),
		Bump:      r.u8(),
	}, nil
}

func (m *Merchant) Bytes() []byte {
	w := newRecordWriter(MerchantSize, merchantTag)
	w.key(m.Marketplace)
	w.key(m.Owner)
	w.flag(m.Verified)
	w.u8(m.Bump)
	return w.buf
}

func LoadMerchant(acct *types.Account) (*Merchant, error) {
	r, err := newRecordReader(acct, MerchantSize, merchantTag)
	if err != nil {
		return nil, xerrors.Errorf("merchant: %w", err)
	}
	m := &Merchant{
		Marketplace: r.key(),
		Owner:       r.key(),
	}
	if m.Verified, err = r.flag(); err != nil {
		return nil, xerrors.Errorf("merchant: %w", err)
	}
	m.Bump = r.u8()
	return m, nil
}

func (l *Listing) Bytes() []byte {
	w := newRecordWriter(ListingSize, listingTag)
	w.key(l.Marketplace)
	w.key(l.Seller)
	w.key(l.Asset)
	w.u64(l.Price)
	w.u32(l.Quantity)
	w.flag(l.IsService)
	w.flag(l.Active)
	w.u8(l.Bump)
	return w.buf
}

func LoadListing(acct *types.Account) (*Listing, error) {
	r, err := newRecordReader(acct, ListingSize, listingTag)
	if err != nil {
		return nil, xerrors.Errorf("listing: %w", err)
	}
	l := &Listing{
		Marketplace: r.key(),
		Seller:      r.key(),
		Asset:       r.key(),
		Price:       r.u64(),
		Quantity:    r.u32(),
	}
	if l.IsService, err = r.flag(); err != nil {
		return nil, xerrors.Errorf("listing: %w", err)
	}
	if l.Active, err = r.flag(); err != nil {
		return nil, xerrors.Errorf("listing: %w", err)
	}
	l.Bump = r.u8()
	return l, nil
}

func (e *Escrow) Bytes() []byte {
	w := newRecordWriter(EscrowSize, escrowTag)
	w.key(e.Marketplace)
	w.key(e.Listing)
	w.key(e.Seller)
	w.key(e.Buyer)
	w.key(e.Asset)
	w.u64(e.Amount)
	w.key(e.Reference)
	w.flag(e.Released)
	w.u8(e.Bump)
	return w.buf
}

func LoadEscrow(acct *types.Account) (*Escrow, error) {
	r, err := newRecordReader(acct, EscrowSize, escrowTag)
	if err != nil {
		return nil, xerrors.Errorf("escrow: %w", err)
	}
	e := &Escrow{
		Marketplace: r.key(),
		Listing:     r.key(),
		Seller:      r.key(),
		Buyer:       r.key(),
		Asset:       r.key(),
		Amount:      r.u64(),
		Reference:   r.key(),
	}
	if e.Released, err = r.flag(); err != nil {
		return nil, xerrors.Errorf("escrow: %w", err)
	}
	e.Bump = r.u8()
	return e, nil
}

func marketplaceSeeds(authority types.Key) [][]byte {
	return [][]byte{[]byte("marketplace"), authority[:]}
}

func merchantSeeds(marketplace, owner types.Key) [][]byte {
	return [][]byte{[]byte("merchant"), marketplace[:], owner[:]}
}

func listingSeeds(marketplace, merchant, asset types.Key) [][]byte {
	return [][]byte{[]byte("listing"), marketplace[:], merchant[:], asset[:]}
}

func escrowSeeds(listing, buyer types.Key) [][]byte {
	return [][]byte{[]byte("escrow"), listing[:], buyer[:]}
}

// MarketplaceKey returns the marketplace record of authority.
func MarketplaceKey(authority types.Key) types.Key {
	k, _ := types.MustFindDerivedKey(builtin.MarketProgramKey, marketplaceSeeds(authority)...)
	return k
}

// MerchantKey returns the merchant record of owner under marketplace.
func MerchantKey(marketplace, owner types.Key) types.Key {
	k, _ := types.MustFindDerivedKey(builtin.MarketProgramKey, merchantSeeds(marketplace, owner)...)
	return k
}

// ListingKey returns the listing of merchant for asset under marketplace.
func ListingKey(marketplace, merchant, asset types.Key) types.Key {
	k, _ := types.MustFindDerivedKey(builtin.MarketProgramKey, listingSeeds(marketplace, merchant, asset)...)
	return k
}

// EscrowKey returns the escrow of buyer for a service listing.
func EscrowKey(listing, buyer types.Key) types.Key {
	k, _ := types.MustFindDerivedKey(builtin.MarketProgramKey, escrowSeeds(listing, buyer)...)
	return k
}
