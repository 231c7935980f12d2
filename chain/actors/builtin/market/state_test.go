package market

import (
	"encoding/binary"
	"testing"

	"github.com/minio/sha256-simd"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/konnect-labs/konnect/chain/actors/builtin"
	"github.com/konnect-labs/konnect/chain/types"
	"github.com/konnect-labs/konnect/chain/types/mock"
)

func marketAccount(data []byte) *types.Account {
	return &types.Account{Owner: builtin.MarketProgramKey, Data: data}
}

func TestRecordSizes(t *testing.T) {
	require.Equal(t, 43, MarketplaceSize)
	require.Equal(t, 74, MerchantSize)
	require.Equal(t, 119, ListingSize)
	require.Equal(t, 210, EscrowSize)

	require.Len(t, (&Marketplace{}).Bytes(), MarketplaceSize)
	require.Len(t, (&Merchant{}).Bytes(), MerchantSize)
	require.Len(t, (&Listing{}).Bytes(), ListingSize)
	require.Len(t, (&Escrow{}).Bytes(), EscrowSize)
}

func TestDiscriminator(t *testing.T) {
	h := sha256.Sum256([]byte("account:Listing"))
	require.Equal(t, h[:8], listingTag[:])

	tags := map[[DiscriminatorLength]byte]bool{}
	for _, tag := range [][DiscriminatorLength]byte{marketplaceTag, merchantTag, listingTag, escrowTag} {
		require.False(t, tags[tag])
		tags[tag] = true
	}
}

func TestListingLayout(t *testing.T) {
	l := &Listing{
		Marketplace: mock.Key(1),
		Seller:      mock.Key(2),
		Asset:       mock.Key(3),
		Price:       0x0102030405060708,
		Quantity:    7,
		IsService:   true,
		Active:      false,
		Bump:        254,
	}
	b := l.Bytes()

	require.Equal(t, listingTag[:], b[:8])
	require.Equal(t, l.Marketplace[:], b[8:40])
	require.Equal(t, l.Seller[:], b[40:72])
	require.Equal(t, l.Asset[:], b[72:104])
	require.Equal(t, l.Price, binary.LittleEndian.Uint64(b[104:112]))
	require.Equal(t, byte(0x08), b[104])
	require.Equal(t, uint32(7), binary.LittleEndian.Uint32(b[112:116]))
	require.Equal(t, []byte{1, 0, 254}, b[116:])

	out, err := LoadListing(marketAccount(b))
	require.NoError(t, err)
	require.Equal(t, l, out)
}

func TestEscrowLayout(t *testing.T) {
	e := &Escrow{
		Marketplace: mock.Key(1),
		Listing:     mock.Key(2),
		Seller:      mock.Key(3),
		Buyer:       mock.Key(4),
		Asset:       mock.Key(5),
		Amount:      5000,
		Reference:   mock.Key(6),
		Released:    true,
		Bump:        251,
	}
	b := e.Bytes()
	require.Equal(t, uint64(5000), binary.LittleEndian.Uint64(b[168:176]))
	require.Equal(t, e.Reference[:], b[176:208])
	require.Equal(t, []byte{1, 251}, b[208:])

	out, err := LoadEscrow(marketAccount(b))
	require.NoError(t, err)
	require.Equal(t, e, out)
}

func TestMarketplaceAndMerchantLayout(t *testing.T) {
	mp := &Marketplace{Authority: mock.Key(1), FeeBps: 250, Bump: 255}
	b := mp.Bytes()
	require.Equal(t, uint16(250), binary.LittleEndian.Uint16(b[40:42]))

	outMp, err := LoadMarketplace(marketAccount(b))
	require.NoError(t, err)
	require.Equal(t, mp, outMp)

	m := &Merchant{Marketplace: mock.Key(1), Owner: mock.Key(2), Verified: true, Bump: 3}
	outM, err := LoadMerchant(marketAccount(m.Bytes()))
	require.NoError(t, err)
	require.Equal(t, m, outM)
}

func TestLoadRejectsForeignRecords(t *testing.T) {
	mp := (&Marketplace{Authority: mock.Key(1)}).Bytes()

	_, err := LoadMarketplace(&types.Account{Owner: builtin.TokenProgramKey, Data: mp})
	require.True(t, xerrors.Is(err, ErrNotMarketRecord))

	_, err = LoadMarketplace(marketAccount(mp[:20]))
	require.True(t, xerrors.Is(err, ErrUnexpectedRecSize))

	// same size, different tag
	forged := append([]byte(nil), mp...)
	copy(forged, merchantTag[:])
	_, err = LoadMarketplace(marketAccount(forged))
	require.True(t, xerrors.Is(err, ErrWrongRecordType))

	// flags only take 0 or 1
	m := (&Merchant{}).Bytes()
	m[72] = 2
	_, err = LoadMerchant(marketAccount(m))
	require.Error(t, err)
}

func TestRecordKeys(t *testing.T) {
	authority := mock.Key(1)
	mp := MarketplaceKey(authority)
	require.NotEqual(t, mp, MarketplaceKey(mock.Key(2)))
	require.False(t, types.IsOnCurve(mp))

	merchant := MerchantKey(mp, mock.Key(3))
	listing := ListingKey(mp, merchant, mock.Key(4))
	escrow := EscrowKey(listing, mock.Key(5))

	k, _, err := types.FindDerivedKey(builtin.MarketProgramKey, []byte("escrow"), listing[:], mock.Key(5).Bytes())
	require.NoError(t, err)
	require.Equal(t, k, escrow)

	// seeds are namespaced by record kind
	require.NotEqual(t, MerchantKey(mp, authority), mp)
}
