package market

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	cbg "github.com/whyrusleeping/cbor-gen"

	"github.com/konnect-labs/konnect/chain/types/mock"
)

func TestUpdateMarketplaceParamsOptionalFields(t *testing.T) {
	decode := func(p *UpdateMarketplaceParams) *UpdateMarketplaceParams {
		buf := new(bytes.Buffer)
		require.NoError(t, p.MarshalCBOR(buf))
		var out UpdateMarketplaceParams
		require.NoError(t, out.UnmarshalCBOR(bytes.NewReader(buf.Bytes())))
		return &out
	}

	empty := &UpdateMarketplaceParams{Marketplace: mock.Key(1), Authority: mock.Key(2)}
	out := decode(empty)
	require.Equal(t, empty, out)
	require.Nil(t, out.NewFeeBps)
	require.Nil(t, out.NewAuthority)

	fee := uint64(0)
	auth := mock.Key(3)
	full := &UpdateMarketplaceParams{Marketplace: mock.Key(1), Authority: mock.Key(2), NewFeeBps: &fee, NewAuthority: &auth}
	out = decode(full)
	require.Equal(t, full, out)
	require.NotNil(t, out.NewFeeBps)
	require.Zero(t, *out.NewFeeBps)

	// an unset authority is null, a set one is a 32 byte string
	buf := new(bytes.Buffer)
	require.NoError(t, (&UpdateMarketplaceParams{NewFeeBps: &fee}).MarshalCBOR(buf))
	b := buf.Bytes()
	require.Equal(t, cbg.CborNull[0], b[len(b)-1])

	// truncated input fails cleanly
	buf.Reset()
	require.NoError(t, full.MarshalCBOR(buf))
	var trunc UpdateMarketplaceParams
	require.Error(t, trunc.UnmarshalCBOR(bytes.NewReader(buf.Bytes()[:buf.Len()-5])))
}
