package wallet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/konnect-labs/konnect/chain/types"
	"github.com/konnect-labs/konnect/lib/sigs"
)

func TestWalletKeys(t *testing.T) {
	w, err := NewWallet(NewMemKeyStore())
	require.NoError(t, err)

	a1, err := w.GenerateKey(sigs.SigTypeEd25519)
	require.NoError(t, err)
	a2, err := w.GenerateKey(sigs.SigTypeEd25519)
	require.NoError(t, err)

	def, err := w.GetDefault()
	require.NoError(t, err)
	require.Equal(t, a1, def)

	require.NoError(t, w.SetDefault(a2))
	def, err = w.GetDefault()
	require.NoError(t, err)
	require.Equal(t, a2, def)

	addrs, err := w.ListAddrs()
	require.NoError(t, err)
	require.ElementsMatch(t, []types.Key{a1, a2}, addrs)

	ki, err := w.Export(a1)
	require.NoError(t, err)

	require.NoError(t, w.DeleteKey(a1))
	has, err := w.HasKey(a1)
	require.NoError(t, err)
	require.False(t, has)

	imported, err := w.Import(ki)
	require.NoError(t, err)
	require.Equal(t, a1, imported)

	_, err = w.Sign(context.Background(), types.Key{7}, []byte("x"))
	require.True(t, xerrors.Is(err, types.ErrKeyInfoNotFound))
}

func TestSignMessage(t *testing.T) {
	ctx := context.Background()
	w, err := NewWallet(NewMemKeyStore())
	require.NoError(t, err)

	from, err := w.GenerateKey(sigs.SigTypeEd25519)
	require.NoError(t, err)
	other, err := w.GenerateKey(sigs.SigTypeEd25519)
	require.NoError(t, err)

	msg := &types.Message{From: from, To: types.Key{9}, Method: 3, Params: []byte{0x80}}
	smsg, err := w.SignMessage(ctx, msg, other, from)
	require.NoError(t, err)
	require.Equal(t, []types.Key{from, other}, smsg.Signers())
	require.NoError(t, sigs.CheckMessageSignatures(ctx, smsg))
}
