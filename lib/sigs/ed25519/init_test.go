package ed25519_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/konnect-labs/konnect/chain/types"
	"github.com/konnect-labs/konnect/lib/sigs"
	_ "github.com/konnect-labs/konnect/lib/sigs/ed25519"
)

func TestRoundtrip(t *testing.T) {
	pk, err := sigs.Generate(sigs.SigTypeEd25519)
	require.NoError(t, err)

	pub, err := sigs.ToPublic(sigs.SigTypeEd25519, pk)
	require.NoError(t, err)

	msg := []byte("buy three")
	sig, err := sigs.Sign(sigs.SigTypeEd25519, pk, msg)
	require.NoError(t, err)
	require.Equal(t, pub, sig.Signer.Bytes())
	require.True(t, types.IsOnCurve(sig.Signer))

	require.NoError(t, sigs.Verify(sig, msg))
	require.Error(t, sigs.Verify(sig, []byte("buy four")))

	sig.Data[0] ^= 0xff
	require.Error(t, sigs.Verify(sig, msg))
}

func TestCheckMessageSignatures(t *testing.T) {
	ctx := context.Background()

	pk1, err := sigs.Generate(sigs.SigTypeEd25519)
	require.NoError(t, err)
	pk2, err := sigs.Generate(sigs.SigTypeEd25519)
	require.NoError(t, err)

	pub1, err := sigs.ToPublic(sigs.SigTypeEd25519, pk1)
	require.NoError(t, err)
	from, err := types.NewKeyFromBytes(pub1)
	require.NoError(t, err)

	msg := types.Message{From: from, To: types.Key{1}, Method: 1}
	sb, err := msg.SigningBytes()
	require.NoError(t, err)

	s1, err := sigs.Sign(sigs.SigTypeEd25519, pk1, sb)
	require.NoError(t, err)
	s2, err := sigs.Sign(sigs.SigTypeEd25519, pk2, sb)
	require.NoError(t, err)

	smsg := &types.SignedMessage{Message: msg, Signatures: []types.Signature{*s1, *s2}}
	require.NoError(t, sigs.CheckMessageSignatures(ctx, smsg))

	smsg.Message.Nonce++
	require.Error(t, sigs.CheckMessageSignatures(ctx, smsg))

	require.Error(t, sigs.CheckMessageSignatures(ctx, &types.SignedMessage{Message: msg}))
}
