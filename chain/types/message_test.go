package types_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/konnect-labs/konnect/chain/types"
	"github.com/konnect-labs/konnect/chain/types/mock"
)

func TestMessageCBORLayout(t *testing.T) {
	k1, k2, k3 := mock.Key(1), mock.Key(2), mock.Key(3)
	msg := &types.Message{
		From:      k1,
		To:        k2,
		Nonce:     12,
		Method:    7,
		Params:    []byte{1, 2},
		Remaining: []types.Key{k3},
	}

	keyBytes := func(k types.Key) []byte {
		return append([]byte{0x58, 0x20}, k[:]...)
	}
	var want []byte
	want = append(want, 0x86)
	want = append(want, keyBytes(k1)...)
	want = append(want, keyBytes(k2)...)
	want = append(want, 0x0c, 0x07, 0x42, 1, 2)
	want = append(want, 0x81)
	want = append(want, keyBytes(k3)...)

	b, err := msg.Serialize()
	require.NoError(t, err)
	require.Equal(t, want, b)

	out, err := types.DecodeMessage(b)
	require.NoError(t, err)
	require.Equal(t, msg, out)

	// no remaining keys encodes an empty array and decodes to nil
	msg.Remaining = nil
	b, err = msg.Serialize()
	require.NoError(t, err)
	require.Equal(t, byte(0x80), b[len(b)-1])
	out, err = types.DecodeMessage(b)
	require.NoError(t, err)
	require.Nil(t, out.Remaining)

	// a remaining key of the wrong length is rejected
	bad := append([]byte{}, want[:len(want)-34]...)
	bad = append(bad, 0x41, 0xff)
	_, err = types.DecodeMessage(bad)
	require.Error(t, err)

	var m types.Message
	require.Error(t, m.UnmarshalCBOR(bytes.NewReader(want[:len(want)-1])))
}
