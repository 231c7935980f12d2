package types_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/konnect-labs/konnect/chain/types"
	"github.com/konnect-labs/konnect/chain/types/mock"
)

func TestKeyText(t *testing.T) {
	k := mock.Key(42)

	parsed, err := types.NewKeyFromString(k.String())
	require.NoError(t, err)
	require.Equal(t, k, parsed)

	b, err := json.Marshal(map[string]types.Key{"k": k})
	require.NoError(t, err)

	var out map[string]types.Key
	require.NoError(t, json.Unmarshal(b, &out))
	require.Equal(t, k, out["k"])

	_, err = types.NewKeyFromString("not-base58-0OIl")
	require.Error(t, err)
	_, err = types.NewKeyFromBytes([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestKeyCBOR(t *testing.T) {
	k := mock.Key(7)

	buf := new(bytes.Buffer)
	require.NoError(t, k.MarshalCBOR(buf))

	var out types.Key
	require.NoError(t, out.UnmarshalCBOR(bytes.NewReader(buf.Bytes())))
	require.Equal(t, k, out)

	short := new(bytes.Buffer)
	require.NoError(t, (&types.Account{}).MarshalCBOR(short))
	require.Error(t, out.UnmarshalCBOR(bytes.NewReader(short.Bytes())))
}

func TestDerivedKeys(t *testing.T) {
	program := mock.Key(1)
	authority := mock.Key(2)

	k, bump, err := types.FindDerivedKey(program, []byte("marketplace"), authority[:])
	require.NoError(t, err)
	require.False(t, types.IsOnCurve(k))

	again, err := types.CreateDerivedKey(program, bump, []byte("marketplace"), authority[:])
	require.NoError(t, err)
	require.Equal(t, k, again)

	other, _, err := types.FindDerivedKey(mock.Key(3), []byte("marketplace"), authority[:])
	require.NoError(t, err)
	require.NotEqual(t, k, other)

	_, _, err = types.FindDerivedKey(program, make([]byte, types.MaxSeedLength+1))
	require.Error(t, err)

	many := make([][]byte, types.MaxSeeds)
	_, _, err = types.FindDerivedKey(program, many...)
	require.Error(t, err)
}

func TestMessageRoundtrip(t *testing.T) {
	msg := &types.Message{
		From:      mock.Key(1),
		To:        mock.Key(2),
		Nonce:     12,
		Method:    7,
		Params:    []byte{1, 2},
		Remaining: []types.Key{mock.Key(3), mock.Key(4)},
	}
	smsg := &types.SignedMessage{
		Message:    *msg,
		Signatures: []types.Signature{{Signer: mock.Key(1), Data: make([]byte, types.SignatureLength)}},
	}

	b, err := smsg.Serialize()
	require.NoError(t, err)

	out, err := types.DecodeSignedMessage(b)
	require.NoError(t, err)
	require.Equal(t, smsg, out)
	require.Equal(t, smsg.Cid(), out.Cid())

	require.NoError(t, msg.ValidForBlockInclusion())
	msg.To = types.Undef
	require.Error(t, msg.ValidForBlockInclusion())
}
