package mock

import (
	"context"
	"encoding/binary"

	"github.com/minio/sha256-simd"

	"github.com/filecoin-project/go-state-types/abi"

	"github.com/konnect-labs/konnect/chain/types"
	"github.com/konnect-labs/konnect/chain/wallet"
)

// Key returns a deterministic, non-zero key for i. It is not a valid public
// key and nothing can sign for it.
func Key(i uint64) types.Key {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], i)
	return types.Key(sha256.Sum256(append([]byte("mock-key"), buf[:]...)))
}

// KeyInfo returns a deterministic ed25519 key derived from i.
func KeyInfo(i uint64) types.KeyInfo {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], i)
	seed := sha256.Sum256(append([]byte("mock-seed"), buf[:]...))
	return types.KeyInfo{
		Type:       types.KTEd25519,
		PrivateKey: seed[:],
	}
}

// Signer imports the deterministic key i into w and returns its address.
func Signer(w *wallet.Wallet, i uint64) types.Key {
	ki := KeyInfo(i)
	addr, err := w.Import(&ki)
	if err != nil {
		panic(err)
	}
	return addr
}

func UnsignedMessage(from, to types.Key, nonce uint64, method abi.MethodNum, params []byte) *types.Message {
	return &types.Message{
		From:   from,
		To:     to,
		Nonce:  nonce,
		Method: method,
		Params: params,
	}
}

func MkMessage(from, to types.Key, nonce uint64, w *wallet.Wallet) *types.SignedMessage {
	msg := UnsignedMessage(from, to, nonce, 1, nil)

	smsg, err := w.SignMessage(context.TODO(), msg)
	if err != nil {
		panic(err)
	}
	return smsg
}
