package types

import (
	"bytes"

	"github.com/ipfs/go-cid"
)

type SignedMessage struct {
	Message    Message
	Signatures []Signature
}

func (sm *SignedMessage) Cid() cid.Cid {
	return sm.Message.Cid()
}

func (sm *SignedMessage) VMMessage() *Message {
	return &sm.Message
}

// Signers lists the keys that signed the message, in signature order.
func (sm *SignedMessage) Signers() []Key {
	out := make([]Key, 0, len(sm.Signatures))
	for _, s := range sm.Signatures {
		out = append(out, s.Signer)
	}
	return out
}

func DecodeSignedMessage(data []byte) (*SignedMessage, error) {
	var msg SignedMessage
	if err := msg.UnmarshalCBOR(bytes.NewReader(data)); err != nil {
		return nil, err
	}

	return &msg, nil
}

func (sm *SignedMessage) Serialize() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := sm.MarshalCBOR(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
