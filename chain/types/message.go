package types

import (
	"bytes"

	block "github.com/ipfs/go-block-format"
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-state-types/abi"
)

// Message asks program To to run Method with the CBOR encoded Params.
// Remaining lists read-only keys the program may inspect in addition to
// the ones named in Params.
type Message struct {
	From  Key
	To    Key
	Nonce uint64

	Method abi.MethodNum
	Params []byte

	Remaining []Key
}

func (m *Message) Caller() Key {
	return m.From
}

func (m *Message) Receiver() Key {
	return m.To
}

func (m *Message) Serialize() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := m.MarshalCBOR(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (m *Message) ToStorageBlock() (block.Block, error) {
	data, err := m.Serialize()
	if err != nil {
		return nil, err
	}

	pref := cid.NewPrefixV1(cid.DagCBOR, multihash.BLAKE2B_MIN+31)
	c, err := pref.Sum(data)
	if err != nil {
		return nil, err
	}

	return block.NewBlockWithCid(data, c)
}

func (m *Message) Cid() cid.Cid {
	b, err := m.ToStorageBlock()
	if err != nil {
		panic(xerrors.Errorf("failed to marshal message: %w", err))
	}

	return b.Cid()
}

// SigningBytes are the bytes every signer of the message signs.
func (m *Message) SigningBytes() ([]byte, error) {
	return m.Serialize()
}

func DecodeMessage(b []byte) (*Message, error) {
	var msg Message
	if err := msg.UnmarshalCBOR(bytes.NewReader(b)); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (m *Message) ValidForBlockInclusion() error {
	if m.From.Empty() {
		return xerrors.New("'From' address cannot be empty")
	}
	if m.To.Empty() {
		return xerrors.New("'To' address cannot be empty")
	}
	if len(m.Remaining) > MaxRemainingKeys {
		return xerrors.Errorf("too many remaining keys: %d > %d", len(m.Remaining), MaxRemainingKeys)
	}
	return nil
}

const MaxRemainingKeys = 32
