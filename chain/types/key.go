package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mr-tron/base58"
	cbg "github.com/whyrusleeping/cbor-gen"
	"golang.org/x/xerrors"
)

// KeyLength is the size in bytes of every account identity.
const KeyLength = 32

// Key identifies an account. Principals use their ed25519 public key, records
// owned by a program use a key derived from the program key and a seed path.
type Key [KeyLength]byte

// Undef is the zero key. It never identifies a live account.
var Undef = Key{}

func NewKeyFromBytes(b []byte) (Key, error) {
	var k Key
	if len(b) != KeyLength {
		return Undef, xerrors.Errorf("invalid key length %d, expected %d", len(b), KeyLength)
	}
	copy(k[:], b)
	return k, nil
}

// NewKeyFromString parses the base58 text form of a key.
func NewKeyFromString(s string) (Key, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return Undef, xerrors.Errorf("decoding key %q: %w", s, err)
	}
	return NewKeyFromBytes(b)
}

func MustParseKey(s string) Key {
	k, err := NewKeyFromString(s)
	if err != nil {
		panic(err)
	}
	return k
}

func (k Key) String() string {
	return base58.Encode(k[:])
}

func (k Key) Bytes() []byte {
	return k[:]
}

func (k Key) Empty() bool {
	return k == Undef
}

func (k Key) Equals(o Key) bool {
	return bytes.Equal(k[:], o[:])
}

func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Key) UnmarshalText(b []byte) error {
	nk, err := NewKeyFromString(string(b))
	if err != nil {
		return err
	}
	*k = nk
	return nil
}

func (k Key) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *Key) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return k.UnmarshalText([]byte(s))
}

func (k *Key) MarshalCBOR(w io.Writer) error {
	if k == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	return cbg.WriteByteArray(w, k[:])
}

func (k *Key) UnmarshalCBOR(r io.Reader) error {
	cr := cbg.NewCborReader(r)

	maj, extra, err := cr.ReadHeader()
	if err != nil {
		return err
	}
	if maj != cbg.MajByteString {
		return fmt.Errorf("expected byte array for key")
	}
	if extra != KeyLength {
		return fmt.Errorf("key byte array had wrong length %d", extra)
	}
	if _, err := io.ReadFull(cr, k[:]); err != nil {
		return err
	}
	return nil
}
