package types

import (
	"bytes"

	"golang.org/x/xerrors"
)

var ErrAccountNotFound = xerrors.New("account not found")

// Account is the unit of state. Owner is the program allowed to mutate Data;
// Balance is the native balance, which also backs the storage deposit of
// program-owned records.
type Account struct {
	Owner   Key
	Balance uint64
	Nonce   uint64
	Data    []byte
}

func (a *Account) Copy() *Account {
	out := *a
	out.Data = append([]byte(nil), a.Data...)
	return &out
}

func (a *Account) Serialize() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := a.MarshalCBOR(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func DecodeAccount(b []byte) (*Account, error) {
	var a Account
	if err := a.UnmarshalCBOR(bytes.NewReader(b)); err != nil {
		return nil, err
	}
	return &a, nil
}
