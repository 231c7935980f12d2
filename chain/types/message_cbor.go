package types

import (
	"fmt"
	"io"

	cbg "github.com/whyrusleeping/cbor-gen"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-state-types/abi"
)

// This file contains the CBOR serde logic for Message. The generator cannot
// marshal a slice of fixed size arrays, so Remaining is written by hand as an
// array of byte strings. Every other field follows the tuple encoding of
// cbor_gen.go.

var lengthBufMessage = []byte{134}

func (m *Message) MarshalCBOR(w io.Writer) error {
	if m == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}

	cw := cbg.NewCborWriter(w)

	if _, err := cw.Write(lengthBufMessage); err != nil {
		return err
	}

	// t.From (types.Key) (array)
	if err := m.From.MarshalCBOR(cw); err != nil {
		return err
	}

	// t.To (types.Key) (array)
	if err := m.To.MarshalCBOR(cw); err != nil {
		return err
	}

	// t.Nonce (uint64) (uint64)
	if err := cw.WriteMajorTypeHeader(cbg.MajUnsignedInt, m.Nonce); err != nil {
		return err
	}

	// t.Method (abi.MethodNum) (uint64)
	if err := cw.WriteMajorTypeHeader(cbg.MajUnsignedInt, uint64(m.Method)); err != nil {
		return err
	}

	// t.Params ([]uint8) (slice)
	if len(m.Params) > cbg.ByteArrayMaxLen {
		return xerrors.Errorf("Byte array in field t.Params was too long")
	}

	if err := cw.WriteMajorTypeHeader(cbg.MajByteString, uint64(len(m.Params))); err != nil {
		return err
	}

	if _, err := cw.Write(m.Params); err != nil {
		return err
	}

	// t.Remaining ([]types.Key) (slice)
	if len(m.Remaining) > cbg.MaxLength {
		return xerrors.Errorf("Slice value in field t.Remaining was too long")
	}

	if err := cw.WriteMajorTypeHeader(cbg.MajArray, uint64(len(m.Remaining))); err != nil {
		return err
	}
	for i := range m.Remaining {
		if err := m.Remaining[i].MarshalCBOR(cw); err != nil {
			return err
		}
	}
	return nil
}

func (m *Message) UnmarshalCBOR(r io.Reader) (err error) {
	*m = Message{}

	cr := cbg.NewCborReader(r)

	maj, extra, err := cr.ReadHeader()
	if err != nil {
		return err
	}
	defer func() {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
	}()

	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 6 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.From (types.Key) (array)
	if err := m.From.UnmarshalCBOR(cr); err != nil {
		return xerrors.Errorf("unmarshaling t.From: %w", err)
	}

	// t.To (types.Key) (array)
	if err := m.To.UnmarshalCBOR(cr); err != nil {
		return xerrors.Errorf("unmarshaling t.To: %w", err)
	}

	// t.Nonce (uint64) (uint64)
	maj, extra, err = cr.ReadHeader()
	if err != nil {
		return err
	}
	if maj != cbg.MajUnsignedInt {
		return fmt.Errorf("wrong type for uint64 field")
	}
	m.Nonce = extra

	// t.Method (abi.MethodNum) (uint64)
	maj, extra, err = cr.ReadHeader()
	if err != nil {
		return err
	}
	if maj != cbg.MajUnsignedInt {
		return fmt.Errorf("wrong type for uint64 field")
	}
	m.Method = abi.MethodNum(extra)

	// t.Params ([]uint8) (slice)
	maj, extra, err = cr.ReadHeader()
	if err != nil {
		return err
	}

	if extra > cbg.ByteArrayMaxLen {
		return fmt.Errorf("t.Params: byte array too large (%d)", extra)
	}
	if maj != cbg.MajByteString {
		return fmt.Errorf("expected byte array")
	}

	if extra > 0 {
		m.Params = make([]uint8, extra)
	}

	if _, err := io.ReadFull(cr, m.Params); err != nil {
		return err
	}

	// t.Remaining ([]types.Key) (slice)
	maj, extra, err = cr.ReadHeader()
	if err != nil {
		return err
	}

	if extra > cbg.MaxLength {
		return fmt.Errorf("t.Remaining: array too large (%d)", extra)
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("expected cbor array")
	}

	if extra > 0 {
		m.Remaining = make([]Key, extra)
	}

	for i := 0; i < int(extra); i++ {
		if err := m.Remaining[i].UnmarshalCBOR(cr); err != nil {
			return xerrors.Errorf("unmarshaling t.Remaining[%d]: %w", i, err)
		}
	}
	return nil
}
