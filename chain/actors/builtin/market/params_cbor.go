package market

import (
	"fmt"
	"io"

	cbg "github.com/whyrusleeping/cbor-gen"
	"golang.org/x/xerrors"

	"github.com/konnect-labs/konnect/chain/types"
)

// This file contains the CBOR serde logic for UpdateMarketplaceParams. The
// generator does not support pointers to fixed size arrays, so the optional
// NewAuthority is written by hand: null when unset, a byte string otherwise.

var lengthBufUpdateMarketplaceParams = []byte{132}

func (t *UpdateMarketplaceParams) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}

	cw := cbg.NewCborWriter(w)

	if _, err := cw.Write(lengthBufUpdateMarketplaceParams); err != nil {
		return err
	}

	// t.Marketplace (types.Key) (array)
	if err := t.Marketplace.MarshalCBOR(cw); err != nil {
		return err
	}

	// t.Authority (types.Key) (array)
	if err := t.Authority.MarshalCBOR(cw); err != nil {
		return err
	}

	// t.NewFeeBps (uint64) (uint64)
	if t.NewFeeBps == nil {
		if _, err := cw.Write(cbg.CborNull); err != nil {
			return err
		}
	} else {
		if err := cw.WriteMajorTypeHeader(cbg.MajUnsignedInt, *t.NewFeeBps); err != nil {
			return err
		}
	}

	// t.NewAuthority (types.Key) (array)
	if t.NewAuthority == nil {
		if _, err := cw.Write(cbg.CborNull); err != nil {
			return err
		}
	} else {
		if err := t.NewAuthority.MarshalCBOR(cw); err != nil {
			return err
		}
	}
	return nil
}

func (t *UpdateMarketplaceParams) UnmarshalCBOR(r io.Reader) (err error) {
	*t = UpdateMarketplaceParams{}

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

	if extra != 4 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.Marketplace (types.Key) (array)
	if err := t.Marketplace.UnmarshalCBOR(cr); err != nil {
		return xerrors.Errorf("unmarshaling t.Marketplace: %w", err)
	}

	// t.Authority (types.Key) (array)
	if err := t.Authority.UnmarshalCBOR(cr); err != nil {
		return xerrors.Errorf("unmarshaling t.Authority: %w", err)
	}

	// t.NewFeeBps (uint64) (uint64)
	isNull, err := peekNull(cr)
	if err != nil {
		return err
	}
	if !isNull {
		maj, extra, err = cr.ReadHeader()
		if err != nil {
			return err
		}
		if maj != cbg.MajUnsignedInt {
			return fmt.Errorf("wrong type for uint64 field")
		}
		fee := extra
		t.NewFeeBps = &fee
	}

	// t.NewAuthority (types.Key) (array)
	isNull, err = peekNull(cr)
	if err != nil {
		return err
	}
	if !isNull {
		var k types.Key
		if err := k.UnmarshalCBOR(cr); err != nil {
			return xerrors.Errorf("unmarshaling t.NewAuthority: %w", err)
		}
		t.NewAuthority = &k
	}
	return nil
}

// peekNull consumes a CBOR null if one is next, and leaves any other value
// unread.
func peekNull(cr *cbg.CborReader) (bool, error) {
	b, err := cr.ReadByte()
	if err != nil {
		return false, err
	}
	if b == cbg.CborNull[0] {
		return true, nil
	}
	return false, cr.UnreadByte()
}
