package vm

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cbg "github.com/whyrusleeping/cbor-gen"

	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/konnect-labs/konnect/chain/actors/aerrors"
	"github.com/konnect-labs/konnect/chain/actors/builtin"
	"github.com/konnect-labs/konnect/chain/actors/runtime"
	"github.com/konnect-labs/konnect/chain/types"
)

type basicContract struct{}

type basicParams struct {
	B byte
}

func (b *basicParams) MarshalCBOR(w io.Writer) error {
	_, err := w.Write(cbg.CborEncodeMajorType(cbg.MajUnsignedInt, uint64(b.B)))
	return err
}

func (b *basicParams) UnmarshalCBOR(r io.Reader) error {
	maj, val, err := cbg.CborReadHeader(r)
	if err != nil {
		return err
	}

	if maj != cbg.MajUnsignedInt {
		return fmt.Errorf("bad cbor type")
	}

	b.B = byte(val)
	return nil
}

func (b basicContract) Exports() []interface{} {
	return []interface{}{
		1:  b.InvokeSomething1,
		2:  b.BadParam,
		3:  b.Panics,
		10: b.InvokeSomething10,
	}
}

func (basicContract) InvokeSomething1(rt runtime.Runtime, params *basicParams) ([]byte, aerrors.ActorError) {
	return nil, aerrors.New(exitcode.ExitCode(params.B), "params.B")
}

func (basicContract) BadParam(rt runtime.Runtime, params *basicParams) ([]byte, aerrors.ActorError) {
	return nil, aerrors.New(255, "bad params")
}

func (basicContract) Panics(rt runtime.Runtime, params *basicParams) ([]byte, aerrors.ActorError) {
	panic("boom")
}

func (basicContract) InvokeSomething10(rt runtime.Runtime, params *basicParams) ([]byte, aerrors.ActorError) {
	if params.B == 0 {
		return []byte{0xaa}, nil
	}
	return nil, aerrors.New(exitcode.ExitCode(params.B+10), "params.B")
}

type badContract struct{}

func (b badContract) Exports() []interface{} {
	return []interface{}{1: b.NoErr}
}

func (badContract) NoErr(rt runtime.Runtime, params *basicParams) []byte {
	return nil
}

func TestInvokerBasic(t *testing.T) {
	inv := &invoker{}
	code, err := inv.transform(basicContract{})
	require.NoError(t, err)

	rt := &Runtime{}

	{
		bParam, aerr := SerializeParams(&basicParams{B: 1})
		require.Nil(t, aerr)

		_, aerr = code[1](rt, bParam)

		assert.Equal(t, exitcode.ExitCode(1), aerrors.RetCode(aerr), "return code should be 1")
		if aerrors.IsFatal(aerr) {
			t.Fatal("err should not be fatal")
		}
	}

	{
		bParam, aerr := SerializeParams(&basicParams{B: 2})
		require.Nil(t, aerr)

		_, aerr = code[10](rt, bParam)
		assert.Equal(t, exitcode.ExitCode(12), aerrors.RetCode(aerr), "return code should be 12")
		if aerrors.IsFatal(aerr) {
			t.Fatal("err should not be fatal")
		}
	}

	{
		bParam, aerr := SerializeParams(&basicParams{B: 0})
		require.Nil(t, aerr)

		ret, aerr := code[10](rt, bParam)
		require.Nil(t, aerr)
		assert.Equal(t, []byte{0xaa}, ret)
	}

	{
		_, aerr := code[2](rt, []byte{99})
		if aerrors.IsFatal(aerr) {
			t.Fatal("err should not be fatal")
		}
		assert.Equal(t, exitcode.ErrSerialization, aerrors.RetCode(aerr), "undecodable params should fail with ErrSerialization")
	}

	{
		_, aerr := code[3](rt, nil)
		assert.Equal(t, exitcode.SysErrIllegalInstruction, aerrors.RetCode(aerr))
	}
}

func TestInvokerRejectsBadSignatures(t *testing.T) {
	inv := &invoker{}
	_, err := inv.transform(badContract{})
	require.Error(t, err)
}

func TestInvokeUnknownMethod(t *testing.T) {
	key := builtin.ProgramKey("basic")
	inv, err := newInvoker(builtin.NewRegistry(builtin.NewRegistryEntry("basic", key, basicContract{})))
	require.NoError(t, err)

	_, aerr := inv.Invoke(key, &Runtime{}, 4, nil)
	require.Equal(t, exitcode.SysErrInvalidMethod, aerrors.RetCode(aerr))

	_, aerr = inv.Invoke(key, &Runtime{}, 0, nil)
	require.Equal(t, exitcode.SysErrInvalidMethod, aerrors.RetCode(aerr))

	_, aerr = inv.Invoke(types.Key{1}, &Runtime{}, 1, nil)
	require.Equal(t, exitcode.SysErrInvalidReceiver, aerrors.RetCode(aerr))
}

func TestBuiltinProgramsLoad(t *testing.T) {
	_, err := newInvoker(BuiltinPrograms())
	require.NoError(t, err)

	e, ok := BuiltinPrograms().Lookup(builtin.MarketProgramKey)
	require.True(t, ok)
	require.Equal(t, "BuyNow", e.MethodName(builtin.MethodsMarket.BuyNow))
	require.Equal(t, "ReleaseServiceOrder", e.MethodName(builtin.MethodsMarket.ReleaseServiceOrder))
}
