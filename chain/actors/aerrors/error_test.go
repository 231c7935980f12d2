package aerrors_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-state-types/exitcode"

	. "github.com/konnect-labs/konnect/chain/actors/aerrors"
)

func TestFatalError(t *testing.T) {
	e1 := xerrors.New("out of disk space")
	e2 := xerrors.Errorf("could not put node: %w", e1)
	e3 := xerrors.Errorf("could not save head: %w", e2)
	ae := Escalate(e3, "failed to save the head")
	aw1 := Wrap(ae, "saving head of new miner actor")
	aw2 := Absorb(aw1, 1, "try to absorb fatal error")
	aw3 := Wrap(aw2, "initializing actor")
	aw4 := Wrap(aw3, "creating miner in storage market")
	t.Logf("Verbose error: %+v", aw4)
	t.Logf("Normal error: %v", aw4)
	require.True(t, IsFatal(aw4), "should be fatal")
}

func TestAbsorbedError(t *testing.T) {
	e1 := xerrors.New("EOF")
	e2 := xerrors.Errorf("could not decode: %w", e1)
	ae := Absorb(e2, 35, "failed to decode CBOR")
	aw1 := Wrap(ae, "saving head of new miner actor")
	aw2 := Wrap(aw1, "initializing actor")
	aw3 := Wrap(aw2, "creating miner in storage market")
	t.Logf("Verbose error: %+v", aw3)
	t.Logf("Normal error: %v", aw3)
	require.Equal(t, exitcode.ExitCode(35), RetCode(aw3))
	require.False(t, IsFatal(aw3))
}

func TestZeroCodeIsFatal(t *testing.T) {
	require.True(t, IsFatal(New(0, "nope")))
	require.True(t, IsFatal(Newf(0, "nope %d", 1)))
}

func TestHandleExternalError(t *testing.T) {
	inner := Newf(exitcode.ErrForbidden, "signer missing")
	wrapped := xerrors.Errorf("calling token program: %w", inner)

	ae := HandleExternalError(wrapped, "transfer failed")
	require.False(t, IsFatal(ae))
	require.Equal(t, exitcode.ErrForbidden, RetCode(ae))

	ae = HandleExternalError(xerrors.New("disk"), "transfer failed")
	require.True(t, IsFatal(ae))
	require.Nil(t, HandleExternalError(nil, "nothing"))
}
