package konnectlog

import (
	"testing"

	logging "github.com/ipfs/go-log/v2"
	"github.com/stretchr/testify/require"
)

var _ = logging.Logger("konnectlog-test")

func TestSetLevels(t *testing.T) {
	require.NoError(t, SetLevels(map[string]string{"konnectlog-test": "DEBUG"}))
	require.Error(t, SetLevels(map[string]string{"konnectlog-test": "LOUD"}))
	require.Error(t, SetLevels(map[string]string{"no-such-subsystem": "INFO"}))
}
