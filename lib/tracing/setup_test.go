package tracing

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJaegerOptsFromEnv(t *testing.T) {
	for _, env := range []string{envCollectorEndpoint, envAgentHost, envAgentPort} {
		t.Setenv(env, "")
		require.NoError(t, os.Unsetenv(env))
	}
	require.Nil(t, jaegerOptsFromEnv())
	require.Nil(t, SetupJaegerTracing("konnect-test"))

	t.Setenv(envAgentHost, "localhost")
	require.NotNil(t, jaegerOptsFromEnv())
}
