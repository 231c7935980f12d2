package build

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionInts(t *testing.T) {
	v := newVer(1, 2, 3)
	major, minor, patch := v.Ints()
	require.Equal(t, uint32(1), major)
	require.Equal(t, uint32(2), minor)
	require.Equal(t, uint32(3), patch)
	require.Equal(t, "1.2.3", v.String())
}

func TestParseRepoVersion(t *testing.T) {
	v, err := ParseRepoVersion(RepoVersion.String())
	require.NoError(t, err)
	require.True(t, v.EqMajorMinor(RepoVersion))

	v, err = ParseRepoVersion("1.0.7")
	require.NoError(t, err)
	require.True(t, v.EqMajorMinor(RepoVersion))

	v, err = ParseRepoVersion("1.1.0")
	require.NoError(t, err)
	require.False(t, v.EqMajorMinor(RepoVersion))

	_, err = ParseRepoVersion("one")
	require.Error(t, err)
}
