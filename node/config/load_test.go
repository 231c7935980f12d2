package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeNothing(t *testing.T) {
	cfg, err := FromFile(os.DevNull, DefaultNode())
	require.NoError(t, err)
	require.Equal(t, DefaultNode(), cfg)

	cfg, err = FromFile(filepath.Join(t.TempDir(), "nope.toml"), DefaultNode())
	require.NoError(t, err)
	require.Equal(t, DefaultNode(), cfg)
}

func TestPartialConfig(t *testing.T) {
	cfgString := `
		[Market]
		DefaultMarketplace = "4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T"

		[Rent]
		ExemptionYears = 3
	`
	expected := DefaultNode()
	expected.Market.DefaultMarketplace = "4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T"
	expected.Rent.ExemptionYears = 3

	cfg, err := FromReader(strings.NewReader(cfgString), DefaultNode())
	require.NoError(t, err)
	require.Equal(t, expected, cfg)

	f := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(f, []byte(cfgString), 0644))

	cfg, err = FromFile(f, DefaultNode())
	require.NoError(t, err)
	require.Equal(t, expected, cfg)
}

func TestUnknownKeys(t *testing.T) {
	_, err := FromReader(strings.NewReader("[Market]\nProgram = \"x\"\n"), DefaultNode())
	require.Error(t, err)
	require.Contains(t, err.Error(), "Market.Program")
}

func TestDefaultConfigComment(t *testing.T) {
	b, err := ConfigComment(DefaultNode())
	require.NoError(t, err)

	for _, line := range strings.Split(string(b), "\n") {
		if line == "" || strings.HasPrefix(line, "[") {
			continue
		}
		require.True(t, strings.HasPrefix(line, "#"), "line %q is not commented", line)
	}

	// a commented default file decodes to the defaults
	cfg, err := FromReader(bytes.NewReader(b), DefaultNode())
	require.NoError(t, err)
	require.Equal(t, DefaultNode(), cfg)
}

func TestRentPolicy(t *testing.T) {
	p := DefaultNode().Rent.RentPolicy()
	require.Equal(t, uint64(3480), p.LamportsPerByteYear)
	require.Equal(t, uint64(2), p.ExemptionYears)
	require.Equal(t, uint64(128), p.AccountOverhead)
}

func TestJournalDisabledEvents(t *testing.T) {
	j := Journal{DisabledEvents: []string{"vm:apply", "market:OrderCompleted"}}
	evts, err := j.ParseDisabledEvents()
	require.NoError(t, err)
	require.Len(t, evts, 2)
	require.Equal(t, "market", evts[1].System)
	require.Equal(t, "OrderCompleted", evts[1].Event)

	_, err = Journal{DisabledEvents: []string{"broken"}}.ParseDisabledEvents()
	require.Error(t, err)
}
