package cli

import (
	"bytes"
	"io"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/konnect-labs/konnect/chain/types/mock"
)

type clientTest struct {
	t    *testing.T
	repo string
}

func newClientTest(t *testing.T) *clientTest {
	return &clientTest{t: t, repo: filepath.Join(t.TempDir(), "repo")}
}

func (c *clientTest) run(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	app := &cli.App{
		Name:      "konnect",
		Flags:     []cli.Flag{FlagRepo},
		Commands:  Commands,
		Writer:    buf,
		ErrWriter: io.Discard,
	}
	err := app.Run(append([]string{"konnect", "--repo", c.repo}, args...))
	return buf.String(), err
}

func (c *clientTest) runOK(args ...string) string {
	out, err := c.run(args...)
	require.NoError(c.t, err, "%v: %s", args, out)
	return out
}

// field extracts the value printed after "name: ".
func (c *clientTest) field(out, name string) string {
	m := regexp.MustCompile(name + `: (\S+)`).FindStringSubmatch(out)
	require.Len(c.t, m, 2, "no %s in %q", name, out)
	return m[1]
}

func TestInitTwice(t *testing.T) {
	c := newClientTest(t)
	c.runOK("init", "--no-key")

	_, err := c.run("init")
	require.Error(t, err)
	require.Contains(t, err.Error(), "already initialized")
}

func TestUninitializedRepo(t *testing.T) {
	c := newClientTest(t)
	_, err := c.run("wallet", "list")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not initialized")
}

func TestConfigDefault(t *testing.T) {
	c := newClientTest(t)
	out := c.runOK("config", "default")
	require.Contains(t, out, "[Journal]")
	require.Contains(t, out, "DefaultMarketplace")
}

func TestMarketplaceFlow(t *testing.T) {
	c := newClientTest(t)

	seller := c.field(c.runOK("init"), "default key")
	buyer := c.runOK("wallet", "new")
	buyer = buyer[:len(buyer)-1]

	c.runOK("wallet", "fund", seller, "10000000000")
	c.runOK("wallet", "fund", buyer, "10000000000")
	require.Contains(t, c.runOK("wallet", "list"), seller)

	usdc := c.field(c.runOK("token", "create-asset", "--decimals", "0", "usdc"), "asset")
	pts := c.field(c.runOK("token", "create-asset", "--decimals", "2", "pts"), "asset")
	for _, asset := range []string{usdc, pts} {
		c.runOK("token", "open", asset)
		c.runOK("token", "open", "--from", buyer, asset)
		c.runOK("token", "mint", asset, buyer, "1000000")
	}
	require.Equal(t, "10,000 (1000000 base units)\n", c.runOK("token", "balance", pts, buyer))

	mp := c.field(c.runOK("marketplace", "init", "--set-default", "250"), "marketplace")
	require.Equal(t, mp+"\n", c.runOK("keys", "derive", "marketplace", seller))
	c.field(c.runOK("merchant", "register"), "merchant")

	reference := mock.Key(7).String()

	// goods
	listing := c.field(c.runOK("listing", "create", usdc, "100", "10"), "listing")
	out := c.runOK("buy", "--from", buyer, "--reference", reference, listing, "3")
	require.Contains(t, out, "OrderCompleted")
	require.Equal(t, "999,700 (999700 base units)\n", c.runOK("token", "balance", usdc, buyer))

	out, err := c.run("buy", "--from", buyer, "--reference", reference, listing, "8")
	require.Error(t, err)
	require.Contains(t, out, "InvalidQuantity")

	out = c.runOK("state", "get", listing)
	require.Contains(t, out, `"Kind": "listing"`)
	require.Contains(t, out, `"Quantity": 7`)

	c.runOK("listing", "update", "--active", "false", listing)
	out, err = c.run("buy", "--from", buyer, "--reference", reference, listing, "1")
	require.Error(t, err)
	require.Contains(t, out, "ListingInactive")

	// services
	service := c.field(c.runOK("listing", "create", "--service", pts, "5000", "1"), "listing")
	escrow := c.field(c.runOK("order", "create", "--from", buyer, "--reference", reference, service), "escrow")
	require.Equal(t, "9,950 (995000 base units)\n", c.runOK("token", "balance", pts, buyer))

	out = c.runOK("order", "release", "--from", buyer, escrow)
	require.Contains(t, out, "ServiceOrderReleased")

	out = c.runOK("state", "get", escrow)
	require.Contains(t, out, `"Released": true`)

	// seller is also the marketplace authority, so it receives the fee too
	require.Equal(t, "50 (5000 base units)\n", c.runOK("token", "balance", pts, seller))

	out, err = c.run("order", "cancel", "--from", buyer, escrow)
	require.Error(t, err)
	require.Contains(t, out, "AlreadyReleased")

	require.Contains(t, c.runOK("state", "list", "market"), "escrow")
}
