package cli

import (
	"math/big"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"golang.org/x/xerrors"

	"github.com/konnect-labs/konnect/chain/actors/builtin"
	"github.com/konnect-labs/konnect/chain/actors/builtin/market"
	"github.com/konnect-labs/konnect/chain/vm"
)

// Set the global default, to be overridden by individual cli flags in order
func init() {
	color.NoColor = os.Getenv("GOLOG_LOG_FMT") != "color" &&
		!isatty.IsTerminal(os.Stdout.Fd()) &&
		!isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// printReceipt prints the outcome of a message and its events. A failed
// message is returned as an error so the command exits non-zero.
func printReceipt(afmt *AppFmt, ret *vm.ApplyRet) error {
	if !ret.ExitCode.IsSuccess() {
		afmt.Printf("%s %s (%s)\n", color.RedString("failed:"), market.ExitCodeName(ret.ExitCode), market.ExitCodeMessage(ret.ExitCode))
		if ret.ActorErr != nil {
			afmt.Printf("  %s\n", ret.ActorErr.Error())
		}
		return xerrors.Errorf("message failed with exit code %s", market.ExitCodeName(ret.ExitCode))
	}

	afmt.Printf("%s in %s\n", color.GreenString("ok"), ret.Duration)
	for i := range ret.Events {
		ev := &ret.Events[i]
		if ev.Emitter != builtin.MarketProgramKey {
			afmt.Printf("  event from %s with %d entries\n", ev.Emitter, len(ev.Entries))
			continue
		}
		me, err := market.DecodeEvent(ev)
		if err != nil {
			afmt.Printf("  %s %s\n", color.YellowString("undecodable event:"), err)
			continue
		}
		afmt.Printf("  %s %+v\n", color.CyanString(me.EventType()), me)
	}
	return nil
}

// formatAmount renders base units of an asset with its decimals, grouping the
// integer part: 1234567 with 2 decimals is "12,345.67".
func formatAmount(amount uint64, decimals uint8) string {
	v := new(big.Int).SetUint64(amount)
	if decimals == 0 {
		return humanize.BigComma(v)
	}

	div := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	whole, frac := new(big.Int).QuoRem(v, div, new(big.Int))

	fs := frac.String()
	fs = strings.Repeat("0", int(decimals)-len(fs)) + fs
	fs = strings.TrimRight(fs, "0")
	if fs == "" {
		return humanize.BigComma(whole)
	}
	return humanize.BigComma(whole) + "." + fs
}
