package market

import (
	"fmt"

	"github.com/filecoin-project/go-state-types/exitcode"
)

// Market exit codes. They start at FirstMarketExitCode so they never collide
// with the system and common codes of go-state-types.
const FirstMarketExitCode = exitcode.ExitCode(6000)

const (
	ErrFeeTooHigh = FirstMarketExitCode + iota
	ErrInvalidAmount
	ErrInvalidQuantity
	ErrListingInactive
	ErrWrongMarketplace
	ErrMathOverflow
	ErrAlreadyReleased
	ErrWrongFlowForGoods
	ErrWrongFlowForService
	ErrInvalidAccount
	ErrMissingReference
	ErrWrongReference
)

var exitCodeNames = map[exitcode.ExitCode]string{
	ErrFeeTooHigh:          "FeeTooHigh",
	ErrInvalidAmount:       "InvalidAmount",
	ErrInvalidQuantity:     "InvalidQuantity",
	ErrListingInactive:     "ListingInactive",
	ErrWrongMarketplace:    "WrongMarketplace",
	ErrMathOverflow:        "MathOverflow",
	ErrAlreadyReleased:     "AlreadyReleased",
	ErrWrongFlowForGoods:   "WrongFlowForGoods",
	ErrWrongFlowForService: "WrongFlowForService",
	ErrInvalidAccount:      "InvalidAccount",
	ErrMissingReference:    "MissingReference",
	ErrWrongReference:      "WrongReference",
}

var exitCodeMessages = map[exitcode.ExitCode]string{
	ErrFeeTooHigh:          "fee too high (max 10%)",
	ErrInvalidAmount:       "invalid amount",
	ErrInvalidQuantity:     "invalid quantity",
	ErrListingInactive:     "listing is inactive",
	ErrWrongMarketplace:    "wrong marketplace",
	ErrMathOverflow:        "math overflow",
	ErrAlreadyReleased:     "already released",
	ErrWrongFlowForGoods:   "use service escrow flow",
	ErrWrongFlowForService: "use goods buy-now flow",
	ErrInvalidAccount:      "invalid account",
	ErrMissingReference:    "missing reference in remaining keys",
	ErrWrongReference:      "provided reference does not match remaining keys entry",
}

// ExitCodeName names market and runtime exit codes for receipts and the CLI.
func ExitCodeName(code exitcode.ExitCode) string {
	if n, ok := exitCodeNames[code]; ok {
		return n
	}
	return code.String()
}

// ExitCodeMessage is the human readable description of a market exit code.
func ExitCodeMessage(code exitcode.ExitCode) string {
	if m, ok := exitCodeMessages[code]; ok {
		return m
	}
	return fmt.Sprintf("exit code %d", code)
}
