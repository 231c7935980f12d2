package builtin

import (
	"github.com/minio/sha256-simd"

	"github.com/konnect-labs/konnect/chain/types"
)

// SystemOwner owns principal accounts. Principals are keyed by their public
// key and only ever hold native balance and a nonce.
var SystemOwner = types.Undef

var (
	TokenProgramKey  = ProgramKey("token")
	MarketProgramKey = ProgramKey("market")
)

// ProgramKey returns the well-known key of a builtin program.
func ProgramKey(name string) types.Key {
	return types.Key(sha256.Sum256([]byte("konnect/program/" + name)))
}

// Program is implemented by every builtin program. Exports lists the method
// handlers indexed by method number; index 0 is never callable.
type Program interface {
	Exports() []interface{}
}
