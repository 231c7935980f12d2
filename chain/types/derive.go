package types

import (
	"filippo.io/edwards25519"
	"github.com/minio/sha256-simd"
	"golang.org/x/xerrors"
)

const (
	MaxSeeds      = 16
	MaxSeedLength = 32
)

const derivedKeyMarker = "ProgramDerivedAddress"

var ErrKeyOnCurve = xerrors.New("derived key lies on the ed25519 curve")

// CreateDerivedKey computes the key controlled by program for the given seed
// path and bump. Derived keys are never valid public keys, so no private key
// can sign for them; only the owning program can act as them.
func CreateDerivedKey(program Key, bump uint8, seeds ...[]byte) (Key, error) {
	if len(seeds)+1 > MaxSeeds {
		return Undef, xerrors.Errorf("too many seeds: %d", len(seeds))
	}

	h := sha256.New()
	for i, s := range seeds {
		if len(s) > MaxSeedLength {
			return Undef, xerrors.Errorf("seed %d too long: %d bytes", i, len(s))
		}
		_, _ = h.Write(s)
	}
	_, _ = h.Write([]byte{bump})
	_, _ = h.Write(program[:])
	_, _ = h.Write([]byte(derivedKeyMarker))

	var out Key
	copy(out[:], h.Sum(nil))

	if _, err := new(edwards25519.Point).SetBytes(out[:]); err == nil {
		return Undef, ErrKeyOnCurve
	}
	return out, nil
}

// FindDerivedKey searches bumps from 255 down and returns the first key that
// is off the curve, together with its bump.
func FindDerivedKey(program Key, seeds ...[]byte) (Key, uint8, error) {
	for bump := 255; bump >= 0; bump-- {
		k, err := CreateDerivedKey(program, uint8(bump), seeds...)
		if err == ErrKeyOnCurve {
			continue
		}
		if err != nil {
			return Undef, 0, err
		}
		return k, uint8(bump), nil
	}
	return Undef, 0, xerrors.New("unable to find a viable derived key bump")
}

func MustFindDerivedKey(program Key, seeds ...[]byte) (Key, uint8) {
	k, b, err := FindDerivedKey(program, seeds...)
	if err != nil {
		panic(err)
	}
	return k, b
}

// IsOnCurve reports whether k is a valid ed25519 point, i.e. whether a private
// key could exist for it.
func IsOnCurve(k Key) bool {
	_, err := new(edwards25519.Point).SetBytes(k[:])
	return err == nil
}
