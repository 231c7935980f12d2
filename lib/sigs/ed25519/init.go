package ed25519

import (
	"crypto/ed25519"
	"crypto/rand"

	"golang.org/x/xerrors"

	"github.com/konnect-labs/konnect/chain/types"
	"github.com/konnect-labs/konnect/lib/sigs"
)

type edSigner struct{}

// GenPrivate returns the 32 byte seed; the expanded key is rebuilt on use.
func (edSigner) GenPrivate() ([]byte, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	return priv.Seed(), nil
}

func (edSigner) ToPublic(pk []byte) ([]byte, error) {
	if len(pk) != ed25519.SeedSize {
		return nil, xerrors.Errorf("bad private key length %d", len(pk))
	}
	return ed25519.NewKeyFromSeed(pk).Public().(ed25519.PublicKey), nil
}

func (edSigner) Sign(pk []byte, msg []byte) ([]byte, error) {
	if len(pk) != ed25519.SeedSize {
		return nil, xerrors.Errorf("bad private key length %d", len(pk))
	}
	return ed25519.Sign(ed25519.NewKeyFromSeed(pk), msg), nil
}

func (edSigner) Verify(sig []byte, signer types.Key, msg []byte) error {
	if len(sig) != types.SignatureLength {
		return xerrors.Errorf("bad signature length %d", len(sig))
	}
	if !ed25519.Verify(ed25519.PublicKey(signer[:]), msg, sig) {
		return xerrors.Errorf("ed25519 signature failed to verify")
	}
	return nil
}

func init() {
	sigs.RegisterSignature(sigs.SigTypeEd25519, edSigner{})
}
