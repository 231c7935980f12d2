package sigs

import (
	"context"
	"fmt"

	"go.opencensus.io/trace"
	"golang.org/x/xerrors"

	"github.com/konnect-labs/konnect/chain/types"
)

type SigType byte

const (
	SigTypeUnknown SigType = iota
	SigTypeEd25519
)

func (t SigType) String() string {
	switch t {
	case SigTypeEd25519:
		return "ed25519"
	default:
		return fmt.Sprintf("unknown(%d)", byte(t))
	}
}

// Sign takes in signature type, private key and message. Returns a signature for that message.
// Valid sigTypes are: "ed25519"
func Sign(sigType SigType, privkey []byte, msg []byte) (*types.Signature, error) {
	sv, ok := sigs[sigType]
	if !ok {
		return nil, fmt.Errorf("cannot sign message with signature of unsupported type: %v", sigType)
	}

	pub, err := sv.ToPublic(privkey)
	if err != nil {
		return nil, xerrors.Errorf("deriving public key: %w", err)
	}
	signer, err := types.NewKeyFromBytes(pub)
	if err != nil {
		return nil, err
	}

	sb, err := sv.Sign(privkey, msg)
	if err != nil {
		return nil, err
	}
	return &types.Signature{
		Signer: signer,
		Data:   sb,
	}, nil
}

// Verify verifies signatures
func Verify(sig *types.Signature, msg []byte) error {
	if sig == nil {
		return xerrors.Errorf("signature is nil")
	}

	sv, ok := sigs[SigTypeEd25519]
	if !ok {
		return fmt.Errorf("cannot verify signature of unsupported type: %v", SigTypeEd25519)
	}

	return sv.Verify(sig.Data, sig.Signer, msg)
}

// Generate generates private key of given type
func Generate(sigType SigType) ([]byte, error) {
	sv, ok := sigs[sigType]
	if !ok {
		return nil, fmt.Errorf("cannot generate private key of unsupported type: %v", sigType)
	}

	return sv.GenPrivate()
}

// ToPublic converts private key to public key
func ToPublic(sigType SigType, pk []byte) ([]byte, error) {
	sv, ok := sigs[sigType]
	if !ok {
		return nil, fmt.Errorf("cannot generate public key of unsupported type: %v", sigType)
	}

	return sv.ToPublic(pk)
}

// CheckMessageSignatures verifies every signature over the message's signing
// bytes.
func CheckMessageSignatures(ctx context.Context, smsg *types.SignedMessage) error {
	_, span := trace.StartSpan(ctx, "checkMessageSignatures")
	defer span.End()

	if len(smsg.Signatures) == 0 {
		return xerrors.Errorf("message has no signatures")
	}

	sb, err := smsg.Message.SigningBytes()
	if err != nil {
		return xerrors.Errorf("getting signing bytes: %w", err)
	}

	for i := range smsg.Signatures {
		if err := Verify(&smsg.Signatures[i], sb); err != nil {
			return xerrors.Errorf("signature %d (%s): %w", i, smsg.Signatures[i].Signer, err)
		}
	}
	return nil
}

// SigShim is used for introducing signature functions
type SigShim interface {
	GenPrivate() ([]byte, error)
	ToPublic(pk []byte) ([]byte, error)
	Sign(pk []byte, msg []byte) ([]byte, error)
	Verify(sig []byte, signer types.Key, msg []byte) error
}

var sigs map[SigType]SigShim

// RegisterSignature should be only used during init
func RegisterSignature(typ SigType, vs SigShim) {
	if sigs == nil {
		sigs = make(map[SigType]SigShim)
	}
	sigs[typ] = vs
}
