package types

// SignatureLength is the size of an ed25519 signature.
const SignatureLength = 64

type Signature struct {
	Signer Key
	Data   []byte
}
