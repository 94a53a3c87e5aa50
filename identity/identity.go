// Package identity binds external handles (repository account names) to
// controlling wallets, exactly once, via a signed ownership proof.
//
// The proof is an ECDSA signature over a domain-separated digest of the
// handle and wallet key. It is verified before a binding commits and kept on
// the record afterwards as evidence.
package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
)

// proofPrefix domain-separates binding signatures from anything else the
// wallet key might ever sign.
const proofPrefix = "bountyflow/identity/v1:"

// Binding is the persistent handle-to-wallet record.
type Binding struct {
	Handle  string
	Wallet  string // hex-encoded compressed public key
	Proof   []byte // DER signature over ProofDigest(Handle, Wallet)
	BoundAt int64  // unix seconds
}

// Key derives the deterministic store key for a binding. Handles are unique.
func Key(handle string) []byte {
	return []byte(handle)
}

// ProofDigest returns the SHA-256 digest a wallet signs to prove it controls
// the external handle.
func ProofDigest(handle, wallet string) []byte {
	h := sha256.Sum256([]byte(proofPrefix + handle + ":" + wallet))
	return h[:]
}

// WalletFor returns the hex-encoded compressed public key for a private key.
func WalletFor(priv *ec.PrivateKey) string {
	return hex.EncodeToString(priv.PubKey().Compressed())
}

// SignProof signs the binding message for handle with the wallet's private
// key and returns the DER-encoded proof.
func SignProof(priv *ec.PrivateKey, handle string) ([]byte, error) {
	if handle == "" {
		return nil, ErrEmptyHandle
	}
	sig, err := priv.Sign(ProofDigest(handle, WalletFor(priv)))
	if err != nil {
		return nil, fmt.Errorf("identity: sign proof: %w", err)
	}
	return sig.Serialize(), nil
}

// VerifyProof checks that proof is a valid signature over the binding message
// by the wallet key. wallet is the hex-encoded compressed public key.
func VerifyProof(handle, wallet string, proof []byte) error {
	if handle == "" {
		return ErrEmptyHandle
	}
	raw, err := hex.DecodeString(wallet)
	if err != nil {
		return fmt.Errorf("%w: wallet is not hex: %w", ErrInvalidWallet, err)
	}
	pub, err := ec.PublicKeyFromBytes(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidWallet, err)
	}
	sig, err := ec.ParseSignature(proof)
	if err != nil {
		return fmt.Errorf("%w: malformed signature: %w", ErrInvalidProof, err)
	}
	if !sig.Verify(ProofDigest(handle, wallet), pub) {
		return ErrInvalidProof
	}
	return nil
}
