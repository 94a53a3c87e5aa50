package identity

import "errors"

var (
	// ErrDuplicateBinding indicates the handle is already bound to a wallet.
	ErrDuplicateBinding = errors.New("identity: handle already bound")

	// ErrNotFound indicates no binding exists for the handle.
	ErrNotFound = errors.New("identity: handle not bound")

	// ErrEmptyHandle indicates an empty external handle.
	ErrEmptyHandle = errors.New("identity: handle must not be empty")

	// ErrInvalidWallet indicates the wallet is not a valid compressed public key.
	ErrInvalidWallet = errors.New("identity: invalid wallet public key")

	// ErrInvalidProof indicates the ownership proof does not verify against the wallet.
	ErrInvalidProof = errors.New("identity: ownership proof verification failed")

	// ErrWalletMismatch indicates the caller's wallet is not the one bound to the handle.
	ErrWalletMismatch = errors.New("identity: wallet does not match binding")
)
