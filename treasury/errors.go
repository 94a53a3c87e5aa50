package treasury

import "errors"

var (
	// ErrNotAuthorized indicates the caller is not the release authority.
	ErrNotAuthorized = errors.New("treasury: caller is not the release authority")

	// ErrAlreadyInitialized indicates the treasury singleton already exists.
	ErrAlreadyInitialized = errors.New("treasury: already initialized")

	// ErrNotInitialized indicates no treasury record exists yet.
	ErrNotInitialized = errors.New("treasury: not initialized")

	// ErrFeeTooHigh indicates a fee rate above 10000 basis points.
	ErrFeeTooHigh = errors.New("treasury: fee rate exceeds 10000 basis points")

	// ErrArithmeticOverflow indicates the fee computation would overflow.
	ErrArithmeticOverflow = errors.New("treasury: arithmetic overflow in fee computation")
)
