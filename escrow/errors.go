package escrow

import "errors"

var (
	// ErrInsufficientFunds indicates the balance cell does not cover the debit.
	ErrInsufficientFunds = errors.New("escrow: insufficient funds")

	// ErrArithmeticOverflow indicates a credit would wrap the balance cell.
	ErrArithmeticOverflow = errors.New("escrow: arithmetic overflow")

	// ErrCorruptBalance indicates a balance cell is not 8 bytes.
	ErrCorruptBalance = errors.New("escrow: corrupt balance cell")
)
