// Package treasury holds the platform fee policy: a single process-wide
// record naming the release authority and the fee rate in basis points,
// plus the checked fee arithmetic applied at release.
package treasury

import (
	"fmt"
	"math/bits"
)

// MaxFeeBps caps the fee rate at 100%.
const MaxFeeBps = 10000

// Treasury is the singleton fee record. It is created once at deployment and
// only its fee rate may change afterwards, and only by its authority.
type Treasury struct {
	Authority string // hex-encoded compressed public key of the release authority
	FeeBps    uint64 // platform fee in basis points
}

// ValidateFeeBps rejects fee rates above 100%.
func ValidateFeeBps(feeBps uint64) error {
	if feeBps > MaxFeeBps {
		return fmt.Errorf("%w: %d bps", ErrFeeTooHigh, feeBps)
	}
	return nil
}

// Fee computes the platform fee on amount. The native denomination pays no
// fee regardless of the configured rate. Fails closed on overflow.
func (t *Treasury) Fee(amount uint64, native bool) (uint64, error) {
	if native {
		return 0, nil
	}
	hi, lo := bits.Mul64(amount, t.FeeBps)
	if hi != 0 {
		return 0, fmt.Errorf("%w: amount %d x %d bps", ErrArithmeticOverflow, amount, t.FeeBps)
	}
	return lo / MaxFeeBps, nil
}
