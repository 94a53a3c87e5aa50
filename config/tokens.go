package config

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Decimals returns the decimal places for a registered denomination.
func (c Config) Decimals(denom string) (uint8, error) {
	dec, ok := c.Denominations[denom]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownDenomination, denom)
	}
	return dec, nil
}

// ParseAmount converts a human-readable decimal amount like "10.5" into base
// units of the given denomination. More fractional digits than the
// denomination carries is an error, not a silent truncation.
func (c Config) ParseAmount(s, denom string) (uint64, error) {
	dec, err := c.Decimals(denom)
	if err != nil {
		return 0, err
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if len(frac) > int(dec) {
		return 0, fmt.Errorf("%w: %q has more than %d decimal places", ErrInvalidAmount, s, dec)
	}

	var w uint64
	if whole != "" {
		w, err = strconv.ParseUint(whole, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %w", ErrInvalidAmount, s, err)
		}
	}

	var f uint64
	if frac != "" {
		f, err = strconv.ParseUint(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %w", ErrInvalidAmount, s, err)
		}
		// Right-pad to the denomination's decimal places.
		for i := len(frac); i < int(dec); i++ {
			f *= 10
		}
	}

	hi, lo := bits.Mul64(w, pow10(dec))
	if hi != 0 {
		return 0, fmt.Errorf("%w: %q", ErrAmountOverflow, s)
	}
	total := lo + f
	if total < lo {
		return 0, fmt.Errorf("%w: %q", ErrAmountOverflow, s)
	}
	return total, nil
}

// FormatAmount renders base units as a human-readable decimal string,
// trimming trailing fractional zeros.
func (c Config) FormatAmount(amount uint64, denom string) (string, error) {
	dec, err := c.Decimals(denom)
	if err != nil {
		return "", err
	}
	if dec == 0 {
		return strconv.FormatUint(amount, 10), nil
	}

	scale := pow10(dec)
	whole := amount / scale
	frac := amount % scale
	if frac == 0 {
		return strconv.FormatUint(whole, 10), nil
	}

	fs := fmt.Sprintf("%0*d", dec, frac)
	fs = strings.TrimRight(fs, "0")
	return fmt.Sprintf("%d.%s", whole, fs), nil
}

// pow10 returns 10^n for n <= maxDecimals.
func pow10(n uint8) uint64 {
	p := uint64(1)
	for i := uint8(0); i < n; i++ {
		p *= 10
	}
	return p
}
