package config

import "fmt"

// maxDecimals bounds decimal places so 10^decimals fits comfortably in uint64.
const maxDecimals = 18

// ValidateConfig checks that all configuration values are within acceptable
// ranges and returns the first error encountered, or nil if valid.
func ValidateConfig(cfg Config) error {
	if cfg.DataDir == "" {
		return ErrEmptyDataDir
	}

	if cfg.FeeBps > 10000 {
		return fmt.Errorf("%w: %d", ErrFeeTooHigh, cfg.FeeBps)
	}

	if cfg.RefundTimeoutDays == 0 {
		return ErrZeroTimeout
	}

	if len(cfg.Denominations) == 0 {
		return ErrNoDenominations
	}

	for sym, dec := range cfg.Denominations {
		if sym == "" {
			return fmt.Errorf("%w: empty symbol", ErrUnknownDenomination)
		}
		if dec > maxDecimals {
			return fmt.Errorf("config: denomination %q has %d decimals (max %d)", sym, dec, maxDecimals)
		}
	}

	if _, ok := cfg.Denominations[cfg.NativeDenomination]; !ok {
		return fmt.Errorf("%w: %q", ErrNativeNotRegistered, cfg.NativeDenomination)
	}

	return nil
}
