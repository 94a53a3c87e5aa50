package config

import "errors"

var (
	// ErrEmptyDataDir indicates the data directory path is empty.
	ErrEmptyDataDir = errors.New("config: data directory must not be empty")

	// ErrConfigNotFound indicates the configuration file does not exist.
	ErrConfigNotFound = errors.New("config: configuration file not found")

	// ErrInvalidConfigLine indicates a line in the config file is malformed.
	ErrInvalidConfigLine = errors.New("config: invalid configuration line")

	// ErrFeeTooHigh indicates a default fee rate above 10000 basis points.
	ErrFeeTooHigh = errors.New("config: fee rate exceeds 10000 basis points")

	// ErrNoDenominations indicates an empty denomination registry.
	ErrNoDenominations = errors.New("config: denomination registry must not be empty")

	// ErrNativeNotRegistered indicates the native denomination is missing from the registry.
	ErrNativeNotRegistered = errors.New("config: native denomination not in registry")

	// ErrZeroTimeout indicates a refund timeout of zero days.
	ErrZeroTimeout = errors.New("config: refund timeout must be at least one day")

	// ErrUnknownDenomination indicates a token symbol outside the registry.
	ErrUnknownDenomination = errors.New("config: unknown denomination")

	// ErrInvalidAmount indicates a human-readable amount string that cannot be parsed.
	ErrInvalidAmount = errors.New("config: invalid amount")

	// ErrAmountOverflow indicates an amount too large for 64-bit base units.
	ErrAmountOverflow = errors.New("config: amount overflows base units")
)
