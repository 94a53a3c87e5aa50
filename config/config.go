// Package config holds the marketplace configuration: data directory, fee
// policy defaults, the refund timeout, and the registry of accepted token
// denominations with their decimal places.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Config is the marketplace configuration.
type Config struct {
	DataDir            string
	FeeBps             uint64           // default platform fee rate for deployment
	NativeDenomination string           // denomination exempt from the platform fee
	RefundTimeoutDays  uint32           // days a Funded bounty must sit before timeout refund
	Denominations      map[string]uint8 // accepted token symbols -> decimal places
}

// DefaultConfig returns the standard configuration. The data directory is
// ~/.bountyflow, the fee is 250 bps (2.5%), and the refund timeout is 30
// days.
func DefaultConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		DataDir:            filepath.Join(home, ".bountyflow"),
		FeeBps:             250,
		NativeDenomination: "BSV",
		RefundTimeoutDays:  30,
		Denominations: map[string]uint8{
			"BSV":  8,
			"USDC": 6,
			"USDT": 6,
		},
	}
}

// RefundTimeout returns the timeout as a duration.
func (c Config) RefundTimeout() time.Duration {
	return time.Duration(c.RefundTimeoutDays) * 24 * time.Hour
}

// ConfigPath returns the standard config file location under dataDir.
func ConfigPath(dataDir string) string {
	return filepath.Join(dataDir, "config")
}

// LoadConfig reads a configuration file. The format is one "key = value"
// pair per line; blank lines and lines starting with '#' are ignored.
// Missing keys keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, ErrConfigNotFound
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	for lineNo, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			return cfg, fmt.Errorf("%w: line %d: %q", ErrInvalidConfigLine, lineNo+1, line)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "datadir":
			cfg.DataDir = value
		case "fee_bps":
			bps, err := strconv.ParseUint(value, 10, 64)
			if err != nil {
				return cfg, fmt.Errorf("%w: line %d: fee_bps: %w", ErrInvalidConfigLine, lineNo+1, err)
			}
			cfg.FeeBps = bps
		case "native_denomination":
			cfg.NativeDenomination = value
		case "refund_timeout_days":
			days, err := strconv.ParseUint(value, 10, 32)
			if err != nil {
				return cfg, fmt.Errorf("%w: line %d: refund_timeout_days: %w", ErrInvalidConfigLine, lineNo+1, err)
			}
			cfg.RefundTimeoutDays = uint32(days)
		case "denominations":
			denoms, err := parseDenominations(value)
			if err != nil {
				return cfg, fmt.Errorf("%w: line %d: %w", ErrInvalidConfigLine, lineNo+1, err)
			}
			cfg.Denominations = denoms
		default:
			return cfg, fmt.Errorf("%w: line %d: unknown key %q", ErrInvalidConfigLine, lineNo+1, key)
		}
	}

	return cfg, nil
}

// SaveConfig writes the configuration to path, creating parent directories
// as needed.
func SaveConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# bountyflow configuration\n")
	fmt.Fprintf(&sb, "datadir = %s\n", cfg.DataDir)
	fmt.Fprintf(&sb, "fee_bps = %d\n", cfg.FeeBps)
	fmt.Fprintf(&sb, "native_denomination = %s\n", cfg.NativeDenomination)
	fmt.Fprintf(&sb, "refund_timeout_days = %d\n", cfg.RefundTimeoutDays)
	fmt.Fprintf(&sb, "denominations = %s\n", formatDenominations(cfg.Denominations))

	if err := os.WriteFile(path, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// parseDenominations parses "BSV:8,USDC:6" into a symbol->decimals map.
func parseDenominations(s string) (map[string]uint8, error) {
	denoms := make(map[string]uint8)
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		sym, dec, found := strings.Cut(entry, ":")
		if !found {
			return nil, fmt.Errorf("denomination entry %q is not SYMBOL:decimals", entry)
		}
		d, err := strconv.ParseUint(strings.TrimSpace(dec), 10, 8)
		if err != nil {
			return nil, fmt.Errorf("denomination %q: %w", sym, err)
		}
		denoms[strings.TrimSpace(sym)] = uint8(d)
	}
	if len(denoms) == 0 {
		return nil, fmt.Errorf("empty denomination list")
	}
	return denoms, nil
}

// formatDenominations renders the registry in sorted order for stable files.
func formatDenominations(denoms map[string]uint8) string {
	syms := make([]string, 0, len(denoms))
	for sym := range denoms {
		syms = append(syms, sym)
	}
	sort.Strings(syms)
	entries := make([]string, len(syms))
	for i, sym := range syms {
		entries[i] = fmt.Sprintf("%s:%d", sym, denoms[sym])
	}
	return strings.Join(entries, ",")
}
