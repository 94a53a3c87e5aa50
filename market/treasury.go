package market

import (
	"go.etcd.io/bbolt"

	"github.com/bountyflow/libbounty-go/config"
	"github.com/bountyflow/libbounty-go/escrow"
	"github.com/bountyflow/libbounty-go/treasury"
)

// InitTreasury creates the treasury singleton: the release authority's wallet
// and the platform fee rate in basis points. One-time; a second call fails
// with treasury.ErrAlreadyInitialized.
func (m *Market) InitTreasury(authority string, feeBps uint64) error {
	if err := treasury.ValidateFeeBps(feeBps); err != nil {
		return err
	}
	return m.db.Update(func(tx *bbolt.Tx) error {
		if tx.Bucket(bucketTreasury).Get(treasuryKey) != nil {
			return treasury.ErrAlreadyInitialized
		}
		return putTreasury(tx, &treasury.Treasury{Authority: authority, FeeBps: feeBps})
	})
}

// SetFeeRate updates the platform fee rate. Only the treasury authority may
// call it. Fees already charged at release are unaffected: each released
// bounty carries the fee it actually paid.
func (m *Market) SetFeeRate(caller string, feeBps uint64) error {
	if err := treasury.ValidateFeeBps(feeBps); err != nil {
		return err
	}
	return m.db.Update(func(tx *bbolt.Tx) error {
		t, err := getTreasury(tx)
		if err != nil {
			return err
		}
		if caller != t.Authority {
			return treasury.ErrNotAuthorized
		}
		t.FeeBps = feeBps
		return putTreasury(tx, t)
	})
}

// CreditWallet credits an external wallet balance. This stands in for the
// host ledger's deposit path and is gated on the treasury authority, which
// is the only identity trusted to attest external events.
func (m *Market) CreditWallet(caller, wallet, denom string, amount uint64) error {
	if _, ok := m.cfg.Denominations[denom]; !ok {
		return config.ErrUnknownDenomination
	}
	return m.db.Update(func(tx *bbolt.Tx) error {
		t, err := getTreasury(tx)
		if err != nil {
			return err
		}
		if caller != t.Authority {
			return treasury.ErrNotAuthorized
		}
		return escrow.Credit(tx.Bucket(bucketBalances), balanceKey(wallet, denom), amount)
	})
}
