package market

import (
	"bytes"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/bountyflow/libbounty-go/bounty"
	"github.com/bountyflow/libbounty-go/claim"
	"github.com/bountyflow/libbounty-go/escrow"
	"github.com/bountyflow/libbounty-go/treasury"
)

// GetBounty returns the bounty for (repoID, issueNumber).
func (m *Market) GetBounty(repoID, issueNumber uint64) (*bounty.Bounty, error) {
	var b *bounty.Bounty
	err := m.db.View(func(tx *bbolt.Tx) error {
		var err error
		b, err = getBounty(tx, bounty.Key(repoID, issueNumber))
		return err
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// GetClaim returns the claim for handle on (repoID, issueNumber).
func (m *Market) GetClaim(repoID, issueNumber uint64, handle string) (*claim.Claim, error) {
	var c *claim.Claim
	err := m.db.View(func(tx *bbolt.Tx) error {
		var err error
		c, err = getClaim(tx, claim.Key(bounty.Key(repoID, issueNumber), handle))
		return err
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// BountyStatus is the full picture of one bounty for a service layer to
// render: the record itself plus every claim registered against it.
type BountyStatus struct {
	Bounty *bounty.Bounty
	Claims []*claim.Claim
}

// Status returns the bounty and all its claims.
func (m *Market) Status(repoID, issueNumber uint64) (*BountyStatus, error) {
	st := &BountyStatus{}
	err := m.db.View(func(tx *bbolt.Tx) error {
		key := bounty.Key(repoID, issueNumber)
		b, err := getBounty(tx, key)
		if err != nil {
			return err
		}
		st.Bounty = b

		// Claim keys are bountyKey || handle, so a prefix scan over the
		// bounty key yields exactly this bounty's claims.
		c := tx.Bucket(bucketClaims).Cursor()
		for k, v := c.Seek(key); k != nil && bytes.HasPrefix(k, key); k, v = c.Next() {
			var cl claim.Claim
			if err := decodeGob(v, &cl); err != nil {
				return fmt.Errorf("market: decode claim in scan: %w", err)
			}
			st.Claims = append(st.Claims, &cl)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return st, nil
}

// Treasury returns the treasury singleton.
func (m *Market) Treasury() (*treasury.Treasury, error) {
	var t *treasury.Treasury
	err := m.db.View(func(tx *bbolt.Tx) error {
		var err error
		t, err = getTreasury(tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// WalletBalance returns a wallet's external balance in denom.
func (m *Market) WalletBalance(wallet, denom string) (uint64, error) {
	var bal uint64
	err := m.db.View(func(tx *bbolt.Tx) error {
		var err error
		bal, err = escrow.Balance(tx.Bucket(bucketBalances), balanceKey(wallet, denom))
		return err
	})
	return bal, err
}

// EscrowBalance returns the vault balance held for a bounty.
func (m *Market) EscrowBalance(repoID, issueNumber uint64) (uint64, error) {
	var bal uint64
	err := m.db.View(func(tx *bbolt.Tx) error {
		var err error
		bal, err = escrow.Balance(tx.Bucket(bucketEscrow), bounty.Key(repoID, issueNumber))
		return err
	})
	return bal, err
}

// TreasuryBalance returns the fees collected in denom.
func (m *Market) TreasuryBalance(denom string) (uint64, error) {
	var bal uint64
	err := m.db.View(func(tx *bbolt.Tx) error {
		var err error
		bal, err = escrow.Balance(tx.Bucket(bucketFees), []byte(denom))
		return err
	})
	return bal, err
}
