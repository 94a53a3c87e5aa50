package market

import (
	"go.etcd.io/bbolt"

	"github.com/bountyflow/libbounty-go/bounty"
	"github.com/bountyflow/libbounty-go/escrow"
)

// RefundOnTimeout returns the full vault balance to the creator of a Funded
// bounty that was never released within the configured timeout, then closes
// it. Eligibility is a wall-clock gate: the bounty must have been created at
// least cfg.RefundTimeout() ago. Like CancelBounty, the transfer and the
// Closed transition are a single atomic commit.
func (m *Market) RefundOnTimeout(caller string, repoID, issueNumber uint64) error {
	now := m.Now()
	return m.db.Update(func(tx *bbolt.Tx) error {
		key := bounty.Key(repoID, issueNumber)
		b, err := getBounty(tx, key)
		if err != nil {
			return err
		}
		if caller != b.Creator {
			return bounty.ErrNotCreator
		}
		if err := b.RefundEligible(now, m.cfg.RefundTimeout()); err != nil {
			return err
		}

		if b.Amount > 0 {
			if err := escrow.Transfer(
				tx.Bucket(bucketEscrow), key,
				tx.Bucket(bucketBalances), balanceKey(b.Creator, b.Denomination),
				b.Amount,
			); err != nil {
				return err
			}
		}

		b.Amount = 0
		b.Status = bounty.StatusClosed
		return putBounty(tx, key, b)
	})
}
