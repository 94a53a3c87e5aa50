package market

import (
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/bountyflow/libbounty-go/bounty"
	"github.com/bountyflow/libbounty-go/escrow"
)

// CancelBounty closes a bounty before release and returns the entire vault
// balance to the creator. Only the creator may cancel, and only while the
// bounty is Open or Funded. The refund transfer and the Closed transition
// commit or fail together; there is no partial state.
func (m *Market) CancelBounty(caller string, repoID, issueNumber uint64) error {
	return m.db.Update(func(tx *bbolt.Tx) error {
		key := bounty.Key(repoID, issueNumber)
		b, err := getBounty(tx, key)
		if err != nil {
			return err
		}
		if caller != b.Creator {
			return bounty.ErrNotCreator
		}
		if !b.CanCancel() {
			return fmt.Errorf("%w: %s", bounty.ErrWrongState, b.Status)
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
