package market

import (
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/bountyflow/libbounty-go/bounty"
	"github.com/bountyflow/libbounty-go/escrow"
)

// FundBounty moves amount of the bounty's denomination from the creator's
// external balance into the escrow vault and accumulates it on the bounty.
// Only the creator may deposit. The first successful deposit moves the
// bounty to Funded; further deposits accumulate. The balance debit, the
// vault credit and the record mutation commit or fail together.
func (m *Market) FundBounty(caller string, repoID, issueNumber, amount uint64) error {
	if amount == 0 {
		return bounty.ErrInvalidAmount
	}
	return m.db.Update(func(tx *bbolt.Tx) error {
		key := bounty.Key(repoID, issueNumber)
		b, err := getBounty(tx, key)
		if err != nil {
			return err
		}
		if caller != b.Creator {
			return bounty.ErrNotCreator
		}
		if !b.CanFund() {
			return fmt.Errorf("%w: %s", bounty.ErrWrongState, b.Status)
		}

		if err := escrow.Transfer(
			tx.Bucket(bucketBalances), balanceKey(caller, b.Denomination),
			tx.Bucket(bucketEscrow), key,
			amount,
		); err != nil {
			return err
		}

		next := b.Amount + amount
		if next < b.Amount {
			return fmt.Errorf("%w: amount accumulation", escrow.ErrArithmeticOverflow)
		}
		b.Amount = next
		b.Status = bounty.StatusFunded
		return putBounty(tx, key, b)
	})
}
