package market

import (
	"go.etcd.io/bbolt"

	"github.com/bountyflow/libbounty-go/bounty"
	"github.com/bountyflow/libbounty-go/claim"
	"github.com/bountyflow/libbounty-go/escrow"
)

// Withdraw pays out the caller's share of a released bounty: the post-fee
// pool times the claim's basis points, truncating. The withdrawn flag is set
// in the same commit as the vault debit, so a resubmitted withdrawal pays at
// most once. The flag is set even when the computed payout is zero; a
// zero-payout withdrawal is still terminal.
func (m *Market) Withdraw(caller string, repoID, issueNumber uint64, handle string) (uint64, error) {
	var payout uint64
	err := m.db.Update(func(tx *bbolt.Tx) error {
		key := bounty.Key(repoID, issueNumber)
		b, err := getBounty(tx, key)
		if err != nil {
			return err
		}

		ckey := claim.Key(key, handle)
		cl, err := getClaim(tx, ckey)
		if err != nil {
			return err
		}
		if caller != cl.Claimant {
			return claim.ErrNotClaimant
		}
		if cl.Withdrawn {
			return claim.ErrAlreadyWithdrawn
		}
		if b.Status != bounty.StatusReleased {
			return claim.ErrBountyNotReleased
		}
		if cl.ShareBps == 0 {
			return claim.ErrNoShareAssigned
		}

		pool := b.Amount - b.FeePaid
		payout, err = claim.Payout(pool, cl.ShareBps)
		if err != nil {
			return err
		}
		if payout > 0 {
			if err := escrow.Transfer(
				tx.Bucket(bucketEscrow), key,
				tx.Bucket(bucketBalances), balanceKey(caller, b.Denomination),
				payout,
			); err != nil {
				return err
			}
		}

		cl.Withdrawn = true
		return putClaim(tx, ckey, cl)
	})
	if err != nil {
		return 0, err
	}
	return payout, nil
}
