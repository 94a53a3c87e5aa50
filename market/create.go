package market

import (
	"go.etcd.io/bbolt"

	"github.com/bountyflow/libbounty-go/bounty"
	"github.com/bountyflow/libbounty-go/config"
)

// CreateBounty creates a bounty for (repoID, issueNumber) in the given
// denomination. The caller becomes the creator: the only identity permitted
// to deposit, cancel, or trigger a timeout refund. The amount hint sizes the
// intended reward but no funds move until FundBounty; the bounty starts Open
// with a zero balance. Duplicate keys fail with bounty.ErrDuplicateBounty.
func (m *Market) CreateBounty(caller string, repoID, issueNumber, amountHint uint64, denom string) error {
	if amountHint == 0 {
		return bounty.ErrInvalidAmount
	}
	if _, ok := m.cfg.Denominations[denom]; !ok {
		return config.ErrUnknownDenomination
	}
	now := m.Now().Unix()
	return m.db.Update(func(tx *bbolt.Tx) error {
		key := bounty.Key(repoID, issueNumber)
		if tx.Bucket(bucketBounties).Get(key) != nil {
			return bounty.ErrDuplicateBounty
		}
		return putBounty(tx, key, &bounty.Bounty{
			RepoID:       repoID,
			IssueNumber:  issueNumber,
			Creator:      caller,
			Amount:       0, // funded via FundBounty
			Denomination: denom,
			Status:       bounty.StatusOpen,
			CreatedAt:    now,
		})
	})
}
