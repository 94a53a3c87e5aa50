package market

import (
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/bountyflow/libbounty-go/bounty"
	"github.com/bountyflow/libbounty-go/claim"
	"github.com/bountyflow/libbounty-go/escrow"
	"github.com/bountyflow/libbounty-go/treasury"
)

// ReleaseBounty releases a Funded bounty after the external authority has
// attested the work merged. The caller must be the treasury's release
// authority; contributors is the oracle-supplied (handle, commit count)
// list, already resolved before the transaction starts.
//
// In one atomic commit: the platform fee moves from the vault to the
// treasury's balance for the bounty's denomination (zero for the native
// denomination), each contributor's claim receives its basis-point share of
// the post-fee pool, and the bounty transitions to Released. The fee charged
// is snapshotted on the bounty so later withdrawals and fee-rate updates can
// never disagree about the pool.
//
// A contributor without a registered claim keeps its commits in the share
// denominator but receives nothing; that portion stays in the vault,
// unassigned, like any rounding remainder.
func (m *Market) ReleaseBounty(caller string, repoID, issueNumber uint64, contributors []claim.Contributor) error {
	return m.db.Update(func(tx *bbolt.Tx) error {
		t, err := getTreasury(tx)
		if err != nil {
			return err
		}
		if caller != t.Authority {
			return treasury.ErrNotAuthorized
		}

		key := bounty.Key(repoID, issueNumber)
		b, err := getBounty(tx, key)
		if err != nil {
			return err
		}
		if !b.CanRelease() {
			return fmt.Errorf("%w: %s", bounty.ErrWrongState, b.Status)
		}

		shares, err := claim.AssignShares(contributors)
		if err != nil {
			return err
		}

		native := b.Denomination == m.cfg.NativeDenomination
		fee, err := t.Fee(b.Amount, native)
		if err != nil {
			return err
		}
		if fee > 0 {
			if err := escrow.Transfer(
				tx.Bucket(bucketEscrow), key,
				tx.Bucket(bucketFees), []byte(b.Denomination),
				fee,
			); err != nil {
				return err
			}
		}

		// Iterate the input slice, not the map, for deterministic order.
		for _, c := range contributors {
			ckey := claim.Key(key, c.Handle)
			cl, err := getClaim(tx, ckey)
			if errors.Is(err, claim.ErrNotFound) {
				// No claim registered for this contributor; its share
				// stays unassigned in the vault.
				continue
			}
			if err != nil {
				return err
			}
			if cl.ShareBps != 0 {
				return fmt.Errorf("%w: %q", claim.ErrShareAlreadyAssigned, c.Handle)
			}
			cl.Commits = c.Commits
			cl.ShareBps = shares[c.Handle]
			if err := putClaim(tx, ckey, cl); err != nil {
				return err
			}
		}

		b.FeePaid = fee
		b.Status = bounty.StatusReleased
		return putBounty(tx, key, b)
	})
}
