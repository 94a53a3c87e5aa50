package market

import (
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/bountyflow/libbounty-go/bounty"
	"github.com/bountyflow/libbounty-go/claim"
	"github.com/bountyflow/libbounty-go/identity"
)

// ClaimBounty registers a claim on a Funded bounty for the caller's bound
// handle. The handle must already be bound, and the binding's wallet must
// match the caller: claims ride on verified identities, never raw handles.
// One claim per handle per bounty; the second attempt fails and leaves the
// first untouched.
func (m *Market) ClaimBounty(caller string, repoID, issueNumber uint64, handle string) error {
	return m.db.Update(func(tx *bbolt.Tx) error {
		key := bounty.Key(repoID, issueNumber)
		b, err := getBounty(tx, key)
		if err != nil {
			return err
		}
		if !b.CanClaim() {
			return fmt.Errorf("%w: %s", bounty.ErrWrongState, b.Status)
		}

		bd, err := getBinding(tx, handle)
		if err != nil {
			return err
		}
		if bd.Wallet != caller {
			return fmt.Errorf("%w: %q is bound to another wallet", identity.ErrWalletMismatch, handle)
		}

		ckey := claim.Key(key, handle)
		if tx.Bucket(bucketClaims).Get(ckey) != nil {
			return fmt.Errorf("%w: %q", claim.ErrDuplicateClaim, handle)
		}
		return putClaim(tx, ckey, &claim.Claim{
			BountyKey: key,
			Claimant:  caller,
			Handle:    handle,
		})
	})
}
