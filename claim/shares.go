package claim

import (
	"fmt"
	"math/bits"
)

// AssignShares computes each contributor's basis-point share of the post-fee
// payout pool, proportional to commit count. Division truncates, so the
// aggregate may fall short of TotalBps (the remainder stays in the escrow,
// unclaimed) but must never exceed it; the running total is checked and the
// whole assignment is rejected on violation.
func AssignShares(contributors []Contributor) (map[string]uint32, error) {
	if len(contributors) == 0 {
		return nil, ErrNoContributors
	}

	var totalCommits uint64
	seen := make(map[string]struct{}, len(contributors))
	for _, c := range contributors {
		if _, dup := seen[c.Handle]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateContributor, c.Handle)
		}
		seen[c.Handle] = struct{}{}
		totalCommits += uint64(c.Commits)
	}
	if totalCommits == 0 {
		return nil, ErrZeroCommits
	}

	shares := make(map[string]uint32, len(contributors))
	var assigned uint64
	for _, c := range contributors {
		bps := uint64(c.Commits) * TotalBps / totalCommits
		assigned += bps
		if assigned > TotalBps {
			return nil, fmt.Errorf("%w: %d bps after %q", ErrSharesExceedPool, assigned, c.Handle)
		}
		shares[c.Handle] = uint32(bps)
	}
	return shares, nil
}

// Payout computes a claimant's cut of the payout pool: pool * shareBps / 10000,
// truncating. Fails closed on overflow instead of wrapping.
func Payout(pool uint64, shareBps uint32) (uint64, error) {
	if shareBps > TotalBps {
		return 0, fmt.Errorf("%w: %d bps", ErrSharesExceedPool, shareBps)
	}
	hi, lo := bits.Mul64(pool, uint64(shareBps))
	if hi != 0 {
		return 0, fmt.Errorf("%w: pool %d x %d bps", ErrArithmeticOverflow, pool, shareBps)
	}
	return lo / TotalBps, nil
}
