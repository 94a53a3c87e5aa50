package claim

import "errors"

var (
	// ErrDuplicateClaim indicates a claim already exists for this handle on this bounty.
	ErrDuplicateClaim = errors.New("claim: claim already exists for this handle")

	// ErrNotClaimant indicates the caller does not control this claim.
	ErrNotClaimant = errors.New("claim: caller is not the claimant")

	// ErrAlreadyWithdrawn indicates the claim's payout was already taken.
	ErrAlreadyWithdrawn = errors.New("claim: funds already withdrawn")

	// ErrNoShareAssigned indicates the claim has no share to withdraw.
	ErrNoShareAssigned = errors.New("claim: no share assigned")

	// ErrBountyNotReleased indicates the owning bounty is not in the Released status.
	ErrBountyNotReleased = errors.New("claim: bounty not released")

	// ErrNoContributors indicates an empty contributor list was supplied.
	ErrNoContributors = errors.New("claim: no contributors")

	// ErrDuplicateContributor indicates a handle appears twice in the contributor list.
	ErrDuplicateContributor = errors.New("claim: duplicate contributor handle")

	// ErrZeroCommits indicates the contributor list carries no commits at all.
	ErrZeroCommits = errors.New("claim: contributor list has zero total commits")

	// ErrSharesExceedPool indicates assigned shares would exceed 10000 basis points.
	ErrSharesExceedPool = errors.New("claim: assigned shares exceed payout pool")

	// ErrShareAlreadyAssigned indicates a claim's share was already set; shares are immutable.
	ErrShareAlreadyAssigned = errors.New("claim: share already assigned")

	// ErrArithmeticOverflow indicates the payout computation would overflow.
	ErrArithmeticOverflow = errors.New("claim: arithmetic overflow in payout computation")

	// ErrNotFound indicates no claim exists for the given key.
	ErrNotFound = errors.New("claim: claim not found")
)
