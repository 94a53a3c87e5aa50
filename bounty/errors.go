package bounty

import "errors"

var (
	// ErrInvalidAmount indicates a zero or otherwise unusable token amount.
	ErrInvalidAmount = errors.New("bounty: invalid amount")

	// ErrDuplicateBounty indicates a bounty already exists for this issue.
	ErrDuplicateBounty = errors.New("bounty: bounty already exists for this issue")

	// ErrNotCreator indicates the caller is not the bounty creator.
	ErrNotCreator = errors.New("bounty: only the bounty creator can perform this action")

	// ErrWrongState indicates the operation is not allowed in the current status.
	ErrWrongState = errors.New("bounty: operation not allowed in current status")

	// ErrTimeoutNotReached indicates the refund timeout has not elapsed.
	ErrTimeoutNotReached = errors.New("bounty: refund timeout not reached")

	// ErrNotFound indicates no bounty exists for the given key.
	ErrNotFound = errors.New("bounty: bounty not found")
)
