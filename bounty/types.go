// Package bounty defines the bounty record and its lifecycle state machine.
//
// A bounty is identified by (repo ID, issue number) and owns exactly one
// escrow cell, created alongside it and never shared. Status moves strictly
// Open -> Funded -> Released or Closed; nothing leaves a terminal status.
package bounty

import "time"

// Status is the bounty lifecycle state.
type Status uint8

const (
	// StatusOpen means the bounty exists but holds no funds yet.
	StatusOpen Status = iota

	// StatusFunded means the escrow holds a positive balance.
	StatusFunded

	// StatusClosed is terminal: cancelled or refunded, funds returned.
	StatusClosed

	// StatusReleased is terminal: the work was attested merged and the
	// escrow is being paid out to claimants.
	StatusReleased
)

// String returns the human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusOpen:
		return "Open"
	case StatusFunded:
		return "Funded"
	case StatusClosed:
		return "Closed"
	case StatusReleased:
		return "Released"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no further transition may leave this status.
func (s Status) Terminal() bool {
	return s == StatusClosed || s == StatusReleased
}

// Bounty is the persistent bounty record.
type Bounty struct {
	RepoID       uint64
	IssueNumber  uint64
	Creator      string // hex-encoded compressed public key of the creator wallet
	Amount       uint64 // cumulative escrowed amount in base units
	Denomination string // token symbol, fixed at creation
	Status       Status
	CreatedAt    int64  // unix seconds
	FeePaid      uint64 // platform fee moved to the treasury at release; 0 before
}

// CanFund reports whether a deposit is allowed in the current status.
// Deposits accumulate while the bounty is Open or already Funded.
func (b *Bounty) CanFund() bool {
	return b.Status == StatusOpen || b.Status == StatusFunded
}

// CanCancel reports whether the creator may still cancel. Cancellation is
// allowed until the bounty reaches a terminal status.
func (b *Bounty) CanCancel() bool {
	return b.Status == StatusOpen || b.Status == StatusFunded
}

// CanRelease reports whether the release authority may release the escrow.
func (b *Bounty) CanRelease() bool {
	return b.Status == StatusFunded
}

// CanClaim reports whether a contributor may register a claim.
func (b *Bounty) CanClaim() bool {
	return b.Status == StatusFunded
}

// RefundEligible checks whether the creator may reclaim escrowed funds
// without a release. The bounty must be Funded and must have sat unreleased
// for at least timeout since creation. Returns ErrWrongState or
// ErrTimeoutNotReached on ineligibility.
func (b *Bounty) RefundEligible(now time.Time, timeout time.Duration) error {
	if b.Status != StatusFunded {
		return ErrWrongState
	}
	if now.Unix() < b.CreatedAt+int64(timeout/time.Second) {
		return ErrTimeoutNotReached
	}
	return nil
}
