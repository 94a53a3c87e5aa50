// Package claim implements per-bounty, per-identity claim records and the
// proportional payout arithmetic applied to them at release.
//
// Shares are expressed in basis points of the post-fee payout pool. A share
// is zero until release, immutable once assigned, and paid out at most once.
package claim

// TotalBps is the full payout pool expressed in basis points.
const TotalBps = 10000

// Claim is the persistent claim record for one identity on one bounty.
type Claim struct {
	BountyKey []byte // owning bounty's store key
	Claimant  string // hex-encoded compressed public key of the bound wallet
	Handle    string // external identity handle
	Commits   uint32 // informational until release
	ShareBps  uint32 // basis points of the post-fee pool; 0 until release
	Withdrawn bool   // set exactly once, never cleared
}

// Contributor is one entry of the oracle-supplied contributor list fed to
// release: an external handle and its measured commit count.
type Contributor struct {
	Handle  string
	Commits uint32
}

// Key derives the deterministic store key for a claim: the owning bounty's
// key followed by the claimant handle bytes. One claim per handle per bounty.
func Key(bountyKey []byte, handle string) []byte {
	k := make([]byte, 0, len(bountyKey)+len(handle))
	k = append(k, bountyKey...)
	k = append(k, handle...)
	return k
}
