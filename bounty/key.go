package bounty

import "encoding/binary"

// KeySize is the length of a bounty store key in bytes.
const KeySize = 16

// Key derives the deterministic store key for a bounty: repo ID and issue
// number as consecutive 8-byte big-endian integers. Lookups never need a
// secondary index.
func Key(repoID, issueNumber uint64) []byte {
	k := make([]byte, KeySize)
	binary.BigEndian.PutUint64(k[0:8], repoID)
	binary.BigEndian.PutUint64(k[8:16], issueNumber)
	return k
}
