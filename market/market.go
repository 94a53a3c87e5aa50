// Package market is the business layer of the bounty marketplace. It
// composes the bounty ledger, claim registry, identity registry, escrow
// vault and treasury over a single bbolt database.
//
// Every state-changing operation runs as one bbolt Update transaction, so
// the fund movement and the record mutation commit or fail together and
// concurrent callers are serialized by the store. The package performs no
// locking of its own.
package market

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"github.com/bountyflow/libbounty-go/config"
)

var (
	bucketBounties   = []byte("bounties")
	bucketClaims     = []byte("claims")
	bucketIdentities = []byte("identities")
	bucketTreasury   = []byte("treasury")
	bucketBalances   = []byte("balances") // external wallet balances, key wallet/denom
	bucketEscrow     = []byte("escrow")   // per-bounty vault cells, key = bounty key
	bucketFees       = []byte("fees")     // treasury fee balances, key = denomination
)

// treasuryKey addresses the singleton treasury record.
var treasuryKey = []byte("treasury")

// Market exposes the marketplace operations over a bbolt database.
type Market struct {
	db  *bbolt.DB
	cfg config.Config

	// Now is the clock used for record timestamps and refund eligibility.
	// Tests override it to pin the timeout boundary.
	Now func() time.Time
}

// Open opens or creates the market database at dbPath. The parent directory
// is created if it does not exist.
func Open(dbPath string, cfg config.Config) (*Market, error) {
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("market: create directory: %w", err)
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("market: open db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{
			bucketBounties, bucketClaims, bucketIdentities,
			bucketTreasury, bucketBalances, bucketEscrow, bucketFees,
		} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("market: create bucket %q: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Market{db: db, cfg: cfg, Now: time.Now}, nil
}

// Close closes the underlying database.
func (m *Market) Close() error { return m.db.Close() }

// Config returns the configuration the market was opened with.
func (m *Market) Config() config.Config { return m.cfg }

// balanceKey addresses an external wallet balance cell for one denomination.
func balanceKey(wallet, denom string) []byte {
	return []byte(wallet + "/" + denom)
}
