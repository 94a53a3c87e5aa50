package market

import (
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/bountyflow/libbounty-go/identity"
)

// BindIdentity binds an external handle to its controlling wallet. The
// ownership proof is verified against the wallet key before anything
// commits; an unverifiable proof is rejected outright. A handle binds once
// for its lifetime.
func (m *Market) BindIdentity(handle, wallet string, proof []byte) error {
	if err := identity.VerifyProof(handle, wallet, proof); err != nil {
		return err
	}
	now := m.Now().Unix()
	return m.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketIdentities)
		key := identity.Key(handle)
		if b.Get(key) != nil {
			return fmt.Errorf("%w: %q", identity.ErrDuplicateBinding, handle)
		}
		data, err := encodeGob(&identity.Binding{
			Handle:  handle,
			Wallet:  wallet,
			Proof:   proof,
			BoundAt: now,
		})
		if err != nil {
			return fmt.Errorf("market: encode binding: %w", err)
		}
		if err := b.Put(key, data); err != nil {
			return fmt.Errorf("market: put binding: %w", err)
		}
		return nil
	})
}

// LookupIdentity returns the wallet bound to handle, or identity.ErrNotFound.
func (m *Market) LookupIdentity(handle string) (string, error) {
	var wallet string
	err := m.db.View(func(tx *bbolt.Tx) error {
		bd, err := getBinding(tx, handle)
		if err != nil {
			return err
		}
		wallet = bd.Wallet
		return nil
	})
	return wallet, err
}
