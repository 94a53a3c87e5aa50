package market

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/bountyflow/libbounty-go/bounty"
	"github.com/bountyflow/libbounty-go/claim"
	"github.com/bountyflow/libbounty-go/identity"
	"github.com/bountyflow/libbounty-go/treasury"
)

// encodeGob serializes a record using gob encoding.
func encodeGob(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeGob deserializes gob-encoded data into a record.
func decodeGob(data []byte, v interface{}) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

// getBounty loads the bounty at key, or bounty.ErrNotFound.
func getBounty(tx *bbolt.Tx, key []byte) (*bounty.Bounty, error) {
	data := tx.Bucket(bucketBounties).Get(key)
	if data == nil {
		return nil, bounty.ErrNotFound
	}
	var b bounty.Bounty
	if err := decodeGob(data, &b); err != nil {
		return nil, fmt.Errorf("market: decode bounty: %w", err)
	}
	return &b, nil
}

// putBounty stores the bounty at key.
func putBounty(tx *bbolt.Tx, key []byte, b *bounty.Bounty) error {
	data, err := encodeGob(b)
	if err != nil {
		return fmt.Errorf("market: encode bounty: %w", err)
	}
	if err := tx.Bucket(bucketBounties).Put(key, data); err != nil {
		return fmt.Errorf("market: put bounty: %w", err)
	}
	return nil
}

// getClaim loads the claim at key, or claim.ErrNotFound.
func getClaim(tx *bbolt.Tx, key []byte) (*claim.Claim, error) {
	data := tx.Bucket(bucketClaims).Get(key)
	if data == nil {
		return nil, claim.ErrNotFound
	}
	var c claim.Claim
	if err := decodeGob(data, &c); err != nil {
		return nil, fmt.Errorf("market: decode claim: %w", err)
	}
	return &c, nil
}

// putClaim stores the claim at key.
func putClaim(tx *bbolt.Tx, key []byte, c *claim.Claim) error {
	data, err := encodeGob(c)
	if err != nil {
		return fmt.Errorf("market: encode claim: %w", err)
	}
	if err := tx.Bucket(bucketClaims).Put(key, data); err != nil {
		return fmt.Errorf("market: put claim: %w", err)
	}
	return nil
}

// getBinding loads the identity binding for handle, or identity.ErrNotFound.
func getBinding(tx *bbolt.Tx, handle string) (*identity.Binding, error) {
	data := tx.Bucket(bucketIdentities).Get(identity.Key(handle))
	if data == nil {
		return nil, identity.ErrNotFound
	}
	var bd identity.Binding
	if err := decodeGob(data, &bd); err != nil {
		return nil, fmt.Errorf("market: decode binding: %w", err)
	}
	return &bd, nil
}

// getTreasury loads the treasury singleton, or treasury.ErrNotInitialized.
func getTreasury(tx *bbolt.Tx) (*treasury.Treasury, error) {
	data := tx.Bucket(bucketTreasury).Get(treasuryKey)
	if data == nil {
		return nil, treasury.ErrNotInitialized
	}
	var t treasury.Treasury
	if err := decodeGob(data, &t); err != nil {
		return nil, fmt.Errorf("market: decode treasury: %w", err)
	}
	return &t, nil
}

// putTreasury stores the treasury singleton.
func putTreasury(tx *bbolt.Tx, t *treasury.Treasury) error {
	data, err := encodeGob(t)
	if err != nil {
		return fmt.Errorf("market: encode treasury: %w", err)
	}
	if err := tx.Bucket(bucketTreasury).Put(treasuryKey, data); err != nil {
		return fmt.Errorf("market: put treasury: %w", err)
	}
	return nil
}
