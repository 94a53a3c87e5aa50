// Package escrow implements fixed-width balance cells inside bbolt buckets:
// checked credit, debit and transfer primitives used by the market's
// transition logic. Nothing outside a sanctioned transition ever calls these,
// which is what keeps claimants and creators from moving funds directly.
package escrow

import (
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"
)

// balanceSize is the encoded width of a balance cell.
const balanceSize = 8

// Balance reads the cell at key. A missing cell is a zero balance.
func Balance(b *bbolt.Bucket, key []byte) (uint64, error) {
	v := b.Get(key)
	if v == nil {
		return 0, nil
	}
	if len(v) != balanceSize {
		return 0, fmt.Errorf("%w: %d bytes at %x", ErrCorruptBalance, len(v), key)
	}
	return binary.BigEndian.Uint64(v), nil
}

// Credit adds amount to the cell at key, failing closed on overflow.
func Credit(b *bbolt.Bucket, key []byte, amount uint64) error {
	cur, err := Balance(b, key)
	if err != nil {
		return err
	}
	next := cur + amount
	if next < cur {
		return fmt.Errorf("%w: %d + %d", ErrArithmeticOverflow, cur, amount)
	}
	return put(b, key, next)
}

// Debit removes amount from the cell at key. The cell must cover the amount.
func Debit(b *bbolt.Bucket, key []byte, amount uint64) error {
	cur, err := Balance(b, key)
	if err != nil {
		return err
	}
	if cur < amount {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientFunds, cur, amount)
	}
	return put(b, key, cur-amount)
}

// Transfer atomically moves amount from the cell at fromKey in from to the
// cell at toKey in to. Both buckets must belong to the same bbolt
// transaction, so the debit and credit commit or fail together.
func Transfer(from *bbolt.Bucket, fromKey []byte, to *bbolt.Bucket, toKey []byte, amount uint64) error {
	if err := Debit(from, fromKey, amount); err != nil {
		return err
	}
	return Credit(to, toKey, amount)
}

// put writes a balance cell as 8 bytes big-endian.
func put(b *bbolt.Bucket, key []byte, amount uint64) error {
	v := make([]byte, balanceSize)
	binary.BigEndian.PutUint64(v, amount)
	if err := b.Put(key, v); err != nil {
		return fmt.Errorf("escrow: put balance: %w", err)
	}
	return nil
}
