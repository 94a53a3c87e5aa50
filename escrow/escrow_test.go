package escrow

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

var testBucket = []byte("cells")

func openTestDB(t *testing.T) *bbolt.DB {
	t.Helper()
	db, err := bbolt.Open(filepath.Join(t.TempDir(), "escrow.db"), 0600, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(testBucket)
		return err
	})
	require.NoError(t, err)
	return db
}

func TestCreditDebitBalance(t *testing.T) {
	db := openTestDB(t)
	key := []byte("alice/USDC")

	err := db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(testBucket)

		// Missing cell reads as zero.
		bal, err := Balance(b, key)
		require.NoError(t, err)
		assert.Zero(t, bal)

		require.NoError(t, Credit(b, key, 700))
		require.NoError(t, Credit(b, key, 300))
		require.NoError(t, Debit(b, key, 250))

		bal, err = Balance(b, key)
		require.NoError(t, err)
		assert.Equal(t, uint64(750), bal)
		return nil
	})
	require.NoError(t, err)
}

func TestDebit_Insufficient(t *testing.T) {
	db := openTestDB(t)
	key := []byte("alice/USDC")

	err := db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(testBucket)
		require.NoError(t, Credit(b, key, 100))

		err := Debit(b, key, 101)
		assert.ErrorIs(t, err, ErrInsufficientFunds)

		// The failed debit must not have touched the cell.
		bal, err := Balance(b, key)
		require.NoError(t, err)
		assert.Equal(t, uint64(100), bal)
		return nil
	})
	require.NoError(t, err)
}

func TestCredit_Overflow(t *testing.T) {
	db := openTestDB(t)
	key := []byte("alice/USDC")

	err := db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(testBucket)
		require.NoError(t, Credit(b, key, math.MaxUint64))
		assert.ErrorIs(t, Credit(b, key, 1), ErrArithmeticOverflow)
		return nil
	})
	require.NoError(t, err)
}

func TestTransfer(t *testing.T) {
	db := openTestDB(t)
	from := []byte("alice/USDC")
	to := []byte("escrow/7-42")

	err := db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(testBucket)
		require.NoError(t, Credit(b, from, 1000))
		require.NoError(t, Transfer(b, from, b, to, 400))

		fromBal, err := Balance(b, from)
		require.NoError(t, err)
		toBal, err := Balance(b, to)
		require.NoError(t, err)
		assert.Equal(t, uint64(600), fromBal)
		assert.Equal(t, uint64(400), toBal)

		// Underfunded transfer fails before any credit happens.
		assert.ErrorIs(t, Transfer(b, from, b, to, 601), ErrInsufficientFunds)
		toBal, err = Balance(b, to)
		require.NoError(t, err)
		assert.Equal(t, uint64(400), toBal)
		return nil
	})
	require.NoError(t, err)
}

func TestBalance_Corrupt(t *testing.T) {
	db := openTestDB(t)
	key := []byte("bad")

	err := db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(testBucket)
		require.NoError(t, b.Put(key, []byte{1, 2, 3}))
		_, err := Balance(b, key)
		assert.ErrorIs(t, err, ErrCorruptBalance)
		return nil
	})
	require.NoError(t, err)
}
