// Package authority manages the release authority's signing key: the
// keypair that attests merged work and collects platform fees. The key is
// stored encrypted at rest with Argon2id + AES-256-GCM.
package authority

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"golang.org/x/crypto/argon2"
)

const (
	// Argon2id parameters for key encryption.
	Argon2Time        = 3
	Argon2Memory      = 64 * 1024 // 64 MB
	Argon2Parallelism = 4
	Argon2KeyLen      = 32

	// Encryption format sizes.
	SaltLen     = 16
	NonceLen    = 12
	ChecksumLen = 4

	keyLen = 32 // serialized secp256k1 private key
)

// GenerateKey creates a fresh release-authority keypair.
func GenerateKey() (*ec.PrivateKey, error) {
	priv, err := ec.NewPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("authority: generate key: %w", err)
	}
	return priv, nil
}

// Wallet returns the authority's caller identity: the hex-encoded
// compressed public key, as used everywhere in the market.
func Wallet(priv *ec.PrivateKey) string {
	return hex.EncodeToString(priv.PubKey().Compressed())
}

// EncryptKey encrypts the private key with Argon2id + AES-256-GCM.
//
// Output format: salt(16B) || nonce(12B) || AES-GCM(key || checksum)
//
// The checksum is SHA256(key)[:4] for detecting a wrong password.
func EncryptKey(priv *ec.PrivateKey, password string) ([]byte, error) {
	if priv == nil {
		return nil, ErrNilKey
	}
	if password == "" {
		return nil, ErrEmptyPassword
	}

	salt := make([]byte, SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("authority: generate salt: %w", err)
	}

	derivedKey := argon2.IDKey([]byte(password), salt, Argon2Time, Argon2Memory, Argon2Parallelism, Argon2KeyLen)

	raw := priv.Serialize()
	keyHash := sha256.Sum256(raw)

	plaintext := make([]byte, 0, len(raw)+ChecksumLen)
	plaintext = append(plaintext, raw...)
	plaintext = append(plaintext, keyHash[:ChecksumLen]...)

	block, err := aes.NewCipher(derivedKey)
	if err != nil {
		return nil, fmt.Errorf("authority: AES cipher creation failed: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("authority: GCM creation failed: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("authority: generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)

	result := make([]byte, 0, SaltLen+NonceLen+len(ciphertext))
	result = append(result, salt...)
	result = append(result, nonce...)
	result = append(result, ciphertext...)
	return result, nil
}

// DecryptKey decrypts a key file produced by EncryptKey and verifies its
// checksum before handing the key back.
func DecryptKey(encrypted []byte, password string) (*ec.PrivateKey, error) {
	if len(encrypted) < SaltLen+NonceLen+keyLen+ChecksumLen {
		return nil, ErrInvalidKeyFile
	}

	salt := encrypted[:SaltLen]
	nonce := encrypted[SaltLen : SaltLen+NonceLen]
	ciphertext := encrypted[SaltLen+NonceLen:]

	derivedKey := argon2.IDKey([]byte(password), salt, Argon2Time, Argon2Memory, Argon2Parallelism, Argon2KeyLen)

	block, err := aes.NewCipher(derivedKey)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	if len(plaintext) != keyLen+ChecksumLen {
		return nil, ErrInvalidKeyFile
	}

	raw := plaintext[:keyLen]
	storedChecksum := plaintext[keyLen:]
	keyHash := sha256.Sum256(raw)
	for i := 0; i < ChecksumLen; i++ {
		if storedChecksum[i] != keyHash[i] {
			return nil, ErrChecksumMismatch
		}
	}

	priv, _ := ec.PrivateKeyFromBytes(raw)
	return priv, nil
}

// SaveKeyFile encrypts the key and writes it to path with 0600 permissions.
func SaveKeyFile(path string, priv *ec.PrivateKey, password string) error {
	encrypted, err := EncryptKey(priv, password)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, encrypted, 0600); err != nil {
		return fmt.Errorf("authority: write key file: %w", err)
	}
	return nil
}

// LoadKeyFile reads and decrypts a key file written by SaveKeyFile.
func LoadKeyFile(path, password string) (*ec.PrivateKey, error) {
	encrypted, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("authority: read key file: %w", err)
	}
	return DecryptKey(encrypted, password)
}
