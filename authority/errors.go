package authority

import "errors"

var (
	// ErrNilKey indicates a nil private key.
	ErrNilKey = errors.New("authority: nil private key")

	// ErrEmptyPassword indicates an empty encryption password.
	ErrEmptyPassword = errors.New("authority: password must not be empty")

	// ErrInvalidKeyFile indicates the key file is too short or malformed.
	ErrInvalidKeyFile = errors.New("authority: invalid key file")

	// ErrDecryptionFailed indicates the key file could not be decrypted.
	ErrDecryptionFailed = errors.New("authority: decryption failed")

	// ErrChecksumMismatch indicates the decrypted key failed its checksum.
	ErrChecksumMismatch = errors.New("authority: key checksum mismatch")
)
