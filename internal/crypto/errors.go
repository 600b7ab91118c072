package crypto

import "errors"

var (
	// ErrDecryptionFailed is returned when a ciphertext cannot be
	// decrypted under the current key: the value is malformed, corrupted,
	// or was encrypted under a different (e.g. rotated) key. The record
	// store surfaces it per record and never lets a single corrupt value
	// abort a batch read.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidKeySize is returned at construction time when the key
	// provider does not supply a 32-byte AES-256 key.
	ErrInvalidKeySize = errors.New("encryption key must be 32 bytes")
)
