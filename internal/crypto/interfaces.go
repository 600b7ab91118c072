package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyProvider supplies the symmetric key used by the field codec. It exists
// as an interface so the static in-process key can later be replaced by a
// per-user derived key or a KMS-backed key without touching record-store
// logic.
type KeyProvider interface {
	// Key returns the 32-byte AES-256 key. The returned slice must not be
	// mutated by callers.
	Key() []byte
}

// Codec performs reversible protection of individual string field values.
// Both operations are pure transforms with no side effects.
type Codec interface {
	// Encrypt returns the ciphertext of plaintext under the provider's
	// key. An empty plaintext is returned unchanged so that absent
	// optional fields round-trip as absent, never as an encrypted empty
	// string.
	Encrypt(plaintext string) (string, error)

	// Decrypt is the inverse of Encrypt. An empty ciphertext is returned
	// unchanged. Malformed input, or input produced under a different
	// key, fails with an error wrapping [ErrDecryptionFailed].
	Decrypt(ciphertext string) (string, error)
}
