package crypto

import (
	"golang.org/x/crypto/argon2"
)

// staticKeyProvider is the default [KeyProvider]: a single process-wide key
// derived once at construction from a configured master secret. It is a
// known weak point of the design (no rotation, not user-derived); the
// interface boundary exists precisely so a stronger scheme can be swapped
// in later.
type staticKeyProvider struct {
	key []byte
}

// NewStaticKeyProvider derives a 256-bit AES key from masterSecret and salt
// using Argon2id with the OWASP-recommended parameters (1 iteration, 64 MiB,
// 4 threads). The derivation runs once; the resulting key lives in process
// memory for the lifetime of the provider.
func NewStaticKeyProvider(masterSecret string, salt []byte) KeyProvider {
	return &staticKeyProvider{
		key: argon2.IDKey([]byte(masterSecret), salt, 1, 64*1024, 4, 32),
	}
}

// Key implements [KeyProvider].
func (p *staticKeyProvider) Key() []byte {
	return p.key
}
