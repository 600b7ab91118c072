package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// fieldCodec is the AES-256-GCM implementation of [Codec]. Each Encrypt
// call draws a fresh random nonce which is prepended to the ciphertext so
// that Decrypt can split it out: blob = nonce ‖ ciphertext, Base64
// (standard encoding) on the wire.
type fieldCodec struct {
	aead cipher.AEAD
}

// NewFieldCodec constructs a [Codec] over the key supplied by keys. The
// AEAD is built once at construction; the codec is safe for concurrent use.
// Returns [ErrInvalidKeySize] if the provider's key is not 32 bytes.
func NewFieldCodec(keys KeyProvider) (Codec, error) {
	key := keys.Key()
	if len(key) != 32 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidKeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &fieldCodec{aead: gcm}, nil
}

// Encrypt implements [Codec].
func (c *fieldCodec) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := c.aead.Seal(nil, nonce, []byte(plaintext), nil)
	blob := append(nonce, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [Codec].
func (c *fieldCodec) Decrypt(ciphertext string) (string, error) {
	if ciphertext == "" {
		return "", nil
	}

	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrDecryptionFailed, err)
	}

	nonceSize := c.aead.NonceSize()
	if len(blob) < nonceSize {
		return "", fmt.Errorf("%w: ciphertext too short", ErrDecryptionFailed)
	}
	nonce, sealed := blob[:nonceSize], blob[nonceSize:]

	// An authentication-tag mismatch here almost always means the value
	// was encrypted under a different key.
	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return string(plaintext), nil
}
