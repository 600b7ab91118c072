package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCodec(t *testing.T) Codec {
	t.Helper()
	codec, err := NewFieldCodec(NewStaticKeyProvider("test-master-secret", []byte("test-salt-16bytes")))
	require.NoError(t, err)
	return codec
}

func TestFieldCodec_RoundTrip(t *testing.T) {
	codec := newTestCodec(t)

	values := []string{
		"abc",
		"4111111111111111",
		"pässwörd with ünïcode",
		strings.Repeat("long", 512),
	}

	for _, v := range values {
		ct, err := codec.Encrypt(v)
		require.NoError(t, err)
		assert.NotEqual(t, v, ct, "ciphertext must never equal plaintext")

		pt, err := codec.Decrypt(ct)
		require.NoError(t, err)
		assert.Equal(t, v, pt)
	}
}

func TestFieldCodec_EmptyValuePassesThrough(t *testing.T) {
	codec := newTestCodec(t)

	ct, err := codec.Encrypt("")
	require.NoError(t, err)
	assert.Empty(t, ct, "empty plaintext must not produce an encrypted empty string")

	pt, err := codec.Decrypt("")
	require.NoError(t, err)
	assert.Empty(t, pt)
}

func TestFieldCodec_NonDeterministicNonce(t *testing.T) {
	codec := newTestCodec(t)

	first, err := codec.Encrypt("same value")
	require.NoError(t, err)
	second, err := codec.Encrypt("same value")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "fresh nonce per call")
}

func TestFieldCodec_DecryptFailures(t *testing.T) {
	codec := newTestCodec(t)

	t.Run("malformed base64", func(t *testing.T) {
		_, err := codec.Decrypt("not-base64!!!")
		assert.ErrorIs(t, err, ErrDecryptionFailed)
	})

	t.Run("too short blob", func(t *testing.T) {
		_, err := codec.Decrypt("YWJj") // "abc", shorter than a nonce
		assert.ErrorIs(t, err, ErrDecryptionFailed)
	})

	t.Run("foreign key", func(t *testing.T) {
		other, err := NewFieldCodec(NewStaticKeyProvider("another-secret", []byte("another-salt-16b")))
		require.NoError(t, err)

		ct, err := other.Encrypt("secret")
		require.NoError(t, err)

		_, err = codec.Decrypt(ct)
		assert.ErrorIs(t, err, ErrDecryptionFailed)
	})
}

func TestNewFieldCodec_RejectsShortKey(t *testing.T) {
	_, err := NewFieldCodec(fixedKey{key: []byte("short")})
	assert.ErrorIs(t, err, ErrInvalidKeySize)
}

type fixedKey struct{ key []byte }

func (f fixedKey) Key() []byte { return f.key }
