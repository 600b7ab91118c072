package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Next(t *testing.T) {
	g := NewUUIDGenerator()

	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := g.Next()
		require.NotEmpty(t, id)
		_, dup := seen[id]
		require.False(t, dup, "duplicate identifier %s", id)
		seen[id] = struct{}{}
	}
}

func TestHashString(t *testing.T) {
	first := HashString("password123", "hash-key")
	second := HashString("password123", "hash-key")
	assert.Equal(t, first, second, "same input and key must hash identically")

	otherKey := HashString("password123", "other-key")
	assert.NotEqual(t, first, otherKey)

	otherData := HashString("password124", "hash-key")
	assert.NotEqual(t, first, otherData)

	assert.True(t, HashEqual(first, second))
	assert.False(t, HashEqual(first, otherKey))
}

func TestGenerateAndParseJWTToken(t *testing.T) {
	token, err := GenerateJWTToken("secure-desk", "user-42", time.Hour, "sign-key")
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "sign-key", "secure-desk")
	require.NoError(t, err)
	assert.Equal(t, "user-42", parsed.UserID)
}

func TestValidateAndParseJWTToken_Failures(t *testing.T) {
	token, err := GenerateJWTToken("secure-desk", "user-42", time.Hour, "sign-key")
	require.NoError(t, err)

	t.Run("wrong sign key", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken(token.SignedString, "wrong-key", "secure-desk")
		assert.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken(token.SignedString, "sign-key", "someone-else")
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		expired, err := GenerateJWTToken("secure-desk", "user-42", -time.Minute, "sign-key")
		require.NoError(t, err)
		_, err = ValidateAndParseJWTToken(expired.SignedString, "sign-key", "secure-desk")
		assert.Error(t, err)
	})
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	_, err := GenerateJWTToken("", "user-42", time.Hour, "sign-key")
	assert.Error(t, err)

	_, err = GenerateJWTToken("secure-desk", "", time.Hour, "sign-key")
	assert.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ParseBearerToken("abc.def.ghi")
	assert.Error(t, err)

	_, err = ParseBearerToken("Bearer ")
	assert.Error(t, err)
}

func TestGetUserIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "user-1")
	userID, ok := GetUserIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "user-1", userID)

	_, ok = GetUserIDFromContext(context.Background())
	assert.False(t, ok)
}
