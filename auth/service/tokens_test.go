package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokens_IssueAndVerify(t *testing.T) {
	tokens := NewTokensWithKey([]byte("test-signing-key"), time.Hour)

	token, err := tokens.Issue("cus-123", "a@x.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tokens.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "cus-123", claims.CustomerID)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestTokens_VerifyExpired(t *testing.T) {
	tokens := NewTokensWithKey([]byte("test-signing-key"), -time.Minute)

	token, err := tokens.Issue("cus-123", "a@x.com")
	assert.NoError(t, err)

	_, err = tokens.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokens_VerifyInvalid(t *testing.T) {
	tokens := NewTokensWithKey([]byte("test-signing-key"), time.Hour)

	_, err := tokens.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	otherKey := NewTokensWithKey([]byte("another-key"), time.Hour)

	token, err := otherKey.Issue("cus-123", "a@x.com")
	assert.NoError(t, err)

	_, err = tokens.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestPasswords_HashAndCheck(t *testing.T) {
	hash, err := HashPassword("secret1")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	assert.True(t, CheckPassword(hash, "secret1"))
	assert.False(t, CheckPassword(hash, "secret2"))
}
