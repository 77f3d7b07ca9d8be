package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTIssueAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 60)

	token, expiresAt, err := svc.Issue(42, "owner@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(60*time.Minute), expiresAt, 5*time.Second)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.AccountID)
	assert.Equal(t, "owner@example.com", claims.Email)
}

func TestJWTVerifyRejectsWrongSecret(t *testing.T) {
	token, _, err := NewJWTService("secret-a", 60).Issue(1, "a@example.com")
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", 60).Verify(token)
	assert.Error(t, err)
}

func TestJWTVerifyRejectsGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", 60)

	_, err := svc.Verify("not.a.token")
	assert.Error(t, err)

	_, err = svc.Verify("")
	assert.Error(t, err)
}

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.NoError(t, hasher.Verify(hash, "correct horse battery staple"))
	assert.Error(t, hasher.Verify(hash, "wrong password"))
}
