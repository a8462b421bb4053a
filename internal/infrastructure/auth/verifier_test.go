package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestVerifier_Verify_ValidToken(t *testing.T) {
	verifier := NewVerifier(testSecret, "")

	now := time.Now().UTC()
	tokenString := signToken(t, testSecret, jwt.RegisteredClaims{
		Subject:   "user-123",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})

	claims, err := verifier.Verify(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.PrincipalID())
}

func TestVerifier_Verify_ExpiredToken(t *testing.T) {
	verifier := NewVerifier(testSecret, "")

	now := time.Now().UTC()
	tokenString := signToken(t, testSecret, jwt.RegisteredClaims{
		Subject:   "user-123",
		IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
	})

	claims, err := verifier.Verify(tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestVerifier_Verify_WrongSecret(t *testing.T) {
	verifier := NewVerifier(testSecret, "")

	now := time.Now().UTC()
	tokenString := signToken(t, "other-secret", jwt.RegisteredClaims{
		Subject:   "user-123",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})

	_, err := verifier.Verify(tokenString)
	assert.Error(t, err)
}

func TestVerifier_Verify_Malformed(t *testing.T) {
	verifier := NewVerifier(testSecret, "")

	_, err := verifier.Verify("not-a-token")
	assert.Error(t, err)
}

func TestVerifier_Verify_MissingSubject(t *testing.T) {
	verifier := NewVerifier(testSecret, "")

	now := time.Now().UTC()
	tokenString := signToken(t, testSecret, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})

	_, err := verifier.Verify(tokenString)
	assert.Error(t, err)
}

func TestVerifier_Verify_IssuerMismatch(t *testing.T) {
	verifier := NewVerifier(testSecret, "idp.example.com")

	now := time.Now().UTC()
	tokenString := signToken(t, testSecret, jwt.RegisteredClaims{
		Subject:   "user-123",
		Issuer:    "someone-else",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})

	_, err := verifier.Verify(tokenString)
	assert.Error(t, err)
}

func TestVerifier_Verify_IssuerMatch(t *testing.T) {
	verifier := NewVerifier(testSecret, "idp.example.com")

	now := time.Now().UTC()
	tokenString := signToken(t, testSecret, jwt.RegisteredClaims{
		Subject:   "user-123",
		Issuer:    "idp.example.com",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})

	claims, err := verifier.Verify(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.PrincipalID())
}
