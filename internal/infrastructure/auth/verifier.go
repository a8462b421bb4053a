// Package auth verifies bearer tokens issued by the external identity
// provider. This service never mints or refreshes credentials.
package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by a verified bearer token. The subject is the opaque
// principal identifier used throughout the service.
type Claims struct {
	jwt.RegisteredClaims
}

// PrincipalID returns the token subject.
func (c *Claims) PrincipalID() string {
	return c.Subject
}

// Verifier validates HS256 bearer tokens against a shared secret.
type Verifier struct {
	secret []byte
	issuer string
}

// NewVerifier creates a Verifier. issuer is optional; when set, tokens
// from any other issuer are rejected.
func NewVerifier(secret, issuer string) *Verifier {
	return &Verifier{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// Verify parses and validates a bearer token. Expired, malformed, or
// tampered tokens fail; callers map the error to an unauthenticated
// response.
func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if v.issuer != "" {
		options = append(options, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	}, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token missing subject")
	}

	return claims, nil
}
