package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the identity-provider token claims this service cares about.
// Tokens are minted by the identity provider; we only ever verify them.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// AccountID returns the identity provider's account ID (the token subject)
func (c *Claims) AccountID() string {
	return c.Subject
}

// ParseClaims verifies an HS256 access token against the shared secret and
// returns its claims.
func ParseClaims(tokenStr, secret string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if c, ok := t.Claims.(*Claims); ok && t.Valid {
		return c, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}
