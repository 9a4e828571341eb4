package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func mintToken(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func TestParseClaims(t *testing.T) {
	secret := "test-secret"
	token := mintToken(t, secret, Claims{
		Email: "mover@example.com",
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "acct_123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := ParseClaims(token, secret)
	if err != nil {
		t.Fatalf("ParseClaims() error = %v", err)
	}
	if claims.Email != "mover@example.com" {
		t.Errorf("email = %q", claims.Email)
	}
	if claims.AccountID() != "acct_123" {
		t.Errorf("account id = %q, want acct_123", claims.AccountID())
	}
}

func TestParseClaimsRejects(t *testing.T) {
	secret := "test-secret"

	tests := []struct {
		name  string
		token string
	}{
		{
			name: "wrong secret",
			token: mintToken(t, "other-secret", Claims{
				RegisteredClaims: jwt.RegisteredClaims{
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				},
			}),
		},
		{
			name: "expired token",
			token: mintToken(t, secret, Claims{
				RegisteredClaims: jwt.RegisteredClaims{
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				},
			}),
		},
		{
			name:  "garbage",
			token: "not.a.token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseClaims(tt.token, secret); err == nil {
				t.Error("expected error")
			}
		})
	}
}
