package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/moverhub/backend/internal/auth"
	"github.com/moverhub/backend/internal/pkg/errors"
	"github.com/moverhub/backend/internal/pkg/utils"
)

// ContextKey is a custom type for context keys
type ContextKey string

const (
	// AccountIDKey is the context key for the identity account ID
	AccountIDKey ContextKey = "accountID"
	// AccountEmailKey is the context key for the authenticated email
	AccountEmailKey ContextKey = "email"
)

// AuthMiddleware returns a middleware that validates identity-provider
// access tokens
func AuthMiddleware(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := extractToken(r)
			if tokenStr == "" {
				utils.WriteError(w, errors.Unauthorized("Missing authentication token"))
				return
			}

			claims, err := auth.ParseClaims(tokenStr, jwtSecret)
			if err != nil {
				utils.WriteError(w, errors.Unauthorized("Invalid or expired token"))
				return
			}

			ctx := context.WithValue(r.Context(), AccountIDKey, claims.AccountID())
			ctx = context.WithValue(ctx, AccountEmailKey, claims.Email)

			AddLogField(w, "account_id", claims.AccountID())
			AddLogField(w, "email", claims.Email)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}
	if cookie, err := r.Cookie("accessToken"); err == nil {
		return cookie.Value
	}
	return ""
}

// GetAccountID extracts the identity account ID from the request context
func GetAccountID(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(AccountIDKey).(string)
	return id, ok
}

// GetAccountEmail extracts the authenticated email from the request context
func GetAccountEmail(r *http.Request) (string, bool) {
	email, ok := r.Context().Value(AccountEmailKey).(string)
	return email, ok
}
