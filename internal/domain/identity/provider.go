package identity

import "context"

// Provider defines the interface for the external identity provider. Account
// records live upstream; this service only keys profiles by the email it
// registered.
type Provider interface {
	// CreateAccount registers email with the given password and returns the
	// provider's opaque account ID. A rejection is an upstream auth error and
	// no profile row may be written for the caller.
	CreateAccount(ctx context.Context, email, password string) (string, error)
}
