package domain

import "context"

type Service interface {
	// Login verifies the credentials and mints a session token.
	Login(ctx context.Context, email, password string) (*Identity, error)
	// Authenticate resolves a session token into an identity; expired
	// and revoked sessions fail with ErrUnauthenticated.
	Authenticate(ctx context.Context, token string) (*Identity, error)
	Logout(ctx context.Context, token string) error
}
