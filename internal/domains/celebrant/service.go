package celebrant

import "context"

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResult, error)
	// Refresh validates a presented refresh token against the stored one and
	// rotates it. Any mismatch, including replay of a rotated-out token,
	// fails with AUTH_TOKEN_EXPIRED.
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)
}
