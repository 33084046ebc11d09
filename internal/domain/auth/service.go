package auth

import "context"

// AuthService defines authentication business logic.
type AuthService interface {
	// Login verifies username/password and issues a token pair.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// LoginWithGoogle resolves a verified Google account to a registered
	// user and issues a token pair.
	LoginWithGoogle(ctx context.Context, code string) (TokenResponse, error)

	// Refresh exchanges a valid refresh token for a new token pair.
	Refresh(ctx context.Context, req RefreshTokenRequest) (TokenResponse, error)

	// Logout revokes the refresh token.
	Logout(ctx context.Context, refreshToken string) error
}
