package auth

import "context"

// AuthService is the Identity Store: it resolves credentials to sessions
// and owns the persisted current-user record.
type AuthService interface {
	// Login authenticates an employee id/password pair, persists the
	// session record and issues a token pair.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// CurrentSession restores the previously persisted session, if any.
	CurrentSession(ctx context.Context) (Session, error)

	// Logout clears the persisted session and revokes the refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// Refresh exchanges a valid refresh token for a new token pair.
	Refresh(ctx context.Context, req RefreshTokenRequest) (TokenResponse, error)
}
