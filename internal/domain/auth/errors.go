package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid employee id or password")
	ErrInvalidToken        = errors.New("invalid or missing token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenRevoked = errors.New("refresh token revoked")
	ErrNoActiveSession     = errors.New("no active session")
)
