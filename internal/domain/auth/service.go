package auth

import "context"

type AuthService interface {
	// Login verifies the credential pair and returns the session payload
	// plus a refresh token to be set as an HTTP-only cookie.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, string, int64, error)
	// RefreshToken mints a new access token from a valid refresh token.
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	// Logout revokes both tokens of the current session.
	Logout(ctx context.Context, accessToken string, refreshToken string) error
}
