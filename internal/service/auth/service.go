package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/dost-electric/workforce-backend-go/internal/domain/auth"
	"github.com/dost-electric/workforce-backend-go/internal/domain/user"
	"github.com/dost-electric/workforce-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, string, int64, error) {
	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, "", 0, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, "", 0, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, "", 0, auth.ErrInvalidCredentials
	}

	accessToken, accessExpiresAt, err := a.Service.GenerateAccessToken(
		userData.ID, userData.Email, userData.Name, userData.EmployeeID, userData.Role,
	)
	if err != nil {
		return auth.LoginResponse{}, "", 0, fmt.Errorf("failed to create access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := a.Service.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.LoginResponse{}, "", 0, fmt.Errorf("failed to create refresh token: %w", err)
	}

	resp := auth.LoginResponse{
		ID:         userData.ID,
		Email:      userData.Email,
		Name:       userData.Name,
		Role:       userData.Role,
		EmployeeID: userData.EmployeeID,
		Token:      accessToken,
		ExpiresAt:  accessExpiresAt,
	}

	return resp, refreshToken, refreshExpiresAt, nil
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	token, err := jwtauth.VerifyToken(a.JWTAuth(), req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "refresh" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	if a.Service.IsTokenRevoked(req.RefreshToken) {
		return auth.AccessTokenResponse{}, auth.ErrTokenRevoked
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrUserNotFound
	}

	accessToken, expiresAt, err := a.Service.GenerateAccessToken(
		userData.ID, userData.Email, userData.Name, userData.EmployeeID, userData.Role,
	)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.AccessTokenResponse{Token: accessToken, ExpiresAt: expiresAt}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, accessToken string, refreshToken string) error {
	if accessToken != "" {
		a.Service.RevokeToken(accessToken)
	}
	if refreshToken != "" {
		a.Service.RevokeToken(refreshToken)
	}
	return nil
}
