package jwt

import (
	"context"
	"testing"

	"github.com/dost-electric/workforce-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() Service {
	return NewJWTService("test-secret-key-for-jwt", "1h", "24h")
}

func TestGenerateAccessToken_Claims(t *testing.T) {
	svc := newTestService()

	empID := "123e4567-e89b-12d3-a456-426614174000"
	tokenString, expiresAt, err := svc.GenerateAccessToken("user-1", "admin@example.com", "Admin", &empID, user.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "admin@example.com", claims["email"])
	assert.Equal(t, "Admin", claims["name"])
	assert.Equal(t, empID, claims["employee_id"])
	assert.Equal(t, "ADMIN", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateAccessToken_NilEmployeeID(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateAccessToken("user-2", "boss@example.com", "Boss", nil, user.RoleSuperAdmin)
	require.NoError(t, err)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Nil(t, claims["employee_id"])
	assert.Equal(t, "SUPER_ADMIN", claims["role"])
}

func TestGenerateRefreshToken_Type(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateRefreshToken("user-3")
	require.NoError(t, err)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "refresh", claims["type"])
	assert.Equal(t, "user-3", claims["user_id"])
}

func TestRevokeToken(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateAccessToken("user-4", "emp@example.com", "Emp", nil, user.RoleEmployee)
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(tokenString))
	svc.RevokeToken(tokenString)
	assert.True(t, svc.IsTokenRevoked(tokenString))
}

func TestGenerateAccessToken_InvalidExpiration(t *testing.T) {
	svc := NewJWTService("secret", "not-a-duration", "24h")

	_, _, err := svc.GenerateAccessToken("user-5", "x@example.com", "X", nil, user.RoleEmployee)
	assert.Error(t, err)
}
