package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/prms-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *JWTService {
	t.Helper()
	svc, err := NewJWTService("test-secret", "1h", "168h")
	require.NoError(t, err)
	return svc
}

func TestNewJWTService_InvalidDuration(t *testing.T) {
	_, err := NewJWTService("s", "soon", "168h")
	assert.Error(t, err)
}

func TestAccessToken_RoundTripClaims(t *testing.T) {
	svc := newTestService(t)
	empID := "emp-1"

	token, expiresAt, err := svc.GenerateAccessToken(user.User{
		ID:         "user-1",
		Email:      "employee@company.com",
		Name:       "John Doe",
		Role:       user.RoleEmployee,
		EmployeeID: &empID,
	})
	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Unix())

	verified, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)

	ctx := jwtauth.NewContext(context.Background(), verified, nil)
	claims, err := ClaimsFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, user.RoleEmployee, claims.Role)
	assert.Equal(t, "John Doe", claims.Name)
	require.NotNil(t, claims.EmployeeID)
	assert.Equal(t, "emp-1", *claims.EmployeeID)
}

func TestClaimsFromMap_Rejects(t *testing.T) {
	cases := map[string]map[string]interface{}{
		"refresh token": {"type": TokenTypeRefresh, "user_id": "u", "role": "hr"},
		"unknown role":  {"type": TokenTypeAccess, "user_id": "u", "role": "owner"},
		"missing user":  {"type": TokenTypeAccess, "role": "hr"},
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := claimsFromMap(raw)
			assert.ErrorIs(t, err, ErrInvalidClaims)
		})
	}
}

func TestRefreshToken(t *testing.T) {
	svc := newTestService(t)

	token, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	userID, err := svc.ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	sse, _, err := svc.GenerateSSEToken("user-1")
	require.NoError(t, err)
	_, err = svc.ParseRefreshToken(sse)
	assert.ErrorIs(t, err, ErrInvalidClaims)

	_, err = svc.ParseRefreshToken("garbage")
	assert.Error(t, err)
}

func TestSSEToken(t *testing.T) {
	svc := newTestService(t)

	token, expiresIn, err := svc.GenerateSSEToken("user-1")
	require.NoError(t, err)
	assert.Equal(t, 300, expiresIn)

	userID, err := svc.ValidateSSEToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	other, err := NewJWTService("another-secret", "1h", "1h")
	require.NoError(t, err)
	_, err = other.ValidateSSEToken(token)
	assert.Error(t, err)
}

func TestRevokeToken_PrunesExpired(t *testing.T) {
	svc := newTestService(t)
	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	svc.RevokeToken("old", now.Add(-time.Minute))
	assert.True(t, svc.IsTokenRevoked("old"))

	svc.RevokeToken("fresh", now.Add(time.Hour))
	assert.True(t, svc.IsTokenRevoked("fresh"))
	assert.False(t, svc.IsTokenRevoked("old"))
	assert.False(t, svc.IsTokenRevoked("never"))
}
