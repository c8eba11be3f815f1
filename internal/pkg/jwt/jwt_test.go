package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/cache"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *JWTService {
	return NewJWTService("test-secret-key-for-jwt", time.Hour, cache.NewMemoryStore())
}

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	svc := newTestService()
	identity := user.Identity{UserID: "u-1", EmployeeID: "e-1", Role: user.RoleManager}

	token, exp, err := svc.GenerateAccessToken(identity)
	require.NoError(t, err)
	assert.Greater(t, exp, time.Now().Unix())

	decoded, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)

	ctx := jwtauth.NewContext(context.Background(), decoded, nil)
	got, err := IdentityFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, identity, got)

	_, err = MustEmployee(ctx)
	assert.NoError(t, err)
}

func TestIdentityFromContext_RejectsUnknownRole(t *testing.T) {
	svc := newTestService()
	token, _, err := svc.JWTAuth().Encode(map[string]interface{}{"user_id": "u-1", "role": "owner", "type": "access"})
	require.NoError(t, err)

	ctx := jwtauth.NewContext(context.Background(), token, nil)
	_, err = IdentityFromContext(ctx)
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestMustEmployee_WithoutEmployee(t *testing.T) {
	svc := newTestService()
	token, _, err := svc.JWTAuth().Encode(map[string]interface{}{"user_id": "u-1", "role": "admin", "type": "access"})
	require.NoError(t, err)

	ctx := jwtauth.NewContext(context.Background(), token, nil)
	_, err = MustEmployee(ctx)
	assert.ErrorIs(t, err, user.ErrEmployeeIDRequired)
}

func TestRevokeToken(t *testing.T) {
	svc := newTestService()
	token, _, err := svc.GenerateAccessToken(user.Identity{UserID: "u-1", Role: user.RoleEmployee})
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(token))
	svc.RevokeToken(token, time.Now().Add(time.Hour))
	assert.True(t, svc.IsTokenRevoked(token))

	other, _, err := svc.GenerateAccessToken(user.Identity{UserID: "u-2", Role: user.RoleEmployee})
	require.NoError(t, err)
	svc.RevokeToken(other, time.Now().Add(-time.Minute))
	assert.False(t, svc.IsTokenRevoked(other))
}
