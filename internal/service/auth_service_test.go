package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/leadgrid/leadgrid-backend/internal/config"
	"github.com/leadgrid/leadgrid-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService() (AuthService, *repository.Repositories) {
	cfg := &config.Config{
		JWTSecret:    "test-secret",
		SessionHours: 1,
	}
	repos := repository.NewMemoryRepositories(nil)
	return NewAuthService(cfg, repos.UserRepo, nil), repos
}

func TestExchangeCodeDevModeCreatesUserAndSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService()

	user, token, err := svc.ExchangeCode(ctx, "open-123")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "open-123", user.OpenID)
	assert.Equal(t, "user", user.Role)
	assert.NotEmpty(t, token)

	resolved, err := svc.ResolveUser(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, user.ID, resolved.ID)
}

func TestExchangeCodeIsIdempotentPerOpenID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService()

	first, _, err := svc.ExchangeCode(ctx, "open-123")
	require.NoError(t, err)
	second, _, err := svc.ExchangeCode(ctx, "open-123")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	other, _, err := svc.ExchangeCode(ctx, "open-456")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
}

func TestResolveUserToleratesBadTokens(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService()

	for _, token := range []string{"", "garbage", "a.b.c"} {
		user, err := svc.ResolveUser(ctx, token)
		require.NoError(t, err, "token %q", token)
		assert.Nil(t, user, "token %q", token)
	}
}

func TestResolveUserRejectsWrongSignature(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService()

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := forged.SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	user, err := svc.ResolveUser(ctx, signed)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestResolveUserRejectsExpiredToken(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService()

	_, _, err := svc.ExchangeCode(ctx, "open-123")
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	user, err := svc.ResolveUser(ctx, signed)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestResolveUserUnknownSubjectIsNil(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "42",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	user, err := svc.ResolveUser(ctx, signed)
	require.NoError(t, err)
	assert.Nil(t, user)
}
