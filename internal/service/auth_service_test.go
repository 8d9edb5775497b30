package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	appErr "mblog/internal/pkg/errors"
	"mblog/internal/pkg/jwt"
	"mblog/internal/pkg/password"
)

func newTestSigner(t *testing.T, ttl time.Duration) *jwt.Signer {
	t.Helper()
	signer, err := jwt.NewSigner([]byte("test-secret"), "HS256", ttl)
	require.NoError(t, err)
	return signer
}

func TestRegisterHashesPassword(t *testing.T) {
	users := newFakeUserStore()
	auth := NewAuthService(users, newTestSigner(t, time.Hour))

	user, err := auth.Register(context.Background(), "sanjeev@gmail.com", "password123")
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.Equal(t, "sanjeev@gmail.com", user.Email)
	require.NotEqual(t, "password123", user.PasswordHash)

	ok, err := password.Verify("password123", user.PasswordHash)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := newFakeUserStore()
	auth := NewAuthService(users, newTestSigner(t, time.Hour))

	_, err := auth.Register(context.Background(), "sanjeev@gmail.com", "password123")
	require.NoError(t, err)
	_, err = auth.Register(context.Background(), "sanjeev@gmail.com", "other")
	require.ErrorIs(t, err, appErr.ErrConflict)
}

func TestLogin(t *testing.T) {
	users := newFakeUserStore()
	auth := NewAuthService(users, newTestSigner(t, time.Hour))

	user, err := auth.Register(context.Background(), "sanjeev@gmail.com", "password123")
	require.NoError(t, err)

	token, err := auth.Login(context.Background(), "sanjeev@gmail.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	resolved, err := auth.Authenticate(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, user.ID, resolved.ID)
}

func TestLoginBadCredentials(t *testing.T) {
	users := newFakeUserStore()
	auth := NewAuthService(users, newTestSigner(t, time.Hour))

	_, err := auth.Register(context.Background(), "sanjeev@gmail.com", "password123")
	require.NoError(t, err)

	_, err = auth.Login(context.Background(), "sanjeev@gmail.com", "wrong")
	require.ErrorIs(t, err, appErr.ErrBadCredentials)

	_, err = auth.Login(context.Background(), "nobody@gmail.com", "password123")
	require.ErrorIs(t, err, appErr.ErrBadCredentials)
}

func TestAuthenticateRejections(t *testing.T) {
	users := newFakeUserStore()
	auth := NewAuthService(users, newTestSigner(t, time.Hour))

	_, err := auth.Authenticate(context.Background(), "garbage")
	require.ErrorIs(t, err, appErr.ErrUnauthorized)

	expiredAuth := NewAuthService(users, newTestSigner(t, -time.Minute))
	user, err := expiredAuth.Register(context.Background(), "sanjeev@gmail.com", "password123")
	require.NoError(t, err)
	token, err := expiredAuth.Login(context.Background(), "sanjeev@gmail.com", "password123")
	require.NoError(t, err)
	_, err = expiredAuth.Authenticate(context.Background(), token)
	require.ErrorIs(t, err, appErr.ErrUnauthorized)

	// a valid token whose user vanished fails exactly the same way
	token, err = auth.Login(context.Background(), "sanjeev@gmail.com", "password123")
	require.NoError(t, err)
	delete(users.users, user.ID)
	_, err = auth.Authenticate(context.Background(), token)
	require.ErrorIs(t, err, appErr.ErrUnauthorized)
}
