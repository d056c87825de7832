package service

import (
	"testing"

	"github.com/shoestore/internal/config"
	"github.com/shoestore/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := setupServiceDB(t)
	cfg := &config.Config{}
	cfg.JWT = config.JWTConfig{SecretKey: "test-secret", ExpireHours: 1}
	return NewAuthService(cfg, repository.NewAdminRepository(db))
}

func TestAdminLoginAndAuthenticate(t *testing.T) {
	svc := newTestAuthService(t)
	_, created, err := svc.EnsureAdmin("ops", "Password1", "Ops", false)
	require.NoError(t, err)
	assert.True(t, created)

	_, created, err = svc.EnsureAdmin("ops", "other", "Ops", false)
	require.NoError(t, err)
	assert.False(t, created)

	_, _, _, err = svc.Login("ops", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, _, err = svc.Login("nobody", "Password1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	admin, token, _, err := svc.Login("ops", "Password1")
	require.NoError(t, err)
	require.NotNil(t, admin.LastLoginAt)

	authed, err := svc.Authenticate(token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, authed.ID)

	_, err = svc.Authenticate("garbage")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestAdminChangePasswordRevokesToken(t *testing.T) {
	svc := newTestAuthService(t)
	_, _, err := svc.EnsureAdmin("root", "Password1", "Root", true)
	require.NoError(t, err)
	admin, token, _, err := svc.Login("root", "Password1")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.ChangePassword(admin.ID, "bad", "Password2"), ErrInvalidCredentials)
	require.NoError(t, svc.ChangePassword(admin.ID, "Password1", "Password2"))

	_, err = svc.Authenticate(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
	_, _, _, err = svc.Login("root", "Password2")
	require.NoError(t, err)
}
