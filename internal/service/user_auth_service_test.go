package service

import (
	"context"
	"testing"
	"time"

	"github.com/shoestore/internal/config"
	"github.com/shoestore/internal/constants"
	"github.com/shoestore/internal/models"
	"github.com/shoestore/internal/repository"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	svc   *UserAuthService
	codes *repository.GormVerificationCodeRepository
	ctx   context.Context
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	db := setupServiceDB(t)
	cfg := &config.Config{}
	cfg.Security.PasswordPolicy = config.PasswordPolicyConfig{MinLength: 8, RequireNumber: true}
	codes := repository.NewVerificationCodeRepository(db)
	email := NewEmailService(&config.EmailConfig{Enabled: false})
	return &authFixture{
		svc:   NewUserAuthService(cfg, repository.NewUserRepository(db), codes, nil, email),
		codes: codes,
		ctx:   context.Background(),
	}
}

func (f *authFixture) latestCode(t *testing.T, email, purpose string) *models.VerificationCode {
	t.Helper()
	record, err := f.codes.GetLatest(email, purpose)
	require.NoError(t, err)
	require.NotNil(t, record)
	return record
}

func TestRegisterVerifyLogin(t *testing.T) {
	f := newAuthFixture(t)

	user, err := f.svc.Register(f.ctx, RegisterInput{Email: " New@Example.com ", Password: "secret123", FullName: "Lan"})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, constants.UserStatusPending, user.Status)

	_, err = f.svc.Login("new@example.com", "secret123")
	assert.ErrorIs(t, err, ErrEmailNotVerified)

	code := f.latestCode(t, "new@example.com", constants.VerifyPurposeRegister)
	assert.Len(t, code.Code, constants.VerifyCodeLength)
	ttl := code.ExpiresAt.Sub(code.CreatedAt)
	assert.Equal(t, time.Duration(constants.VerifyCodeRegisterTTLSeconds)*time.Second, ttl)

	_, err = f.svc.VerifyEmail("new@example.com", code.Code)
	require.NoError(t, err)

	logged, err := f.svc.Login("NEW@example.com", "secret123")
	require.NoError(t, err)
	require.NotNil(t, logged.LastLoginAt)

	_, err = f.svc.Login("new@example.com", "wrong-pass1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.svc.VerifyEmail("new@example.com", code.Code)
	assert.ErrorIs(t, err, ErrAlreadyVerified)
}

func TestRegisterRejectsDuplicateAndWeakPassword(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.Register(f.ctx, RegisterInput{Email: "a@example.com", Password: "short"})
	assert.ErrorIs(t, err, ErrWeakPassword)

	_, err = f.svc.Register(f.ctx, RegisterInput{Email: "not-an-email", Password: "secret123"})
	assert.ErrorIs(t, err, ErrEmailInvalid)

	_, err = f.svc.Register(f.ctx, RegisterInput{Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)
	_, err = f.svc.Register(f.ctx, RegisterInput{Email: "A@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestVerifyCodeAttemptsAndResend(t *testing.T) {
	f := newAuthFixture(t)
	_, err := f.svc.Register(f.ctx, RegisterInput{Email: "b@example.com", Password: "secret123"})
	require.NoError(t, err)
	first := f.latestCode(t, "b@example.com", constants.VerifyPurposeRegister)

	for i := 0; i < constants.VerifyCodeMaxAttempts; i++ {
		_, err = f.svc.VerifyEmail("b@example.com", "000000x")
		assert.ErrorIs(t, err, ErrVerifyCodeInvalid)
	}
	_, err = f.svc.VerifyEmail("b@example.com", first.Code)
	assert.ErrorIs(t, err, ErrVerifyCodeAttempts)

	require.NoError(t, f.svc.ResendCode(f.ctx, "b@example.com"))
	second := f.latestCode(t, "b@example.com", constants.VerifyPurposeRegister)
	assert.NotEqual(t, first.ID, second.ID)

	_, err = f.svc.VerifyEmail("b@example.com", second.Code)
	require.NoError(t, err)
}

func TestVerifyCodeExpired(t *testing.T) {
	f := newAuthFixture(t)
	_, err := f.svc.Register(f.ctx, RegisterInput{Email: "c@example.com", Password: "secret123"})
	require.NoError(t, err)
	code := f.latestCode(t, "c@example.com", constants.VerifyPurposeRegister)
	require.NoError(t, models.DB.Model(&models.VerificationCode{}).Where("id = ?", code.ID).
		Update("expires_at", time.Now().Add(-time.Second)).Error)

	_, err = f.svc.VerifyEmail("c@example.com", code.Code)
	assert.ErrorIs(t, err, ErrVerifyCodeExpired)
}

func TestForgotAndResetPassword(t *testing.T) {
	f := newAuthFixture(t)
	_, err := f.svc.Register(f.ctx, RegisterInput{Email: "d@example.com", Password: "secret123"})
	require.NoError(t, err)
	_, err = f.svc.VerifyEmail("d@example.com", f.latestCode(t, "d@example.com", constants.VerifyPurposeRegister).Code)
	require.NoError(t, err)

	err = f.svc.ForgotPassword(f.ctx, "ghost@example.com")
	assert.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, f.svc.ForgotPassword(f.ctx, "d@example.com"))
	reset := f.latestCode(t, "d@example.com", constants.VerifyPurposeReset)
	assert.Equal(t, time.Duration(constants.VerifyCodeResetTTLSeconds)*time.Second, reset.ExpiresAt.Sub(reset.CreatedAt))

	require.NoError(t, f.svc.ResetPassword("d@example.com", reset.Code, "changed456"))
	_, err = f.svc.Login("d@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = f.svc.Login("d@example.com", "changed456")
	require.NoError(t, err)

	err = f.svc.ResetPassword("d@example.com", reset.Code, "again7890")
	assert.ErrorIs(t, err, ErrVerifyCodeInvalid)
}

func TestLoginDisabledUser(t *testing.T) {
	f := newAuthFixture(t)
	_, err := f.svc.Register(f.ctx, RegisterInput{Email: "e@example.com", Password: "secret123"})
	require.NoError(t, err)
	require.NoError(t, models.DB.Model(&models.User{}).Where("email = ?", "e@example.com").
		Update("status", constants.UserStatusDisabled).Error)

	_, err = f.svc.Login("e@example.com", "secret123")
	assert.ErrorIs(t, err, ErrUserDisabled)
}

func TestProfileUpdate(t *testing.T) {
	f := newAuthFixture(t)
	user, err := f.svc.Register(f.ctx, RegisterInput{Email: "f@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = f.svc.GetProfile(Identity{})
	assert.ErrorIs(t, err, ErrUnauthorized)

	updated, err := f.svc.UpdateProfile(Identity{UserID: user.ID, Email: user.Email}, " Minh ", "0909")
	require.NoError(t, err)
	assert.Equal(t, "Minh", updated.FullName)
	assert.Equal(t, "0909", updated.Phone)
}
