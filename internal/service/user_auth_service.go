package service

import (
	"context"
	"crypto/rand"
	"math/big"
	"net/mail"
	"strings"
	"time"

	"github.com/shoestore/internal/config"
	"github.com/shoestore/internal/constants"
	"github.com/shoestore/internal/i18n"
	"github.com/shoestore/internal/logger"
	"github.com/shoestore/internal/models"
	"github.com/shoestore/internal/queue"
	"github.com/shoestore/internal/repository"

	"github.com/go-faster/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserAuthService 顾客账号服务
type UserAuthService struct {
	cfg          *config.Config
	userRepo     repository.UserRepository
	codeRepo     repository.VerificationCodeRepository
	queueClient  *queue.Client
	emailService *EmailService
}

// NewUserAuthService 创建顾客账号服务
func NewUserAuthService(cfg *config.Config, userRepo repository.UserRepository, codeRepo repository.VerificationCodeRepository, queueClient *queue.Client, emailService *EmailService) *UserAuthService {
	return &UserAuthService{
		cfg:          cfg,
		userRepo:     userRepo,
		codeRepo:     codeRepo,
		queueClient:  queueClient,
		emailService: emailService,
	}
}

// RegisterInput 注册参数
type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Phone    string
	Locale   string
}

// Register 注册账号，账号在邮箱验证前保持 pending
func (s *UserAuthService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if err := validatePassword(s.cfg.Security.PasswordPolicy, input.Password, email); err != nil {
		return nil, err
	}
	exist, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if exist != nil {
		return nil, ErrEmailExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Email:        email,
		PasswordHash: string(hashed),
		FullName:     strings.TrimSpace(input.FullName),
		Phone:        strings.TrimSpace(input.Phone),
		Locale:       i18n.NormalizeLocale(input.Locale),
		Status:       constants.UserStatusPending,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	if err := s.issueCode(ctx, email, constants.VerifyPurposeRegister, user.Locale); err != nil {
		return nil, err
	}
	return user, nil
}

// VerifyEmail 校验注册验证码并激活账号
func (s *UserAuthService) VerifyEmail(email, code string) (*models.User, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByEmail(normalized)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.EmailVerifiedAt != nil {
		return nil, ErrAlreadyVerified
	}
	if err := s.verifyCode(normalized, constants.VerifyPurposeRegister, code); err != nil {
		return nil, err
	}
	now := time.Now()
	user.EmailVerifiedAt = &now
	if user.Status == constants.UserStatusPending {
		user.Status = constants.UserStatusActive
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ResendCode 重新发送注册验证码
func (s *UserAuthService) ResendCode(ctx context.Context, email string) error {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return err
	}
	user, err := s.userRepo.GetByEmail(normalized)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.EmailVerifiedAt != nil {
		return ErrAlreadyVerified
	}
	return s.issueCode(ctx, normalized, constants.VerifyPurposeRegister, user.Locale)
}

// Login 邮箱密码登录
func (s *UserAuthService) Login(email, password string) (*models.User, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	user, err := s.userRepo.GetByEmail(normalized)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if user.Status == constants.UserStatusDisabled {
		return nil, ErrUserDisabled
	}
	if user.EmailVerifiedAt == nil || user.Status != constants.UserStatusActive {
		return nil, ErrEmailNotVerified
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(user.ID, now); err != nil {
		return nil, err
	}
	user.LastLoginAt = &now
	return user, nil
}

// ForgotPassword 发送找回密码验证码
func (s *UserAuthService) ForgotPassword(ctx context.Context, email string) error {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return err
	}
	user, err := s.userRepo.GetByEmail(normalized)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.issueCode(ctx, normalized, constants.VerifyPurposeReset, user.Locale)
}

// ResetPassword 校验验证码并重置密码
func (s *UserAuthService) ResetPassword(email, code, newPassword string) error {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return err
	}
	if err := validatePassword(s.cfg.Security.PasswordPolicy, newPassword, normalized); err != nil {
		return err
	}
	user, err := s.userRepo.GetByEmail(normalized)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if err := s.verifyCode(normalized, constants.VerifyPurposeReset, code); err != nil {
		return err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hashed)
	return s.userRepo.Update(user)
}

// GetProfile 获取个人资料
func (s *UserAuthService) GetProfile(identity Identity) (*models.User, error) {
	if !identity.Authenticated() {
		return nil, ErrUnauthorized
	}
	user, err := s.userRepo.GetByID(identity.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile 更新姓名与电话
func (s *UserAuthService) UpdateProfile(identity Identity, fullName, phone string) (*models.User, error) {
	user, err := s.GetProfile(identity)
	if err != nil {
		return nil, err
	}
	user.FullName = strings.TrimSpace(fullName)
	user.Phone = strings.TrimSpace(phone)
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserAuthService) verifyCode(email, purpose, code string) error {
	record, err := s.codeRepo.GetLatest(email, purpose)
	if err != nil {
		return err
	}
	if record == nil {
		return ErrVerifyCodeInvalid
	}
	now := time.Now()
	if record.Expired(now) {
		return ErrVerifyCodeExpired
	}
	if record.AttemptCount >= constants.VerifyCodeMaxAttempts {
		return ErrVerifyCodeAttempts
	}
	if strings.TrimSpace(code) != record.Code {
		if err := s.codeRepo.IncrementAttempt(record.ID); err != nil {
			return err
		}
		return ErrVerifyCodeInvalid
	}
	return s.codeRepo.MarkConsumed(record.ID, now)
}

// issueCode 作废旧码、写入新码并投递邮件
func (s *UserAuthService) issueCode(ctx context.Context, email, purpose, locale string) error {
	code, err := randomNumericCode(constants.VerifyCodeLength)
	if err != nil {
		return err
	}
	ttl := constants.VerifyCodeRegisterTTLSeconds
	if purpose == constants.VerifyPurposeReset {
		ttl = constants.VerifyCodeResetTTLSeconds
	}
	now := time.Now()
	err = dbWithContext(ctx).Transaction(func(tx *gorm.DB) error {
		codeRepo := s.codeRepo.WithTx(tx)
		if err := codeRepo.ConsumeActive(email, purpose, now); err != nil {
			return err
		}
		return codeRepo.Create(&models.VerificationCode{
			Email:     email,
			Purpose:   purpose,
			Code:      code,
			ExpiresAt: now.Add(time.Duration(ttl) * time.Second),
			CreatedAt: now,
		})
	})
	if err != nil {
		return err
	}
	s.deliverCode(ctx, email, purpose, code, locale)
	return nil
}

// deliverCode 优先走队列，队列未启用时直接发信
func (s *UserAuthService) deliverCode(ctx context.Context, email, purpose, code, locale string) {
	if s.queueClient.Enabled() {
		err := s.queueClient.EnqueueVerifyCodeEmail(queue.VerifyCodeEmailPayload{
			Email:   email,
			Purpose: purpose,
			Code:    code,
			Locale:  locale,
		})
		if err == nil {
			return
		}
		logger.Warnw("verify_code_enqueue_failed", "email", email, "purpose", purpose, "error", err)
	}
	if err := s.emailService.SendVerifyCode(ctx, email, code, purpose, locale); err != nil {
		if errors.Is(err, ErrEmailDisabled) {
			logger.Infow("verify_code_email_skipped", "email", email, "purpose", purpose)
			return
		}
		logger.Warnw("verify_code_email_failed", "email", email, "purpose", purpose, "error", err)
	}
}

func normalizeEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return "", ErrEmailInvalid
	}
	if _, err := mail.ParseAddress(normalized); err != nil {
		return "", ErrEmailInvalid
	}
	return normalized, nil
}

func randomNumericCode(length int) (string, error) {
	if length <= 0 {
		length = constants.VerifyCodeLength
	}
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		b.WriteByte(byte('0' + n.Int64()))
	}
	return b.String(), nil
}
