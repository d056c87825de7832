package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/shoestore/internal/config"
	"github.com/shoestore/internal/constants"
	"github.com/shoestore/internal/i18n"
	"github.com/shoestore/internal/models"

	gomail "github.com/wneessen/go-mail"
)

const emailSendTimeout = 15 * time.Second

// EmailService 邮件发送服务
type EmailService struct {
	cfg  *config.EmailConfig
	send func(ctx context.Context, msg *gomail.Msg) error
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	s := &EmailService{cfg: cfg}
	s.send = s.dialAndSend
	return s
}

// Enabled 是否已启用并配置 SMTP
func (s *EmailService) Enabled() bool {
	return s != nil && s.cfg != nil && s.cfg.Enabled && strings.TrimSpace(s.cfg.Host) != "" && strings.TrimSpace(s.cfg.From) != ""
}

// SendVerifyCode 发送邮箱验证码
func (s *EmailService) SendVerifyCode(ctx context.Context, toEmail, code, purpose, locale string) error {
	subject, body := buildVerifyCodeContent(code, purpose, locale)
	return s.sendTextEmail(ctx, toEmail, subject, body)
}

// SendOrderCreated 发送下单确认邮件
func (s *EmailService) SendOrderCreated(ctx context.Context, order *models.Order, locale string) error {
	if order == nil {
		return nil
	}
	subject, body := buildOrderCreatedContent(order, locale)
	return s.sendTextEmail(ctx, order.RecipientEmail, subject, body)
}

// SendOrderStatus 发送订单状态变更邮件
func (s *EmailService) SendOrderStatus(ctx context.Context, order *models.Order, oldStatus, status, locale string) error {
	if order == nil {
		return nil
	}
	subject, body := buildOrderStatusContent(order.OrderNo, oldStatus, status, locale)
	return s.sendTextEmail(ctx, order.RecipientEmail, subject, body)
}

func (s *EmailService) sendTextEmail(ctx context.Context, toEmail, subject, body string) error {
	if !s.Enabled() {
		return ErrEmailDisabled
	}
	toEmail = strings.TrimSpace(toEmail)
	if _, err := mail.ParseAddress(toEmail); err != nil {
		return ErrEmailInvalid
	}
	msg, err := s.buildMessage(toEmail, subject, body)
	if err != nil {
		return err
	}
	if err := s.send(ctx, msg); err != nil {
		return fmt.Errorf("%w: %v", ErrEmailSendFailed, err)
	}
	return nil
}

func (s *EmailService) buildMessage(toEmail, subject, body string) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	fromName := strings.TrimSpace(s.cfg.FromName)
	if fromName != "" {
		if err := msg.FromFormat(fromName, s.cfg.From); err != nil {
			return nil, err
		}
	} else if err := msg.From(s.cfg.From); err != nil {
		return nil, err
	}
	if err := msg.To(toEmail); err != nil {
		return nil, err
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)
	return msg, nil
}

func (s *EmailService) dialAndSend(ctx context.Context, msg *gomail.Msg) error {
	opts := []gomail.Option{
		gomail.WithPort(s.cfg.Port),
		gomail.WithTimeout(emailSendTimeout),
	}
	if s.cfg.Username != "" || s.cfg.Password != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.cfg.Username),
			gomail.WithPassword(s.cfg.Password),
		)
	}
	switch {
	case s.cfg.UseSSL:
		opts = append(opts, gomail.WithSSL())
	case s.cfg.UseTLS:
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	default:
		opts = append(opts, gomail.WithTLSPolicy(gomail.NoTLS))
	}
	client, err := gomail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return err
	}
	return client.DialAndSendWithContext(ctx, msg)
}

func buildVerifyCodeContent(code, purpose, locale string) (string, string) {
	ttl := constants.VerifyCodeRegisterTTLSeconds
	subjectKey := "email.verify.subject_register"
	if strings.ToLower(strings.TrimSpace(purpose)) == constants.VerifyPurposeReset {
		ttl = constants.VerifyCodeResetTTLSeconds
		subjectKey = "email.verify.subject_reset"
	}
	return i18n.T(locale, subjectKey), i18n.Sprintf(locale, "email.verify.body", code, ttl)
}

func buildOrderCreatedContent(order *models.Order, locale string) (string, string) {
	subject := i18n.Sprintf(locale, "email.order_created.subject", order.OrderNo)
	body := i18n.Sprintf(locale, "email.order_created.body", order.OrderNo, formatAmount(order.TotalAmount), order.RecipientAddress)
	return subject, body
}

func buildOrderStatusContent(orderNo, oldStatus, status, locale string) (string, string) {
	newLabel := orderStatusLabel(status, locale)
	subject := i18n.Sprintf(locale, "email.order_status.subject", orderNo, newLabel)
	body := i18n.Sprintf(locale, "email.order_status.body", orderNo, orderStatusLabel(oldStatus, locale), newLabel)
	return subject, body
}

// orderStatusLabel 状态文案，缺失时回退原值
func orderStatusLabel(status, locale string) string {
	key := "order.status." + strings.ToLower(strings.TrimSpace(status))
	label := i18n.T(locale, key)
	if label == key {
		return status
	}
	return label
}

func formatAmount(amount models.Money) string {
	return fmt.Sprintf("%s %s", amount.Decimal.StringFixed(0), constants.SiteCurrencyDefault)
}
