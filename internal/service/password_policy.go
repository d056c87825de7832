package service

import (
	"strings"
	"unicode"

	"github.com/shoestore/internal/config"
)

// bcrypt 只取前 72 字节
const passwordMaxBytes = 72

// 账号标识过短时不做包含检查
const passwordIdentityMinRunes = 3

type passwordPolicyError struct {
	key  string
	args []interface{}
}

func (e passwordPolicyError) Error() string {
	return e.key
}

func (e passwordPolicyError) Is(target error) bool {
	return target == ErrWeakPassword
}

func (e passwordPolicyError) Key() string {
	return e.key
}

func (e passwordPolicyError) Args() []interface{} {
	return e.args
}

// passwordIdentity 取顾客邮箱 @ 前的部分或管理员用户名
func passwordIdentity(account string) string {
	account = strings.ToLower(strings.TrimSpace(account))
	if at := strings.LastIndex(account, "@"); at >= 0 {
		account = account[:at]
	}
	return account
}

// validatePassword 校验新密码，account 为顾客邮箱或管理员用户名
func validatePassword(policy config.PasswordPolicyConfig, password, account string) error {
	if len(password) > passwordMaxBytes {
		return passwordPolicyError{key: "error.password_max_length", args: []interface{}{passwordMaxBytes}}
	}
	if policy.MinLength > 0 && len([]rune(password)) < policy.MinLength {
		return passwordPolicyError{key: "error.password_min_length", args: []interface{}{policy.MinLength}}
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		default:
			hasSpecial = true
		}
	}

	if policy.RequireUpper && !hasUpper {
		return passwordPolicyError{key: "error.password_require_upper"}
	}
	if policy.RequireLower && !hasLower {
		return passwordPolicyError{key: "error.password_require_lower"}
	}
	if policy.RequireNumber && !hasNumber {
		return passwordPolicyError{key: "error.password_require_number"}
	}
	if policy.RequireSpecial && !hasSpecial {
		return passwordPolicyError{key: "error.password_require_special"}
	}

	if identity := passwordIdentity(account); len([]rune(identity)) >= passwordIdentityMinRunes &&
		strings.Contains(strings.ToLower(password), identity) {
		return passwordPolicyError{key: "error.password_contains_account"}
	}
	return nil
}
