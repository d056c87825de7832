package service

import (
	"strings"
	"testing"

	"github.com/shoestore/internal/config"

	"github.com/go-faster/errors"
)

func TestValidatePassword(t *testing.T) {
	policy := config.PasswordPolicyConfig{MinLength: 8, RequireUpper: true, RequireNumber: true}
	tests := []struct {
		name     string
		password string
		account  string
		wantKey  string
	}{
		{name: "too_short", password: "Ab1", wantKey: "error.password_min_length"},
		{name: "too_long", password: "A1" + strings.Repeat("x", 71), wantKey: "error.password_max_length"},
		{name: "no_upper", password: "abcdefg1", wantKey: "error.password_require_upper"},
		{name: "no_number", password: "Abcdefgh", wantKey: "error.password_require_number"},
		{name: "contains_email_name", password: "Lan.Nguyen2024", account: "lan.nguyen@example.com", wantKey: "error.password_contains_account"},
		{name: "contains_username", password: "Operator99", account: "operator", wantKey: "error.password_contains_account"},
		{name: "short_account_ignored", password: "Abcdefg1", account: "ab@example.com"},
		{name: "ok", password: "Abcdefg1", account: "buyer@example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePassword(policy, tt.password, tt.account)
			if tt.wantKey == "" {
				if err != nil {
					t.Fatalf("expected nil, got %v", err)
				}
				return
			}
			if !errors.Is(err, ErrWeakPassword) {
				t.Fatalf("expected weak password, got %v", err)
			}
			var perr passwordPolicyError
			if !errors.As(err, &perr) || perr.Key() != tt.wantKey {
				t.Fatalf("want key %s got %v", tt.wantKey, err)
			}
		})
	}
	if err := validatePassword(config.PasswordPolicyConfig{}, "", ""); err != nil {
		t.Fatalf("empty policy should accept anything: %v", err)
	}
}
