package config

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func newTestViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

func TestDecodeDefaults(t *testing.T) {
	cfg, err := decode(newTestViper())
	if err != nil {
		t.Fatalf("decode defaults failed: %v", err)
	}
	if cfg.Server.Addr() != "0.0.0.0:8080" {
		t.Fatalf("unexpected addr: %s", cfg.Server.Addr())
	}
	if cfg.Database.Driver != "sqlite" {
		t.Fatalf("unexpected driver: %s", cfg.Database.Driver)
	}
	if got := cfg.Order.ShippingFeeDecimal().String(); got != "30000" {
		t.Fatalf("shipping fee want 30000 got %s", got)
	}
	if cfg.Inventory.LowStockThreshold != 10 {
		t.Fatalf("low stock threshold want 10 got %d", cfg.Inventory.LowStockThreshold)
	}
	if cfg.Queue.Queues["default"] != 10 {
		t.Fatalf("default queue weight want 10 got %v", cfg.Queue.Queues)
	}
}

func TestDecodeEnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ORDER_SHIPPING_FEE", "45000.50")
	t.Setenv("REDIS_ENABLED", "false")

	cfg, err := decode(newTestViper())
	if err != nil {
		t.Fatalf("decode with env failed: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("port want 9090 got %s", cfg.Server.Port)
	}
	if got := cfg.Order.ShippingFeeDecimal().StringFixed(2); got != "45000.50" {
		t.Fatalf("shipping fee want 45000.50 got %s", got)
	}
	if cfg.Redis.Enabled {
		t.Fatalf("redis should be disabled by env")
	}
}

func TestShippingFeeFallback(t *testing.T) {
	cases := []string{"", "abc", "-1"}
	for _, raw := range cases {
		got := OrderConfig{ShippingFee: raw}.ShippingFeeDecimal()
		if got.String() != "30000" {
			t.Fatalf("shipping fee %q should fall back to 30000, got %s", raw, got)
		}
	}
}
