package cache

import (
	"context"
	"testing"

	"github.com/shoestore/internal/config"
	"github.com/shoestore/internal/constants"
)

func TestShoesDetailKey(t *testing.T) {
	if got := shoesDetailKey(42); got != "shoes:detail:42" {
		t.Fatalf("unexpected key: %s", got)
	}
}

func TestShoesDetailDisabledCache(t *testing.T) {
	redisEnabled = false
	var dest map[string]interface{}
	hit, err := GetShoesDetail(context.Background(), 1, &dest)
	if err != nil || hit {
		t.Fatalf("expected miss without error, got hit=%v err=%v", hit, err)
	}
	if err := SetShoesDetail(context.Background(), 1, map[string]int{"id": 1}); err != nil {
		t.Fatalf("set on disabled cache should be noop: %v", err)
	}
	if err := DelShoesDetail(context.Background(), 1); err != nil {
		t.Fatalf("del on disabled cache should be noop: %v", err)
	}
}

func TestBuildKeyUsesPrefix(t *testing.T) {
	redisPrefix = "ss"
	if got := buildKey(" shoes:detail:1 "); got != "ss:shoes:detail:1" {
		t.Fatalf("unexpected key: %s", got)
	}
	if got := buildKey(""); got != "ss" {
		t.Fatalf("unexpected empty key: %s", got)
	}
}

func TestKeyJoinsSegments(t *testing.T) {
	redisPrefix = "ss"
	if got := Key("rate", " login ", ""); got != "ss:rate:login" {
		t.Fatalf("unexpected key: %s", got)
	}
	if got := Key(":dashboard:", "overview"); got != "ss:dashboard:overview" {
		t.Fatalf("unexpected trimmed key: %s", got)
	}
}

func TestInitRedisDisabledKeepsPrefix(t *testing.T) {
	if err := InitRedis(&config.RedisConfig{Enabled: false, Prefix: " shop "}); err != nil {
		t.Fatalf("disabled redis should not fail: %v", err)
	}
	t.Cleanup(func() { redisPrefix = constants.RedisPrefixDefault })
	if Enabled() || Client() != nil {
		t.Fatalf("expected disabled cache")
	}
	if got := Key("rate", "auth"); got != "shop:rate:auth" {
		t.Fatalf("unexpected key: %s", got)
	}
	if got := HealthStatus(context.Background()); got != StatusDisabled {
		t.Fatalf("unexpected health: %s", got)
	}
	if err := Del(context.Background(), "a", "b"); err != nil {
		t.Fatalf("del on disabled cache should be noop: %v", err)
	}
}
