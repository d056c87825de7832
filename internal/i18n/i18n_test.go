package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestTFallback(t *testing.T) {
	if got := T(LocaleEN, "success.order_created"); got != "Order placed successfully!" {
		t.Fatalf("unexpected en message: %s", got)
	}
	if got := T("fr-FR", "success.order_created"); got != "Đặt hàng thành công!" {
		t.Fatalf("unknown locale should fall back to vi, got %s", got)
	}
	if got := T(LocaleEN, "error.missing_key"); got != "error.missing_key" {
		t.Fatalf("missing key should echo key, got %s", got)
	}
}

func TestSprintf(t *testing.T) {
	if got := Sprintf(LocaleEN, "error.password_min_length", 8); got != "Password must be at least 8 characters" {
		t.Fatalf("unexpected formatted message: %s", got)
	}
}

func TestLocaleTablesHaveSameKeys(t *testing.T) {
	for key := range messages[LocaleVI] {
		if _, ok := messages[LocaleEN][key]; !ok {
			t.Fatalf("key %s missing in en-US", key)
		}
	}
	for key := range messages[LocaleEN] {
		if _, ok := messages[LocaleVI][key]; !ok {
			t.Fatalf("key %s missing in vi-VN", key)
		}
	}
}

func TestResolveLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		name   string
		target string
		header string
		want   string
	}{
		{name: "default", target: "/", want: LocaleVI},
		{name: "query", target: "/?lang=en", want: LocaleEN},
		{name: "header", target: "/", header: "en-GB,en;q=0.9", want: LocaleEN},
		{name: "query wins", target: "/?lang=vi", header: "en-US", want: LocaleVI},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.header != "" {
				c.Request.Header.Set("Accept-Language", tc.header)
			}
			if got := ResolveLocale(c); got != tc.want {
				t.Fatalf("locale want %s got %s", tc.want, got)
			}
		})
	}
}
