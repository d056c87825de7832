package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shoestore/internal/config"
	"github.com/shoestore/internal/constants"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(m *Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/remember", func(c *gin.Context) {
		_ = m.RememberRedirect(c, "/order/checkout?type=CART")
		c.Status(http.StatusNoContent)
	})
	r.GET("/signin", func(c *gin.Context) {
		target, err := m.SignIn(c, 42, "buyer@example.com")
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, target)
	})
	r.GET("/whoami", func(c *gin.Context) {
		identity := IdentityFrom(c)
		c.JSON(http.StatusOK, gin.H{"user_id": identity.UserID, "email": identity.Email})
	})
	r.GET("/flash", func(c *gin.Context) {
		_ = m.AddFlash(c, constants.SessionFlashError, "boom")
		c.Status(http.StatusNoContent)
	})
	r.GET("/flashes", func(c *gin.Context) {
		c.JSON(http.StatusOK, m.Flashes(c))
	})
	r.GET("/signout", func(c *gin.Context) {
		_ = m.SignOut(c)
		c.Status(http.StatusNoContent)
	})
	return r
}

func doRequest(t *testing.T, r *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func lastCookies(w *httptest.ResponseRecorder) []*http.Cookie {
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		return nil
	}
	return cookies[len(cookies)-1:]
}

func TestSignInConsumesRedirect(t *testing.T) {
	m := NewManager(config.SessionConfig{Name: "test_session", Secret: "0123456789abcdef0123456789abcdef"})
	r := newTestEngine(m)

	w := doRequest(t, r, "/remember", nil)
	cookies := lastCookies(w)
	require.NotEmpty(t, cookies)

	w = doRequest(t, r, "/signin", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/order/checkout?type=CART", w.Body.String())
	cookies = lastCookies(w)

	w = doRequest(t, r, "/whoami", cookies)
	assert.JSONEq(t, `{"user_id":42,"email":"buyer@example.com"}`, w.Body.String())

	// 第二次登录时跳转地址已被消费
	w = doRequest(t, r, "/signin", cookies)
	assert.Equal(t, constants.PathHome, w.Body.String())

	w = doRequest(t, r, "/signout", lastCookies(w))
	w = doRequest(t, r, "/whoami", lastCookies(w))
	assert.JSONEq(t, `{"user_id":0,"email":""}`, w.Body.String())
}

func TestFlashesAreReadOnce(t *testing.T) {
	m := NewManager(config.SessionConfig{Secret: "0123456789abcdef0123456789abcdef"})
	r := newTestEngine(m)

	w := doRequest(t, r, "/flash", nil)
	cookies := lastCookies(w)

	w = doRequest(t, r, "/flashes", cookies)
	assert.JSONEq(t, `{"flash_error":["boom"]}`, w.Body.String())

	w = doRequest(t, r, "/flashes", lastCookies(w))
	assert.JSONEq(t, `{}`, w.Body.String())
}

func TestAnonymousIdentity(t *testing.T) {
	m := NewManager(config.SessionConfig{Secret: "0123456789abcdef0123456789abcdef"})
	r := newTestEngine(m)

	w := doRequest(t, r, "/whoami", []*http.Cookie{{Name: defaultSessionName, Value: "garbage"}})
	assert.JSONEq(t, `{"user_id":0,"email":""}`, w.Body.String())
}

func TestSafeRedirect(t *testing.T) {
	cases := map[string]string{
		"":                         constants.PathHome,
		"/cart":                    "/cart",
		"//evil.example.com":       constants.PathHome,
		"https://evil.example.com": constants.PathHome,
	}
	for input, want := range cases {
		if got := safeRedirect(input); got != want {
			t.Fatalf("safeRedirect(%q) want %q got %q", input, want, got)
		}
	}
}
