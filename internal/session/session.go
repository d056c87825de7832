package session

import (
	"net/http"
	"strings"

	"github.com/shoestore/internal/config"
	"github.com/shoestore/internal/constants"
	"github.com/shoestore/internal/logger"
	"github.com/shoestore/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

// IdentityContextKey gin 上下文中的顾客身份
const IdentityContextKey = "identity"

const defaultSessionName = "shoestore_session"

// Manager 顾客会话管理
type Manager struct {
	store sessions.Store
	name  string
}

// NewManager 基于 cookie store 创建会话管理器
func NewManager(cfg config.SessionConfig) *Manager {
	store := sessions.NewCookieStore([]byte(cfg.Secret))
	maxAge := cfg.MaxAgeSeconds
	if maxAge <= 0 {
		maxAge = 7 * 24 * 3600
	}
	store.Options = &sessions.Options{
		Path:     "/",
		Domain:   strings.TrimSpace(cfg.Domain),
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	return NewManagerWithStore(store, cfg.Name)
}

// NewManagerWithStore 使用自定义 store（测试用）
func NewManagerWithStore(store sessions.Store, name string) *Manager {
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultSessionName
	}
	return &Manager{store: store, name: name}
}

func (m *Manager) get(c *gin.Context) *sessions.Session {
	sess, err := m.store.Get(c.Request, m.name)
	if err != nil {
		// 签名失效的旧 cookie 直接丢弃，返回新会话
		logger.Debugw("session_decode_failed", "error", err)
	}
	return sess
}

func (m *Manager) save(c *gin.Context, sess *sessions.Session) error {
	if err := sess.Save(c.Request, c.Writer); err != nil {
		logger.Warnw("session_save_failed", "error", err)
		return err
	}
	return nil
}

// Middleware 每个请求解析一次身份并写入上下文
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(IdentityContextKey, m.readIdentity(c))
		c.Next()
	}
}

func (m *Manager) readIdentity(c *gin.Context) service.Identity {
	sess := m.get(c)
	identity := service.Identity{}
	if userID, ok := sess.Values[constants.SessionKeyUserID].(uint); ok {
		identity.UserID = userID
	}
	if email, ok := sess.Values[constants.SessionKeyUserEmail].(string); ok {
		identity.Email = email
	}
	return identity
}

// IdentityFrom 读取中间件写入的身份，缺失时为匿名
func IdentityFrom(c *gin.Context) service.Identity {
	if c == nil {
		return service.Identity{}
	}
	value, ok := c.Get(IdentityContextKey)
	if !ok {
		return service.Identity{}
	}
	identity, _ := value.(service.Identity)
	return identity
}

// SignIn 写入登录身份，并取出登录前记录的跳转地址
func (m *Manager) SignIn(c *gin.Context, userID uint, email string) (string, error) {
	sess := m.get(c)
	sess.Values[constants.SessionKeyUserID] = userID
	sess.Values[constants.SessionKeyUserEmail] = email
	redirect, _ := sess.Values[constants.SessionKeyRedirectAfterLogin].(string)
	delete(sess.Values, constants.SessionKeyRedirectAfterLogin)
	if err := m.save(c, sess); err != nil {
		return "", err
	}
	c.Set(IdentityContextKey, service.Identity{UserID: userID, Email: email})
	return safeRedirect(redirect), nil
}

// SignOut 清除登录身份
func (m *Manager) SignOut(c *gin.Context) error {
	sess := m.get(c)
	delete(sess.Values, constants.SessionKeyUserID)
	delete(sess.Values, constants.SessionKeyUserEmail)
	delete(sess.Values, constants.SessionKeyRedirectAfterLogin)
	c.Set(IdentityContextKey, service.Identity{})
	return m.save(c, sess)
}

// RememberRedirect 记录登录后的跳转地址
func (m *Manager) RememberRedirect(c *gin.Context, target string) error {
	sess := m.get(c)
	sess.Values[constants.SessionKeyRedirectAfterLogin] = target
	return m.save(c, sess)
}

// AddFlash 写入一次性提示
func (m *Manager) AddFlash(c *gin.Context, kind, message string) error {
	sess := m.get(c)
	sess.AddFlash(message, kind)
	return m.save(c, sess)
}

// Flashes 读取并清空一次性提示
func (m *Manager) Flashes(c *gin.Context) map[string][]string {
	sess := m.get(c)
	result := make(map[string][]string)
	for _, kind := range []string{constants.SessionFlashSuccess, constants.SessionFlashError} {
		for _, raw := range sess.Flashes(kind) {
			if msg, ok := raw.(string); ok {
				result[kind] = append(result[kind], msg)
			}
		}
	}
	if len(result) > 0 {
		_ = m.save(c, sess)
	}
	return result
}

// 仅允许站内相对路径
func safeRedirect(target string) string {
	target = strings.TrimSpace(target)
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return constants.PathHome
	}
	return target
}
