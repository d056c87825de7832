package public

import (
	"strconv"
	"strings"

	handlershared "github.com/shoestore/internal/http/handlers/shared"
	"github.com/shoestore/internal/http/response"
	"github.com/shoestore/internal/i18n"
	"github.com/shoestore/internal/service"
	"github.com/shoestore/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func requestLog(c *gin.Context) *zap.SugaredLogger {
	return handlershared.RequestLog(c)
}

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func respondErrorWithMsg(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondErrorWithMsg(c, code, msg, err)
}

// currentIdentity 会话中间件解析出的顾客身份
func currentIdentity(c *gin.Context) service.Identity {
	return session.IdentityFrom(c)
}

// requireIdentity JSON 接口要求登录，未登录时直接响应 401
func requireIdentity(c *gin.Context) (service.Identity, bool) {
	identity := currentIdentity(c)
	if !identity.Authenticated() {
		respondError(c, response.CodeUnauthorized, "error.login_required", nil)
		return identity, false
	}
	return identity, true
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func parseUintValue(raw string) uint {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}

// parseUintList 解析 "1,2,3" 或重复参数形式的 id 列表，非法值忽略
func parseUintList(values []string) []uint {
	var ids []uint
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if id := parseUintValue(part); id > 0 {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

func i18nMessage(c *gin.Context, key string) string {
	return i18n.T(i18n.ResolveLocale(c), key)
}
