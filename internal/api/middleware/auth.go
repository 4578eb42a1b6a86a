package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/leon37/promptboard/internal/api/response"
)

// UserIDKey 认证通过后 userID 在 gin.Context 里的 key
const UserIDKey = "userID"

// TokenAuthorizer 校验 token 并返回 userID
type TokenAuthorizer interface {
	Authorize(token string) (uint, error)
}

// Authorize 校验 Bearer token，失败直接 401，不会进入后面的 handler
func Authorize(authorizer TokenAuthorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, response.MsgMissingToken)
			return
		}

		// 格式必须是 "Bearer <token>"
		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			response.Error(c, http.StatusUnauthorized, response.MsgInvalidToken)
			return
		}

		userID, err := authorizer.Authorize(strings.TrimSpace(token))
		if err != nil {
			slog.DebugContext(c.Request.Context(), "token rejected", "err", err)
			response.Error(c, http.StatusUnauthorized, response.MsgInvalidToken)
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// UserID 取出认证过的 userID
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
