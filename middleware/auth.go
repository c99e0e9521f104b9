package middleware

import (
	"context"
	"net/http"
	"strings"

	appctx "coopmini/pkg/context"
	"coopmini/pkg/jwt"
	"coopmini/pkg/response"

	"github.com/gin-gonic/gin"
)

// TokenStore 吊销名单查询口，登出后的令牌在这里命中
type TokenStore interface {
	IsRevoked(ctx context.Context, jti string) bool
}

// Auth 解析 Bearer 令牌并把身份写入请求上下文
func Auth(secret []byte, tokens TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		claims, err := jwt.ParseToken(secret, parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		if tokens != nil && tokens.IsRevoked(c.Request.Context(), claims.ID) {
			response.Abort(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		c.Set(appctx.CtxUserID, claims.UserID)
		c.Set(appctx.CtxIsAdmin, claims.IsAdmin)
		c.Set(appctx.CtxTokenID, claims.ID)
		if claims.ExpiresAt != nil {
			c.Set(appctx.CtxTokenExp, claims.ExpiresAt.Time)
		}

		c.Next()
	}
}

// AdminOnly 在 Auth 之后使用，要求令牌携带管理员标记
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !appctx.IsAdmin(c) {
			response.Abort(c, http.StatusForbidden, "Forbidden: Admin only")
			return
		}
		c.Next()
	}
}
