package context

import (
	"errors"
	"net/http"
	"time"

	"coopmini/pkg/log"
	"coopmini/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxUserID   = "user_id"
	CtxIsAdmin  = "is_admin"
	CtxTokenID  = "token_id"
	CtxTokenExp = "token_exp"
)

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				response.Fail(c, be.Code, be.Msg)
				return
			}
			log.L.Error("handler error",
				zap.String("path", c.FullPath()),
				zap.Error(err),
			)
			response.Fail(c, http.StatusInternalServerError, "server error")
		}
	}
}

func GetUserID(c *gin.Context) (int, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("user_id not found in context")
	}

	uid, ok := v.(int)
	if !ok {
		return 0, errors.New("user_id has wrong type")
	}

	return uid, nil
}

func IsAdmin(c *gin.Context) bool {
	v, ok := c.Get(CtxIsAdmin)
	if !ok {
		return false
	}
	admin, _ := v.(bool)
	return admin
}

func GetTokenID(c *gin.Context) string {
	v, ok := c.Get(CtxTokenID)
	if !ok {
		return ""
	}
	jti, _ := v.(string)
	return jti
}

func GetTokenExp(c *gin.Context) time.Time {
	v, ok := c.Get(CtxTokenExp)
	if !ok {
		return time.Time{}
	}
	exp, _ := v.(time.Time)
	return exp
}
