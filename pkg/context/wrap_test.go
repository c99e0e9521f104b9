package context

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"coopmini/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func serve(h func(*gin.Context) error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", Wrap(h))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWrap_BizErrorStatus(t *testing.T) {
	w := serve(func(c *gin.Context) error {
		return response.NotFound("Order not found")
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Order not found")
}

func TestWrap_UnknownErrorIsGeneric500(t *testing.T) {
	w := serve(func(c *gin.Context) error {
		return errors.New("dial tcp 127.0.0.1:3306: connection refused")
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "server error")
	assert.NotContains(t, w.Body.String(), "127.0.0.1", "internal detail must not leak")
}

func TestWrap_NoErrorPassesThrough(t *testing.T) {
	w := serve(func(c *gin.Context) error {
		response.Success(c, gin.H{"ok": true})
		return nil
	})
	assert.Equal(t, http.StatusOK, w.Code)
}
