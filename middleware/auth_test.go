package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	appctx "coopmini/pkg/context"
	"coopmini/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

type fakeTokenStore struct {
	revoked map[string]bool
}

func (f *fakeTokenStore) IsRevoked(_ context.Context, jti string) bool {
	return f.revoked[jti]
}

func newAuthEngine(tokens TokenStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", Auth(testSecret, tokens), func(c *gin.Context) {
		uid, _ := appctx.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": uid, "is_admin": appctx.IsAdmin(c)})
	})
	r.GET("/admin", Auth(testSecret, tokens), AdminOnly(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_MissingHeader(t *testing.T) {
	r := newAuthEngine(nil)
	w := doRequest(r, "", "/me")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_BadScheme(t *testing.T) {
	r := newAuthEngine(nil)
	w := doRequest(r, "Basic abc", "/me")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	r := newAuthEngine(nil)
	w := doRequest(r, "Bearer not.a.token", "/me")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ValidToken(t *testing.T) {
	token, err := jwt.GenerateToken(testSecret, 7, false, time.Hour)
	require.NoError(t, err)

	r := newAuthEngine(nil)
	w := doRequest(r, "Bearer "+token, "/me")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
}

func TestAuth_RevokedToken(t *testing.T) {
	token, err := jwt.GenerateToken(testSecret, 7, false, time.Hour)
	require.NoError(t, err)
	claims, err := jwt.ParseToken(testSecret, token)
	require.NoError(t, err)

	store := &fakeTokenStore{revoked: map[string]bool{claims.ID: true}}
	r := newAuthEngine(store)
	w := doRequest(r, "Bearer "+token, "/me")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminOnly_NonAdmin(t *testing.T) {
	token, err := jwt.GenerateToken(testSecret, 7, false, time.Hour)
	require.NoError(t, err)

	r := newAuthEngine(nil)
	w := doRequest(r, "Bearer "+token, "/admin")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminOnly_Admin(t *testing.T) {
	token, err := jwt.GenerateToken(testSecret, 7, true, time.Hour)
	require.NoError(t, err)

	r := newAuthEngine(nil)
	w := doRequest(r, "Bearer "+token, "/admin")
	assert.Equal(t, http.StatusOK, w.Code)
}
