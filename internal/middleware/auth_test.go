package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/auth"
)

func newAuthRouter(tokens auth.TokenIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/private", AuthMiddleware(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": UserID(c), "admin": IsAdmin(c)})
	})
	r.GET("/admin", AuthMiddleware(tokens), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func doRequest(r http.Handler, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewJWTIssuer("secret", time.Hour)
	r := newAuthRouter(tokens)

	userToken, err := tokens.Issue(auth.Claims{UserID: 7, Role: "user"})
	require.NoError(t, err)

	t.Run("missing header", func(t *testing.T) {
		w := doRequest(r, "/private", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "message")
	})

	t.Run("malformed header", func(t *testing.T) {
		w := doRequest(r, "/private", "Token abc")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		w := doRequest(r, "/private", "Bearer nope")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		w := doRequest(r, "/private", "Bearer "+userToken)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user":7,"admin":false}`, w.Body.String())
	})
}

func TestRequireAdmin(t *testing.T) {
	tokens := auth.NewJWTIssuer("secret", time.Hour)
	r := newAuthRouter(tokens)

	userToken, _ := tokens.Issue(auth.Claims{UserID: 7, Role: "user"})
	adminToken, _ := tokens.Issue(auth.Claims{UserID: 1, Role: "admin"})

	assert.Equal(t, http.StatusForbidden, doRequest(r, "/admin", "Bearer "+userToken).Code)
	assert.Equal(t, http.StatusNoContent, doRequest(r, "/admin", "Bearer "+adminToken).Code)
}
