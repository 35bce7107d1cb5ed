package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"scoup/configs"
	"scoup/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(cfg *configs.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": utils.CurrentUserID(c)})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &configs.Config{JWTSecret: "secret", TrustUserHeader: true}
	r := newAuthRouter(cfg)

	tok, err := utils.GenerateToken(5, "secret", time.Hour)
	require.NoError(t, err)

	cases := []struct {
		name   string
		target string
		header map[string]string
		status int
		body   string
	}{
		{"bearer", "/me", map[string]string{"Authorization": "Bearer " + tok}, http.StatusOK, `{"userId":5}`},
		{"query token", "/me?token=" + tok, nil, http.StatusOK, `{"userId":5}`},
		{"trusted header", "/me", map[string]string{"userId": "9"}, http.StatusOK, `{"userId":9}`},
		{"bad token", "/me", map[string]string{"Authorization": "Bearer nope"}, http.StatusUnauthorized, ""},
		{"bad header", "/me", map[string]string{"userId": "abc"}, http.StatusUnauthorized, ""},
		{"missing", "/me", nil, http.StatusUnauthorized, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			for k, v := range tc.header {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			if tc.body != "" {
				assert.JSONEq(t, tc.body, w.Body.String())
			}
		})
	}
}

func TestAuthMiddleware_UserHeaderNeedsTrust(t *testing.T) {
	r := newAuthRouter(&configs.Config{JWTSecret: "secret"})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("userId", "9")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
