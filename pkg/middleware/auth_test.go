package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yasameenmsa/talentvault/pkg/configs"
	"github.com/yasameenmsa/talentvault/pkg/internal/types"
)

const testSecret = "test-secret"

func signToken(t *testing.T, sub, role, secret string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return raw
}

func newAuthRouter(conf configs.AuthConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)

	e := gin.New()
	e.Use(AuthMiddleware(conf))

	e.GET("/whoami", func(c *gin.Context) {
		p := GetPrincipal(c)
		c.JSON(http.StatusOK, gin.H{"user": p.UserID, "role": p.Role.String(), "anonymous": p.Anonymous()})
	})

	authed := e.Group("/private")
	authed.Use(RequireAuth())
	authed.GET("", func(c *gin.Context) { c.Status(http.StatusOK) })

	adminOnly := e.Group("/admin")
	adminOnly.Use(RequireMinRole(types.RoleAdmin))
	adminOnly.GET("", func(c *gin.Context) { c.Status(http.StatusOK) })

	return e
}

func doRequest(e *gin.Engine, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	return w
}

func TestAuthAnonymousPassesThrough(t *testing.T) {
	e := newAuthRouter(configs.AuthConfig{Enabled: true, JWTSecret: testSecret})

	// 匿名不拦截，身份为零值
	w := doRequest(e, "/whoami", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"anonymous":true`)

	// 受保护路由要求登录
	w = doRequest(e, "/private", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthValidToken(t *testing.T) {
	e := newAuthRouter(configs.AuthConfig{Enabled: true, JWTSecret: testSecret})

	token := signToken(t, "alice", "employer", testSecret)

	w := doRequest(e, "/whoami", map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user":"alice"`)
	assert.Contains(t, w.Body.String(), `"role":"employer"`)

	w = doRequest(e, "/private", map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthInvalidTokenRejected(t *testing.T) {
	e := newAuthRouter(configs.AuthConfig{Enabled: true, JWTSecret: testSecret})

	// 错误密钥签名
	bad := signToken(t, "alice", "jobseeker", "other-secret")

	w := doRequest(e, "/whoami", map[string]string{"Authorization": "Bearer " + bad})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(e, "/whoami", map[string]string{"Authorization": "Bearer not-a-jwt"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRoleEnforcement(t *testing.T) {
	e := newAuthRouter(configs.AuthConfig{Enabled: true, JWTSecret: testSecret})

	seeker := signToken(t, "alice", "jobseeker", testSecret)
	root := signToken(t, "ops", "admin", testSecret)

	w := doRequest(e, "/admin", map[string]string{"Authorization": "Bearer " + seeker})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(e, "/admin", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(e, "/admin", map[string]string{"Authorization": "Bearer " + root})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthTrustedProxyHeaders(t *testing.T) {
	e := newAuthRouter(configs.AuthConfig{Enabled: true, JWTSecret: testSecret, TrustProxyHeaders: true})

	w := doRequest(e, "/whoami", map[string]string{"X-User-Id": "bob", "X-User-Role": "employer"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user":"bob"`)

	// 未开启信任时请求头被忽略
	e2 := newAuthRouter(configs.AuthConfig{Enabled: true, JWTSecret: testSecret})
	w = doRequest(e2, "/whoami", map[string]string{"X-User-Id": "bob"})
	assert.Contains(t, w.Body.String(), `"anonymous":true`)
}

func TestAuthDevQueryFallback(t *testing.T) {
	e := newAuthRouter(configs.AuthConfig{Enabled: true, JWTSecret: testSecret, DevAllowQuery: true})

	w := doRequest(e, "/whoami?user=dev&role=admin", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user":"dev"`)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
}

func TestAuthSkipPaths(t *testing.T) {
	e := newAuthRouter(configs.AuthConfig{
		Enabled:   true,
		JWTSecret: testSecret,
		SkipPaths: []string{"/whoami"},
	})

	// 跳过的路径即使带坏令牌也放行
	w := doRequest(e, "/whoami", map[string]string{"Authorization": "Bearer garbage"})
	assert.Equal(t, http.StatusOK, w.Code)
}
