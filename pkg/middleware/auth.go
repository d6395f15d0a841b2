package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/yasameenmsa/talentvault/pkg/configs"
	"github.com/yasameenmsa/talentvault/pkg/internal/types"
)

type principalKey struct{}

// AuthMiddleware 解析会话身份（主站签发的 JWT）并注入 Principal。
//   - Authorization: Bearer <jwt>（HS256，claims: sub=用户ID, role=角色）
//   - 可选信任网关注入的 X-User-Id / X-User-Role 请求头
//   - 开发模式可允许 query user 兜底（由 configs.auth.dev_allow_query 控制）
//
// 无身份的请求直接放行（公开下载不需要登录），是否要求登录由
// RequireAuth / 服务层的属主检查决定；携带了非法令牌才返回 401。
func AuthMiddleware(conf configs.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !conf.Enabled || isSkippedPath(c.Request.URL.Path, conf.SkipPaths) {
			c.Next()
			return
		}

		if raw := bearerToken(c); raw != "" {
			principal, err := parseSessionToken(raw, conf.JWTSecret)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session token"})
				return
			}

			setPrincipal(c, principal)
			c.Next()

			return
		}

		if conf.TrustProxyHeaders {
			if uid := strings.TrimSpace(c.GetHeader("X-User-Id")); uid != "" {
				setPrincipal(c, types.Principal{
					UserID: uid,
					Role:   types.ParseRole(c.GetHeader("X-User-Role")),
				})
				c.Next()

				return
			}
		}

		if conf.DevAllowQuery {
			if uid := strings.TrimSpace(c.Query("user")); uid != "" {
				setPrincipal(c, types.Principal{
					UserID: uid,
					Role:   types.ParseRole(c.Query("role")),
				})
			}
		}

		c.Next()
	}
}

// bearerToken 提取 Authorization 头中的 Bearer 令牌.
func bearerToken(c *gin.Context) string {
	h := strings.TrimSpace(c.GetHeader("Authorization"))
	if h == "" {
		return ""
	}

	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

// sessionClaims 主站签发的会话令牌声明.
type sessionClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// parseSessionToken 校验 HS256 签名并提取身份.
func parseSessionToken(raw, secret string) (types.Principal, error) {
	token, err := jwt.ParseWithClaims(raw, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return []byte(secret), nil
	})
	if err != nil {
		return types.Principal{}, fmt.Errorf("parse session token: %w", err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || claims.Subject == "" {
		return types.Principal{}, fmt.Errorf("session token missing subject")
	}

	return types.Principal{
		UserID: claims.Subject,
		Role:   types.ParseRole(claims.Role),
	}, nil
}

// setPrincipal 把身份写入 gin.Context 与 request.Context.
func setPrincipal(c *gin.Context, p types.Principal) {
	c.Set("principal", p)

	ctx := context.WithValue(c.Request.Context(), principalKey{}, p)
	c.Request = c.Request.WithContext(ctx)
}

// GetPrincipal 获取当前请求身份，匿名时返回零值.
func GetPrincipal(c *gin.Context) types.Principal {
	if v, ok := c.Get("principal"); ok {
		if p, ok2 := v.(types.Principal); ok2 {
			return p
		}
	}
	// 回退到 request context
	if v := c.Request.Context().Value(principalKey{}); v != nil {
		if p, ok := v.(types.Principal); ok {
			return p
		}
	}

	return types.Principal{}
}

// RequireAuth 要求已认证身份，匿名返回 401。
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetPrincipal(c).Anonymous() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		c.Next()
	}
}

// RequireMinRole 要求最小角色，不满足则返回 403。
func RequireMinRole(minRole types.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := GetPrincipal(c)
		if p.Anonymous() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		if p.Role < minRole { // 使用枚举的自然顺序进行最小角色判断
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: insufficient role"})
			return
		}

		c.Next()
	}
}

func isSkippedPath(path string, skips []string) bool {
	if path == "" || len(skips) == 0 {
		return false
	}

	for _, p := range skips {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		if strings.HasPrefix(path, p) {
			return true
		}
	}

	return false
}
