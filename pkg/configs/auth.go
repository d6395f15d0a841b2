package configs

import "github.com/spf13/viper"

// AuthConfig 控制会话认证（主站签发的 JWT，本服务只做校验）。
type AuthConfig struct {
	Enabled           bool     `mapstructure:"enabled"`             // 开启认证校验
	JWTSecret         string   `mapstructure:"jwt_secret"`          // HS256 签名密钥，与主站共享
	TrustProxyHeaders bool     `mapstructure:"trust_proxy_headers"` // 信任网关注入的 X-User-* 请求头
	SkipPaths         []string `mapstructure:"skip_paths"`          // 跳过认证的路径前缀（如 /metrics、/api/v1/health）
	DevAllowQuery     bool     `mapstructure:"dev_allow_query"`     // 开发模式允许用 ?user= 便于本地调试
}

func (c *AuthConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("auth.enabled", true)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.trust_proxy_headers", false)
	v.SetDefault("auth.dev_allow_query", true)
	v.SetDefault("auth.skip_paths", []string{
		"/metrics",
		"/debug/pprof",
		"/api/v1/health",
		"/storage/uploads",
		"/uploads",
	})
}
