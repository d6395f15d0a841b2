package configs

import "github.com/spf13/viper"

const (
	// 默认定时清理配置.
	DefaultCleanupEnabled       = false
	DefaultCleanupCron          = "0 3 * * *" // 每天凌晨3点
	DefaultCleanupOlderThanDays = 30
)

// CleanupConfig 定时清理配置：按固定周期回收指定目录中超龄的文件.
type CleanupConfig struct {
	Enabled       bool     `mapstructure:"enabled"`
	Cron          string   `mapstructure:"cron"`            // 标准5段cron表达式
	Directories   []string `mapstructure:"directories"`     // 待清理目录（公开或遗留URL前缀形式）
	OlderThanDays int      `mapstructure:"older_than_days"` // 超过该天数的文件被删除
}

func (c *CleanupConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("cleanup.enabled", DefaultCleanupEnabled)
	v.SetDefault("cleanup.cron", DefaultCleanupCron)
	v.SetDefault("cleanup.directories", []string{"/uploads/temp"})
	v.SetDefault("cleanup.older_than_days", DefaultCleanupOlderThanDays)
}
