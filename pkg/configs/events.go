package configs

import "github.com/spf13/viper"

// EventsConfig 控制事件发布的开关（全局与分主题）。
type EventsConfig struct {
	Enabled bool             `mapstructure:"enabled"` // 总开关
	File    FileEventsConfig `mapstructure:"file"`
}

// FileEventsConfig 针对文件领域的事件开关。
type FileEventsConfig struct {
	Stored       bool `mapstructure:"stored"`
	Deleted      bool `mapstructure:"deleted"`
	UnlinkFailed bool `mapstructure:"unlink_failed"`
}

func (c *EventsConfig) setDefaults(v *viper.Viper) {
	// 总开关：默认启用事件系统
	v.SetDefault("events.enabled", true)

	// 文件领域的事件：默认仅开启最小必要集，避免噪声过大
	v.SetDefault("events.file.stored", true)
	v.SetDefault("events.file.deleted", true)

	// 对账事件：删除元数据成功但物理删除失败时发出，供后台核对
	v.SetDefault("events.file.unlink_failed", true)
}
