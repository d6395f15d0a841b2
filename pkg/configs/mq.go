package configs

import (
	"github.com/spf13/viper"
)

// MQType 消息队列类型.
type MQType string

const (
	MQTypeChannel MQType = "channel" // 进程内 gochannel

	DefaultMQBufferSize     = 64 // 默认每个订阅者的缓冲消息数
	DefaultMQPersistent     = false
	DefaultMQClientIDSuffix = "app"
)

// MQConfig 内部消息队列配置.
type MQConfig struct {
	Type       MQType `mapstructure:"type"        rule:"oneof=channel"`
	ClientID   string `mapstructure:"client_id"`
	BufferSize int64  `mapstructure:"buffer_size" rule:"min=0,max=1048576"`
	Persistent bool   `mapstructure:"persistent"` // 保留历史消息给新订阅者
}

// GetMQType 返回当前配置的消息队列类型.
func (c *MQConfig) GetMQType() MQType {
	return c.Type
}

// setDefaults 设置MQ配置的默认值.
func (c *MQConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("mq.type", MQTypeChannel)
	v.SetDefault("mq.client_id", AppName+"-"+DefaultMQClientIDSuffix)
	v.SetDefault("mq.buffer_size", DefaultMQBufferSize)
	v.SetDefault("mq.persistent", DefaultMQPersistent)
}
