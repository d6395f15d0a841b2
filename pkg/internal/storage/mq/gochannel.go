package mq

import (
	"context"

	watermill "github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/yasameenmsa/talentvault/pkg/configs"
)

// newGoChannel 创建进程内 gochannel 发布/订阅.
// 单进程部署下事件不出进程，发布方与订阅方共享同一个实例.
func newGoChannel(_ context.Context, cfg *configs.MQConfig, logger watermill.LoggerAdapter) (message.Publisher, message.Subscriber, error) {
	pubsub := gochannel.NewGoChannel(
		gochannel.Config{
			OutputChannelBuffer:            cfg.BufferSize,
			Persistent:                     cfg.Persistent,
			BlockPublishUntilSubscriberAck: false,
		},
		logger,
	)

	return pubsub, pubsub, nil
}

func init() {
	RegisterFactory(configs.MQTypeChannel, newGoChannel)
}
