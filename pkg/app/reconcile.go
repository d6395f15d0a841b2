package app

import (
	"context"

	"github.com/yasameenmsa/talentvault/pkg/internal/storage"
	"github.com/yasameenmsa/talentvault/pkg/log"
	"github.com/yasameenmsa/talentvault/pkg/queue"
)

// startUnlinkReconciler 订阅 unlink_failed 事件，对删除失败的物理文件补删一次.
// 再次失败只记日志，文件留给下一轮定时清理.
func startUnlinkReconciler(ctx context.Context, manager *storage.Manager) {
	mqc := manager.GetMQClient()
	fsc := manager.GetFSClient()

	if mqc == nil || fsc == nil {
		return
	}

	ch, err := mqc.Subscribe(ctx, queue.TopicFileUnlinkFailed)
	if err != nil {
		log.Logger().Warn().Err(err).Msg("Failed to subscribe unlink_failed topic")
		return
	}

	go func() {
		l := log.Logger().With().Str("consumer", "unlink_reconciler").Logger()

		for msg := range ch {
			env, err := queue.ParseUnlinkFailed(msg)
			if err != nil {
				l.Warn().Err(err).Str("msg_id", msg.UUID).Msg("Malformed unlink_failed event")
				msg.Ack()

				continue
			}

			path := env.Payload.File.Path

			exists, statErr := fsc.Exists(path)
			if statErr == nil && !exists {
				// 别处已经删掉了
				msg.Ack()
				continue
			}

			if rmErr := fsc.Remove(path); rmErr != nil {
				l.Warn().Err(rmErr).Str("path", path).Msg("Retry unlink failed, leaving for scheduled cleanup")
			} else {
				l.Info().Str("path", path).Msg("Reclaimed orphan file")
			}

			msg.Ack()
		}
	}()
}
