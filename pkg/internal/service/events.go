package service

import (
	"context"

	"github.com/yasameenmsa/talentvault/pkg/configs"
	ctxPkg "github.com/yasameenmsa/talentvault/pkg/context"
	tlog "github.com/yasameenmsa/talentvault/pkg/log"
	"github.com/yasameenmsa/talentvault/pkg/queue"
)

// 事件发布失败只记日志，不影响主流程.

func (s *FileService) publishFileStored(ctx context.Context, payload queue.FileStoredPayload) {
	cfg := configs.GetConfig()
	if s.mqClient == nil || !cfg.Events.Enabled || !cfg.Events.File.Stored {
		return
	}

	if err := queue.PublishFileStored(s.mqClient.Publisher(), payload); err != nil {
		logger := ctxPkg.WithTraceContext(ctx, *tlog.Logger())
		logger.Warn().Err(err).Str("file_id", payload.File.ID).Msg("Failed to publish file stored event")
	}
}

func (s *FileService) publishFileDeleted(ctx context.Context, payload queue.FileDeletedPayload) {
	cfg := configs.GetConfig()
	if s.mqClient == nil || !cfg.Events.Enabled || !cfg.Events.File.Deleted {
		return
	}

	if err := queue.PublishFileDeleted(s.mqClient.Publisher(), payload); err != nil {
		logger := ctxPkg.WithTraceContext(ctx, *tlog.Logger())
		logger.Warn().Err(err).Str("file_id", payload.File.ID).Msg("Failed to publish file deleted event")
	}
}

func (s *FileService) publishUnlinkFailed(ctx context.Context, payload queue.UnlinkFailedPayload) {
	cfg := configs.GetConfig()
	if s.mqClient == nil || !cfg.Events.Enabled || !cfg.Events.File.UnlinkFailed {
		return
	}

	if err := queue.PublishUnlinkFailed(s.mqClient.Publisher(), payload); err != nil {
		logger := ctxPkg.WithTraceContext(ctx, *tlog.Logger())
		logger.Warn().Err(err).Str("file_id", payload.File.ID).Msg("Failed to publish unlink failed event")
	}
}

func (s *FileService) publishCleanupCompleted(ctx context.Context, payload queue.CleanupCompletedPayload) {
	cfg := configs.GetConfig()
	if s.mqClient == nil || !cfg.Events.Enabled {
		return
	}

	if err := queue.PublishCleanupCompleted(s.mqClient.Publisher(), payload); err != nil {
		logger := ctxPkg.WithTraceContext(ctx, *tlog.Logger())
		logger.Warn().Err(err).Str("directory", payload.Directory).Msg("Failed to publish cleanup completed event")
	}
}
