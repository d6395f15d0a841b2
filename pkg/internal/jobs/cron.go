// Package jobs 负责注册与实现业务定时任务（基于 scheduler）.
package jobs

import (
	"context"
	"fmt"

	"github.com/yasameenmsa/talentvault/pkg/configs"
	ctxPkg "github.com/yasameenmsa/talentvault/pkg/context"
	"github.com/yasameenmsa/talentvault/pkg/internal/service"
	"github.com/yasameenmsa/talentvault/pkg/internal/storage"
	"github.com/yasameenmsa/talentvault/pkg/internal/types"
	"github.com/yasameenmsa/talentvault/pkg/log"
	"github.com/yasameenmsa/talentvault/pkg/scheduler"
)

// RegisterCronJobs 按配置注册定时清理任务：
// 对 cleanup.directories 里的每个目录，按 cleanup.cron 周期删除
// 修改时间早于 cleanup.older_than_days 天前的文件.
func RegisterCronJobs(sched *scheduler.Scheduler, mgr *storage.Manager) error {
	if sched == nil {
		return fmt.Errorf("scheduler is nil")
	}

	if mgr == nil {
		return fmt.Errorf("storage manager is nil")
	}

	cfg := configs.GetConfig().Cleanup
	if !cfg.Enabled {
		log.Logger().Info().Msg("Scheduled cleanup disabled")
		return nil
	}

	// 将 storage manager 注入到 context，便于 service 使用
	baseCtx := ctxPkg.WithStorageManager(context.Background(), mgr)

	return sched.AddCron(JobStorageAutoClean, cfg.Cron, func(ctx context.Context) {
		runStorageAutoClean(ctx, cfg.Directories, cfg.OlderThanDays)
	}, baseCtx)
}

// runStorageAutoClean 对配置的每个目录执行一轮清理.
func runStorageAutoClean(ctx context.Context, dirs []string, olderThanDays int) {
	l := log.Logger().With().Str("job", JobStorageAutoClean).Logger()

	svc := service.NewFileService(ctx)

	for _, dir := range dirs {
		res, err := svc.ReclaimOlderThan(ctx, &types.CleanupRequest{
			Directory:     dir,
			OlderThanDays: olderThanDays,
		})
		if err != nil {
			l.Error().Err(err).Str("directory", dir).Msg("Scheduled cleanup failed")
			continue
		}

		l.Info().
			Str("directory", dir).
			Int("deleted_files", res.DeletedFiles).
			Int("remaining_files", res.RemainingFiles).
			Str("space_freed", res.SpaceFreedHum).
			Msg("Scheduled cleanup done")
	}
}
