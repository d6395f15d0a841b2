package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	ctxPkg "github.com/yasameenmsa/talentvault/pkg/context"
	"github.com/yasameenmsa/talentvault/pkg/internal/types"
	tlog "github.com/yasameenmsa/talentvault/pkg/log"
	"github.com/yasameenmsa/talentvault/pkg/metrics"
	"github.com/yasameenmsa/talentvault/pkg/queue"
)

// ReclaimOlderThan 删除目录下修改时间早于 N 天前的文件，并连带回收元数据.
// 只接受公开或遗留URL前缀的目录引用；目录不存在视为无事可做，返回零值结果.
// 恰好等于阈值的文件保留，只删严格更旧的.
func (s *FileService) ReclaimOlderThan(ctx context.Context, req *types.CleanupRequest) (*types.CleanupResult, error) {
	if req.OlderThanDays <= 0 {
		return nil, validationErrorf("older_than_days must be positive, got %d", req.OlderThanDays)
	}

	resolver := s.fsClient.Resolver()
	if !resolver.IsCleanupDir(req.Directory) {
		return nil, validationErrorf("directory %q is not a cleanable path", req.Directory)
	}

	result := &types.CleanupResult{
		Directory:     req.Directory,
		OlderThanDays: req.OlderThanDays,
	}

	physical := resolver.Resolve(req.Directory)

	exists, err := s.fsClient.Exists(physical)
	if err != nil {
		return nil, fmt.Errorf("stat cleanup dir %s: %w", physical, err)
	}

	if !exists {
		result.SpaceFreedHum = humanize.Bytes(0)
		return result, nil
	}

	logger := ctxPkg.WithTraceContext(ctx, *tlog.Logger())
	cutoff := time.Now().AddDate(0, 0, -req.OlderThanDays)

	var deletedPaths []string

	walkErr := s.fsClient.Walk(physical, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// 单个条目不可读只记日志，继续扫其余文件
			logger.Warn().Err(err).Str("path", path).Msg("Skipping unreadable entry during cleanup")
			return nil
		}

		if info.IsDir() {
			return nil
		}

		if !info.ModTime().Before(cutoff) {
			result.RemainingFiles++
			return nil
		}

		size := info.Size()

		if rmErr := s.fsClient.Remove(path); rmErr != nil {
			logger.Warn().Err(rmErr).Str("path", path).Msg("Failed to remove expired file")

			result.RemainingFiles++

			return nil
		}

		result.DeletedFiles++
		result.SpaceFreed += size

		// 记录物理路径和逻辑URL两种写法，元数据可能存的是任意一种
		deletedPaths = append(deletedPaths, path, resolver.ToURL(path))

		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walk cleanup dir %s: %w", physical, walkErr)
	}

	if s.files != nil {
		n, err := s.files.DeleteByPaths(ctx, deletedPaths)
		if err != nil {
			logger.Error().Err(err).Str("directory", req.Directory).
				Msg("Failed to reclaim file records after cleanup")
		} else {
			result.RecordsDeleted = n
		}
	}

	result.SpaceFreedHum = humanize.Bytes(uint64(result.SpaceFreed))

	metrics.CleanupDeletedFilesTotal.Add(float64(result.DeletedFiles))
	metrics.CleanupBytesFreedTotal.Add(float64(result.SpaceFreed))

	logger.Info().
		Str("directory", req.Directory).
		Int("older_than_days", req.OlderThanDays).
		Int("deleted_files", result.DeletedFiles).
		Int("remaining_files", result.RemainingFiles).
		Str("space_freed", result.SpaceFreedHum).
		Int64("records_deleted", result.RecordsDeleted).
		Msg("Cleanup completed")

	s.publishCleanupCompleted(ctx, queue.CleanupCompletedPayload{
		Directory:      result.Directory,
		OlderThanDays:  result.OlderThanDays,
		DeletedFiles:   result.DeletedFiles,
		RemainingFiles: result.RemainingFiles,
		SpaceFreed:     result.SpaceFreed,
		RecordsDeleted: result.RecordsDeleted,
	})

	return result, nil
}
