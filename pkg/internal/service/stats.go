package service

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/yasameenmsa/talentvault/pkg/internal/types"
)

// StorageStats 统计三个存储根目录的文件数与占用空间，仅管理员.
func (s *FileService) StorageStats(ctx context.Context, p types.Principal) (*types.StorageStatsResponse, error) {
	if p.Anonymous() {
		return nil, ErrUnauthenticated
	}

	if !p.IsAdmin() {
		return nil, ErrForbidden
	}

	cfg := s.fsClient.GetConfig()
	roots := []string{cfg.PublicDir(), cfg.PrivateDir(), cfg.LegacyDir()}
	resp := &types.StorageStatsResponse{}

	for _, root := range roots {
		stats := types.DirStats{Root: root}

		exists, err := s.fsClient.Exists(root)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", root, err)
		}

		if exists {
			walkErr := s.fsClient.Walk(root, func(path string, info os.FileInfo, err error) error {
				if err != nil || info.IsDir() {
					return nil
				}

				stats.Files++
				stats.Bytes += info.Size()

				return nil
			})
			if walkErr != nil {
				return nil, fmt.Errorf("walk %s: %w", root, walkErr)
			}
		}

		stats.BytesHum = humanize.Bytes(uint64(stats.Bytes))
		resp.TotalFiles += stats.Files
		resp.TotalBytes += stats.Bytes
		resp.Dirs = append(resp.Dirs, stats)
	}

	resp.TotalHum = humanize.Bytes(uint64(resp.TotalBytes))

	if s.files != nil {
		n, err := s.files.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count file records: %w", err)
		}

		resp.Records = n
	}

	return resp, nil
}
