package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/yasameenmsa/talentvault/pkg/cache"
	"github.com/yasameenmsa/talentvault/pkg/internal/model"
	"github.com/yasameenmsa/talentvault/pkg/internal/repository"
	"github.com/yasameenmsa/talentvault/pkg/internal/types"
	"github.com/yasameenmsa/talentvault/pkg/metrics"
)

// authorizeRead 判定请求方能否读取一条文件记录.
// 公开文件放行所有人；私有文件要求归属用户、上传者或管理员.
func authorizeRead(p types.Principal, rec *model.FileRecord) error {
	if rec.IsPublic {
		return nil
	}

	if p.Anonymous() {
		return ErrUnauthenticated
	}

	if p.IsAdmin() || rec.UserID == p.UserID || rec.UploadedBy == p.UserID {
		return nil
	}

	return ErrForbidden
}

// findRecord 读元数据记录，带KV缓存.
func (s *FileService) findRecord(ctx context.Context, id string) (*model.FileRecord, error) {
	if s.cache == nil {
		return s.files.FindByID(ctx, id)
	}

	rec, err := cache.GetOrSet(ctx, s.cache, s.recordCacheKey(id), func() (model.FileRecord, error) {
		r, err := s.files.FindByID(ctx, id)
		if err != nil {
			return model.FileRecord{}, err
		}

		return *r, nil
	}, DefaultRecordCacheTTL)
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

// readInto 全量读取物理文件并组装下载结果.
func (s *FileService) readInto(physical string, rec *model.FileRecord, view bool) (*types.DownloadResult, error) {
	exists, err := s.fsClient.Exists(physical)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", physical, err)
	}

	if !exists {
		return nil, ErrFileMissing
	}

	data, err := s.fsClient.ReadFile(physical)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", physical, err)
	}

	mime := rec.MimeType
	if mime == "" {
		mime = mimetype.Detect(data).String()
	}

	fileName := rec.OriginalName
	if fileName == "" {
		fileName = rec.FileName
	}

	if fileName == "" {
		fileName = filepath.Base(physical)
	}

	return &types.DownloadResult{
		Data:        data,
		FileName:    fileName,
		MimeType:    mime,
		Size:        int64(len(data)),
		Inline:      view || strings.HasPrefix(mime, "image/"),
		CachePublic: rec.IsPublic,
	}, nil
}

// DownloadByID 按记录ID下载；记录缺失与物理文件缺失是两类不同的404.
func (s *FileService) DownloadByID(ctx context.Context, p types.Principal,
	id string, view bool,
) (*types.DownloadResult, error) {
	rec, err := s.findRecord(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRecordNotFound
		}

		return nil, err
	}

	if err := authorizeRead(p, rec); err != nil {
		return nil, err
	}

	physical := s.fsClient.Resolver().Resolve(rec.FilePath)

	res, err := s.readInto(physical, rec, view)
	if err != nil {
		return nil, err
	}

	metrics.FileDownloadsTotal.WithLabelValues(string(rec.FileType)).Inc()

	return res, nil
}

// DownloadByPath 按原始路径引用下载，兼容三套历史路径约定.
// 有记录时按记录授权；无记录的裸文件只允许公开/遗留前缀匿名访问，
// 私有根下的无记录文件仅管理员可读.
func (s *FileService) DownloadByPath(ctx context.Context, p types.Principal,
	rawPath string, view bool,
) (*types.DownloadResult, error) {
	resolver := s.fsClient.Resolver()
	physical := resolver.Resolve(rawPath)

	rec, err := s.files.FindByPath(ctx, rawPath)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if rec == nil {
		rec, err = s.files.FindByPath(ctx, physical)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}

	if rec != nil {
		if err := authorizeRead(p, rec); err != nil {
			return nil, err
		}
	} else {
		rec = &model.FileRecord{IsPublic: resolver.IsCleanupDir(rawPath)}
		if !rec.IsPublic {
			if p.Anonymous() {
				return nil, ErrUnauthenticated
			}

			if !p.IsAdmin() {
				return nil, ErrForbidden
			}
		}
	}

	res, err := s.readInto(physical, rec, view)
	if err != nil {
		return nil, err
	}

	metrics.FileDownloadsTotal.WithLabelValues(string(rec.FileType)).Inc()

	return res, nil
}
