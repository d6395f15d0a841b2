package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/yasameenmsa/talentvault/pkg/internal/model"
	"github.com/yasameenmsa/talentvault/pkg/internal/repository"
	"github.com/yasameenmsa/talentvault/pkg/internal/types"
	"github.com/yasameenmsa/talentvault/pkg/metrics"
	"github.com/yasameenmsa/talentvault/pkg/queue"
	"github.com/yasameenmsa/talentvault/pkg/rule"
)

// DropCV 免登录简历投递：写入私有根的 cvs 子目录并落一条裸路径记录.
// 历史漏斗保留原样，不进 FileRecord 体系.
func (s *FileService) DropCV(ctx context.Context, form *types.DropCVForm,
	originalName string, data []byte,
) (*types.DropCVResponse, error) {
	if err := rule.ValidateStruct(form); err != nil {
		return nil, validationErrorf("invalid cv submission: %v", err)
	}

	mime, err := s.checkUploadData(model.FileTypeCV, data)
	if err != nil {
		return nil, err
	}

	cfg := s.fsClient.GetConfig()
	now := time.Now()
	ext := strings.ToLower(filepath.Ext(originalName))
	fileName := fmt.Sprintf("cv_%s_%d%s", sanitizeFileName(form.Name), now.Unix(), ext)
	physical := filepath.Join(cfg.PrivateDir(), model.FileTypeCV.Subdir(), fileName)

	if err := s.fsClient.WriteFile(physical, data); err != nil {
		return nil, fmt.Errorf("write %s: %w", physical, err)
	}

	cv := &model.CV{
		Name:         form.Name,
		Email:        form.Email,
		JobID:        form.JobID,
		Path:         s.fsClient.Resolver().ToURL(physical),
		OriginalName: filepath.Base(originalName),
		Size:         int64(len(data)),
		MimeType:     mime,
	}

	if err := s.cvs.Insert(ctx, cv); err != nil {
		if rmErr := s.fsClient.Remove(physical); rmErr != nil {
			s.publishUnlinkFailed(ctx, queue.UnlinkFailedPayload{
				File:   queue.FileRef{Path: physical, Size: cv.Size},
				Reason: rmErr.Error(),
			})
		}

		return nil, fmt.Errorf("insert cv record: %w", err)
	}

	metrics.FileUploadsTotal.WithLabelValues(string(model.FileTypeCV)).Inc()
	metrics.FileUploadBytes.WithLabelValues(string(model.FileTypeCV)).Add(float64(cv.Size))

	return &types.DropCVResponse{
		ID:           cv.ID,
		OriginalName: cv.OriginalName,
		Size:         cv.Size,
	}, nil
}

// ListCVs 列出简历投递记录，仅管理员.
func (s *FileService) ListCVs(ctx context.Context, p types.Principal, limit, offset int) (*types.ListCVsResponse, error) {
	if p.Anonymous() {
		return nil, ErrUnauthenticated
	}

	if !p.IsAdmin() {
		return nil, ErrForbidden
	}

	if limit == 0 {
		limit = 50
	}

	cvs, total, err := s.cvs.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list cvs: %w", err)
	}

	return &types.ListCVsResponse{CVs: cvs, Total: total}, nil
}

// DownloadCV 下载一份投递的简历，仅管理员.
// 记录里存的是裸路径，可能带任意一种历史前缀.
func (s *FileService) DownloadCV(ctx context.Context, p types.Principal, id uint) (*types.DownloadResult, error) {
	if p.Anonymous() {
		return nil, ErrUnauthenticated
	}

	if !p.IsAdmin() {
		return nil, ErrForbidden
	}

	cv, err := s.cvs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRecordNotFound
		}

		return nil, err
	}

	physical := s.fsClient.Resolver().Resolve(cv.Path)

	res, err := s.readInto(physical, &model.FileRecord{
		OriginalName: cv.OriginalName,
		MimeType:     cv.MimeType,
	}, false)
	if err != nil {
		return nil, err
	}

	metrics.FileDownloadsTotal.WithLabelValues(string(model.FileTypeCV)).Inc()

	return res, nil
}
