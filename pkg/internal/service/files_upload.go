package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/yasameenmsa/talentvault/pkg/internal/model"
	"github.com/yasameenmsa/talentvault/pkg/internal/types"
	"github.com/yasameenmsa/talentvault/pkg/metrics"
	"github.com/yasameenmsa/talentvault/pkg/queue"
	"github.com/yasameenmsa/talentvault/pkg/rule"
)

// 允许的内容类型按嗅探结果判定，客户端声明的 Content-Type 不可信.
var (
	documentMimes = map[string]struct{}{
		"application/pdf":    {},
		"application/msword": {},
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	}
	imageMimes = map[string]struct{}{
		"image/jpeg": {},
		"image/png":  {},
		"image/gif":  {},
		"image/webp": {},
	}
)

// allowedMimes 返回文件类别对应的内容类型白名单.
func allowedMimes(ft model.FileType) map[string]struct{} {
	switch ft {
	case model.FileTypeCV, model.FileTypeDocument, model.FileTypeCertificate:
		return documentMimes
	case model.FileTypeJobImage, model.FileTypeCompanyLogo, model.FileTypeProfileImage:
		return imageMimes
	default:
		return nil
	}
}

// checkUploadData 校验大小与嗅探内容类型，返回实际 MIME.
func (s *FileService) checkUploadData(ft model.FileType, data []byte) (string, error) {
	if len(data) == 0 {
		return "", validationErrorf("empty file")
	}

	maxSize := s.fsClient.GetConfig().MaxUploadSize
	if int64(len(data)) > maxSize {
		return "", validationErrorf("file exceeds maximum size of %d bytes", maxSize)
	}

	mtype := mimetype.Detect(data)

	allowed := allowedMimes(ft)
	if allowed == nil {
		return "", validationErrorf("unknown file type %q", ft)
	}

	// mimetype 可能返回带参数的类型，如 text/xml; charset=utf-8
	base := mtype.String()
	if i := strings.IndexByte(base, ';'); i >= 0 {
		base = strings.TrimSpace(base[:i])
	}

	if _, ok := allowed[base]; !ok {
		return "", validationErrorf("content type %s not allowed for %s", base, ft)
	}

	return base, nil
}

// storedFileName 生成落盘文件名：<unix时间戳>_<清洗后的原始名><扩展名>.
func storedFileName(originalName string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	base := strings.TrimSuffix(filepath.Base(originalName), filepath.Ext(originalName))

	return fmt.Sprintf("%d_%s%s", now.Unix(), sanitizeFileName(base), ext)
}

// UploadFile 接收一份完整读入内存的上传内容，写盘并登记元数据.
// 写盘成功但入库失败时删除已写文件做补偿，避免产生孤儿文件.
func (s *FileService) UploadFile(ctx context.Context, p types.Principal,
	form *types.UploadFileForm, originalName string, data []byte,
) (*types.UploadFileResponse, error) {
	if p.Anonymous() {
		return nil, ErrUnauthenticated
	}

	if err := rule.ValidateStruct(form); err != nil {
		return nil, validationErrorf("invalid upload request: %v", err)
	}

	ft := model.FileType(form.FileType)

	mime, err := s.checkUploadData(ft, data)
	if err != nil {
		return nil, err
	}

	cfg := s.fsClient.GetConfig()
	now := time.Now()
	fileName := storedFileName(originalName, now)

	dir := cfg.PrivateDir()
	if ft.Public() {
		dir = cfg.PublicDir()
	}

	physical := filepath.Join(dir, ft.Subdir(), fileName)

	if err := s.fsClient.WriteFile(physical, data); err != nil {
		return nil, fmt.Errorf("write %s: %w", physical, err)
	}

	userID := form.UserID
	if userID == "" {
		userID = p.UserID
	}

	rec := &model.FileRecord{
		ID:           newFileID(),
		FileName:     fileName,
		OriginalName: filepath.Base(originalName),
		URL:          s.fsClient.Resolver().ToURL(physical),
		FilePath:     physical,
		Size:         int64(len(data)),
		MimeType:     mime,
		FileType:     ft,
		UploadedBy:   p.UserID,
		UserID:       userID,
		JobID:        form.JobID,
		CompanyID:    form.CompanyID,
		IsPublic:     ft.Public(),
	}

	if err := s.files.Insert(ctx, rec); err != nil {
		// 补偿：元数据入库失败时回收已落盘文件
		if rmErr := s.fsClient.Remove(physical); rmErr != nil {
			s.publishUnlinkFailed(ctx, queue.UnlinkFailedPayload{
				File:   queue.FileRef{Path: physical, Size: rec.Size},
				Reason: rmErr.Error(),
			})
		}

		return nil, fmt.Errorf("insert file record: %w", err)
	}

	metrics.FileUploadsTotal.WithLabelValues(string(ft)).Inc()
	metrics.FileUploadBytes.WithLabelValues(string(ft)).Add(float64(rec.Size))

	s.publishFileStored(ctx, queue.FileStoredPayload{
		File: queue.FileRef{
			ID:       rec.ID,
			Path:     rec.FilePath,
			URL:      rec.URL,
			Size:     rec.Size,
			MimeType: rec.MimeType,
			FileType: string(rec.FileType),
		},
		UploadedBy: rec.UploadedBy,
		UserID:     rec.UserID,
		JobID:      rec.JobID,
	})

	return &types.UploadFileResponse{
		ID:           rec.ID,
		FileName:     rec.FileName,
		OriginalName: rec.OriginalName,
		URL:          rec.URL,
		Size:         rec.Size,
		MimeType:     rec.MimeType,
		FileType:     rec.FileType,
		IsPublic:     rec.IsPublic,
	}, nil
}
