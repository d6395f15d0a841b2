package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"golang.org/x/sync/errgroup"

	"github.com/yasameenmsa/talentvault/pkg/internal/model"
	"github.com/yasameenmsa/talentvault/pkg/internal/repository"
	"github.com/yasameenmsa/talentvault/pkg/internal/types"
	"github.com/yasameenmsa/talentvault/pkg/queue"
	"github.com/yasameenmsa/talentvault/pkg/rule"
)

// bulkDeleteConcurrency 批量删除的并发上限.
const bulkDeleteConcurrency = 8

// GetFile 查询单条文件记录，私有记录按读取权限授权.
func (s *FileService) GetFile(ctx context.Context, p types.Principal, id string) (*model.FileRecord, error) {
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

	return rec, nil
}

// ListFiles 列出文件记录；非管理员只能看到自己上传或归属自己的文件.
func (s *FileService) ListFiles(ctx context.Context, p types.Principal,
	req *types.ListFilesRequest,
) (*types.ListFilesResponse, error) {
	if p.Anonymous() {
		return nil, ErrUnauthenticated
	}

	if err := rule.ValidateStruct(req); err != nil {
		return nil, validationErrorf("invalid list request: %v", err)
	}

	q := repository.FileQuery{
		UserID:    req.UserID,
		JobID:     req.JobID,
		CompanyID: req.CompanyID,
		FileType:  model.FileType(req.FileType),
		Limit:     req.Limit,
		Offset:    req.Offset,
	}

	if q.Limit == 0 {
		q.Limit = 50
	}

	if !p.IsAdmin() {
		q.UploadedBy = p.UserID
	}

	recs, total, err := s.files.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list file records: %w", err)
	}

	return &types.ListFilesResponse{Files: recs, Total: total}, nil
}

// authorizeWrite 删除与修改要求上传者、归属用户或管理员.
func authorizeWrite(p types.Principal, rec *model.FileRecord) error {
	if p.Anonymous() {
		return ErrUnauthenticated
	}

	if p.IsAdmin() || rec.UploadedBy == p.UserID || rec.UserID == p.UserID {
		return nil
	}

	return ErrForbidden
}

// UpdateFile 更新文件元数据：重命名、切换可见性、合并开放元数据.
// 不移动物理文件，可见性切换只影响后续授权.
func (s *FileService) UpdateFile(ctx context.Context, p types.Principal,
	id string, req *types.UpdateFileRequest,
) (*model.FileRecord, error) {
	rec, err := s.files.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRecordNotFound
		}

		return nil, err
	}

	if err := authorizeWrite(p, rec); err != nil {
		return nil, err
	}

	if req.FileName != nil {
		if *req.FileName == "" {
			return nil, validationErrorf("file_name cannot be empty")
		}

		// 只改下载名，存储名与物理文件不动
		rec.OriginalName = *req.FileName
	}

	if req.IsPublic != nil {
		rec.IsPublic = *req.IsPublic
	}

	if len(req.Metadata) > 0 {
		merged := map[string]any{}
		if rec.MetadataJSON != "" {
			if err := sonic.UnmarshalString(rec.MetadataJSON, &merged); err != nil {
				return nil, fmt.Errorf("decode metadata of %s: %w", id, err)
			}
		}

		for k, v := range req.Metadata {
			if v == nil {
				delete(merged, k)
				continue
			}

			merged[k] = v
		}

		out, err := sonic.MarshalString(merged)
		if err != nil {
			return nil, fmt.Errorf("encode metadata: %w", err)
		}

		rec.MetadataJSON = out
	}

	rec.UpdatedAt = time.Now()

	if err := s.updateRecord(ctx, rec); err != nil {
		return nil, err
	}

	s.invalidateRecord(ctx, id)

	return rec, nil
}

// updateRecord 持久化一条记录的可变字段.
func (s *FileService) updateRecord(ctx context.Context, rec *model.FileRecord) error {
	if err := s.files.Update(ctx, rec); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRecordNotFound
		}

		return fmt.Errorf("update file record %s: %w", rec.ID, err)
	}

	return nil
}

// DeleteFile 删除一条文件记录及其物理文件.
// 物理删除失败不阻塞元数据删除，发 unlink_failed 事件留给后台对账.
func (s *FileService) DeleteFile(ctx context.Context, p types.Principal, id string) (*types.DeleteFileResponse, error) {
	rec, err := s.files.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRecordNotFound
		}

		return nil, err
	}

	if err := authorizeWrite(p, rec); err != nil {
		return nil, err
	}

	if err := s.files.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRecordNotFound
		}

		return nil, fmt.Errorf("delete file record %s: %w", id, err)
	}

	s.invalidateRecord(ctx, id)

	ref := queue.FileRef{
		ID:       rec.ID,
		Path:     rec.FilePath,
		URL:      rec.URL,
		Size:     rec.Size,
		MimeType: rec.MimeType,
		FileType: string(rec.FileType),
	}

	resp := &types.DeleteFileResponse{ID: id, Deleted: true, FileRemoved: true}

	physical := s.fsClient.Resolver().Resolve(rec.FilePath)
	if rmErr := s.fsClient.Remove(physical); rmErr != nil {
		resp.FileRemoved = false
		resp.Warning = fmt.Sprintf("record deleted but file unlink failed: %v", rmErr)

		s.publishUnlinkFailed(ctx, queue.UnlinkFailedPayload{File: ref, Reason: rmErr.Error()})
	}

	s.publishFileDeleted(ctx, queue.FileDeletedPayload{File: ref, DeletedBy: p.UserID})

	return resp, nil
}

// BulkDeleteFiles 并发删除一组文件记录，逐条返回结果.
func (s *FileService) BulkDeleteFiles(ctx context.Context, p types.Principal,
	req *types.BulkDeleteRequest,
) (*types.BulkDeleteResponse, error) {
	if p.Anonymous() {
		return nil, ErrUnauthenticated
	}

	if err := rule.ValidateStruct(req); err != nil {
		return nil, validationErrorf("invalid bulk delete request: %v", err)
	}

	results := make([]types.DeleteFileResponse, len(req.IDs))

	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(bulkDeleteConcurrency)

	for i, id := range req.IDs {
		g.Go(func() error {
			res, err := s.DeleteFile(gctx, p, id)
			if err != nil {
				res = &types.DeleteFileResponse{ID: id, Deleted: false, Warning: err.Error()}
			}

			mu.Lock()
			results[i] = *res
			mu.Unlock()

			return nil
		})
	}

	// 单条失败记入结果，不中断整批
	_ = g.Wait()

	resp := &types.BulkDeleteResponse{Results: results}

	for i := range results {
		if results[i].Deleted {
			resp.Deleted++
		} else {
			resp.Failed++
		}
	}

	return resp, nil
}
