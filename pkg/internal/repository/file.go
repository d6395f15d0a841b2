// Package repository 提供元数据持久层，基于 GORM.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yasameenmsa/talentvault/pkg/internal/model"
)

// ErrNotFound 记录不存在.
var ErrNotFound = errors.New("record not found")

// FileQuery 文件记录查询条件，零值字段不参与过滤.
type FileQuery struct {
	UploadedBy string
	UserID     string
	JobID      string
	CompanyID  string
	FileType   model.FileType
	IsPublic   *bool
	Limit      int
	Offset     int
}

// FileRepository 文件元数据仓储接口.
type FileRepository interface {
	Insert(ctx context.Context, rec *model.FileRecord) error
	FindByID(ctx context.Context, id string) (*model.FileRecord, error)
	FindByPath(ctx context.Context, path string) (*model.FileRecord, error)
	List(ctx context.Context, q FileQuery) ([]model.FileRecord, int64, error)
	Update(ctx context.Context, rec *model.FileRecord) error
	Delete(ctx context.Context, id string) error
	// DeleteByPaths 按物理路径批量删行，返回删除行数；供清理任务回收孤儿记录
	DeleteByPaths(ctx context.Context, paths []string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type fileRepo struct {
	db *gorm.DB
}

// NewFileRepo 创建文件元数据仓储.
func NewFileRepo(db *gorm.DB) FileRepository {
	return &fileRepo{db: db}
}

func (r *fileRepo) Insert(ctx context.Context, rec *model.FileRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *fileRepo) FindByID(ctx context.Context, id string) (*model.FileRecord, error) {
	var rec model.FileRecord

	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &rec, nil
}

func (r *fileRepo) FindByPath(ctx context.Context, path string) (*model.FileRecord, error) {
	var rec model.FileRecord

	err := r.db.WithContext(ctx).First(&rec, "file_path = ? OR url = ?", path, path).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &rec, nil
}

func (r *fileRepo) List(ctx context.Context, q FileQuery) ([]model.FileRecord, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.FileRecord{})

	if q.UploadedBy != "" {
		tx = tx.Where("uploaded_by = ?", q.UploadedBy)
	}

	if q.UserID != "" {
		tx = tx.Where("user_id = ?", q.UserID)
	}

	if q.JobID != "" {
		tx = tx.Where("job_id = ?", q.JobID)
	}

	if q.CompanyID != "" {
		tx = tx.Where("company_id = ?", q.CompanyID)
	}

	if q.FileType != "" {
		tx = tx.Where("file_type = ?", q.FileType)
	}

	if q.IsPublic != nil {
		tx = tx.Where("is_public = ?", *q.IsPublic)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	if q.Offset > 0 {
		tx = tx.Offset(q.Offset)
	}

	var recs []model.FileRecord
	if err := tx.Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, 0, err
	}

	return recs, total, nil
}

func (r *fileRepo) Update(ctx context.Context, rec *model.FileRecord) error {
	res := r.db.WithContext(ctx).Model(&model.FileRecord{}).
		Where("id = ?", rec.ID).
		Select("FileName", "OriginalName", "URL", "FilePath", "IsPublic", "MetadataJSON", "UpdatedAt").
		Updates(rec)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *fileRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.FileRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *fileRepo) DeleteByPaths(ctx context.Context, paths []string) (int64, error) {
	if len(paths) == 0 {
		return 0, nil
	}

	res := r.db.WithContext(ctx).
		Where("file_path IN ? OR url IN ?", paths, paths).
		Delete(&model.FileRecord{})

	return res.RowsAffected, res.Error
}

func (r *fileRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.FileRecord{}).Count(&total).Error

	return total, err
}
