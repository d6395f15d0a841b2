package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yasameenmsa/talentvault/pkg/internal/model"
)

// CVRepository 遗留简历投递仓储接口.
type CVRepository interface {
	Insert(ctx context.Context, cv *model.CV) error
	FindByID(ctx context.Context, id uint) (*model.CV, error)
	List(ctx context.Context, limit, offset int) ([]model.CV, int64, error)
}

type cvRepo struct {
	db *gorm.DB
}

// NewCVRepo 创建简历投递仓储.
func NewCVRepo(db *gorm.DB) CVRepository {
	return &cvRepo{db: db}
}

func (r *cvRepo) Insert(ctx context.Context, cv *model.CV) error {
	return r.db.WithContext(ctx).Create(cv).Error
}

func (r *cvRepo) FindByID(ctx context.Context, id uint) (*model.CV, error) {
	var cv model.CV

	err := r.db.WithContext(ctx).First(&cv, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &cv, nil
}

func (r *cvRepo) List(ctx context.Context, limit, offset int) ([]model.CV, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.CV{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		tx = tx.Limit(limit)
	}

	if offset > 0 {
		tx = tx.Offset(offset)
	}

	var cvs []model.CV
	if err := tx.Order("created_at DESC").Find(&cvs).Error; err != nil {
		return nil, 0, err
	}

	return cvs, total, nil
}
