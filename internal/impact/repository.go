package impact

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, i *Impact) error
	GetByID(ctx context.Context, id uint) (*Impact, error)
	List(ctx context.Context) ([]Impact, error)
	Update(ctx context.Context, i *Impact) error
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, i *Impact) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Impact, error) {
	var i Impact
	if err := r.db.WithContext(ctx).First(&i, id).Error; err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *repository) List(ctx context.Context) ([]Impact, error) {
	var rows []Impact
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) Update(ctx context.Context, i *Impact) error {
	return r.db.WithContext(ctx).Save(i).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Impact{}, id).Error
}
