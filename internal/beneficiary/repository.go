package beneficiary

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, b *Beneficiary) error
	GetByID(ctx context.Context, id uint) (*Beneficiary, error)
	List(ctx context.Context) ([]Beneficiary, error)
	Update(ctx context.Context, b *Beneficiary) error
	Delete(ctx context.Context, id uint) error
	SchemeRefs(ctx context.Context, beneficiaryID uint) ([]SchemeRef, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, b *Beneficiary) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Beneficiary, error) {
	var b Beneficiary
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) List(ctx context.Context) ([]Beneficiary, error) {
	var rows []Beneficiary
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) Update(ctx context.Context, b *Beneficiary) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM scheme_enrollments WHERE beneficiary_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&Beneficiary{}, id).Error
	})
}

func (r *repository) SchemeRefs(ctx context.Context, beneficiaryID uint) ([]SchemeRef, error) {
	var rows []SchemeRef
	err := r.db.WithContext(ctx).
		Table("scheme_enrollments se").
		Select("se.scheme_id, s.name AS scheme_name, se.enrolled_at, se.benefited, se.benefited_at").
		Joins("JOIN schemes s ON s.id = se.scheme_id").
		Where("se.beneficiary_id = ?", beneficiaryID).
		Order("se.enrolled_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
