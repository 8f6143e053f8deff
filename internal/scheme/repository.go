package scheme

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, s *Scheme) error
	GetByID(ctx context.Context, id uint) (*Scheme, error)
	GetByName(ctx context.Context, name string) (*Scheme, error)
	List(ctx context.Context) ([]Scheme, error)
	Update(ctx context.Context, s *Scheme) error
	Delete(ctx context.Context, id uint) error

	GetEnrollment(ctx context.Context, schemeID, beneficiaryID uint) (*Enrollment, error)
	Enroll(ctx context.Context, e *Enrollment) error
	MarkBenefited(ctx context.Context, schemeID, beneficiaryID uint, at time.Time) error
	Roster(ctx context.Context, schemeID uint) ([]EnrolledBeneficiary, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *Scheme) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Scheme, error) {
	var s Scheme
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) GetByName(ctx context.Context, name string) (*Scheme, error) {
	var s Scheme
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) List(ctx context.Context) ([]Scheme, error) {
	var rows []Scheme
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) Update(ctx context.Context, s *Scheme) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("scheme_id = ?", id).Delete(&Enrollment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Scheme{}, id).Error
	})
}

func (r *repository) GetEnrollment(ctx context.Context, schemeID, beneficiaryID uint) (*Enrollment, error) {
	var e Enrollment
	err := r.db.WithContext(ctx).
		Where("scheme_id = ? AND beneficiary_id = ?", schemeID, beneficiaryID).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) Enroll(ctx context.Context, e *Enrollment) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) MarkBenefited(ctx context.Context, schemeID, beneficiaryID uint, at time.Time) error {
	return r.db.WithContext(ctx).Model(&Enrollment{}).
		Where("scheme_id = ? AND beneficiary_id = ? AND benefited = false", schemeID, beneficiaryID).
		Updates(map[string]interface{}{"benefited": true, "benefited_at": at}).Error
}

func (r *repository) Roster(ctx context.Context, schemeID uint) ([]EnrolledBeneficiary, error) {
	var rows []EnrolledBeneficiary
	err := r.db.WithContext(ctx).
		Table("scheme_enrollments se").
		Select("se.beneficiary_id, b.name, b.age, b.phone, se.enrolled_at, se.benefited, se.benefited_at").
		Joins("JOIN beneficiaries b ON b.id = se.beneficiary_id").
		Where("se.scheme_id = ?", schemeID).
		Order("se.enrolled_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
