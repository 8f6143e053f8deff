package member

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindOrCreateByEmail(ctx context.Context, fullName, email, phone, role string) (*Member, error)
	GetByID(ctx context.Context, id uint) (*Member, error)
	GetByIDs(ctx context.Context, ids []uint) ([]Member, error)
	List(ctx context.Context) ([]Member, error)
	ParticipationHistory(ctx context.Context, memberID uint) ([]Participation, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindOrCreateByEmail(ctx context.Context, fullName, email, phone, role string) (*Member, error) {
	var m Member
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error
	if err == nil {
		return &m, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	m = Member{FullName: fullName, Email: email, Phone: phone, Role: role}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Member, error) {
	var m Member
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) GetByIDs(ctx context.Context, ids []uint) ([]Member, error) {
	var members []Member
	if len(ids) == 0 {
		return members, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *repository) List(ctx context.Context) ([]Member, error) {
	var members []Member
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *repository) ParticipationHistory(ctx context.Context, memberID uint) ([]Participation, error) {
	var rows []Participation
	err := r.db.WithContext(ctx).
		Table("event_participants ep").
		Select("ep.event_id, e.name AS event_name, ep.role, ep.added_at").
		Joins("JOIN events e ON e.id = ep.event_id").
		Where("ep.member_id = ?", memberID).
		Order("ep.added_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
