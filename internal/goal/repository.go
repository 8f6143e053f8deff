package goal

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, g *Goal) error
	GetByID(ctx context.Context, id uint) (*Goal, error)
	List(ctx context.Context) ([]Goal, error)
	ListDonations(ctx context.Context, goalID uint) ([]GoalDonation, error)
	Update(ctx context.Context, g *Goal) error
	DeleteWithDonations(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, g *Goal) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Goal, error) {
	var g Goal
	if err := r.db.WithContext(ctx).First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *repository) List(ctx context.Context) ([]Goal, error) {
	var goals []Goal
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *repository) ListDonations(ctx context.Context, goalID uint) ([]GoalDonation, error) {
	var rows []GoalDonation
	err := r.db.WithContext(ctx).
		Table("donations dn").
		Select("dn.id, dn.donation_type, dn.amount, dn.payment_status, dn.donated_at, dn.created_at, d.name AS donor_name, d.email AS donor_email").
		Joins("JOIN donors d ON d.id = dn.donor_id").
		Where("dn.goal_id = ?", goalID).
		Order("dn.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) Update(ctx context.Context, g *Goal) error {
	return r.db.WithContext(ctx).Save(g).Error
}

// DeleteWithDonations removes the goal and all donations attributed to it in
// one transaction, so no orphan donation rows remain.
func (r *repository) DeleteWithDonations(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM donations WHERE goal_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&Goal{}, id).Error
	})
}
