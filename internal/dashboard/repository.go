package dashboard

import (
	"context"

	"gorm.io/gorm"
)

// TopDonor is the donor with the highest confirmed monetary total.
type TopDonor struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	TotalAmount   float64 `json:"totalAmount"`
	DonationCount int64   `json:"donationCount"`
}

// DonationTotals aggregates confirmed donations by type.
type DonationTotals struct {
	MonetaryTotal float64 `json:"monetaryTotal"`
	MonetaryCount int64   `json:"monetaryCount"`
	InKindCount   int64   `json:"inKindCount"`
}

// QuickStats is the admin dashboard headline payload.
type QuickStats struct {
	Totals      DonationTotals `json:"donationTotals"`
	DonorCount  int64          `json:"donorCount"`
	ActiveGoals int64          `json:"activeGoals"`
	TopDonor    *TopDonor      `json:"topDonor,omitempty"`
}

type Repository interface {
	DonationTotals(ctx context.Context) (DonationTotals, error)
	DonorCount(ctx context.Context) (int64, error)
	ActiveGoalCount(ctx context.Context) (int64, error)
	TopDonor(ctx context.Context) (*TopDonor, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) DonationTotals(ctx context.Context) (DonationTotals, error) {
	var t DonationTotals
	err := r.db.WithContext(ctx).
		Table("donations").
		Select(`COALESCE(SUM(amount) FILTER (WHERE donation_type = 'Monetary' AND payment_status = 'Successful'), 0) AS monetary_total,
			COUNT(*) FILTER (WHERE donation_type = 'Monetary' AND payment_status = 'Successful') AS monetary_count,
			COUNT(*) FILTER (WHERE donation_type = 'In-Kind') AS in_kind_count`).
		Scan(&t).Error
	return t, err
}

func (r *repository) DonorCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("donors").Count(&count).Error
	return count, err
}

func (r *repository) ActiveGoalCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("goals").
		Where("status = ?", "Active").
		Count(&count).Error
	return count, err
}

func (r *repository) TopDonor(ctx context.Context) (*TopDonor, error) {
	var top TopDonor
	res := r.db.WithContext(ctx).
		Table("donations dn").
		Select("d.name, d.email, SUM(dn.amount) AS total_amount, COUNT(dn.id) AS donation_count").
		Joins("JOIN donors d ON d.id = dn.donor_id").
		Where("dn.donation_type = ? AND dn.payment_status = ?", "Monetary", "Successful").
		Group("d.id, d.name, d.email").
		Order("total_amount DESC").
		Limit(1).
		Scan(&top)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &top, nil
}
