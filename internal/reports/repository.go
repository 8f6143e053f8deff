package reports

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	GoalRows(ctx context.Context, ids []uint) ([]GoalReportRow, error)
	EventRows(ctx context.Context, ids []uint) ([]EventReportRow, error)
	DonorRows(ctx context.Context, ids []uint) ([]DonorReportRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GoalRows(ctx context.Context, ids []uint) ([]GoalReportRow, error) {
	var rows []GoalReportRow
	err := r.db.WithContext(ctx).
		Table("goals").
		Select("id, name, target_amount, current_amount, status, start_date").
		Where("id IN ?", ids).
		Order("id").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) EventRows(ctx context.Context, ids []uint) ([]EventReportRow, error) {
	var rows []EventReportRow
	err := r.db.WithContext(ctx).
		Table("events").
		Select("id, name, location, status, attendance, funds_raised, start_date, end_date").
		Where("id IN ?", ids).
		Order("id").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) DonorRows(ctx context.Context, ids []uint) ([]DonorReportRow, error) {
	var rows []DonorReportRow
	err := r.db.WithContext(ctx).
		Table("donors d").
		Select(`d.id, d.name, d.email,
			COALESCE(SUM(dn.amount) FILTER (WHERE dn.donation_type = 'Monetary' AND dn.payment_status = 'Successful'), 0) AS total_donated,
			COUNT(dn.id) AS donation_count`).
		Joins("LEFT JOIN donations dn ON dn.donor_id = d.id").
		Where("d.id IN ?", ids).
		Group("d.id, d.name, d.email").
		Order("d.id").
		Scan(&rows).Error
	return rows, err
}
