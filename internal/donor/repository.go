package donor

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindOrCreateByEmail(ctx context.Context, name, email, phone, address string) (*Donor, error)
	GetByID(ctx context.Context, id uint) (*Donor, error)
	List(ctx context.Context) ([]Donor, error)
	ListSummaries(ctx context.Context) ([]DonorSummary, error)
	Update(ctx context.Context, d *Donor) error
	DeleteWithDonations(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindOrCreateByEmail(ctx context.Context, name, email, phone, address string) (*Donor, error) {
	var d Donor
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&d).Error
	if err == nil {
		return &d, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	d = Donor{Name: name, Email: email, Phone: phone, Address: address}
	if err := r.db.WithContext(ctx).Create(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Donor, error) {
	var d Donor
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) List(ctx context.Context) ([]Donor, error) {
	var donors []Donor
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&donors).Error; err != nil {
		return nil, err
	}
	return donors, nil
}

// ListSummaries joins confirmed monetary donations to produce per-donor totals.
func (r *repository) ListSummaries(ctx context.Context) ([]DonorSummary, error) {
	var rows []DonorSummary
	err := r.db.WithContext(ctx).
		Table("donors d").
		Select(`d.id, d.name, d.email, d.phone,
			COALESCE(SUM(dn.amount) FILTER (WHERE dn.donation_type = 'Monetary' AND dn.payment_status = 'Successful'), 0) AS total_donated,
			COUNT(dn.id) AS donation_count`).
		Joins("LEFT JOIN donations dn ON dn.donor_id = d.id").
		Group("d.id, d.name, d.email, d.phone").
		Order("total_donated DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) Update(ctx context.Context, d *Donor) error {
	return r.db.WithContext(ctx).Save(d).Error
}

// DeleteWithDonations removes the donor and every donation attributed to
// them in one transaction, so no donation row is left behind pointing at a
// missing donor.
func (r *repository) DeleteWithDonations(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM donations WHERE donor_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&Donor{}, id).Error
	})
}
