package donation

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, d *Donation) error
	GetByID(ctx context.Context, id uint) (*Donation, error)
	GetBySessionID(ctx context.Context, sessionID string) (*Donation, error)
	ListWithDonor(ctx context.Context, donationType string) ([]DonationWithDonor, error)
	ConfirmMonetary(ctx context.Context, d *Donation, paymentID, method string, donatedAt time.Time) (bool, error)
	MarkFailed(ctx context.Context, id uint) error
	UpdateInKindStatus(ctx context.Context, id uint, status string) error
	UpdateReceiptURL(ctx context.Context, id uint, url string) error
	TargetExists(ctx context.Context, table string, id uint) (bool, error)
	TargetName(ctx context.Context, table string, id uint) (string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, d *Donation) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Donation, error) {
	var d Donation
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) GetBySessionID(ctx context.Context, sessionID string) (*Donation, error) {
	var d Donation
	if err := r.db.WithContext(ctx).Where("stripe_session_id = ?", sessionID).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// ListWithDonor returns donations joined with donor details, optionally
// filtered by donation type ("all" returns everything).
func (r *repository) ListWithDonor(ctx context.Context, donationType string) ([]DonationWithDonor, error) {
	query := r.db.WithContext(ctx).
		Table("donations dn").
		Select("dn.*, d.name AS donor_name, d.email AS donor_email").
		Joins("JOIN donors d ON d.id = dn.donor_id").
		Order("dn.created_at DESC")

	if donationType != "" && donationType != "all" {
		query = query.Where("dn.donation_type = ?", donationType)
	}

	var rows []DonationWithDonor
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ConfirmMonetary marks the donation successful and increments the attributed
// target's running total in the same transaction. The increments use SQL-side
// expressions so concurrent confirmations cannot lose updates. Returns false
// when another confirmation already claimed the donation, so the caller knows
// not to repeat the success side effects.
func (r *repository) ConfirmMonetary(ctx context.Context, d *Donation, paymentID, method string, donatedAt time.Time) (bool, error) {
	credited := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Donation{}).
			Where("id = ? AND payment_status <> ?", d.ID, StatusSuccessful).
			Updates(map[string]interface{}{
				"payment_status":    StatusSuccessful,
				"stripe_payment_id": paymentID,
				"payment_method":    method,
				"donated_at":        donatedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Another confirmation got there first.
			return nil
		}
		credited = true

		if d.GoalID != nil {
			if err := tx.Table("goals").
				Where("id = ?", *d.GoalID).
				Update("current_amount", gorm.Expr("current_amount + ?", d.Amount)).Error; err != nil {
				return err
			}
		}
		if d.EventID != nil {
			if err := tx.Table("events").
				Where("id = ?", *d.EventID).
				Update("funds_raised", gorm.Expr("funds_raised + ?", d.Amount)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return credited, err
}

func (r *repository) MarkFailed(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&Donation{}).
		Where("id = ?", id).
		Update("payment_status", StatusFailed).Error
}

func (r *repository) UpdateInKindStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).Model(&Donation{}).
		Where("id = ? AND donation_type = ?", id, TypeInKind).
		Update("in_kind_status", status).Error
}

func (r *repository) UpdateReceiptURL(ctx context.Context, id uint, url string) error {
	return r.db.WithContext(ctx).Model(&Donation{}).
		Where("id = ?", id).
		Update("receipt_url", url).Error
}

// TargetExists checks the referenced attribution target without importing
// the owning package. Allowed tables: goals, events, beneficiaries.
func (r *repository) TargetExists(ctx context.Context, table string, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Table(table).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) TargetName(ctx context.Context, table string, id uint) (string, error) {
	var name string
	err := r.db.WithContext(ctx).Table(table).Select("name").Where("id = ?", id).Scan(&name).Error
	return name, err
}
