package event

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, e *Event, participants []Participant) error
	GetByID(ctx context.Context, id uint) (*Event, error)
	List(ctx context.Context) ([]EventSummary, error)
	Update(ctx context.Context, e *Event, participants []Participant) error

	SweepStatuses(ctx context.Context, now time.Time) error
	DueForReminder(ctx context.Context, from, to time.Time) ([]ReminderRecipient, error)
	MarkReminded(ctx context.Context, eventID uint) error

	ListParticipants(ctx context.Context, eventID uint) ([]ParticipantDetail, error)
	IsRegistered(ctx context.Context, eventID, memberID uint) (bool, error)
	Register(ctx context.Context, p *Participant) error

	AddFeedback(ctx context.Context, f *Feedback) error
	ListFeedback(ctx context.Context, eventID uint) ([]Feedback, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e *Event, participants []Participant) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(e).Error; err != nil {
			return err
		}
		for i := range participants {
			participants[i].EventID = e.ID
		}
		if len(participants) > 0 {
			if err := tx.Create(&participants).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Event, error) {
	var e Event
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) List(ctx context.Context) ([]EventSummary, error) {
	var rows []EventSummary
	err := r.db.WithContext(ctx).
		Table("events e").
		Select("e.*, COUNT(ep.id) AS participant_count").
		Joins("LEFT JOIN event_participants ep ON ep.event_id = e.id").
		Group("e.id").
		Order("e.start_date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Update replaces the event fields and the full participant list.
func (r *repository) Update(ctx context.Context, e *Event, participants []Participant) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(e).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", e.ID).Delete(&Participant{}).Error; err != nil {
			return err
		}
		for i := range participants {
			participants[i].ID = 0
			participants[i].EventID = e.ID
		}
		if len(participants) > 0 {
			if err := tx.Create(&participants).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// SweepStatuses recomputes every event's lifecycle status in a single
// SQL pass. Runs before each list query rather than on a scheduler.
func (r *repository) SweepStatuses(ctx context.Context, now time.Time) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE events SET status = CASE
			WHEN start_date > ? THEN 'Upcoming'
			WHEN end_date < ? THEN 'Completed'
			ELSE 'Happening'
		END
		WHERE status <> CASE
			WHEN start_date > ? THEN 'Upcoming'
			WHEN end_date < ? THEN 'Completed'
			ELSE 'Happening'
		END`, now, now, now, now).Error
}

// DueForReminder returns the registered members of every event starting
// inside the window whose reminder has not gone out yet.
func (r *repository) DueForReminder(ctx context.Context, from, to time.Time) ([]ReminderRecipient, error) {
	var rows []ReminderRecipient
	err := r.db.WithContext(ctx).
		Table("events e").
		Select("e.id AS event_id, e.name AS event_name, e.location, e.start_date, m.full_name, m.email").
		Joins("JOIN event_participants ep ON ep.event_id = e.id").
		Joins("JOIN members m ON m.id = ep.member_id").
		Where("e.reminder_sent = ? AND e.start_date > ? AND e.start_date <= ?", false, from, to).
		Order("e.start_date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) MarkReminded(ctx context.Context, eventID uint) error {
	return r.db.WithContext(ctx).Model(&Event{}).
		Where("id = ?", eventID).
		Update("reminder_sent", true).Error
}

func (r *repository) ListParticipants(ctx context.Context, eventID uint) ([]ParticipantDetail, error) {
	var rows []ParticipantDetail
	err := r.db.WithContext(ctx).
		Table("event_participants ep").
		Select("ep.member_id, m.full_name, m.email, ep.role, ep.added_at").
		Joins("JOIN members m ON m.id = ep.member_id").
		Where("ep.event_id = ?", eventID).
		Order("ep.added_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) IsRegistered(ctx context.Context, eventID, memberID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Participant{}).
		Where("event_id = ? AND member_id = ?", eventID, memberID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Register inserts the participant row and bumps attendance atomically.
func (r *repository) Register(ctx context.Context, p *Participant) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		return tx.Model(&Event{}).
			Where("id = ?", p.EventID).
			Update("attendance", gorm.Expr("attendance + 1")).Error
	})
}

func (r *repository) AddFeedback(ctx context.Context, f *Feedback) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *repository) ListFeedback(ctx context.Context, eventID uint) ([]Feedback, error) {
	var rows []Feedback
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
