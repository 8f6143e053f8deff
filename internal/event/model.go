package event

import "time"

const (
	StatusUpcoming  = "Upcoming"
	StatusHappening = "Happening"
	StatusCompleted = "Completed"
)

// ValidRoles is the participant role whitelist.
var ValidRoles = map[string]bool{
	"Organizer": true,
	"Volunteer": true,
	"Attendee":  true,
	"Speaker":   true,
}

// Event is a scheduled activity with participants, KPIs and feedback.
// Status is derived from the current time against the start/end dates.
type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:150;not null" json:"name"`
	Description string    `gorm:"size:1000" json:"description"`
	Location    string    `gorm:"size:255" json:"location"`
	StartDate   time.Time `gorm:"not null;index" json:"startDate"`
	EndDate     time.Time `gorm:"not null;index" json:"endDate"`
	Status      string    `gorm:"size:20;default:'Upcoming'" json:"status"`

	// Set once the reminder sweep has mailed the attendees.
	ReminderSent bool `gorm:"default:false" json:"-"`

	// KPIs
	Attendance  int     `gorm:"default:0" json:"attendance"`
	FundsRaised float64 `gorm:"column:funds_raised;default:0" json:"fundsRaised"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Event) TableName() string {
	return "events"
}

// DeriveStatus computes the lifecycle status for a reference time.
func (e *Event) DeriveStatus(now time.Time) string {
	switch {
	case now.Before(e.StartDate):
		return StatusUpcoming
	case now.After(e.EndDate):
		return StatusCompleted
	default:
		return StatusHappening
	}
}

// Participant links a member to an event in a specific role. The composite
// unique index is the duplicate-registration guard.
type Participant struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	EventID  uint      `gorm:"not null;uniqueIndex:idx_event_member" json:"eventId"`
	MemberID uint      `gorm:"not null;uniqueIndex:idx_event_member" json:"memberId"`
	Role     string    `gorm:"size:30;not null" json:"role"`
	AddedAt  time.Time `gorm:"autoCreateTime" json:"addedAt"`
}

func (Participant) TableName() string {
	return "event_participants"
}

// ReminderRecipient is a registered member joined with the upcoming event
// they should be reminded about.
type ReminderRecipient struct {
	EventID   uint
	EventName string
	Location  string
	StartDate time.Time
	FullName  string
	Email     string
}

// Feedback is an anonymous rating plus free text left for an event.
type Feedback struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	EventID      uint      `gorm:"not null;index" json:"eventId"`
	Rating       int       `gorm:"not null" json:"rating"`
	FeedbackText string    `gorm:"size:1000" json:"feedbackText"`
	CreatedAt    time.Time `json:"date"`
}

func (Feedback) TableName() string {
	return "event_feedback"
}
