package member

import "time"

// Member is a person who takes part in events, in any participant role.
type Member struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FullName  string    `gorm:"size:150;not null" json:"fullName"`
	Email     string    `gorm:"size:150;not null;uniqueIndex" json:"email"`
	Phone     string    `gorm:"size:20" json:"phone,omitempty"`
	Role      string    `gorm:"size:30;default:'Attendee'" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Member) TableName() string {
	return "members"
}

// Participation is one entry of a member's event history.
type Participation struct {
	EventID   uint      `json:"eventId"`
	EventName string    `json:"eventName"`
	Role      string    `json:"role"`
	AddedAt   time.Time `json:"addedAt"`
}

// MemberWithHistory is the detail projection including event participation.
type MemberWithHistory struct {
	Member
	ParticipationHistory []Participation `json:"participationHistory"`
}
