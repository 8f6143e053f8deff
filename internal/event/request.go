package event

import "time"

// ParticipantInput references an existing member with an event role.
type ParticipantInput struct {
	MemberID uint   `json:"memberId" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type CreateEventInput struct {
	Name         string             `json:"name" binding:"required"`
	Description  string             `json:"description"`
	Location     string             `json:"location" binding:"required"`
	StartDate    time.Time          `json:"startDate" binding:"required"`
	EndDate      time.Time          `json:"endDate" binding:"required"`
	Participants []ParticipantInput `json:"participants"`
}

// EditEventInput is a full field replace; the participant list is diffed
// against the stored one.
type EditEventInput struct {
	Name         string             `json:"name" binding:"required"`
	Description  string             `json:"description"`
	Location     string             `json:"location" binding:"required"`
	StartDate    time.Time          `json:"startDate" binding:"required"`
	EndDate      time.Time          `json:"endDate" binding:"required"`
	Participants []ParticipantInput `json:"participants"`
}

// RegisterInput signs a person up as an Attendee, creating the member
// record when the email is new.
type RegisterInput struct {
	EventID  uint   `json:"eventId" binding:"required"`
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone,omitempty"`
}

type FeedbackInput struct {
	Rating       int    `json:"rating" binding:"required"`
	FeedbackText string `json:"feedbackText"`
}

// ParticipantDetail joins member identity onto a participant row.
type ParticipantDetail struct {
	MemberID uint      `json:"memberId"`
	FullName string    `json:"fullName"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	AddedAt  time.Time `json:"addedAt"`
}

// EventDetail is the single-event projection with participants and feedback.
type EventDetail struct {
	Event
	Participants []ParticipantDetail `json:"participants"`
	Feedback     []Feedback          `json:"feedback"`
}

// EventSummary is the list projection with participant headcount.
type EventSummary struct {
	Event
	ParticipantCount int64 `json:"participantCount"`
}
