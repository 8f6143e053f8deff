package goal

import "time"

const (
	StatusActive    = "Active"
	StatusInactive  = "Inactive"
	StatusCompleted = "Completed"
)

// Goal is a fundraising campaign with an accumulating current amount.
// CurrentAmount only increases, via confirmed donation attribution.
type Goal struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Name          string     `gorm:"size:150;not null" json:"name"`
	Description   string     `gorm:"size:1000" json:"description"`
	StartDate     time.Time  `json:"startDate"`
	EndDate       *time.Time `json:"endDate,omitempty"`
	TargetAmount  float64    `gorm:"not null" json:"targetAmount"`
	CurrentAmount float64    `gorm:"default:0" json:"currentAmount"`
	Status        string     `gorm:"size:20;default:'Active'" json:"status"`
	ImageURL      string     `gorm:"size:500" json:"imageUrl,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func (Goal) TableName() string {
	return "goals"
}

type CreateGoalInput struct {
	Name         string     `json:"name" binding:"required"`
	Description  string     `json:"description"`
	StartDate    time.Time  `json:"startDate" binding:"required"`
	EndDate      *time.Time `json:"endDate"`
	TargetAmount float64    `json:"targetAmount" binding:"required,gt=0"`
	Status       string     `json:"status" binding:"omitempty,oneof=Active Inactive Completed"`
}

// EditGoalInput arrives as multipart form fields; the optional image part is
// handled separately by the handler.
type EditGoalInput struct {
	Name         *string    `form:"name"`
	Description  *string    `form:"description"`
	StartDate    *time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate      *time.Time `form:"endDate" time_format:"2006-01-02"`
	TargetAmount *float64   `form:"targetAmount"`
	Status       *string    `form:"status"`
}

// GoalDetail is the single-goal projection including its donations.
type GoalDetail struct {
	Goal
	Donations []GoalDonation `json:"donations"`
}

// GoalDonation is a donation row scoped to one goal with donor details.
type GoalDonation struct {
	ID            uint       `json:"id"`
	DonationType  string     `json:"donationType"`
	Amount        float64    `json:"amount"`
	PaymentStatus string     `json:"paymentStatus"`
	DonorName     string     `json:"donorName"`
	DonorEmail    string     `json:"donorEmail"`
	DonatedAt     *time.Time `json:"donatedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}
