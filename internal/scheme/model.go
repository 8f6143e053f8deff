package scheme

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	StatusUpcoming  = "Upcoming"
	StatusActive    = "Active"
	StatusExpired   = "Expired"
	StatusSuspended = "Suspended"
)

// Scheme is a benefits program beneficiaries enroll in. Status is derived
// from the date window on every save unless the scheme is Suspended.
type Scheme struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:150;not null;uniqueIndex" json:"name"`
	Description string         `gorm:"size:1000" json:"description"`
	StartDate   time.Time      `gorm:"not null" json:"startDate"`
	EndDate     time.Time      `gorm:"not null" json:"endDate"`
	Budget      float64        `gorm:"default:0" json:"budget"`
	Status      string         `gorm:"size:20;default:'Upcoming'" json:"status"`
	MinAge      *int           `json:"minAge,omitempty"`
	MaxAge      *int           `json:"maxAge,omitempty"`
	Benefits    datatypes.JSON `json:"benefits,omitempty"`
	Documents   datatypes.JSON `json:"documents,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func (Scheme) TableName() string {
	return "schemes"
}

// BeforeSave recomputes the lifecycle status. A Suspended scheme keeps its
// status until an admin reactivates it.
func (s *Scheme) BeforeSave(tx *gorm.DB) error {
	if s.Status == StatusSuspended {
		return nil
	}
	now := time.Now()
	switch {
	case now.Before(s.StartDate):
		s.Status = StatusUpcoming
	case now.After(s.EndDate):
		s.Status = StatusExpired
	default:
		s.Status = StatusActive
	}
	return nil
}

// Enrollment links a beneficiary to a scheme. Benefited can only be set
// after enrollment exists.
type Enrollment struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	SchemeID      uint       `gorm:"not null;uniqueIndex:idx_scheme_beneficiary" json:"schemeId"`
	BeneficiaryID uint       `gorm:"not null;uniqueIndex:idx_scheme_beneficiary" json:"beneficiaryId"`
	EnrolledAt    time.Time  `gorm:"autoCreateTime" json:"enrolledAt"`
	Benefited     bool       `gorm:"default:false" json:"benefited"`
	BenefitedAt   *time.Time `json:"benefitedAt,omitempty"`
}

func (Enrollment) TableName() string {
	return "scheme_enrollments"
}

type CreateSchemeInput struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"startDate" binding:"required"`
	EndDate     time.Time `json:"endDate" binding:"required"`
	Budget      float64   `json:"budget"`
	MinAge      *int      `json:"minAge"`
	MaxAge      *int      `json:"maxAge"`
	Benefits    []string  `json:"benefits"`
	Documents   []string  `json:"documents"`
}

type UpdateSchemeInput struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Budget      *float64   `json:"budget"`
	MinAge      *int       `json:"minAge"`
	MaxAge      *int       `json:"maxAge"`
	Benefits    []string   `json:"benefits"`
	Documents   []string   `json:"documents"`
	Suspend     *bool      `json:"suspend"`
}

type EnrollInput struct {
	SchemeID      uint `json:"schemeId" binding:"required"`
	BeneficiaryID uint `json:"beneficiaryId" binding:"required"`
}

// EnrolledBeneficiary is a roster row for one scheme.
type EnrolledBeneficiary struct {
	BeneficiaryID uint       `json:"beneficiaryId"`
	Name          string     `json:"name"`
	Age           int        `json:"age"`
	Phone         string     `json:"phone"`
	EnrolledAt    time.Time  `json:"enrolledAt"`
	Benefited     bool       `json:"benefited"`
	BenefitedAt   *time.Time `json:"benefitedAt,omitempty"`
}

// SchemeDetail includes the enrollment roster.
type SchemeDetail struct {
	Scheme
	Enrolled []EnrolledBeneficiary `json:"enrolledBeneficiaries"`
}
