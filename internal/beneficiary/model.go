package beneficiary

import "time"

// Beneficiary is a person receiving support through schemes or donations.
type Beneficiary struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:150;not null" json:"name"`
	Age       int       `gorm:"not null" json:"age"`
	Gender    string    `gorm:"size:20" json:"gender"`
	Phone     string    `gorm:"size:10" json:"phone"`
	Email     string    `gorm:"size:150" json:"email,omitempty"`
	Address   string    `gorm:"size:255" json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Beneficiary) TableName() string {
	return "beneficiaries"
}

type CreateBeneficiaryInput struct {
	Name    string `json:"name" binding:"required"`
	Age     int    `json:"age" binding:"required"`
	Gender  string `json:"gender"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"address"`
}

type UpdateBeneficiaryInput struct {
	Name    *string `json:"name"`
	Age     *int    `json:"age"`
	Gender  *string `json:"gender"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

// SchemeRef is one scheme a beneficiary is enrolled in or benefited from.
type SchemeRef struct {
	SchemeID    uint       `json:"schemeId"`
	SchemeName  string     `json:"schemeName"`
	EnrolledAt  time.Time  `json:"enrolledAt"`
	Benefited   bool       `json:"benefited"`
	BenefitedAt *time.Time `json:"benefitedAt,omitempty"`
}

// BeneficiaryDetail includes the scheme enrollment history.
type BeneficiaryDetail struct {
	Beneficiary
	Schemes []SchemeRef `json:"schemes"`
}
