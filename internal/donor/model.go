package donor

import "time"

// Donor is a person or organization that has made at least one donation.
// Donors are created implicitly during checkout (fetch-or-create by email).
type Donor struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:150;not null" json:"name"`
	Email     string    `gorm:"size:150;not null;uniqueIndex" json:"email"`
	Phone     string    `gorm:"size:20" json:"phone"`
	Address   string    `gorm:"size:255" json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Donor) TableName() string {
	return "donors"
}

type UpdateDonorInput struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// DonorSummary is the dashboard/list projection with donation totals.
type DonorSummary struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	TotalDonated  float64 `json:"totalDonated"`
	DonationCount int64   `json:"donationCount"`
}
