package donation

import "time"

const (
	TypeMonetary = "Monetary"
	TypeInKind   = "In-Kind"
)

const (
	StatusPending    = "Pending"
	StatusSuccessful = "Successful"
	StatusFailed     = "Failed"
)

const (
	InKindPending  = "Pending"
	InKindReceived = "Received"
	InKindRejected = "Rejected"
)

// Donation records a single contribution, monetary or in-kind. Monetary
// donations carry Stripe session/payment identifiers and are attributed to
// exactly one of Goal, Event or Beneficiary.
type Donation struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	DonationType  string `gorm:"size:20;not null;index" json:"donationType"`
	DonorID       uint   `gorm:"not null;index" json:"donorId"`
	GoalID        *uint  `gorm:"index" json:"goalId,omitempty"`
	EventID       *uint  `gorm:"index" json:"eventId,omitempty"`
	BeneficiaryID *uint  `gorm:"index" json:"beneficiaryId,omitempty"`

	// Monetary details
	Amount          float64 `gorm:"default:0" json:"amount"`
	Currency        string  `gorm:"size:10;default:'USD'" json:"currency"`
	PaymentStatus   string  `gorm:"size:20;default:'Pending';index" json:"paymentStatus"`
	PaymentMethod   string  `gorm:"size:50" json:"paymentMethod"`
	StripeSessionID *string `gorm:"size:255;uniqueIndex" json:"stripeSessionId,omitempty"`
	StripePaymentID *string `gorm:"size:255" json:"stripePaymentId,omitempty"`

	// In-kind details
	ItemName       string  `gorm:"size:150" json:"itemName,omitempty"`
	Quantity       int     `gorm:"default:0" json:"quantity,omitempty"`
	EstimatedValue float64 `gorm:"default:0" json:"estimatedValue,omitempty"`
	InKindStatus   string  `gorm:"size:20" json:"inKindStatus,omitempty"`

	ReceiptURL *string    `gorm:"size:500" json:"receiptUrl,omitempty"`
	Note       *string    `gorm:"size:500" json:"note,omitempty"`
	DonatedAt  *time.Time `json:"donatedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func (Donation) TableName() string {
	return "donations"
}

// DonationWithDonor is the list projection joining donor details.
type DonationWithDonor struct {
	Donation
	DonorName  string `json:"donorName"`
	DonorEmail string `json:"donorEmail"`
}
