package donation

import "time"

// CheckoutRequest is sent by the frontend to start a donation. The payload
// is a discriminated union on DonationType: Monetary donations carry Amount
// plus exactly one target reference, In-Kind donations carry item details.
type CheckoutRequest struct {
	DonationType string `json:"donationType" binding:"required,oneof=Monetary In-Kind"`

	DonorName    string `json:"donorName" binding:"required"`
	DonorEmail   string `json:"donorEmail" binding:"required,email"`
	DonorPhone   string `json:"donorPhone,omitempty"`
	DonorAddress string `json:"donorAddress,omitempty"`

	// Monetary fields
	Amount   float64 `json:"amount,omitempty"`
	Currency string  `json:"currency,omitempty"`

	// Target references (exactly one for Monetary)
	GoalID        *uint `json:"goalId,omitempty"`
	EventID       *uint `json:"eventId,omitempty"`
	BeneficiaryID *uint `json:"beneficiaryId,omitempty"`

	// In-Kind fields
	ItemName       string  `json:"itemName,omitempty"`
	Quantity       int     `json:"quantity,omitempty"`
	EstimatedValue float64 `json:"estimatedValue,omitempty"`

	Note      *string `json:"note,omitempty"`
	IPAddress string  `json:"-"` // filled from middleware
}

// CheckoutResponse is returned after a checkout session is created. For
// In-Kind donations SessionURL is empty and the donation is already recorded.
type CheckoutResponse struct {
	DonationID     uint    `json:"donationId"`
	SessionID      string  `json:"sessionId,omitempty"`
	SessionURL     string  `json:"sessionUrl,omitempty"`
	Amount         float64 `json:"amount,omitempty"`
	Currency       string  `json:"currency,omitempty"`
	PublishableKey string  `json:"publishableKey,omitempty"`
}

// PaymentSuccessRequest confirms a completed checkout session.
type PaymentSuccessRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	IPAddress string `json:"-"`
}

// UpdateStatusRequest updates the fulfilment status of an In-Kind donation.
type UpdateStatusRequest struct {
	DonationID uint   `json:"donationId" binding:"required"`
	Status     string `json:"status" binding:"required,oneof=Pending Received Rejected"`
}

// Receipt holds the fields rendered onto a donation receipt PDF.
type Receipt struct {
	ReceiptNumber string    `json:"receiptNumber"`
	DonorName     string    `json:"donorName"`
	DonorEmail    string    `json:"donorEmail"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	TargetLabel   string    `json:"targetLabel"`
	TransactionID string    `json:"transactionId"`
	DonatedAt     time.Time `json:"donatedAt"`
	GeneratedAt   time.Time `json:"generatedAt"`
}
