package donation

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	stripe "github.com/stripe/stripe-go/v84"
	"gorm.io/gorm"

	"github.com/Shree2124/ngostream-backend/config"
	"github.com/Shree2124/ngostream-backend/internal/auditlog"
	"github.com/Shree2124/ngostream-backend/internal/donor"
	"github.com/Shree2124/ngostream-backend/internal/notification"
	"github.com/Shree2124/ngostream-backend/utils"
)

type Service interface {
	Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResponse, error)
	ConfirmPayment(ctx context.Context, req PaymentSuccessRequest) (*Donation, error)
	GetDonations(ctx context.Context, donationType string) ([]DonationWithDonor, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest, adminID *uint, ip string) error
}

type service struct {
	repo     Repository
	donorSvc donor.Service
	payments CheckoutClient
	uploader *utils.Uploader
	auditSvc auditlog.Service
	cfg      *config.Config
}

func NewService(repo Repository, donorSvc donor.Service, payments CheckoutClient, uploader *utils.Uploader, auditSvc auditlog.Service, cfg *config.Config) Service {
	return &service{
		repo:     repo,
		donorSvc: donorSvc,
		payments: payments,
		uploader: uploader,
		auditSvc: auditSvc,
		cfg:      cfg,
	}
}

// Checkout validates the donation payload, fetches-or-creates the donor and
// either opens a Stripe checkout session (Monetary) or records the donation
// immediately (In-Kind).
func (s *service) Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResponse, error) {
	if err := validateCheckout(req); err != nil {
		return nil, err
	}

	d, err := s.donorSvc.FindOrCreate(ctx, req.DonorName, req.DonorEmail, req.DonorPhone, req.DonorAddress)
	if err != nil {
		return nil, err
	}

	if req.DonationType == TypeInKind {
		return s.checkoutInKind(ctx, req, d)
	}
	return s.checkoutMonetary(ctx, req, d)
}

func validateCheckout(req CheckoutRequest) error {
	switch req.DonationType {
	case TypeMonetary:
		if req.Amount <= 0 {
			return utils.BadRequest("monetary donation requires a positive amount")
		}
		targets := 0
		if req.GoalID != nil {
			targets++
		}
		if req.EventID != nil {
			targets++
		}
		if req.BeneficiaryID != nil {
			targets++
		}
		if targets != 1 {
			return utils.BadRequest("monetary donation requires exactly one of goalId, eventId or beneficiaryId")
		}
	case TypeInKind:
		if strings.TrimSpace(req.ItemName) == "" {
			return utils.BadRequest("in-kind donation requires an item name")
		}
		if req.Quantity <= 0 {
			return utils.BadRequest("in-kind donation requires a positive quantity")
		}
	default:
		return utils.BadRequest("invalid donation type")
	}
	return nil
}

func (s *service) checkoutInKind(ctx context.Context, req CheckoutRequest, dn *donor.Donor) (*CheckoutResponse, error) {
	donation := &Donation{
		DonationType:   TypeInKind,
		DonorID:        dn.ID,
		GoalID:         req.GoalID,
		EventID:        req.EventID,
		BeneficiaryID:  req.BeneficiaryID,
		ItemName:       req.ItemName,
		Quantity:       req.Quantity,
		EstimatedValue: req.EstimatedValue,
		InKindStatus:   InKindPending,
		PaymentStatus:  StatusPending,
		Note:           req.Note,
	}
	if err := s.repo.Create(ctx, donation); err != nil {
		return nil, fmt.Errorf("failed to record in-kind donation: %w", err)
	}

	s.auditSvc.LogAction(ctx, nil, "DONATION_INITIATED", map[string]interface{}{
		"donation_id":   donation.ID,
		"donation_type": TypeInKind,
		"item_name":     req.ItemName,
		"quantity":      req.Quantity,
		"donor_id":      dn.ID,
	}, req.IPAddress, "SUCCESS")

	return &CheckoutResponse{DonationID: donation.ID}, nil
}

func (s *service) checkoutMonetary(ctx context.Context, req CheckoutRequest, dn *donor.Donor) (*CheckoutResponse, error) {
	if err := s.verifyTarget(ctx, req); err != nil {
		return nil, err
	}

	currency := strings.ToLower(req.Currency)
	if currency == "" {
		currency = "usd"
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String("Donation"),
				},
				// Rounded, not truncated: 19.99 must charge 1999 cents,
				// matching the amount credited on confirmation.
				UnitAmount: stripe.Int64(int64(math.Round(req.Amount * 100))),
			},
			Quantity: stripe.Int64(1),
		}},
		CustomerEmail: stripe.String(dn.Email),
		SuccessURL:    stripe.String(s.cfg.FrontendURL + "/donation/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:     stripe.String(s.cfg.FrontendURL + "/donation/cancelled"),
	}
	params.AddMetadata("donor_id", strconv.FormatUint(uint64(dn.ID), 10))
	if req.GoalID != nil {
		params.AddMetadata("goal_id", strconv.FormatUint(uint64(*req.GoalID), 10))
	}
	if req.EventID != nil {
		params.AddMetadata("event_id", strconv.FormatUint(uint64(*req.EventID), 10))
	}
	if req.BeneficiaryID != nil {
		params.AddMetadata("beneficiary_id", strconv.FormatUint(uint64(*req.BeneficiaryID), 10))
	}

	sess, err := s.payments.CreateSession(params)
	if err != nil {
		s.auditSvc.LogAction(ctx, nil, "DONATION_INITIATED", map[string]interface{}{
			"donation_type": TypeMonetary,
			"amount":        req.Amount,
			"donor_id":      dn.ID,
			"error":         err.Error(),
		}, req.IPAddress, "FAILURE")
		return nil, utils.NewError(http.StatusBadGateway, "payment session creation failed")
	}

	donation := &Donation{
		DonationType:    TypeMonetary,
		DonorID:         dn.ID,
		GoalID:          req.GoalID,
		EventID:         req.EventID,
		BeneficiaryID:   req.BeneficiaryID,
		Amount:          req.Amount,
		Currency:        strings.ToUpper(currency),
		PaymentStatus:   StatusPending,
		StripeSessionID: &sess.ID,
		Note:            req.Note,
	}
	if err := s.repo.Create(ctx, donation); err != nil {
		return nil, fmt.Errorf("failed to record donation: %w", err)
	}

	s.auditSvc.LogAction(ctx, nil, "DONATION_INITIATED", map[string]interface{}{
		"donation_id":   donation.ID,
		"donation_type": TypeMonetary,
		"amount":        req.Amount,
		"session_id":    sess.ID,
		"donor_id":      dn.ID,
	}, req.IPAddress, "SUCCESS")

	return &CheckoutResponse{
		DonationID:     donation.ID,
		SessionID:      sess.ID,
		SessionURL:     sess.URL,
		Amount:         req.Amount,
		Currency:       strings.ToUpper(currency),
		PublishableKey: s.cfg.StripePublishableKey,
	}, nil
}

func (s *service) verifyTarget(ctx context.Context, req CheckoutRequest) error {
	var table string
	var id uint
	switch {
	case req.GoalID != nil:
		table, id = "goals", *req.GoalID
	case req.EventID != nil:
		table, id = "events", *req.EventID
	case req.BeneficiaryID != nil:
		table, id = "beneficiaries", *req.BeneficiaryID
	}
	exists, err := s.repo.TargetExists(ctx, table, id)
	if err != nil {
		return err
	}
	if !exists {
		return utils.NotFound("donation target not found")
	}
	return nil
}

// ConfirmPayment verifies the checkout session with Stripe, marks the
// donation successful and credits the attributed target. Replayed
// confirmations for an already-successful donation are a recorded no-op, so
// at-least-once webhook delivery never surfaces an error or double-credits.
func (s *service) ConfirmPayment(ctx context.Context, req PaymentSuccessRequest) (*Donation, error) {
	sess, err := s.payments.RetrieveSession(req.SessionID)
	if err != nil {
		s.auditSvc.LogAction(ctx, nil, "DONATION_VERIFICATION_FAILED", map[string]interface{}{
			"session_id": req.SessionID,
			"error":      err.Error(),
		}, req.IPAddress, "FAILURE")
		return nil, utils.NewError(http.StatusBadGateway, "payment session fetch failed")
	}

	donation, err := s.repo.GetBySessionID(ctx, req.SessionID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NotFound("donation record not found for given session")
		}
		return nil, err
	}

	if donation.PaymentStatus == StatusSuccessful {
		s.auditSvc.LogAction(ctx, nil, "DONATION_ALREADY_PROCESSED", map[string]interface{}{
			"donation_id": donation.ID,
			"session_id":  req.SessionID,
			"amount":      donation.Amount,
		}, req.IPAddress, "SUCCESS")
		return donation, nil
	}

	if sess.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		if err := s.repo.MarkFailed(ctx, donation.ID); err != nil {
			log.Printf("⚠️ Failed to mark donation %d failed: %v", donation.ID, err)
		}
		s.auditSvc.LogAction(ctx, nil, "DONATION_FAILED", map[string]interface{}{
			"donation_id":    donation.ID,
			"session_id":     req.SessionID,
			"payment_status": string(sess.PaymentStatus),
		}, req.IPAddress, "FAILURE")
		return nil, utils.BadRequest("payment has not been completed")
	}

	paymentID := req.SessionID
	if sess.PaymentIntent != nil && sess.PaymentIntent.ID != "" {
		paymentID = sess.PaymentIntent.ID
	}
	method := "card"
	if len(sess.PaymentMethodTypes) > 0 {
		method = string(sess.PaymentMethodTypes[0])
	}

	now := time.Now()
	credited, err := s.repo.ConfirmMonetary(ctx, donation, paymentID, method, now)
	if err != nil {
		s.auditSvc.LogAction(ctx, nil, "DONATION_UPDATE_FAILED", map[string]interface{}{
			"donation_id": donation.ID,
			"session_id":  req.SessionID,
			"error":       err.Error(),
		}, req.IPAddress, "FAILURE")
		return nil, err
	}
	if !credited {
		// Lost the race to a concurrent confirmation: the winner already
		// credited the target and issued the receipt.
		donation.PaymentStatus = StatusSuccessful
		s.auditSvc.LogAction(ctx, nil, "DONATION_ALREADY_PROCESSED", map[string]interface{}{
			"donation_id": donation.ID,
			"session_id":  req.SessionID,
			"amount":      donation.Amount,
		}, req.IPAddress, "SUCCESS")
		return donation, nil
	}

	donation.PaymentStatus = StatusSuccessful
	donation.StripePaymentID = &paymentID
	donation.PaymentMethod = method
	donation.DonatedAt = &now

	s.auditSvc.LogAction(ctx, nil, "DONATION_SUCCESS", map[string]interface{}{
		"donation_id": donation.ID,
		"session_id":  req.SessionID,
		"payment_id":  paymentID,
		"amount":      donation.Amount,
	}, req.IPAddress, "SUCCESS")

	// Receipt generation and email delivery are best-effort side effects.
	s.issueReceipt(ctx, donation)

	return donation, nil
}

func (s *service) issueReceipt(ctx context.Context, d *Donation) {
	dn, err := s.donorSvc.GetDonor(ctx, d.DonorID)
	if err != nil {
		log.Printf("⚠️ Receipt skipped, donor %d lookup failed: %v", d.DonorID, err)
		return
	}

	receipt := Receipt{
		ReceiptNumber: fmt.Sprintf("RCP-%d-%d", d.DonorID, d.ID),
		DonorName:     dn.Name,
		DonorEmail:    dn.Email,
		Amount:        d.Amount,
		Currency:      d.Currency,
		TargetLabel:   s.targetLabel(ctx, d),
		TransactionID: paymentRef(d),
		DonatedAt:     derefTime(d.DonatedAt, d.CreatedAt),
		GeneratedAt:   time.Now(),
	}

	pdfBytes, err := BuildReceiptPDF(receipt)
	if err != nil {
		log.Printf("⚠️ Receipt PDF generation failed for donation %d: %v", d.ID, err)
		return
	}

	var url string
	if s.uploader != nil {
		url, err = s.uploader.UploadFile(bytes.NewReader(pdfBytes), "receipts", receipt.ReceiptNumber+".pdf")
		if err != nil {
			log.Printf("⚠️ Receipt upload failed for donation %d: %v", d.ID, err)
			return
		}
		if err := s.repo.UpdateReceiptURL(ctx, d.ID, url); err != nil {
			log.Printf("⚠️ Failed to store receipt URL for donation %d: %v", d.ID, err)
		}
	}

	notification.Enqueue(ctx, notification.Job{
		Type:    notification.JobDonationReceipt,
		Email:   dn.Email,
		Name:    dn.Name,
		Subject: "Your donation receipt",
		Data: map[string]string{
			"amount":         fmt.Sprintf("%.2f %s", d.Amount, d.Currency),
			"receipt_number": receipt.ReceiptNumber,
			"receipt_url":    url,
			"target":         receipt.TargetLabel,
		},
	})
}

func (s *service) targetLabel(ctx context.Context, d *Donation) string {
	var table, kind string
	var id uint
	switch {
	case d.GoalID != nil:
		table, kind, id = "goals", "Goal", *d.GoalID
	case d.EventID != nil:
		table, kind, id = "events", "Event", *d.EventID
	case d.BeneficiaryID != nil:
		table, kind, id = "beneficiaries", "Beneficiary", *d.BeneficiaryID
	default:
		return "General Fund"
	}
	name, err := s.repo.TargetName(ctx, table, id)
	if err != nil || name == "" {
		return kind
	}
	return fmt.Sprintf("%s: %s", kind, name)
}

func paymentRef(d *Donation) string {
	if d.StripePaymentID != nil {
		return *d.StripePaymentID
	}
	if d.StripeSessionID != nil {
		return *d.StripeSessionID
	}
	return fmt.Sprintf("DON-%d", d.ID)
}

func derefTime(t *time.Time, fallback time.Time) time.Time {
	if t != nil {
		return *t
	}
	return fallback
}

func (s *service) GetDonations(ctx context.Context, donationType string) ([]DonationWithDonor, error) {
	switch donationType {
	case TypeMonetary, TypeInKind, "all", "":
	default:
		return nil, utils.BadRequest("invalid donation type filter")
	}
	return s.repo.ListWithDonor(ctx, donationType)
}

func (s *service) UpdateStatus(ctx context.Context, req UpdateStatusRequest, adminID *uint, ip string) error {
	d, err := s.repo.GetByID(ctx, req.DonationID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.NotFound("donation not found")
		}
		return err
	}
	if d.DonationType != TypeInKind {
		return utils.BadRequest("status updates apply to in-kind donations only")
	}
	if err := s.repo.UpdateInKindStatus(ctx, d.ID, req.Status); err != nil {
		return err
	}
	s.auditSvc.LogAction(ctx, adminID, "DONATION_STATUS_UPDATED", map[string]interface{}{
		"donation_id": d.ID,
		"status":      req.Status,
	}, ip, "SUCCESS")
	return nil
}
