package donation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	stripe "github.com/stripe/stripe-go/v84"
	"gorm.io/gorm"

	"github.com/Shree2124/ngostream-backend/config"
	"github.com/Shree2124/ngostream-backend/internal/auditlog"
	"github.com/Shree2124/ngostream-backend/internal/donor"
	"github.com/Shree2124/ngostream-backend/utils"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, d *Donation) error {
	args := m.Called(ctx, d)
	d.ID = 1
	return args.Error(0)
}

func (m *mockRepo) GetByID(ctx context.Context, id uint) (*Donation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Donation), args.Error(1)
}

func (m *mockRepo) GetBySessionID(ctx context.Context, sessionID string) (*Donation, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Donation), args.Error(1)
}

func (m *mockRepo) ListWithDonor(ctx context.Context, donationType string) ([]DonationWithDonor, error) {
	args := m.Called(ctx, donationType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]DonationWithDonor), args.Error(1)
}

func (m *mockRepo) ConfirmMonetary(ctx context.Context, d *Donation, paymentID, method string, donatedAt time.Time) (bool, error) {
	args := m.Called(ctx, d, paymentID, method, donatedAt)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo) MarkFailed(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRepo) UpdateInKindStatus(ctx context.Context, id uint, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *mockRepo) UpdateReceiptURL(ctx context.Context, id uint, url string) error {
	args := m.Called(ctx, id, url)
	return args.Error(0)
}

func (m *mockRepo) TargetExists(ctx context.Context, table string, id uint) (bool, error) {
	args := m.Called(ctx, table, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo) TargetName(ctx context.Context, table string, id uint) (string, error) {
	args := m.Called(ctx, table, id)
	return args.String(0), args.Error(1)
}

type mockDonorSvc struct {
	mock.Mock
}

func (m *mockDonorSvc) FindOrCreate(ctx context.Context, name, email, phone, address string) (*donor.Donor, error) {
	args := m.Called(ctx, name, email, phone, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*donor.Donor), args.Error(1)
}

func (m *mockDonorSvc) GetDonor(ctx context.Context, id uint) (*donor.Donor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*donor.Donor), args.Error(1)
}

func (m *mockDonorSvc) ListDonors(ctx context.Context) ([]donor.Donor, error) {
	args := m.Called(ctx)
	return nil, args.Error(1)
}

func (m *mockDonorSvc) ListSummaries(ctx context.Context) ([]donor.DonorSummary, error) {
	args := m.Called(ctx)
	return nil, args.Error(1)
}

func (m *mockDonorSvc) UpdateDonor(ctx context.Context, id uint, input donor.UpdateDonorInput, adminID *uint, ip string) (*donor.Donor, error) {
	args := m.Called(ctx, id, input, adminID, ip)
	return nil, args.Error(1)
}

func (m *mockDonorSvc) DeleteDonor(ctx context.Context, id uint, adminID *uint, ip string) error {
	args := m.Called(ctx, id, adminID, ip)
	return args.Error(0)
}

type mockPayments struct {
	mock.Mock
}

func (m *mockPayments) CreateSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	args := m.Called(params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.CheckoutSession), args.Error(1)
}

func (m *mockPayments) RetrieveSession(sessionID string) (*stripe.CheckoutSession, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.CheckoutSession), args.Error(1)
}

type mockAudit struct {
	mock.Mock
}

func (m *mockAudit) LogAction(ctx context.Context, adminID *uint, action string, details map[string]interface{}, ip string, status string) error {
	m.Called(ctx, adminID, action, details, ip, status)
	return nil
}

func (m *mockAudit) GetAuditLogs(ctx context.Context, filter auditlog.AuditLogFilter) (*auditlog.PaginatedAuditLogs, error) {
	return nil, nil
}

func (m *mockAudit) GetAuditLogByID(ctx context.Context, id uint) (*auditlog.AuditLogResponse, error) {
	return nil, nil
}

func newTestService(repo *mockRepo, donors *mockDonorSvc, payments *mockPayments, audit *mockAudit) Service {
	cfg := &config.Config{FrontendURL: "http://localhost:5173", StripePublishableKey: "pk_test"}
	return NewService(repo, donors, payments, nil, audit, cfg)
}

func uintPtr(v uint) *uint { return &v }

func TestCheckoutValidation(t *testing.T) {
	tests := []struct {
		name string
		req  CheckoutRequest
		msg  string
	}{
		{
			name: "monetary without amount",
			req:  CheckoutRequest{DonationType: TypeMonetary, DonorName: "A", DonorEmail: "a@b.c", GoalID: uintPtr(1)},
			msg:  "positive amount",
		},
		{
			name: "monetary without target",
			req:  CheckoutRequest{DonationType: TypeMonetary, DonorName: "A", DonorEmail: "a@b.c", Amount: 50},
			msg:  "exactly one",
		},
		{
			name: "monetary with two targets",
			req:  CheckoutRequest{DonationType: TypeMonetary, DonorName: "A", DonorEmail: "a@b.c", Amount: 50, GoalID: uintPtr(1), EventID: uintPtr(2)},
			msg:  "exactly one",
		},
		{
			name: "in-kind without item",
			req:  CheckoutRequest{DonationType: TypeInKind, DonorName: "A", DonorEmail: "a@b.c", Quantity: 3},
			msg:  "item name",
		},
		{
			name: "in-kind without quantity",
			req:  CheckoutRequest{DonationType: TypeInKind, DonorName: "A", DonorEmail: "a@b.c", ItemName: "Blankets"},
			msg:  "positive quantity",
		},
	}

	svc := newTestService(new(mockRepo), new(mockDonorSvc), new(mockPayments), new(mockAudit))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Checkout(context.Background(), tt.req)
			require.Error(t, err)
			var apiErr *utils.ErrorResponse
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, 400, apiErr.StatusCode)
			assert.Contains(t, apiErr.Message, tt.msg)
		})
	}
}

func TestCheckoutInKindPersistsImmediately(t *testing.T) {
	repo := new(mockRepo)
	donors := new(mockDonorSvc)
	audit := new(mockAudit)
	svc := newTestService(repo, donors, new(mockPayments), audit)

	donors.On("FindOrCreate", mock.Anything, "Asha", "asha@example.org", "", "").
		Return(&donor.Donor{ID: 7, Name: "Asha", Email: "asha@example.org"}, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(d *Donation) bool {
		return d.DonationType == TypeInKind && d.ItemName == "Blankets" &&
			d.Quantity == 40 && d.InKindStatus == InKindPending && d.DonorID == 7
	})).Return(nil)
	audit.On("LogAction", mock.Anything, mock.Anything, "DONATION_INITIATED", mock.Anything, mock.Anything, "SUCCESS").Return(nil)

	resp, err := svc.Checkout(context.Background(), CheckoutRequest{
		DonationType: TypeInKind,
		DonorName:    "Asha",
		DonorEmail:   "asha@example.org",
		ItemName:     "Blankets",
		Quantity:     40,
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.DonationID)
	assert.Empty(t, resp.SessionURL)
	repo.AssertExpectations(t)
}

func TestCheckoutMonetaryCreatesSession(t *testing.T) {
	repo := new(mockRepo)
	donors := new(mockDonorSvc)
	payments := new(mockPayments)
	audit := new(mockAudit)
	svc := newTestService(repo, donors, payments, audit)

	donors.On("FindOrCreate", mock.Anything, "Ravi", "ravi@example.org", "", "").
		Return(&donor.Donor{ID: 3, Name: "Ravi", Email: "ravi@example.org"}, nil)
	repo.On("TargetExists", mock.Anything, "goals", uint(11)).Return(true, nil)
	payments.On("CreateSession", mock.Anything).
		Return(&stripe.CheckoutSession{ID: "cs_test_123", URL: "https://checkout.stripe.com/pay/cs_test_123"}, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(d *Donation) bool {
		return d.DonationType == TypeMonetary && d.Amount == 100 &&
			d.StripeSessionID != nil && *d.StripeSessionID == "cs_test_123" &&
			d.PaymentStatus == StatusPending
	})).Return(nil)
	audit.On("LogAction", mock.Anything, mock.Anything, "DONATION_INITIATED", mock.Anything, mock.Anything, "SUCCESS").Return(nil)

	resp, err := svc.Checkout(context.Background(), CheckoutRequest{
		DonationType: TypeMonetary,
		DonorName:    "Ravi",
		DonorEmail:   "ravi@example.org",
		Amount:       100,
		GoalID:       uintPtr(11),
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_test_123", resp.SessionID)
	assert.Equal(t, "https://checkout.stripe.com/pay/cs_test_123", resp.SessionURL)
	assert.Equal(t, "pk_test", resp.PublishableKey)
}

func TestCheckoutMonetaryRoundsToCents(t *testing.T) {
	repo := new(mockRepo)
	donors := new(mockDonorSvc)
	payments := new(mockPayments)
	audit := new(mockAudit)
	svc := newTestService(repo, donors, payments, audit)

	donors.On("FindOrCreate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&donor.Donor{ID: 3, Email: "ravi@example.org"}, nil)
	repo.On("TargetExists", mock.Anything, "goals", uint(11)).Return(true, nil)
	// 19.99 * 100 is 1998.999... in float64; the charge must still be 1999.
	payments.On("CreateSession", mock.MatchedBy(func(p *stripe.CheckoutSessionParams) bool {
		return *p.LineItems[0].PriceData.UnitAmount == 1999
	})).Return(&stripe.CheckoutSession{ID: "cs_cents", URL: "https://checkout.stripe.com/pay/cs_cents"}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	audit.On("LogAction", mock.Anything, mock.Anything, "DONATION_INITIATED", mock.Anything, mock.Anything, "SUCCESS").Return(nil)

	_, err := svc.Checkout(context.Background(), CheckoutRequest{
		DonationType: TypeMonetary,
		DonorName:    "Ravi",
		DonorEmail:   "ravi@example.org",
		Amount:       19.99,
		GoalID:       uintPtr(11),
	})
	require.NoError(t, err)
	payments.AssertExpectations(t)
}

func TestCheckoutMonetaryMissingTarget(t *testing.T) {
	repo := new(mockRepo)
	donors := new(mockDonorSvc)
	svc := newTestService(repo, donors, new(mockPayments), new(mockAudit))

	donors.On("FindOrCreate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&donor.Donor{ID: 3}, nil)
	repo.On("TargetExists", mock.Anything, "goals", uint(99)).Return(false, nil)

	_, err := svc.Checkout(context.Background(), CheckoutRequest{
		DonationType: TypeMonetary,
		DonorName:    "Ravi",
		DonorEmail:   "ravi@example.org",
		Amount:       100,
		GoalID:       uintPtr(99),
	})
	var apiErr *utils.ErrorResponse
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
}

func TestConfirmPaymentReplayIsNoOp(t *testing.T) {
	repo := new(mockRepo)
	payments := new(mockPayments)
	audit := new(mockAudit)
	svc := newTestService(repo, new(mockDonorSvc), payments, audit)

	sessionID := "cs_done"
	payments.On("RetrieveSession", sessionID).
		Return(&stripe.CheckoutSession{ID: sessionID, PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid}, nil)
	repo.On("GetBySessionID", mock.Anything, sessionID).Return(&Donation{
		ID:              5,
		DonationType:    TypeMonetary,
		Amount:          100,
		PaymentStatus:   StatusSuccessful,
		StripeSessionID: &sessionID,
		GoalID:          uintPtr(11),
	}, nil)
	audit.On("LogAction", mock.Anything, mock.Anything, "DONATION_ALREADY_PROCESSED", mock.Anything, mock.Anything, "SUCCESS").Return(nil)

	d, err := svc.ConfirmPayment(context.Background(), PaymentSuccessRequest{SessionID: sessionID})
	require.NoError(t, err)
	assert.Equal(t, StatusSuccessful, d.PaymentStatus)

	// The attribution increment must not run a second time.
	repo.AssertNotCalled(t, "ConfirmMonetary", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	audit.AssertCalled(t, "LogAction", mock.Anything, mock.Anything, "DONATION_ALREADY_PROCESSED", mock.Anything, mock.Anything, "SUCCESS")
}

func TestConfirmPaymentUnpaidSessionFails(t *testing.T) {
	repo := new(mockRepo)
	payments := new(mockPayments)
	audit := new(mockAudit)
	svc := newTestService(repo, new(mockDonorSvc), payments, audit)

	sessionID := "cs_unpaid"
	payments.On("RetrieveSession", sessionID).
		Return(&stripe.CheckoutSession{ID: sessionID, PaymentStatus: stripe.CheckoutSessionPaymentStatusUnpaid}, nil)
	repo.On("GetBySessionID", mock.Anything, sessionID).Return(&Donation{
		ID:              6,
		DonationType:    TypeMonetary,
		PaymentStatus:   StatusPending,
		StripeSessionID: &sessionID,
	}, nil)
	repo.On("MarkFailed", mock.Anything, uint(6)).Return(nil)
	audit.On("LogAction", mock.Anything, mock.Anything, "DONATION_FAILED", mock.Anything, mock.Anything, "FAILURE").Return(nil)

	_, err := svc.ConfirmPayment(context.Background(), PaymentSuccessRequest{SessionID: sessionID})
	var apiErr *utils.ErrorResponse
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.StatusCode)
	repo.AssertCalled(t, "MarkFailed", mock.Anything, uint(6))
}

func TestConfirmPaymentSuccessCreditsTarget(t *testing.T) {
	repo := new(mockRepo)
	payments := new(mockPayments)
	donors := new(mockDonorSvc)
	audit := new(mockAudit)
	svc := newTestService(repo, donors, payments, audit)

	sessionID := "cs_ok"
	payments.On("RetrieveSession", sessionID).Return(&stripe.CheckoutSession{
		ID:            sessionID,
		PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid,
		PaymentIntent: &stripe.PaymentIntent{ID: "pi_123"},
	}, nil)
	repo.On("GetBySessionID", mock.Anything, sessionID).Return(&Donation{
		ID:              9,
		DonationType:    TypeMonetary,
		DonorID:         3,
		Amount:          250,
		Currency:        "USD",
		PaymentStatus:   StatusPending,
		StripeSessionID: &sessionID,
		GoalID:          uintPtr(11),
	}, nil)
	repo.On("ConfirmMonetary", mock.Anything, mock.Anything, "pi_123", "card", mock.Anything).Return(true, nil)
	audit.On("LogAction", mock.Anything, mock.Anything, "DONATION_SUCCESS", mock.Anything, mock.Anything, "SUCCESS").Return(nil)

	// Receipt side effect lookups, best-effort.
	donors.On("GetDonor", mock.Anything, uint(3)).
		Return(&donor.Donor{ID: 3, Name: "Ravi", Email: "ravi@example.org"}, nil)
	repo.On("TargetName", mock.Anything, "goals", uint(11)).Return("Water Wells", nil)

	d, err := svc.ConfirmPayment(context.Background(), PaymentSuccessRequest{SessionID: sessionID})
	require.NoError(t, err)
	assert.Equal(t, StatusSuccessful, d.PaymentStatus)
	require.NotNil(t, d.StripePaymentID)
	assert.Equal(t, "pi_123", *d.StripePaymentID)
	repo.AssertCalled(t, "ConfirmMonetary", mock.Anything, mock.Anything, "pi_123", "card", mock.Anything)
}

func TestConfirmPaymentRaceLoserSkipsReceipt(t *testing.T) {
	repo := new(mockRepo)
	payments := new(mockPayments)
	donors := new(mockDonorSvc)
	audit := new(mockAudit)
	svc := newTestService(repo, donors, payments, audit)

	sessionID := "cs_race"
	payments.On("RetrieveSession", sessionID).Return(&stripe.CheckoutSession{
		ID:            sessionID,
		PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid,
		PaymentIntent: &stripe.PaymentIntent{ID: "pi_race"},
	}, nil)
	repo.On("GetBySessionID", mock.Anything, sessionID).Return(&Donation{
		ID:              12,
		DonationType:    TypeMonetary,
		DonorID:         3,
		Amount:          100,
		PaymentStatus:   StatusPending,
		StripeSessionID: &sessionID,
		GoalID:          uintPtr(11),
	}, nil)
	// A concurrent confirmation won the row update between the read and here.
	repo.On("ConfirmMonetary", mock.Anything, mock.Anything, "pi_race", "card", mock.Anything).Return(false, nil)
	audit.On("LogAction", mock.Anything, mock.Anything, "DONATION_ALREADY_PROCESSED", mock.Anything, mock.Anything, "SUCCESS").Return(nil)

	d, err := svc.ConfirmPayment(context.Background(), PaymentSuccessRequest{SessionID: sessionID})
	require.NoError(t, err)
	assert.Equal(t, StatusSuccessful, d.PaymentStatus)

	// The winner already issued the receipt and the success audit entry.
	donors.AssertNotCalled(t, "GetDonor", mock.Anything, mock.Anything)
	audit.AssertNotCalled(t, "LogAction", mock.Anything, mock.Anything, "DONATION_SUCCESS", mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirmPaymentUnknownSession(t *testing.T) {
	repo := new(mockRepo)
	payments := new(mockPayments)
	svc := newTestService(repo, new(mockDonorSvc), payments, new(mockAudit))

	payments.On("RetrieveSession", "cs_missing").
		Return(&stripe.CheckoutSession{ID: "cs_missing", PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid}, nil)
	repo.On("GetBySessionID", mock.Anything, "cs_missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.ConfirmPayment(context.Background(), PaymentSuccessRequest{SessionID: "cs_missing"})
	var apiErr *utils.ErrorResponse
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
}

func TestUpdateStatusRejectsMonetary(t *testing.T) {
	repo := new(mockRepo)
	svc := newTestService(repo, new(mockDonorSvc), new(mockPayments), new(mockAudit))

	repo.On("GetByID", mock.Anything, uint(4)).
		Return(&Donation{ID: 4, DonationType: TypeMonetary}, nil)

	err := svc.UpdateStatus(context.Background(), UpdateStatusRequest{DonationID: 4, Status: InKindReceived}, nil, "")
	var apiErr *utils.ErrorResponse
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.StatusCode)
}

func TestUpdateStatusMarksInKindRejected(t *testing.T) {
	repo := new(mockRepo)
	audit := new(mockAudit)
	svc := newTestService(repo, new(mockDonorSvc), new(mockPayments), audit)

	repo.On("GetByID", mock.Anything, uint(4)).
		Return(&Donation{ID: 4, DonationType: TypeInKind, InKindStatus: InKindPending}, nil)
	repo.On("UpdateInKindStatus", mock.Anything, uint(4), InKindRejected).Return(nil)
	audit.On("LogAction", mock.Anything, mock.Anything, "DONATION_STATUS_UPDATED", mock.Anything, mock.Anything, "SUCCESS").Return(nil)

	err := svc.UpdateStatus(context.Background(), UpdateStatusRequest{DonationID: 4, Status: InKindRejected}, nil, "")
	require.NoError(t, err)
	repo.AssertCalled(t, "UpdateInKindStatus", mock.Anything, uint(4), InKindRejected)
}
