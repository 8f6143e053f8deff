package donor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Shree2124/ngostream-backend/internal/auditlog"
	"github.com/Shree2124/ngostream-backend/utils"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) FindOrCreateByEmail(ctx context.Context, name, email, phone, address string) (*Donor, error) {
	args := m.Called(ctx, name, email, phone, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Donor), args.Error(1)
}

func (m *mockRepo) GetByID(ctx context.Context, id uint) (*Donor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Donor), args.Error(1)
}

func (m *mockRepo) List(ctx context.Context) ([]Donor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Donor), args.Error(1)
}

func (m *mockRepo) ListSummaries(ctx context.Context) ([]DonorSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]DonorSummary), args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, d *Donor) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *mockRepo) DeleteWithDonations(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
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

func TestFindOrCreateNormalizesEmail(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo, new(mockAudit))

	repo.On("FindOrCreateByEmail", mock.Anything, "Ravi", "ravi@example.org", "", "").
		Return(&Donor{ID: 3, Name: "Ravi", Email: "ravi@example.org"}, nil)

	d, err := svc.FindOrCreate(context.Background(), "Ravi", "  RAVI@Example.ORG ", "", "")
	require.NoError(t, err)
	assert.Equal(t, "ravi@example.org", d.Email)
}

func TestFindOrCreateRequiresFields(t *testing.T) {
	svc := NewService(new(mockRepo), new(mockAudit))

	_, err := svc.FindOrCreate(context.Background(), "Ravi", "  ", "", "")
	var apiErr *utils.ErrorResponse
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.StatusCode)

	_, err = svc.FindOrCreate(context.Background(), "  ", "ravi@example.org", "", "")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.StatusCode)
}

func TestUpdateDonorPartial(t *testing.T) {
	repo := new(mockRepo)
	audit := new(mockAudit)
	svc := NewService(repo, audit)

	repo.On("GetByID", mock.Anything, uint(3)).
		Return(&Donor{ID: 3, Name: "Ravi", Email: "ravi@example.org", Phone: "9876543210"}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(d *Donor) bool {
		return d.Name == "Ravi K" && d.Phone == "9876543210"
	})).Return(nil)
	audit.On("LogAction", mock.Anything, mock.Anything, "DONOR_UPDATED", mock.Anything, mock.Anything, "SUCCESS").Return(nil)

	name := "Ravi K"
	d, err := svc.UpdateDonor(context.Background(), 3, UpdateDonorInput{Name: &name}, nil, "")
	require.NoError(t, err)
	assert.Equal(t, "Ravi K", d.Name)
}

func TestDeleteDonorNotFound(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo, new(mockAudit))

	repo.On("GetByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.DeleteDonor(context.Background(), 9, nil, "")
	var apiErr *utils.ErrorResponse
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
	repo.AssertNotCalled(t, "DeleteWithDonations", mock.Anything, mock.Anything)
}

func TestDeleteDonorCascadesDonations(t *testing.T) {
	repo := new(mockRepo)
	audit := new(mockAudit)
	svc := NewService(repo, audit)

	repo.On("GetByID", mock.Anything, uint(3)).
		Return(&Donor{ID: 3, Name: "Ravi", Email: "ravi@example.org"}, nil)
	repo.On("DeleteWithDonations", mock.Anything, uint(3)).Return(nil)
	audit.On("LogAction", mock.Anything, mock.Anything, "DONOR_DELETED", mock.Anything, mock.Anything, "SUCCESS").Return(nil)

	err := svc.DeleteDonor(context.Background(), 3, nil, "")
	require.NoError(t, err)
	repo.AssertCalled(t, "DeleteWithDonations", mock.Anything, uint(3))
}
