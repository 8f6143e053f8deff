package beneficiary

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

func (m *mockRepo) Create(ctx context.Context, b *Beneficiary) error {
	args := m.Called(ctx, b)
	b.ID = 1
	return args.Error(0)
}

func (m *mockRepo) GetByID(ctx context.Context, id uint) (*Beneficiary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Beneficiary), args.Error(1)
}

func (m *mockRepo) List(ctx context.Context) ([]Beneficiary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Beneficiary), args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, b *Beneficiary) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRepo) SchemeRefs(ctx context.Context, beneficiaryID uint) ([]SchemeRef, error) {
	args := m.Called(ctx, beneficiaryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]SchemeRef), args.Error(1)
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

func TestCreateBeneficiaryValidation(t *testing.T) {
	tests := []struct {
		name  string
		input CreateBeneficiaryInput
		msg   string
	}{
		{"negative age", CreateBeneficiaryInput{Name: "Kiran", Age: -1, Phone: "9876543210"}, "between 0 and 120"},
		{"age too high", CreateBeneficiaryInput{Name: "Kiran", Age: 121, Phone: "9876543210"}, "between 0 and 120"},
		{"short phone", CreateBeneficiaryInput{Name: "Kiran", Age: 30, Phone: "98765"}, "10-digit"},
		{"alpha phone", CreateBeneficiaryInput{Name: "Kiran", Age: 30, Phone: "98765abcde"}, "10-digit"},
	}

	svc := NewService(new(mockRepo), new(mockAudit))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateBeneficiary(context.Background(), tt.input, nil, "")
			var apiErr *utils.ErrorResponse
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, 400, apiErr.StatusCode)
			assert.Contains(t, apiErr.Message, tt.msg)
		})
	}
}

func TestCreateBeneficiary(t *testing.T) {
	repo := new(mockRepo)
	audit := new(mockAudit)
	svc := NewService(repo, audit)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(b *Beneficiary) bool {
		return b.Name == "Kiran" && b.Age == 30 && b.Phone == "9876543210"
	})).Return(nil)
	audit.On("LogAction", mock.Anything, mock.Anything, "BENEFICIARY_CREATED", mock.Anything, mock.Anything, "SUCCESS").Return(nil)

	b, err := svc.CreateBeneficiary(context.Background(), CreateBeneficiaryInput{
		Name:  "Kiran",
		Age:   30,
		Phone: "9876543210",
	}, nil, "")
	require.NoError(t, err)
	assert.NotZero(t, b.ID)
}

func TestUpdateBeneficiaryRejectsBadPhone(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo, new(mockAudit))

	repo.On("GetByID", mock.Anything, uint(1)).
		Return(&Beneficiary{ID: 1, Name: "Kiran", Age: 30, Phone: "9876543210"}, nil)

	bad := "12345"
	_, err := svc.UpdateBeneficiary(context.Background(), 1, UpdateBeneficiaryInput{Phone: &bad}, nil, "")
	var apiErr *utils.ErrorResponse
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.StatusCode)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestGetBeneficiaryIncludesSchemes(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo, new(mockAudit))

	repo.On("GetByID", mock.Anything, uint(1)).
		Return(&Beneficiary{ID: 1, Name: "Kiran", Age: 30}, nil)
	repo.On("SchemeRefs", mock.Anything, uint(1)).Return([]SchemeRef{
		{SchemeID: 3, SchemeName: "Scholarships", Benefited: true},
	}, nil)

	detail, err := svc.GetBeneficiary(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, detail.Schemes, 1)
	assert.Equal(t, "Scholarships", detail.Schemes[0].SchemeName)
}

func TestGetBeneficiaryNotFound(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo, new(mockAudit))

	repo.On("GetByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetBeneficiary(context.Background(), 9)
	var apiErr *utils.ErrorResponse
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
}

func TestDeleteBeneficiary(t *testing.T) {
	repo := new(mockRepo)
	audit := new(mockAudit)
	svc := NewService(repo, audit)

	repo.On("GetByID", mock.Anything, uint(1)).Return(&Beneficiary{ID: 1}, nil)
	repo.On("Delete", mock.Anything, uint(1)).Return(nil)
	audit.On("LogAction", mock.Anything, mock.Anything, "BENEFICIARY_DELETED", mock.Anything, mock.Anything, "SUCCESS").Return(nil)

	require.NoError(t, svc.DeleteBeneficiary(context.Background(), 1, nil, ""))
	repo.AssertCalled(t, "Delete", mock.Anything, uint(1))
}
