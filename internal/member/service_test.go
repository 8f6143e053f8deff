package member

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Shree2124/ngostream-backend/utils"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) FindOrCreateByEmail(ctx context.Context, fullName, email, phone, role string) (*Member, error) {
	args := m.Called(ctx, fullName, email, phone, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *mockRepo) GetByID(ctx context.Context, id uint) (*Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *mockRepo) GetByIDs(ctx context.Context, ids []uint) ([]Member, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Member), args.Error(1)
}

func (m *mockRepo) List(ctx context.Context) ([]Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Member), args.Error(1)
}

func (m *mockRepo) ParticipationHistory(ctx context.Context, memberID uint) ([]Participation, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Participation), args.Error(1)
}

func TestFindOrCreateNormalizesEmail(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo)

	repo.On("FindOrCreateByEmail", mock.Anything, "Meera", "meera@example.org", "", "Attendee").
		Return(&Member{ID: 8, FullName: "Meera", Email: "meera@example.org"}, nil)

	m, err := svc.FindOrCreate(context.Background(), "Meera", " MEERA@Example.org ", "", "Attendee")
	require.NoError(t, err)
	assert.Equal(t, uint(8), m.ID)
}

func TestFindOrCreateRequiresEmail(t *testing.T) {
	svc := NewService(new(mockRepo))

	_, err := svc.FindOrCreate(context.Background(), "Meera", "   ", "", "Attendee")
	var apiErr *utils.ErrorResponse
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.StatusCode)
}

func TestGetMemberWithHistory(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, uint(8)).
		Return(&Member{ID: 8, FullName: "Meera"}, nil)
	repo.On("ParticipationHistory", mock.Anything, uint(8)).
		Return([]Participation{{EventID: 4, EventName: "Food Drive", Role: "Attendee"}}, nil)

	m, err := svc.GetMember(context.Background(), 8)
	require.NoError(t, err)
	assert.Len(t, m.ParticipationHistory, 1)
	assert.Equal(t, "Food Drive", m.ParticipationHistory[0].EventName)
}

func TestGetMemberNotFound(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetMember(context.Background(), 99)
	var apiErr *utils.ErrorResponse
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
}
