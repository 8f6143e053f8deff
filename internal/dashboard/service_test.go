package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) DonationTotals(ctx context.Context) (DonationTotals, error) {
	args := m.Called(ctx)
	return args.Get(0).(DonationTotals), args.Error(1)
}

func (m *mockRepo) DonorCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepo) ActiveGoalCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepo) TopDonor(ctx context.Context) (*TopDonor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TopDonor), args.Error(1)
}

func TestQuickStatsMergesAllQueries(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo)

	repo.On("DonationTotals", mock.Anything).
		Return(DonationTotals{MonetaryTotal: 12500, MonetaryCount: 42, InKindCount: 7}, nil)
	repo.On("DonorCount", mock.Anything).Return(int64(30), nil)
	repo.On("ActiveGoalCount", mock.Anything).Return(int64(4), nil)
	repo.On("TopDonor", mock.Anything).
		Return(&TopDonor{Name: "Ravi", Email: "ravi@example.org", TotalAmount: 5000, DonationCount: 10}, nil)

	stats, err := svc.QuickStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, float64(12500), stats.Totals.MonetaryTotal)
	assert.Equal(t, int64(30), stats.DonorCount)
	assert.Equal(t, int64(4), stats.ActiveGoals)
	require.NotNil(t, stats.TopDonor)
	assert.Equal(t, "Ravi", stats.TopDonor.Name)
}

func TestQuickStatsNoDonorsYet(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo)

	repo.On("DonationTotals", mock.Anything).Return(DonationTotals{}, nil)
	repo.On("DonorCount", mock.Anything).Return(int64(0), nil)
	repo.On("ActiveGoalCount", mock.Anything).Return(int64(0), nil)
	repo.On("TopDonor", mock.Anything).Return(nil, nil)

	stats, err := svc.QuickStats(context.Background())
	require.NoError(t, err)
	assert.Nil(t, stats.TopDonor)
}

func TestQuickStatsPropagatesFailure(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo)

	queryErr := errors.New("connection reset")
	repo.On("DonationTotals", mock.Anything).Return(DonationTotals{}, queryErr)
	repo.On("DonorCount", mock.Anything).Return(int64(0), nil)
	repo.On("ActiveGoalCount", mock.Anything).Return(int64(0), nil)
	repo.On("TopDonor", mock.Anything).Return(nil, nil)

	_, err := svc.QuickStats(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, queryErr)
}
