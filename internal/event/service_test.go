package event

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Shree2124/ngostream-backend/internal/auditlog"
	"github.com/Shree2124/ngostream-backend/internal/member"
	"github.com/Shree2124/ngostream-backend/utils"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, e *Event, participants []Participant) error {
	args := m.Called(ctx, e, participants)
	e.ID = 1
	return args.Error(0)
}

func (m *mockRepo) GetByID(ctx context.Context, id uint) (*Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Event), args.Error(1)
}

func (m *mockRepo) List(ctx context.Context) ([]EventSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]EventSummary), args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, e *Event, participants []Participant) error {
	args := m.Called(ctx, e, participants)
	return args.Error(0)
}

func (m *mockRepo) SweepStatuses(ctx context.Context, now time.Time) error {
	args := m.Called(ctx, now)
	return args.Error(0)
}

func (m *mockRepo) DueForReminder(ctx context.Context, from, to time.Time) ([]ReminderRecipient, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ReminderRecipient), args.Error(1)
}

func (m *mockRepo) MarkReminded(ctx context.Context, eventID uint) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}

func (m *mockRepo) ListParticipants(ctx context.Context, eventID uint) ([]ParticipantDetail, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ParticipantDetail), args.Error(1)
}

func (m *mockRepo) IsRegistered(ctx context.Context, eventID, memberID uint) (bool, error) {
	args := m.Called(ctx, eventID, memberID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo) Register(ctx context.Context, p *Participant) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockRepo) AddFeedback(ctx context.Context, f *Feedback) error {
	args := m.Called(ctx, f)
	f.ID = 1
	return args.Error(0)
}

func (m *mockRepo) ListFeedback(ctx context.Context, eventID uint) ([]Feedback, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Feedback), args.Error(1)
}

type mockMemberSvc struct {
	mock.Mock
}

func (m *mockMemberSvc) FindOrCreate(ctx context.Context, fullName, email, phone, role string) (*member.Member, error) {
	args := m.Called(ctx, fullName, email, phone, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}

func (m *mockMemberSvc) GetMember(ctx context.Context, id uint) (*member.MemberWithHistory, error) {
	args := m.Called(ctx, id)
	return nil, args.Error(1)
}

func (m *mockMemberSvc) GetMembers(ctx context.Context, ids []uint) ([]member.Member, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]member.Member), args.Error(1)
}

func (m *mockMemberSvc) ListMembers(ctx context.Context) ([]member.Member, error) {
	args := m.Called(ctx)
	return nil, args.Error(1)
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

func newTestService(repo *mockRepo, members *mockMemberSvc, audit *mockAudit, now time.Time) Service {
	svc := NewService(repo, members, audit).(*service)
	svc.now = func() time.Time { return now }
	return svc
}

func TestDeriveStatus(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 12, 18, 0, 0, 0, time.UTC)
	e := &Event{StartDate: start, EndDate: end}

	assert.Equal(t, StatusUpcoming, e.DeriveStatus(start.Add(-time.Minute)))
	assert.Equal(t, StatusHappening, e.DeriveStatus(start))
	assert.Equal(t, StatusHappening, e.DeriveStatus(start.Add(24*time.Hour)))
	assert.Equal(t, StatusHappening, e.DeriveStatus(end))
	assert.Equal(t, StatusCompleted, e.DeriveStatus(end.Add(time.Second)))
}

func TestCreateEventRejectsBadDates(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := newTestService(new(mockRepo), new(mockMemberSvc), new(mockAudit), now)

	_, err := svc.CreateEvent(context.Background(), CreateEventInput{
		Name:      "Charity Run",
		StartDate: now.Add(48 * time.Hour),
		EndDate:   now.Add(24 * time.Hour),
	}, nil, "")
	var apiErr *utils.ErrorResponse
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.StatusCode)
}

func TestCreateEventRejectsInvalidRole(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := newTestService(new(mockRepo), new(mockMemberSvc), new(mockAudit), now)

	_, err := svc.CreateEvent(context.Background(), CreateEventInput{
		Name:         "Charity Run",
		StartDate:    now.Add(24 * time.Hour),
		EndDate:      now.Add(48 * time.Hour),
		Participants: []ParticipantInput{{MemberID: 1, Role: "Sponsor"}},
	}, nil, "")
	var apiErr *utils.ErrorResponse
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "invalid participant role")
}

func TestCreateEventRejectsUnknownMember(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	members := new(mockMemberSvc)
	svc := newTestService(new(mockRepo), members, new(mockAudit), now)

	members.On("GetMembers", mock.Anything, []uint{1, 2}).
		Return([]member.Member{{ID: 1}}, nil)

	_, err := svc.CreateEvent(context.Background(), CreateEventInput{
		Name:      "Charity Run",
		StartDate: now.Add(24 * time.Hour),
		EndDate:   now.Add(48 * time.Hour),
		Participants: []ParticipantInput{
			{MemberID: 1, Role: "Organizer"},
			{MemberID: 2, Role: "Volunteer"},
		},
	}, nil, "")
	var apiErr *utils.ErrorResponse
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Message, "do not exist")
}

func TestCreateEventDerivesStatus(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := new(mockRepo)
	audit := new(mockAudit)
	svc := newTestService(repo, new(mockMemberSvc), audit, now)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *Event) bool {
		return e.Status == StatusUpcoming
	}), mock.Anything).Return(nil)
	audit.On("LogAction", mock.Anything, mock.Anything, "EVENT_CREATED", mock.Anything, mock.Anything, "SUCCESS").Return(nil)

	e, err := svc.CreateEvent(context.Background(), CreateEventInput{
		Name:      "Charity Run",
		StartDate: now.Add(24 * time.Hour),
		EndDate:   now.Add(48 * time.Hour),
	}, nil, "")
	require.NoError(t, err)
	assert.Equal(t, StatusUpcoming, e.Status)
}

func TestListEventsSweepsFirst(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := new(mockRepo)
	svc := newTestService(repo, new(mockMemberSvc), new(mockAudit), now)

	repo.On("SweepStatuses", mock.Anything, now).Return(nil)
	repo.On("List", mock.Anything).Return([]EventSummary{}, nil)

	_, err := svc.ListEvents(context.Background())
	require.NoError(t, err)
	repo.AssertCalled(t, "SweepStatuses", mock.Anything, now)
}

func TestRegisterDuplicateRejected(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := new(mockRepo)
	members := new(mockMemberSvc)
	svc := newTestService(repo, members, new(mockAudit), now)

	repo.On("GetByID", mock.Anything, uint(4)).
		Return(&Event{ID: 4, Name: "Food Drive", StartDate: now, EndDate: now.Add(time.Hour)}, nil)
	members.On("FindOrCreate", mock.Anything, "Meera", "meera@example.org", "9876543210", "Attendee").
		Return(&member.Member{ID: 8, FullName: "Meera", Email: "meera@example.org"}, nil)
	repo.On("IsRegistered", mock.Anything, uint(4), uint(8)).Return(true, nil)

	_, err := svc.Register(context.Background(), RegisterInput{
		EventID:  4,
		FullName: "Meera",
		Email:    "meera@example.org",
		Phone:    "9876543210",
	})
	var apiErr *utils.ErrorResponse
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.StatusCode)
	repo.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestRegisterNewAttendee(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := new(mockRepo)
	members := new(mockMemberSvc)
	audit := new(mockAudit)
	svc := newTestService(repo, members, audit, now)

	repo.On("GetByID", mock.Anything, uint(4)).
		Return(&Event{ID: 4, Name: "Food Drive", StartDate: now, EndDate: now.Add(time.Hour)}, nil)
	members.On("FindOrCreate", mock.Anything, "Meera", "meera@example.org", "", "Attendee").
		Return(&member.Member{ID: 8, FullName: "Meera", Email: "meera@example.org"}, nil)
	repo.On("IsRegistered", mock.Anything, uint(4), uint(8)).Return(false, nil)
	repo.On("Register", mock.Anything, mock.MatchedBy(func(p *Participant) bool {
		return p.EventID == 4 && p.MemberID == 8 && p.Role == "Attendee"
	})).Return(nil)
	audit.On("LogAction", mock.Anything, mock.Anything, "EVENT_REGISTRATION", mock.Anything, mock.Anything, "SUCCESS").Return(nil)

	p, err := svc.Register(context.Background(), RegisterInput{
		EventID:  4,
		FullName: "Meera",
		Email:    "meera@example.org",
	})
	require.NoError(t, err)
	assert.Equal(t, "Attendee", p.Role)
	repo.AssertNumberOfCalls(t, "Register", 1)
}

func TestRegisterUnknownEvent(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := new(mockRepo)
	svc := newTestService(repo, new(mockMemberSvc), new(mockAudit), now)

	repo.On("GetByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Register(context.Background(), RegisterInput{EventID: 99, FullName: "X", Email: "x@y.z"})
	var apiErr *utils.ErrorResponse
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
}

func TestSendRemindersMarksEachEventOnce(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := new(mockRepo)
	svc := newTestService(repo, new(mockMemberSvc), new(mockAudit), now)

	repo.On("DueForReminder", mock.Anything, now, now.Add(24*time.Hour)).Return([]ReminderRecipient{
		{EventID: 5, EventName: "Food Drive", FullName: "Asha", Email: "asha@example.org", StartDate: now.Add(6 * time.Hour)},
		{EventID: 5, EventName: "Food Drive", FullName: "Ravi", Email: "ravi@example.org", StartDate: now.Add(6 * time.Hour)},
		{EventID: 6, EventName: "Charity Run", FullName: "Meera", Email: "meera@example.org", StartDate: now.Add(20 * time.Hour)},
	}, nil)
	repo.On("MarkReminded", mock.Anything, uint(5)).Return(nil)
	repo.On("MarkReminded", mock.Anything, uint(6)).Return(nil)

	require.NoError(t, svc.SendReminders(context.Background()))

	// Two attendees on event 5, but the event is marked exactly once.
	repo.AssertNumberOfCalls(t, "MarkReminded", 2)
	repo.AssertCalled(t, "MarkReminded", mock.Anything, uint(5))
	repo.AssertCalled(t, "MarkReminded", mock.Anything, uint(6))
}

func TestSendRemindersNothingDue(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := new(mockRepo)
	svc := newTestService(repo, new(mockMemberSvc), new(mockAudit), now)

	repo.On("DueForReminder", mock.Anything, now, now.Add(24*time.Hour)).
		Return([]ReminderRecipient{}, nil)

	require.NoError(t, svc.SendReminders(context.Background()))
	repo.AssertNotCalled(t, "MarkReminded", mock.Anything, mock.Anything)
}

func TestAddFeedbackRatingBounds(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := new(mockRepo)
	svc := newTestService(repo, new(mockMemberSvc), new(mockAudit), now)

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.AddFeedback(context.Background(), 1, FeedbackInput{Rating: rating})
		var apiErr *utils.ErrorResponse
		require.ErrorAs(t, err, &apiErr, "rating %d", rating)
		assert.Equal(t, 400, apiErr.StatusCode)
	}

	repo.On("GetByID", mock.Anything, uint(1)).
		Return(&Event{ID: 1, StartDate: now, EndDate: now.Add(time.Hour)}, nil)
	repo.On("AddFeedback", mock.Anything, mock.Anything).Return(nil)

	f, err := svc.AddFeedback(context.Background(), 1, FeedbackInput{Rating: 5, FeedbackText: "Great"})
	require.NoError(t, err)
	assert.Equal(t, 5, f.Rating)
}
