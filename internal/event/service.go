package event

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/Shree2124/ngostream-backend/internal/auditlog"
	"github.com/Shree2124/ngostream-backend/internal/member"
	"github.com/Shree2124/ngostream-backend/internal/notification"
	"github.com/Shree2124/ngostream-backend/utils"
)

type Service interface {
	CreateEvent(ctx context.Context, input CreateEventInput, adminID *uint, ip string) (*Event, error)
	ListEvents(ctx context.Context) ([]EventSummary, error)
	GetEvent(ctx context.Context, id uint) (*EventDetail, error)
	EditEvent(ctx context.Context, id uint, input EditEventInput, adminID *uint, ip string) (*Event, error)
	Register(ctx context.Context, input RegisterInput) (*Participant, error)
	AddFeedback(ctx context.Context, eventID uint, input FeedbackInput) (*Feedback, error)
	SendReminders(ctx context.Context) error
}

type service struct {
	repo      Repository
	memberSvc member.Service
	auditSvc  auditlog.Service
	now       func() time.Time
}

func NewService(repo Repository, memberSvc member.Service, auditSvc auditlog.Service) Service {
	return &service{
		repo:      repo,
		memberSvc: memberSvc,
		auditSvc:  auditSvc,
		now:       time.Now,
	}
}

func (s *service) CreateEvent(ctx context.Context, input CreateEventInput, adminID *uint, ip string) (*Event, error) {
	if !input.EndDate.After(input.StartDate) {
		return nil, utils.BadRequest("endDate must be after startDate")
	}

	participants, err := s.resolveParticipants(ctx, input.Participants)
	if err != nil {
		return nil, err
	}

	e := &Event{
		Name:        input.Name,
		Description: input.Description,
		Location:    input.Location,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
	}
	e.Status = e.DeriveStatus(s.now())

	if err := s.repo.Create(ctx, e, participants); err != nil {
		return nil, utils.NewError(http.StatusInternalServerError, "failed to create event")
	}

	s.auditSvc.LogAction(ctx, adminID, "EVENT_CREATED", map[string]interface{}{
		"event_id":     e.ID,
		"name":         e.Name,
		"participants": len(participants),
	}, ip, "SUCCESS")

	return e, nil
}

// resolveParticipants validates each role against the whitelist and verifies
// the referenced members exist.
func (s *service) resolveParticipants(ctx context.Context, inputs []ParticipantInput) ([]Participant, error) {
	if len(inputs) == 0 {
		return nil, nil
	}

	ids := make([]uint, 0, len(inputs))
	seen := make(map[uint]bool, len(inputs))
	for _, in := range inputs {
		if !ValidRoles[in.Role] {
			return nil, utils.BadRequest(fmt.Sprintf("invalid participant role %q", in.Role))
		}
		if seen[in.MemberID] {
			return nil, utils.BadRequest(fmt.Sprintf("member %d listed more than once", in.MemberID))
		}
		seen[in.MemberID] = true
		ids = append(ids, in.MemberID)
	}

	members, err := s.memberSvc.GetMembers(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(members) != len(ids) {
		return nil, utils.BadRequest("one or more participant members do not exist")
	}

	participants := make([]Participant, 0, len(inputs))
	for _, in := range inputs {
		participants = append(participants, Participant{
			MemberID: in.MemberID,
			Role:     in.Role,
			AddedAt:  s.now(),
		})
	}
	return participants, nil
}

// ListEvents recomputes all statuses before querying so stale lifecycle
// values never reach the client.
func (s *service) ListEvents(ctx context.Context) ([]EventSummary, error) {
	if err := s.repo.SweepStatuses(ctx, s.now()); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

func (s *service) GetEvent(ctx context.Context, id uint) (*EventDetail, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NotFound("event not found")
		}
		return nil, err
	}

	participants, err := s.repo.ListParticipants(ctx, id)
	if err != nil {
		return nil, err
	}
	feedback, err := s.repo.ListFeedback(ctx, id)
	if err != nil {
		return nil, err
	}

	e.Status = e.DeriveStatus(s.now())
	return &EventDetail{Event: *e, Participants: participants, Feedback: feedback}, nil
}

func (s *service) EditEvent(ctx context.Context, id uint, input EditEventInput, adminID *uint, ip string) (*Event, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NotFound("event not found")
		}
		return nil, err
	}

	if !input.EndDate.After(input.StartDate) {
		return nil, utils.BadRequest("endDate must be after startDate")
	}

	participants, err := s.resolveParticipants(ctx, input.Participants)
	if err != nil {
		return nil, err
	}

	e.Name = input.Name
	e.Description = input.Description
	e.Location = input.Location
	e.StartDate = input.StartDate
	e.EndDate = input.EndDate
	e.Status = e.DeriveStatus(s.now())

	if err := s.repo.Update(ctx, e, participants); err != nil {
		return nil, utils.NewError(http.StatusInternalServerError, "failed to update event")
	}

	s.auditSvc.LogAction(ctx, adminID, "EVENT_UPDATED", map[string]interface{}{
		"event_id": e.ID,
	}, ip, "SUCCESS")

	return e, nil
}

// Register signs a person up as an Attendee. Duplicate registrations are
// rejected and attendance grows by exactly one per unique registration.
func (s *service) Register(ctx context.Context, input RegisterInput) (*Participant, error) {
	e, err := s.repo.GetByID(ctx, input.EventID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NotFound("event not found")
		}
		return nil, err
	}

	m, err := s.memberSvc.FindOrCreate(ctx, input.FullName, input.Email, input.Phone, "Attendee")
	if err != nil {
		return nil, err
	}

	registered, err := s.repo.IsRegistered(ctx, e.ID, m.ID)
	if err != nil {
		return nil, err
	}
	if registered {
		return nil, utils.BadRequest("member already registered for this event")
	}

	p := &Participant{
		EventID:  e.ID,
		MemberID: m.ID,
		Role:     "Attendee",
		AddedAt:  s.now(),
	}
	if err := s.repo.Register(ctx, p); err != nil {
		return nil, utils.NewError(http.StatusInternalServerError, "registration failed")
	}

	s.auditSvc.LogAction(ctx, nil, "EVENT_REGISTRATION", map[string]interface{}{
		"event_id":  e.ID,
		"member_id": m.ID,
	}, "", "SUCCESS")

	notification.Enqueue(ctx, notification.Job{
		Type:    notification.JobEventRegistration,
		Email:   m.Email,
		Name:    m.FullName,
		Subject: fmt.Sprintf("Registration confirmed: %s", e.Name),
		Data: map[string]string{
			"event_name": e.Name,
			"location":   e.Location,
			"start_date": e.StartDate.Format("02 Jan 2006 15:04"),
		},
	})

	return p, nil
}

// reminderWindow is how far ahead of the start date reminder emails go out.
const reminderWindow = 24 * time.Hour

// SendReminders queues a reminder job for every registered member of events
// starting within the next 24 hours, then marks each event so a later sweep
// never mails the same attendees twice.
func (s *service) SendReminders(ctx context.Context) error {
	now := s.now()
	recipients, err := s.repo.DueForReminder(ctx, now, now.Add(reminderWindow))
	if err != nil {
		return err
	}

	reminded := make(map[uint]bool)
	for _, rcp := range recipients {
		notification.Enqueue(ctx, notification.Job{
			Type:    notification.JobEventReminder,
			Email:   rcp.Email,
			Name:    rcp.FullName,
			Subject: fmt.Sprintf("Reminder: %s starts soon", rcp.EventName),
			Data: map[string]string{
				"event_name": rcp.EventName,
				"location":   rcp.Location,
				"start_date": rcp.StartDate.Format("02 Jan 2006 15:04"),
			},
		})
		reminded[rcp.EventID] = true
	}

	for id := range reminded {
		if err := s.repo.MarkReminded(ctx, id); err != nil {
			log.Printf("⚠️ Failed to mark event %d reminded: %v", id, err)
		}
	}
	return nil
}

// RunReminderLoop periodically sweeps for events starting soon and queues
// their reminder emails. Blocks until the context is cancelled.
func RunReminderLoop(ctx context.Context, svc Service, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if err := svc.SendReminders(ctx); err != nil {
			log.Printf("⚠️ Event reminder sweep failed: %v", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *service) AddFeedback(ctx context.Context, eventID uint, input FeedbackInput) (*Feedback, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, utils.BadRequest("rating must be between 1 and 5")
	}

	if _, err := s.repo.GetByID(ctx, eventID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NotFound("event not found")
		}
		return nil, err
	}

	f := &Feedback{
		EventID:      eventID,
		Rating:       input.Rating,
		FeedbackText: input.FeedbackText,
	}
	if err := s.repo.AddFeedback(ctx, f); err != nil {
		return nil, utils.NewError(http.StatusInternalServerError, "failed to record feedback")
	}
	return f, nil
}
