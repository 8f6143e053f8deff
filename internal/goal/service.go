package goal

import (
	"context"
	"mime/multipart"
	"net/http"

	"gorm.io/gorm"

	"github.com/Shree2124/ngostream-backend/internal/auditlog"
	"github.com/Shree2124/ngostream-backend/utils"
)

type Service interface {
	CreateGoal(ctx context.Context, input CreateGoalInput, adminID *uint, ip string) (*Goal, error)
	GetGoal(ctx context.Context, id uint) (*GoalDetail, error)
	ListGoals(ctx context.Context) ([]Goal, error)
	EditGoal(ctx context.Context, id uint, input EditGoalInput, image multipart.File, adminID *uint, ip string) (*Goal, error)
	DeleteGoal(ctx context.Context, id uint, adminID *uint, ip string) error
}

type service struct {
	repo     Repository
	uploader *utils.Uploader
	auditSvc auditlog.Service
}

func NewService(repo Repository, uploader *utils.Uploader, auditSvc auditlog.Service) Service {
	return &service{repo: repo, uploader: uploader, auditSvc: auditSvc}
}

func (s *service) CreateGoal(ctx context.Context, input CreateGoalInput, adminID *uint, ip string) (*Goal, error) {
	if input.EndDate != nil && !input.EndDate.After(input.StartDate) {
		return nil, utils.BadRequest("endDate must be after startDate")
	}

	status := input.Status
	if status == "" {
		status = StatusActive
	}

	g := &Goal{
		Name:         input.Name,
		Description:  input.Description,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		TargetAmount: input.TargetAmount,
		Status:       status,
	}
	if err := s.repo.Create(ctx, g); err != nil {
		return nil, utils.NewError(http.StatusInternalServerError, "failed to create goal")
	}

	s.auditSvc.LogAction(ctx, adminID, "GOAL_CREATED", map[string]interface{}{
		"goal_id":       g.ID,
		"name":          g.Name,
		"target_amount": g.TargetAmount,
	}, ip, "SUCCESS")

	return g, nil
}

func (s *service) GetGoal(ctx context.Context, id uint) (*GoalDetail, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NotFound("goal not found")
		}
		return nil, err
	}
	donations, err := s.repo.ListDonations(ctx, id)
	if err != nil {
		return nil, err
	}
	return &GoalDetail{Goal: *g, Donations: donations}, nil
}

func (s *service) ListGoals(ctx context.Context) ([]Goal, error) {
	return s.repo.List(ctx)
}

// EditGoal applies a partial field replace. When an image part is present it
// replaces the previous Cloudinary asset.
func (s *service) EditGoal(ctx context.Context, id uint, input EditGoalInput, image multipart.File, adminID *uint, ip string) (*Goal, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NotFound("goal not found")
		}
		return nil, err
	}

	if input.Name != nil {
		g.Name = *input.Name
	}
	if input.Description != nil {
		g.Description = *input.Description
	}
	if input.StartDate != nil {
		g.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		g.EndDate = input.EndDate
	}
	if input.TargetAmount != nil {
		if *input.TargetAmount <= 0 {
			return nil, utils.BadRequest("targetAmount must be positive")
		}
		g.TargetAmount = *input.TargetAmount
	}
	if input.Status != nil {
		switch *input.Status {
		case StatusActive, StatusInactive, StatusCompleted:
			g.Status = *input.Status
		default:
			return nil, utils.BadRequest("invalid goal status")
		}
	}
	if g.EndDate != nil && !g.EndDate.After(g.StartDate) {
		return nil, utils.BadRequest("endDate must be after startDate")
	}

	if image != nil && s.uploader != nil {
		oldURL := g.ImageURL
		url, err := s.uploader.UploadImage(image, "goals")
		if err != nil {
			return nil, utils.NewError(http.StatusBadGateway, "image upload failed")
		}
		g.ImageURL = url
		if oldURL != "" {
			if err := s.uploader.Delete(oldURL); err != nil {
				// Stale asset, not worth failing the edit.
				s.auditSvc.LogAction(ctx, adminID, "GOAL_IMAGE_CLEANUP_FAILED", map[string]interface{}{
					"goal_id": g.ID,
					"url":     oldURL,
				}, ip, "FAILURE")
			}
		}
	}

	if err := s.repo.Update(ctx, g); err != nil {
		return nil, utils.NewError(http.StatusInternalServerError, "failed to update goal")
	}

	s.auditSvc.LogAction(ctx, adminID, "GOAL_UPDATED", map[string]interface{}{
		"goal_id": g.ID,
	}, ip, "SUCCESS")

	return g, nil
}

// DeleteGoal removes the goal together with its attributed donations.
func (s *service) DeleteGoal(ctx context.Context, id uint, adminID *uint, ip string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.NotFound("goal not found")
		}
		return err
	}
	if err := s.repo.DeleteWithDonations(ctx, id); err != nil {
		return utils.NewError(http.StatusInternalServerError, "failed to delete goal")
	}
	s.auditSvc.LogAction(ctx, adminID, "GOAL_DELETED", map[string]interface{}{
		"goal_id": id,
	}, ip, "SUCCESS")
	return nil
}
