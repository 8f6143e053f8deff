package impact

import (
	"context"
	"encoding/json"
	"log"
	"mime/multipart"
	"net/http"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Shree2124/ngostream-backend/internal/auditlog"
	"github.com/Shree2124/ngostream-backend/utils"
)

type Service interface {
	CreateImpact(ctx context.Context, input CreateImpactInput, images []multipart.File, adminID *uint, ip string) (*Impact, error)
	GetImpact(ctx context.Context, id uint) (*Impact, error)
	ListImpacts(ctx context.Context) ([]Impact, error)
	UpdateImpact(ctx context.Context, id uint, input UpdateImpactInput, images []multipart.File, adminID *uint, ip string) (*Impact, error)
	DeleteImpact(ctx context.Context, id uint, adminID *uint, ip string) error
}

type service struct {
	repo     Repository
	uploader *utils.Uploader
	auditSvc auditlog.Service
}

func NewService(repo Repository, uploader *utils.Uploader, auditSvc auditlog.Service) Service {
	return &service{repo: repo, uploader: uploader, auditSvc: auditSvc}
}

func (s *service) uploadImages(images []multipart.File) ([]string, error) {
	if s.uploader == nil || len(images) == 0 {
		return nil, nil
	}
	urls := make([]string, 0, len(images))
	for _, img := range images {
		url, err := s.uploader.UploadImage(img, "impacts")
		if err != nil {
			return nil, utils.NewError(http.StatusBadGateway, "image upload failed")
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func imagesJSON(urls []string) datatypes.JSON {
	if len(urls) == 0 {
		return nil
	}
	raw, _ := json.Marshal(urls)
	return datatypes.JSON(raw)
}

func (s *service) CreateImpact(ctx context.Context, input CreateImpactInput, images []multipart.File, adminID *uint, ip string) (*Impact, error) {
	urls, err := s.uploadImages(images)
	if err != nil {
		return nil, err
	}

	i := &Impact{
		EventID:     input.EventID,
		GoalID:      input.GoalID,
		Title:       input.Title,
		Description: input.Description,
		Images:      imagesJSON(urls),
	}
	if err := s.repo.Create(ctx, i); err != nil {
		return nil, utils.NewError(http.StatusInternalServerError, "failed to create impact story")
	}

	s.auditSvc.LogAction(ctx, adminID, "IMPACT_CREATED", map[string]interface{}{
		"impact_id": i.ID,
		"images":    len(urls),
	}, ip, "SUCCESS")

	return i, nil
}

func (s *service) GetImpact(ctx context.Context, id uint) (*Impact, error) {
	i, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NotFound("impact story not found")
		}
		return nil, err
	}
	return i, nil
}

func (s *service) ListImpacts(ctx context.Context) ([]Impact, error) {
	return s.repo.List(ctx)
}

// UpdateImpact applies partial text changes; freshly uploaded images are
// appended to the existing set.
func (s *service) UpdateImpact(ctx context.Context, id uint, input UpdateImpactInput, images []multipart.File, adminID *uint, ip string) (*Impact, error) {
	i, err := s.GetImpact(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		i.Title = *input.Title
	}
	if input.Description != nil {
		i.Description = *input.Description
	}

	urls, err := s.uploadImages(images)
	if err != nil {
		return nil, err
	}
	if len(urls) > 0 {
		var existing []string
		if len(i.Images) > 0 {
			if err := json.Unmarshal(i.Images, &existing); err != nil {
				log.Printf("⚠️ Corrupt image list on impact %d, resetting: %v", i.ID, err)
				existing = nil
			}
		}
		i.Images = imagesJSON(append(existing, urls...))
	}

	if err := s.repo.Update(ctx, i); err != nil {
		return nil, utils.NewError(http.StatusInternalServerError, "failed to update impact story")
	}

	s.auditSvc.LogAction(ctx, adminID, "IMPACT_UPDATED", map[string]interface{}{
		"impact_id": i.ID,
	}, ip, "SUCCESS")

	return i, nil
}

func (s *service) DeleteImpact(ctx context.Context, id uint, adminID *uint, ip string) error {
	i, err := s.GetImpact(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return utils.NewError(http.StatusInternalServerError, "failed to delete impact story")
	}

	// Asset cleanup is best-effort.
	if s.uploader != nil && len(i.Images) > 0 {
		var urls []string
		if err := json.Unmarshal(i.Images, &urls); err == nil {
			for _, url := range urls {
				if err := s.uploader.Delete(url); err != nil {
					log.Printf("⚠️ Failed to delete impact image %s: %v", url, err)
				}
			}
		}
	}

	s.auditSvc.LogAction(ctx, adminID, "IMPACT_DELETED", map[string]interface{}{
		"impact_id": id,
	}, ip, "SUCCESS")
	return nil
}
