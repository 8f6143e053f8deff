package donor

import (
	"context"
	"net/http"
	"strings"

	"github.com/Shree2124/ngostream-backend/internal/auditlog"
	"github.com/Shree2124/ngostream-backend/utils"
	"gorm.io/gorm"
)

type Service interface {
	FindOrCreate(ctx context.Context, name, email, phone, address string) (*Donor, error)
	GetDonor(ctx context.Context, id uint) (*Donor, error)
	ListDonors(ctx context.Context) ([]Donor, error)
	ListSummaries(ctx context.Context) ([]DonorSummary, error)
	UpdateDonor(ctx context.Context, id uint, input UpdateDonorInput, adminID *uint, ip string) (*Donor, error)
	DeleteDonor(ctx context.Context, id uint, adminID *uint, ip string) error
}

type service struct {
	repo     Repository
	auditSvc auditlog.Service
}

func NewService(repo Repository, auditSvc auditlog.Service) Service {
	return &service{repo: repo, auditSvc: auditSvc}
}

func (s *service) FindOrCreate(ctx context.Context, name, email, phone, address string) (*Donor, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, utils.BadRequest("donor email is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, utils.BadRequest("donor name is required")
	}
	return s.repo.FindOrCreateByEmail(ctx, name, email, phone, address)
}

func (s *service) GetDonor(ctx context.Context, id uint) (*Donor, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NotFound("donor not found")
		}
		return nil, err
	}
	return d, nil
}

func (s *service) ListDonors(ctx context.Context) ([]Donor, error) {
	return s.repo.List(ctx)
}

func (s *service) ListSummaries(ctx context.Context) ([]DonorSummary, error) {
	return s.repo.ListSummaries(ctx)
}

func (s *service) UpdateDonor(ctx context.Context, id uint, input UpdateDonorInput, adminID *uint, ip string) (*Donor, error) {
	d, err := s.GetDonor(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		d.Name = *input.Name
	}
	if input.Phone != nil {
		d.Phone = *input.Phone
	}
	if input.Address != nil {
		d.Address = *input.Address
	}
	if err := s.repo.Update(ctx, d); err != nil {
		return nil, utils.NewError(http.StatusInternalServerError, "failed to update donor")
	}
	s.auditSvc.LogAction(ctx, adminID, "DONOR_UPDATED", map[string]interface{}{
		"donor_id": d.ID,
	}, ip, "SUCCESS")
	return d, nil
}

func (s *service) DeleteDonor(ctx context.Context, id uint, adminID *uint, ip string) error {
	if _, err := s.GetDonor(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteWithDonations(ctx, id); err != nil {
		return utils.NewError(http.StatusInternalServerError, "failed to delete donor")
	}
	s.auditSvc.LogAction(ctx, adminID, "DONOR_DELETED", map[string]interface{}{
		"donor_id": id,
	}, ip, "SUCCESS")
	return nil
}
