package beneficiary

import (
	"context"
	"net/http"
	"regexp"

	"gorm.io/gorm"

	"github.com/Shree2124/ngostream-backend/internal/auditlog"
	"github.com/Shree2124/ngostream-backend/utils"
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

type Service interface {
	CreateBeneficiary(ctx context.Context, input CreateBeneficiaryInput, adminID *uint, ip string) (*Beneficiary, error)
	GetBeneficiary(ctx context.Context, id uint) (*BeneficiaryDetail, error)
	ListBeneficiaries(ctx context.Context) ([]Beneficiary, error)
	UpdateBeneficiary(ctx context.Context, id uint, input UpdateBeneficiaryInput, adminID *uint, ip string) (*Beneficiary, error)
	DeleteBeneficiary(ctx context.Context, id uint, adminID *uint, ip string) error
}

type service struct {
	repo     Repository
	auditSvc auditlog.Service
}

func NewService(repo Repository, auditSvc auditlog.Service) Service {
	return &service{repo: repo, auditSvc: auditSvc}
}

func validateAge(age int) error {
	if age < 0 || age > 120 {
		return utils.BadRequest("age must be between 0 and 120")
	}
	return nil
}

func validatePhone(phone string) error {
	if !phonePattern.MatchString(phone) {
		return utils.BadRequest("phone must be a 10-digit number")
	}
	return nil
}

func (s *service) CreateBeneficiary(ctx context.Context, input CreateBeneficiaryInput, adminID *uint, ip string) (*Beneficiary, error) {
	if err := validateAge(input.Age); err != nil {
		return nil, err
	}
	if err := validatePhone(input.Phone); err != nil {
		return nil, err
	}

	b := &Beneficiary{
		Name:    input.Name,
		Age:     input.Age,
		Gender:  input.Gender,
		Phone:   input.Phone,
		Email:   input.Email,
		Address: input.Address,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, utils.NewError(http.StatusInternalServerError, "failed to create beneficiary")
	}

	s.auditSvc.LogAction(ctx, adminID, "BENEFICIARY_CREATED", map[string]interface{}{
		"beneficiary_id": b.ID,
		"name":           b.Name,
	}, ip, "SUCCESS")

	return b, nil
}

func (s *service) GetBeneficiary(ctx context.Context, id uint) (*BeneficiaryDetail, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NotFound("beneficiary not found")
		}
		return nil, err
	}
	schemes, err := s.repo.SchemeRefs(ctx, id)
	if err != nil {
		return nil, err
	}
	return &BeneficiaryDetail{Beneficiary: *b, Schemes: schemes}, nil
}

func (s *service) ListBeneficiaries(ctx context.Context) ([]Beneficiary, error) {
	return s.repo.List(ctx)
}

func (s *service) UpdateBeneficiary(ctx context.Context, id uint, input UpdateBeneficiaryInput, adminID *uint, ip string) (*Beneficiary, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NotFound("beneficiary not found")
		}
		return nil, err
	}

	if input.Age != nil {
		if err := validateAge(*input.Age); err != nil {
			return nil, err
		}
		b.Age = *input.Age
	}
	if input.Phone != nil {
		if err := validatePhone(*input.Phone); err != nil {
			return nil, err
		}
		b.Phone = *input.Phone
	}
	if input.Name != nil {
		b.Name = *input.Name
	}
	if input.Gender != nil {
		b.Gender = *input.Gender
	}
	if input.Email != nil {
		b.Email = *input.Email
	}
	if input.Address != nil {
		b.Address = *input.Address
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, utils.NewError(http.StatusInternalServerError, "failed to update beneficiary")
	}

	s.auditSvc.LogAction(ctx, adminID, "BENEFICIARY_UPDATED", map[string]interface{}{
		"beneficiary_id": b.ID,
	}, ip, "SUCCESS")

	return b, nil
}

func (s *service) DeleteBeneficiary(ctx context.Context, id uint, adminID *uint, ip string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.NotFound("beneficiary not found")
		}
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return utils.NewError(http.StatusInternalServerError, "failed to delete beneficiary")
	}
	s.auditSvc.LogAction(ctx, adminID, "BENEFICIARY_DELETED", map[string]interface{}{
		"beneficiary_id": id,
	}, ip, "SUCCESS")
	return nil
}
