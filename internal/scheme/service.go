package scheme

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Shree2124/ngostream-backend/internal/auditlog"
	"github.com/Shree2124/ngostream-backend/internal/beneficiary"
	"github.com/Shree2124/ngostream-backend/internal/notification"
	"github.com/Shree2124/ngostream-backend/utils"
)

type Service interface {
	CreateScheme(ctx context.Context, input CreateSchemeInput, adminID *uint, ip string) (*Scheme, error)
	GetScheme(ctx context.Context, id uint) (*SchemeDetail, error)
	ListSchemes(ctx context.Context) ([]Scheme, error)
	UpdateScheme(ctx context.Context, id uint, input UpdateSchemeInput, adminID *uint, ip string) (*Scheme, error)
	DeleteScheme(ctx context.Context, id uint, adminID *uint, ip string) error

	Enroll(ctx context.Context, input EnrollInput, adminID *uint, ip string) (*Enrollment, error)
	MarkBenefited(ctx context.Context, input EnrollInput, adminID *uint, ip string) error
}

type service struct {
	repo           Repository
	beneficiarySvc beneficiary.Service
	auditSvc       auditlog.Service
}

func NewService(repo Repository, beneficiarySvc beneficiary.Service, auditSvc auditlog.Service) Service {
	return &service{repo: repo, beneficiarySvc: beneficiarySvc, auditSvc: auditSvc}
}

func toJSON(values []string) datatypes.JSON {
	if len(values) == 0 {
		return nil
	}
	raw, _ := json.Marshal(values)
	return datatypes.JSON(raw)
}

func (s *service) CreateScheme(ctx context.Context, input CreateSchemeInput, adminID *uint, ip string) (*Scheme, error) {
	if !input.EndDate.After(input.StartDate) {
		return nil, utils.BadRequest("endDate must be after startDate")
	}
	if _, err := s.repo.GetByName(ctx, input.Name); err == nil {
		return nil, utils.BadRequest("a scheme with this name already exists")
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	sch := &Scheme{
		Name:        input.Name,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Budget:      input.Budget,
		MinAge:      input.MinAge,
		MaxAge:      input.MaxAge,
		Benefits:    toJSON(input.Benefits),
		Documents:   toJSON(input.Documents),
	}
	if err := s.repo.Create(ctx, sch); err != nil {
		return nil, utils.NewError(http.StatusInternalServerError, "failed to create scheme")
	}

	s.auditSvc.LogAction(ctx, adminID, "SCHEME_CREATED", map[string]interface{}{
		"scheme_id": sch.ID,
		"name":      sch.Name,
	}, ip, "SUCCESS")

	return sch, nil
}

func (s *service) GetScheme(ctx context.Context, id uint) (*SchemeDetail, error) {
	sch, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NotFound("scheme not found")
		}
		return nil, err
	}
	roster, err := s.repo.Roster(ctx, id)
	if err != nil {
		return nil, err
	}
	return &SchemeDetail{Scheme: *sch, Enrolled: roster}, nil
}

func (s *service) ListSchemes(ctx context.Context) ([]Scheme, error) {
	return s.repo.List(ctx)
}

func (s *service) UpdateScheme(ctx context.Context, id uint, input UpdateSchemeInput, adminID *uint, ip string) (*Scheme, error) {
	sch, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NotFound("scheme not found")
		}
		return nil, err
	}

	if input.Name != nil {
		sch.Name = *input.Name
	}
	if input.Description != nil {
		sch.Description = *input.Description
	}
	if input.StartDate != nil {
		sch.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		sch.EndDate = *input.EndDate
	}
	if !sch.EndDate.After(sch.StartDate) {
		return nil, utils.BadRequest("endDate must be after startDate")
	}
	if input.Budget != nil {
		sch.Budget = *input.Budget
	}
	if input.MinAge != nil {
		sch.MinAge = input.MinAge
	}
	if input.MaxAge != nil {
		sch.MaxAge = input.MaxAge
	}
	if input.Benefits != nil {
		sch.Benefits = toJSON(input.Benefits)
	}
	if input.Documents != nil {
		sch.Documents = toJSON(input.Documents)
	}
	if input.Suspend != nil {
		if *input.Suspend {
			sch.Status = StatusSuspended
		} else if sch.Status == StatusSuspended {
			// Clearing suspension lets BeforeSave re-derive the status.
			sch.Status = ""
		}
	}

	if err := s.repo.Update(ctx, sch); err != nil {
		return nil, utils.NewError(http.StatusInternalServerError, "failed to update scheme")
	}

	s.auditSvc.LogAction(ctx, adminID, "SCHEME_UPDATED", map[string]interface{}{
		"scheme_id": sch.ID,
	}, ip, "SUCCESS")

	return sch, nil
}

func (s *service) DeleteScheme(ctx context.Context, id uint, adminID *uint, ip string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.NotFound("scheme not found")
		}
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return utils.NewError(http.StatusInternalServerError, "failed to delete scheme")
	}
	s.auditSvc.LogAction(ctx, adminID, "SCHEME_DELETED", map[string]interface{}{
		"scheme_id": id,
	}, ip, "SUCCESS")
	return nil
}

// Enroll adds a beneficiary to a scheme after checking the age bounds and
// the no-duplicate-enrollment rule.
func (s *service) Enroll(ctx context.Context, input EnrollInput, adminID *uint, ip string) (*Enrollment, error) {
	sch, err := s.repo.GetByID(ctx, input.SchemeID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NotFound("scheme not found")
		}
		return nil, err
	}

	b, err := s.beneficiarySvc.GetBeneficiary(ctx, input.BeneficiaryID)
	if err != nil {
		return nil, err
	}

	if sch.MinAge != nil && b.Age < *sch.MinAge {
		return nil, utils.BadRequest(fmt.Sprintf("beneficiary must be at least %d years old", *sch.MinAge))
	}
	if sch.MaxAge != nil && b.Age > *sch.MaxAge {
		return nil, utils.BadRequest(fmt.Sprintf("beneficiary must be at most %d years old", *sch.MaxAge))
	}

	if _, err := s.repo.GetEnrollment(ctx, sch.ID, b.ID); err == nil {
		return nil, utils.BadRequest("beneficiary is already enrolled in this scheme")
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	e := &Enrollment{SchemeID: sch.ID, BeneficiaryID: b.ID, EnrolledAt: time.Now()}
	if err := s.repo.Enroll(ctx, e); err != nil {
		return nil, utils.NewError(http.StatusInternalServerError, "enrollment failed")
	}

	s.auditSvc.LogAction(ctx, adminID, "SCHEME_ENROLLMENT", map[string]interface{}{
		"scheme_id":      sch.ID,
		"beneficiary_id": b.ID,
	}, ip, "SUCCESS")

	if b.Email != "" {
		notification.Enqueue(ctx, notification.Job{
			Type:    notification.JobSchemeEnrollment,
			Email:   b.Email,
			Name:    b.Name,
			Subject: fmt.Sprintf("Enrolled in %s", sch.Name),
			Data: map[string]string{
				"scheme_name": sch.Name,
			},
		})
	}

	return e, nil
}

// MarkBenefited records that an enrolled beneficiary received the scheme's
// benefits. Requires prior enrollment and no earlier benefit record.
func (s *service) MarkBenefited(ctx context.Context, input EnrollInput, adminID *uint, ip string) error {
	enrollment, err := s.repo.GetEnrollment(ctx, input.SchemeID, input.BeneficiaryID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.BadRequest("beneficiary is not enrolled in this scheme")
		}
		return err
	}
	if enrollment.Benefited {
		return utils.BadRequest("beneficiary has already benefited from this scheme")
	}

	if err := s.repo.MarkBenefited(ctx, input.SchemeID, input.BeneficiaryID, time.Now()); err != nil {
		return utils.NewError(http.StatusInternalServerError, "failed to record benefit")
	}

	s.auditSvc.LogAction(ctx, adminID, "SCHEME_BENEFIT_RECORDED", map[string]interface{}{
		"scheme_id":      input.SchemeID,
		"beneficiary_id": input.BeneficiaryID,
	}, ip, "SUCCESS")

	return nil
}
