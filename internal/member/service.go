package member

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/Shree2124/ngostream-backend/utils"
)

type Service interface {
	FindOrCreate(ctx context.Context, fullName, email, phone, role string) (*Member, error)
	GetMember(ctx context.Context, id uint) (*MemberWithHistory, error)
	GetMembers(ctx context.Context, ids []uint) ([]Member, error)
	ListMembers(ctx context.Context) ([]Member, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) FindOrCreate(ctx context.Context, fullName, email, phone, role string) (*Member, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, utils.BadRequest("member email is required")
	}
	if strings.TrimSpace(fullName) == "" {
		return nil, utils.BadRequest("member name is required")
	}
	return s.repo.FindOrCreateByEmail(ctx, fullName, email, phone, role)
}

func (s *service) GetMember(ctx context.Context, id uint) (*MemberWithHistory, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NotFound("member not found")
		}
		return nil, err
	}
	history, err := s.repo.ParticipationHistory(ctx, id)
	if err != nil {
		return nil, err
	}
	return &MemberWithHistory{Member: *m, ParticipationHistory: history}, nil
}

func (s *service) GetMembers(ctx context.Context, ids []uint) ([]Member, error) {
	return s.repo.GetByIDs(ctx, ids)
}

func (s *service) ListMembers(ctx context.Context) ([]Member, error) {
	return s.repo.List(ctx)
}
