package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/Shree2124/ngostream-backend/config"
	"github.com/Shree2124/ngostream-backend/utils"
)

type Service interface {
	Login(input LoginInput) (*TokenPair, *Admin, error)
	Logout(token string) error
	GetAdminByID(id uint) (*Admin, error)

	CreateAdmin(input CreateAdminInput) (*Admin, error)
	ListAdmins() ([]Admin, error)
	UpdateAdmin(id uint, input UpdateAdminInput) (*Admin, error)
	DeleteAdmin(id uint) error
}

type service struct {
	repo          Repository
	accessSecret  string
	refreshSecret string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewService(repo Repository, cfg *config.Config) Service {
	return &service{
		repo:          repo,
		accessSecret:  cfg.JWTAccessSecret,
		refreshSecret: cfg.JWTRefreshSecret,
		accessTTL:     time.Duration(cfg.JWTAccessTTLHours) * time.Hour,
		refreshTTL:    time.Duration(cfg.JWTRefreshTTLHours) * time.Hour,
	}
}

func (s *service) Login(input LoginInput) (*TokenPair, *Admin, error) {
	admin, err := s.repo.FindByEmail(input.Email)
	if err != nil {
		return nil, nil, utils.NewError(http.StatusUnauthorized, "invalid credentials")
	}
	if !admin.IsActive {
		return nil, nil, utils.NewError(http.StatusForbidden, "account is deactivated")
	}
	if !admin.CheckPassword(input.Password) {
		return nil, nil, utils.NewError(http.StatusUnauthorized, "invalid credentials")
	}

	access, err := s.signToken(admin.ID, admin.Role, s.accessSecret, s.accessTTL)
	if err != nil {
		return nil, nil, err
	}
	refresh, err := s.signToken(admin.ID, admin.Role, s.refreshSecret, s.refreshTTL)
	if err != nil {
		return nil, nil, err
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, admin, nil
}

// Logout denylists the live access token for its remaining lifetime.
func (s *service) Logout(token string) error {
	remaining := s.accessTTL
	parsed, _ := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.accessSecret), nil
	})
	if parsed != nil {
		if claims, ok := parsed.Claims.(jwt.MapClaims); ok {
			if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
				remaining = time.Until(exp.Time)
			}
		}
	}
	return utils.DenylistToken(token, remaining)
}

func (s *service) GetAdminByID(id uint) (*Admin, error) {
	return s.repo.FindByID(id)
}

func (s *service) CreateAdmin(input CreateAdminInput) (*Admin, error) {
	if _, err := s.repo.FindByEmail(input.Email); err == nil {
		return nil, utils.BadRequest("admin with this email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = RoleAdmin
	}

	admin := &Admin{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: input.Password, // hashed in BeforeCreate
		Role:         role,
	}
	if err := s.repo.Create(admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *service) ListAdmins() ([]Admin, error) {
	return s.repo.List()
}

func (s *service) UpdateAdmin(id uint, input UpdateAdminInput) (*Admin, error) {
	admin, err := s.repo.FindByID(id)
	if err != nil {
		return nil, utils.NotFound("admin not found")
	}

	if input.Name != "" {
		admin.Name = input.Name
	}
	if input.Role != "" {
		admin.Role = input.Role
	}
	if input.IsActive != nil {
		admin.IsActive = *input.IsActive
	}

	if err := s.repo.Update(admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *service) DeleteAdmin(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return utils.NotFound("admin not found")
	}
	return s.repo.Delete(id)
}

func (s *service) signToken(adminID uint, role, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"admin_id": adminID,
		"role":     role,
		"exp":      time.Now().Add(ttl).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// SeedSuperAdmin ensures a bootstrap superadmin account exists.
func SeedSuperAdmin(db *gorm.DB, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	var count int64
	if err := db.Model(&Admin{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(&Admin{
		Name:         "Super Admin",
		Email:        email,
		PasswordHash: password,
		Role:         RoleSuperAdmin,
	}).Error
}
