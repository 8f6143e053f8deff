package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// Admin represents a back-office user account.
type Admin struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Role         string    `gorm:"type:varchar(50);not null;default:admin" json:"role"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Admin) TableName() string {
	return "admins"
}

// BeforeCreate hashes the password if a plaintext value was assigned.
// Callers set PasswordHash to the raw password; it never persists unhashed.
func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.PasswordHash == "" {
		return nil
	}
	if _, err := bcrypt.Cost([]byte(a.PasswordHash)); err == nil {
		return nil // already hashed
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(a.PasswordHash), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hash)
	return nil
}

// CheckPassword compares a candidate password against the stored hash.
func (a *Admin) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) == nil
}

// LoginInput is the login request body.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateAdminInput is the manage-admin creation body.
type CreateAdminInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=admin superadmin"`
}

// UpdateAdminInput is the manage-admin update body.
type UpdateAdminInput struct {
	Name     string `json:"name" binding:"omitempty"`
	Role     string `json:"role" binding:"omitempty,oneof=admin superadmin"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// TokenPair carries the session tokens returned on login.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
