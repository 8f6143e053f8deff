package auth

import (
	"gorm.io/gorm"
)

type Repository interface {
	Create(admin *Admin) error
	FindByEmail(email string) (*Admin, error)
	FindByID(id uint) (*Admin, error)
	List() ([]Admin, error)
	Update(admin *Admin) error
	Delete(id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(admin *Admin) error {
	return r.db.Create(admin).Error
}

func (r *repository) FindByEmail(email string) (*Admin, error) {
	var admin Admin
	if err := r.db.Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *repository) FindByID(id uint) (*Admin, error) {
	var admin Admin
	if err := r.db.First(&admin, id).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *repository) List() ([]Admin, error) {
	var admins []Admin
	err := r.db.Order("created_at DESC").Find(&admins).Error
	return admins, err
}

func (r *repository) Update(admin *Admin) error {
	return r.db.Save(admin).Error
}

func (r *repository) Delete(id uint) error {
	return r.db.Delete(&Admin{}, id).Error
}
