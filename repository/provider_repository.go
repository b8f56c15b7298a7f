package repository

import (
	"errors"

	"github.com/AbuBakkarSiddique007/bhojonbox-server/entity"

	"gorm.io/gorm"
)

type ProviderRepository struct{ DB *gorm.DB }

func NewProviderRepository(db *gorm.DB) *ProviderRepository { return &ProviderRepository{DB: db} }

func (r *ProviderRepository) List() ([]entity.Provider, error) {
	var providers []entity.Provider
	err := r.DB.Preload("User").Order("id").Find(&providers).Error
	return providers, err
}

func (r *ProviderRepository) Get(id uint) (*entity.Provider, error) {
	var p entity.Provider
	if err := r.DB.Preload("User").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProviderRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Provider{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ForUser resolves the provider profile owned by a user account.
func (r *ProviderRepository) ForUser(userID uint) (*entity.Provider, error) {
	var p entity.Provider
	err := r.DB.Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.New("provider profile not found")
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProviderRepository) IsOwnedBy(providerID, userID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Provider{}).
		Where("id = ? AND user_id = ?", providerID, userID).
		Count(&count).Error
	return count > 0, err
}
