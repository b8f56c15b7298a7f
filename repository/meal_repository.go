package repository

import (
	"github.com/AbuBakkarSiddique007/bhojonbox-server/entity"

	"gorm.io/gorm"
)

type MealRepository struct{ DB *gorm.DB }

func NewMealRepository(db *gorm.DB) *MealRepository { return &MealRepository{DB: db} }

// MealFilters mirrors the catalog query params of GET /api/meals.
type MealFilters struct {
	Search     string
	CategoryID uint
	ProviderID uint
	MinPrice   *int64
	MaxPrice   *int64
	Page       int
	Limit      int
}

func (r *MealRepository) List(f MealFilters) ([]entity.Meal, int64, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 10
	}

	q := r.DB.Model(&entity.Meal{}).Where("available = ?", true)
	if f.Search != "" {
		q = q.Where("name LIKE ?", "%"+f.Search+"%")
	}
	if f.CategoryID != 0 {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	if f.ProviderID != 0 {
		q = q.Where("provider_id = ?", f.ProviderID)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var meals []entity.Meal
	err := q.Preload("Category").
		Order("id DESC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&meals).Error
	return meals, total, err
}

func (r *MealRepository) Get(id uint) (*entity.Meal, error) {
	var m entity.Meal
	err := r.DB.Preload("Category").Preload("Provider").First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetBasics loads only what pricing needs.
func (r *MealRepository) GetBasics(id uint) (*entity.Meal, error) {
	var m entity.Meal
	err := r.DB.Select("id, name, price, image, provider_id, available").First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MealRepository) ListForProvider(providerID uint) ([]entity.Meal, error) {
	var meals []entity.Meal
	err := r.DB.Where("provider_id = ?", providerID).
		Preload("Category").
		Order("id DESC").
		Find(&meals).Error
	return meals, err
}
