package entity

import (
	"gorm.io/gorm"
)

type Meal struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // taka, whole units
	Image       string `json:"image"`
	Available   bool   `gorm:"default:true" json:"available"`

	CategoryID uint      `json:"categoryId"`
	Category   *Category `json:"category,omitempty"`

	ProviderID uint      `json:"providerId"`
	Provider   *Provider `json:"-"` // preload only on detail

	OrderItems []OrderItem `json:"-"`
	Reviews    []Review    `json:"-"`
}
