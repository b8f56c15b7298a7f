package entity

import (
	"gorm.io/gorm"
)

type Provider struct {
	gorm.Model
	StoreName   string `json:"storeName"`
	Description string `json:"description"`
	Cuisine     string `json:"cuisine"`
	Logo        string `json:"logo"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	IsOpen      bool   `gorm:"default:true" json:"isOpen"`

	UserID uint `gorm:"uniqueIndex" json:"userId"` // owning account (users.id)
	User   User `json:"-"`

	Meals  []Meal  `json:"-"`
	Orders []Order `json:"-"`
}
