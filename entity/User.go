package entity

import (
	"gorm.io/gorm"
)

const (
	RoleCustomer = "CUSTOMER"
	RoleProvider = "PROVIDER"
	RoleAdmin    = "ADMIN"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Role     string `gorm:"not null;default:CUSTOMER" json:"role"`

	// preload only when the endpoint needs them
	ProviderProfile *Provider `gorm:"foreignKey:UserID" json:"-"`
	Orders          []Order   `json:"-"`
	Reviews         []Review  `json:"-"`
}
