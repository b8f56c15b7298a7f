package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Code            string `gorm:"uniqueIndex" json:"code"` // customer-facing order number
	Status          string `gorm:"not null;default:PLACED" json:"status"`
	Subtotal        int64  `json:"subtotal"`
	DeliveryFee     int64  `json:"deliveryFee"`
	TotalAmount     int64  `json:"totalAmount"`
	DeliveryAddress string `json:"deliveryAddress"`
	Note            string `json:"note"`

	UserID uint `json:"userId"`
	User   User `json:"-"` // preload for provider views only

	ProviderID uint     `json:"providerId"`
	Provider   Provider `json:"-"`

	Items   []OrderItem `json:"items,omitempty"`
	Reviews []Review    `json:"-"`
}
