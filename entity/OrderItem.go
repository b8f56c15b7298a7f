package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MealID uint  `json:"mealId"`
	Meal   *Meal `json:"meal,omitempty"`

	Quantity  int   `json:"quantity"`
	UnitPrice int64 `json:"unitPrice"`
	Total     int64 `json:"total"`
}
