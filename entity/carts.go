package entity

import (
	"gorm.io/gorm"
)

// UnknownProvider groups cart lines whose meal has no provider attached.
const UnknownProvider uint = 0

// CartLine is one entry of a user's pending selection. Name, price and
// image are a display snapshot taken when the line was added; they are not
// refreshed from the catalog afterward.
type CartLine struct {
	MealID     uint   `json:"id"`
	ProviderID uint   `json:"providerId"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Image      string `json:"image,omitempty"`
	Qty        int    `json:"qty"`
}

// CartRecord persists the whole cart as one serialized JSON document per
// user, the same single-key contract the web client kept in local storage.
type CartRecord struct {
	gorm.Model
	UserID  uint   `gorm:"uniqueIndex" json:"userId"`
	Payload string `gorm:"type:text" json:"-"`
}
