package entity

import (
	"gorm.io/gorm"
)

// Stamp is one submitted receipt. It is written once and never updated.
type Stamp struct {
	gorm.Model
	CardName string `json:"cardName"`
	CardNum  string `json:"cardNum"`

	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `json:"-"`

	CafeID uint `gorm:"not null;index" json:"cafeId"`
	Cafe   Cafe `json:"-"`

	UserOrders []UserOrder `json:"-"`
}
