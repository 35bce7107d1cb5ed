package entity

import (
	"gorm.io/gorm"
)

// UserOrder is one purchased item of a Stamp.
type UserOrder struct {
	gorm.Model

	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `json:"-"`

	MenuID uint `gorm:"not null;index" json:"menuId"`
	Menu   Menu `json:"-"` // preload when the menu name is needed

	StampID uint  `gorm:"not null;index" json:"stampId"`
	Stamp   Stamp `json:"-"`
}

func (UserOrder) TableName() string { return "user_orders" }
