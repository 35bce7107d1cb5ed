package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"size:191;uniqueIndex;not null" json:"email"`
	Nickname string `json:"nickname"`
	// master users may manage cafes, events and coupons
	Master bool `gorm:"not null;default:false" json:"master"`

	// Relations, preloaded only when needed
	HomeCafes []UserCafe  `json:"-"`
	Stamps    []Stamp     `json:"-"`
	Orders    []UserOrder `json:"-"`
	Coupons   []Coupon    `json:"-"`
}
