package entity

import (
	"time"

	"gorm.io/gorm"
)

type Coupon struct {
	gorm.Model
	Name   string     `json:"name"`
	Used   bool       `gorm:"not null;default:false" json:"used"`
	UsedAt *time.Time `json:"usedAt,omitempty"`

	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `json:"-"`

	CafeID uint `gorm:"index" json:"cafeId"`
	Cafe   Cafe `json:"-"` // preload for the cafe name
}
