package entity

import (
	"gorm.io/gorm"
)

type Event struct {
	gorm.Model
	Content string `gorm:"type:text;not null" json:"content"`

	CafeID uint `gorm:"not null;index" json:"cafeId"`
	Cafe   Cafe `json:"-"`
}
