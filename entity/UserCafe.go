package entity

import "time"

// UserCafe is one entry of a user's home café list. Rows are ordered by ID
// (insertion order) and hard-deleted on removal, so no gorm.Model here.
type UserCafe struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	UserID uint `gorm:"not null;uniqueIndex:uniq_user_cafe,priority:1" json:"userId"`
	User   User `json:"-"`

	CafeID uint `gorm:"not null;uniqueIndex:uniq_user_cafe,priority:2" json:"cafeId"`
	Cafe   Cafe `json:"-"`
}

func (UserCafe) TableName() string { return "user_cafes" }
