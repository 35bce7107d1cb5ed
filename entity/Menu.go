package entity

import "time"

// Menu has no soft delete: the (cafe_id, name) unique index must see every row
// so concurrent receipts cannot create the same item twice.
type Menu struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name     string `gorm:"size:191;not null;uniqueIndex:uniq_menu_cafe_name,priority:2" json:"name"`
	Price    int64  `json:"price"`
	ImageURL string `json:"imageUrl"`

	CafeID uint `gorm:"not null;uniqueIndex:uniq_menu_cafe_name,priority:1" json:"cafeId"`
	Cafe   Cafe `json:"-"` // preload when needed

	UserOrders []UserOrder `json:"-"`
}
