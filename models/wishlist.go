package models

import "time"

// Wishlist is a saved (user, food item) pair, at most one per pair
type Wishlist struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_food" json:"user_id"`
	User       User      `gorm:"foreignKey:UserID" json:"-"`
	FoodItemID uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_food" json:"food_item_id"`
	FoodItem   FoodItem  `gorm:"foreignKey:FoodItemID" json:"food_item,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName specifies the table name for the Wishlist model
func (Wishlist) TableName() string {
	return "wishlist"
}
