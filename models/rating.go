package models

import "time"

// Rating is a 1-5 score with an optional comment, at most one per
// (user, food item) pair. Submissions for an existing pair overwrite
// the stored rating rather than inserting a duplicate.
type Rating struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_ratings_user_food" json:"user_id"`
	User       User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	FoodItemID uint      `gorm:"not null;uniqueIndex:idx_ratings_user_food" json:"food_item_id"`
	FoodItem   FoodItem  `gorm:"foreignKey:FoodItemID" json:"-"`
	Rating     int       `gorm:"not null" json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Rating model
func (Rating) TableName() string {
	return "ratings"
}
