package models

import "time"

// FoodItem represents a menu item available for ordering.
// AverageRating and RatingCount are derived fields: they must always equal
// the aggregate over the item's committed ratings (see services.RatingService).
type FoodItem struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Description   string    `json:"description"`
	Price         float64   `gorm:"not null" json:"price"`
	ImageURL      string    `json:"image_url"`
	CategoryID    uint      `gorm:"not null;index" json:"category_id"`
	Category      Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Available     bool      `gorm:"default:true" json:"available"`
	StockQuantity int       `gorm:"default:0" json:"stock_quantity"`
	AverageRating float64   `gorm:"default:0" json:"average_rating"`
	RatingCount   int       `gorm:"default:0" json:"rating_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName specifies the table name for the FoodItem model
func (FoodItem) TableName() string {
	return "food_items"
}
