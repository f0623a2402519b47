package config

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tastebite/tastebite-api/models"
)

// Default administrator credentials created on first run.
// TODO: read these from the environment before the first production deploy.
const (
	DefaultAdminEmail    = "admin@foodapp.com"
	DefaultAdminName     = "System Administrator"
	defaultAdminPassword = "admin123"
)

// Seed performs first-run bootstrap against persisted state: it creates the
// default administrator when no admin exists, and sample catalog data when
// the categories table is empty. Both checks are against the database, so
// the operation is idempotent across restarts.
func Seed(db *gorm.DB) error {
	if err := seedAdmin(db); err != nil {
		return err
	}
	return seedCatalog(db)
}

func seedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for existing admin: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.User{
		Email:    DefaultAdminEmail,
		Name:     DefaultAdminName,
		Password: string(hash),
		Role:     models.RoleAdmin,
		Active:   true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}

	log.Printf("Default admin created: %s", DefaultAdminEmail)
	return nil
}

func seedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for existing categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	starters := models.Category{Name: "Starters", Description: "Appetizers and small plates", Active: true}
	mains := models.Category{Name: "Main Course", Description: "Main dishes and entrees", Active: true}
	drinks := models.Category{Name: "Drinks", Description: "Beverages and refreshments", Active: true}
	desserts := models.Category{Name: "Desserts", Description: "Sweet treats and desserts", Active: true}

	for _, c := range []*models.Category{&starters, &mains, &drinks, &desserts} {
		if err := db.Create(c).Error; err != nil {
			return fmt.Errorf("failed to seed category %q: %w", c.Name, err)
		}
	}
	log.Println("Sample categories created")

	items := []models.FoodItem{
		{
			Name:          "Margherita Pizza",
			Description:   "Classic pizza with tomato, mozzarella, and basil",
			Price:         12.99,
			CategoryID:    mains.ID,
			Available:     true,
			StockQuantity: 50,
			AverageRating: 4.5,
			RatingCount:   25,
		},
		{
			Name:          "Classic Burger",
			Description:   "Beef patty with lettuce, tomato, and cheese",
			Price:         9.99,
			CategoryID:    mains.ID,
			Available:     true,
			StockQuantity: 30,
			AverageRating: 4.2,
			RatingCount:   18,
		},
		{
			Name:          "Caesar Salad",
			Description:   "Fresh romaine lettuce with caesar dressing",
			Price:         7.99,
			CategoryID:    starters.ID,
			Available:     true,
			StockQuantity: 25,
			AverageRating: 4.0,
			RatingCount:   12,
		},
		{
			Name:          "Coca Cola",
			Description:   "Refreshing cola drink",
			Price:         2.99,
			CategoryID:    drinks.ID,
			Available:     true,
			StockQuantity: 100,
			AverageRating: 4.3,
			RatingCount:   45,
		},
		{
			Name:          "Chocolate Cake",
			Description:   "Rich chocolate cake with frosting",
			Price:         5.99,
			CategoryID:    desserts.ID,
			Available:     true,
			StockQuantity: 15,
			AverageRating: 4.7,
			RatingCount:   22,
		},
	}
	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			return fmt.Errorf("failed to seed food item %q: %w", items[i].Name, err)
		}
	}
	log.Println("Sample food items created")

	return nil
}
