package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tastebite/tastebite-api/config"
	"github.com/tastebite/tastebite-api/models"
)

// FoodItemRequest represents the request body for creating or updating a food item
type FoodItemRequest struct {
	Name          string  `json:"name" binding:"required,max=100"`
	Description   string  `json:"description" binding:"max=1000"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	ImageURL      string  `json:"image_url"`
	CategoryID    uint    `json:"category_id" binding:"required"`
	StockQuantity int     `json:"stock_quantity" binding:"gte=0"`
	Available     *bool   `json:"available"`
}

// GetFood handles GET /api/food - lists available food items
func GetFood(c *gin.Context) {
	db := config.GetDB()
	var items []models.FoodItem
	if err := db.Preload("Category").Where("available = ?", true).Find(&items).Error; err != nil {
		handleDomainError(c, err)
		return
	}

	respondData(c, http.StatusOK, items)
}

// SearchFood handles GET /api/food/search?query= - case-insensitive name search
// over available items
func SearchFood(c *gin.Context) {
	query := c.Query("query")

	db := config.GetDB()
	var items []models.FoodItem
	err := db.Preload("Category").
		Where("available = ? AND LOWER(name) LIKE LOWER(?)", true, "%"+query+"%").
		Find(&items).Error
	if err != nil {
		handleDomainError(c, err)
		return
	}

	respondData(c, http.StatusOK, items)
}

// GetFoodByCategory handles GET /api/food/category/:id
func GetFoodByCategory(c *gin.Context) {
	db := config.GetDB()
	var category models.Category
	if err := db.First(&category, c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "CATEGORY_NOT_FOUND", "Category not found")
		return
	}

	var items []models.FoodItem
	if err := db.Where("category_id = ?", category.ID).Find(&items).Error; err != nil {
		handleDomainError(c, err)
		return
	}

	respondData(c, http.StatusOK, items)
}

// GetTopRatedFood handles GET /api/food/top-rated - available items ordered
// by average rating, best first
func GetTopRatedFood(c *gin.Context) {
	db := config.GetDB()
	var items []models.FoodItem
	err := db.Preload("Category").
		Where("available = ?", true).
		Order("average_rating DESC").
		Find(&items).Error
	if err != nil {
		handleDomainError(c, err)
		return
	}

	respondData(c, http.StatusOK, items)
}

// CreateFood handles POST /api/food
func CreateFood(c *gin.Context) {
	var req FoodItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	db := config.GetDB()
	var category models.Category
	if err := db.First(&category, req.CategoryID).Error; err != nil {
		respondError(c, http.StatusBadRequest, "CATEGORY_NOT_FOUND", "Category not found")
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	item := models.FoodItem{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		ImageURL:      req.ImageURL,
		CategoryID:    category.ID,
		Available:     available,
		StockQuantity: req.StockQuantity,
	}

	if err := db.Create(&item).Error; err != nil {
		handleDomainError(c, err)
		return
	}

	// Load the category relationship to return complete data
	if err := db.Preload("Category").First(&item, item.ID).Error; err != nil {
		handleDomainError(c, err)
		return
	}

	respondData(c, http.StatusCreated, item)
}

// UpdateFood handles PUT /api/food/:id
func UpdateFood(c *gin.Context) {
	var req FoodItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	db := config.GetDB()
	var item models.FoodItem
	if err := db.First(&item, c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "FOOD_ITEM_NOT_FOUND", "Food item not found")
		return
	}

	var category models.Category
	if err := db.First(&category, req.CategoryID).Error; err != nil {
		respondError(c, http.StatusBadRequest, "CATEGORY_NOT_FOUND", "Category not found")
		return
	}

	item.Name = req.Name
	item.Description = req.Description
	item.Price = req.Price
	item.ImageURL = req.ImageURL
	item.CategoryID = category.ID
	item.StockQuantity = req.StockQuantity
	if req.Available != nil {
		item.Available = *req.Available
	}

	if err := db.Save(&item).Error; err != nil {
		handleDomainError(c, err)
		return
	}

	respondData(c, http.StatusOK, item)
}

// DeleteFood handles DELETE /api/food/:id - physically removes the row
func DeleteFood(c *gin.Context) {
	db := config.GetDB()
	var item models.FoodItem
	if err := db.First(&item, c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "FOOD_ITEM_NOT_FOUND", "Food item not found")
		return
	}

	if err := db.Delete(&item).Error; err != nil {
		handleDomainError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"deleted": item.ID})
}
