package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tastebite/tastebite-api/config"
	"github.com/tastebite/tastebite-api/models"
)

// CategoryRequest represents the request body for creating or updating a category
type CategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
	ImageURL    string `json:"image_url"`
}

// GetCategories handles GET /api/categories - lists active categories
func GetCategories(c *gin.Context) {
	db := config.GetDB()
	var categories []models.Category
	if err := db.Where("active = ?", true).Find(&categories).Error; err != nil {
		handleDomainError(c, err)
		return
	}

	respondData(c, http.StatusOK, categories)
}

// CreateCategory handles POST /api/categories
func CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	category := models.Category{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Active:      true,
	}

	db := config.GetDB()
	if err := db.Create(&category).Error; err != nil {
		handleDomainError(c, err)
		return
	}

	respondData(c, http.StatusCreated, category)
}

// UpdateCategory handles PUT /api/categories/:id
func UpdateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	db := config.GetDB()
	var category models.Category
	if err := db.First(&category, c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "CATEGORY_NOT_FOUND", "Category not found")
		return
	}

	category.Name = req.Name
	category.Description = req.Description
	category.ImageURL = req.ImageURL

	if err := db.Save(&category).Error; err != nil {
		handleDomainError(c, err)
		return
	}

	respondData(c, http.StatusOK, category)
}

// DeleteCategory handles DELETE /api/categories/:id - physically removes the row
func DeleteCategory(c *gin.Context) {
	db := config.GetDB()
	var category models.Category
	if err := db.First(&category, c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "CATEGORY_NOT_FOUND", "Category not found")
		return
	}

	if err := db.Delete(&category).Error; err != nil {
		handleDomainError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"deleted": category.ID})
}
