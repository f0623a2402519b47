package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tastebite/tastebite-api/config"
	"github.com/tastebite/tastebite-api/models"
	"github.com/tastebite/tastebite-api/services"
)

// RatingRequest represents the request body for submitting a rating
type RatingRequest struct {
	UserID     uint   `json:"user_id" binding:"required"`
	FoodItemID uint   `json:"food_item_id" binding:"required"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Comment    string `json:"comment"`
}

// GetFoodRatings handles GET /api/ratings/food/:foodItemId
func GetFoodRatings(c *gin.Context) {
	db := config.GetDB()
	var food models.FoodItem
	if err := db.First(&food, c.Param("foodItemId")).Error; err != nil {
		respondError(c, http.StatusNotFound, "FOOD_ITEM_NOT_FOUND", "Food item not found")
		return
	}

	var ratings []models.Rating
	if err := db.Preload("User").Where("food_item_id = ?", food.ID).Find(&ratings).Error; err != nil {
		handleDomainError(c, err)
		return
	}

	respondData(c, http.StatusOK, ratings)
}

// SubmitRating handles POST /api/ratings - upserts a rating for a
// (user, food item) pair and refreshes the item's derived aggregate fields
func SubmitRating(c *gin.Context) {
	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	rating, err := services.GetRatingService().Submit(config.GetDB(), services.SubmitRatingInput{
		UserID:     req.UserID,
		FoodItemID: req.FoodItemID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	respondData(c, http.StatusOK, rating)
}
