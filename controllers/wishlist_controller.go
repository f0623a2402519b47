package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tastebite/tastebite-api/config"
	"github.com/tastebite/tastebite-api/models"
)

// WishlistRequest represents the request body for adding a wishlist entry
type WishlistRequest struct {
	UserID     uint `json:"user_id" binding:"required"`
	FoodItemID uint `json:"food_item_id" binding:"required"`
}

// GetUserWishlist handles GET /api/wishlist/user/:userId
func GetUserWishlist(c *gin.Context) {
	db := config.GetDB()
	var user models.User
	if err := db.First(&user, c.Param("userId")).Error; err != nil {
		respondError(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
		return
	}

	var entries []models.Wishlist
	if err := db.Preload("FoodItem").Where("user_id = ?", user.ID).Find(&entries).Error; err != nil {
		handleDomainError(c, err)
		return
	}

	respondData(c, http.StatusOK, entries)
}

// AddToWishlist handles POST /api/wishlist - rejected when the
// (user, food item) pair already exists
func AddToWishlist(c *gin.Context) {
	var req WishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	db := config.GetDB()
	var user models.User
	if err := db.First(&user, req.UserID).Error; err != nil {
		respondError(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
		return
	}

	var food models.FoodItem
	if err := db.First(&food, req.FoodItemID).Error; err != nil {
		respondError(c, http.StatusNotFound, "FOOD_ITEM_NOT_FOUND", "Food item not found")
		return
	}

	var existing models.Wishlist
	err := db.Where("user_id = ? AND food_item_id = ?", req.UserID, req.FoodItemID).First(&existing).Error
	if err == nil {
		respondError(c, http.StatusBadRequest, "ALREADY_IN_WISHLIST", "Item is already in the wishlist")
		return
	}

	entry := models.Wishlist{
		UserID:     req.UserID,
		FoodItemID: req.FoodItemID,
	}
	if err := db.Create(&entry).Error; err != nil {
		if isDuplicateKeyError(err) {
			respondError(c, http.StatusBadRequest, "ALREADY_IN_WISHLIST", "Item is already in the wishlist")
			return
		}
		handleDomainError(c, err)
		return
	}

	// Load the food item relationship to return complete data
	if err := db.Preload("FoodItem").First(&entry, entry.ID).Error; err != nil {
		handleDomainError(c, err)
		return
	}

	respondData(c, http.StatusCreated, entry)
}

// RemoveFromWishlist handles DELETE /api/wishlist/user/:userId/item/:foodItemId
func RemoveFromWishlist(c *gin.Context) {
	db := config.GetDB()
	var user models.User
	if err := db.First(&user, c.Param("userId")).Error; err != nil {
		respondError(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
		return
	}

	var food models.FoodItem
	if err := db.First(&food, c.Param("foodItemId")).Error; err != nil {
		respondError(c, http.StatusNotFound, "FOOD_ITEM_NOT_FOUND", "Food item not found")
		return
	}

	if err := db.Where("user_id = ? AND food_item_id = ?", user.ID, food.ID).Delete(&models.Wishlist{}).Error; err != nil {
		handleDomainError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"removed": true})
}
