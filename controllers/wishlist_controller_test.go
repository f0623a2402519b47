package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastebite/tastebite-api/models"
)

func wishlistTestRouter() *gin.Engine {
	router := gin.New()
	router.GET("/api/wishlist/user/:userId", GetUserWishlist)
	router.POST("/api/wishlist", AddToWishlist)
	router.DELETE("/api/wishlist/user/:userId/item/:foodItemId", RemoveFromWishlist)
	return router
}

func TestWishlist(t *testing.T) {
	db := setupTestDB(t)
	router := wishlistTestRouter()

	user := models.User{Email: "wisher@example.com", Password: "x", Name: "Wisher"}
	require.NoError(t, db.Create(&user).Error)
	category := models.Category{Name: "Starters", Active: true}
	require.NoError(t, db.Create(&category).Error)
	salad := models.FoodItem{Name: "Caesar Salad", Price: 7.99, CategoryID: category.ID, Available: true}
	require.NoError(t, db.Create(&salad).Error)

	addBody := map[string]interface{}{"user_id": user.ID, "food_item_id": salad.ID}

	t.Run("Add entry", func(t *testing.T) {
		w, response := performRequest(t, router, http.MethodPost, "/api/wishlist", addBody)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		data := response["data"].(map[string]interface{})
		assert.Equal(t, float64(salad.ID), data["food_item_id"])
	})

	t.Run("Second add for the same pair is rejected", func(t *testing.T) {
		w, response := performRequest(t, router, http.MethodPost, "/api/wishlist", addBody)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "ALREADY_IN_WISHLIST", errorCode(response))

		var count int64
		db.Model(&models.Wishlist{}).Where("user_id = ? AND food_item_id = ?", user.ID, salad.ID).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Missing food item yields 404", func(t *testing.T) {
		w, response := performRequest(t, router, http.MethodPost, "/api/wishlist",
			map[string]interface{}{"user_id": user.ID, "food_item_id": uint(999)})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "FOOD_ITEM_NOT_FOUND", errorCode(response))
	})

	t.Run("List user wishlist", func(t *testing.T) {
		w, response := performRequest(t, router, http.MethodGet, fmt.Sprintf("/api/wishlist/user/%d", user.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)
		entries := response["data"].([]interface{})
		require.Len(t, entries, 1)
		item := entries[0].(map[string]interface{})["food_item"].(map[string]interface{})
		assert.Equal(t, "Caesar Salad", item["name"])
	})

	t.Run("Remove entry by pair", func(t *testing.T) {
		path := fmt.Sprintf("/api/wishlist/user/%d/item/%d", user.ID, salad.ID)
		w, _ := performRequest(t, router, http.MethodDelete, path, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var count int64
		db.Model(&models.Wishlist{}).Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("Remove for missing user yields 404", func(t *testing.T) {
		w, response := performRequest(t, router, http.MethodDelete, "/api/wishlist/user/999/item/1", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "USER_NOT_FOUND", errorCode(response))
	})
}
