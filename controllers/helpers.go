package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tastebite/tastebite-api/services"
	"github.com/tastebite/tastebite-api/utils"
)

// respondError writes the standard error envelope
func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// respondData writes the standard success envelope
func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// handleDomainError maps service and upload errors to structured responses.
// Business-rule failures carry their own safe message; anything else is a
// persistence failure reported opaquely and logged server-side.
func handleDomainError(c *gin.Context, err error) {
	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		status := http.StatusBadRequest
		switch svcErr.Code {
		case "USER_NOT_FOUND", "FOOD_ITEM_NOT_FOUND":
			status = http.StatusNotFound
		}
		respondError(c, status, svcErr.Code, svcErr.Message)
		return
	}

	var uploadErr *utils.FileUploadError
	if errors.As(err, &uploadErr) {
		respondError(c, http.StatusBadRequest, uploadErr.Code, uploadErr.Message)
		return
	}

	log.Printf("unexpected error handling %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "An internal error occurred")
}
