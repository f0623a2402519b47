package controllers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tastebite/tastebite-api/config"
	"github.com/tastebite/tastebite-api/services"
	"github.com/tastebite/tastebite-api/utils"
)

// UploadImage handles POST /api/upload/image - stores an image via the
// configured storage backend and returns its URL
func UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "MISSING_FILE", "A file is required in the 'file' form field")
		return
	}

	imageService := services.GetImageService()
	key, err := imageService.UploadImage(fileHeader)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	url, err := imageService.GetImageURL(key)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"key": key,
		"url": url,
	})
}

// GetUploadedImage handles GET /api/uploads/:filename - serves locally stored images
func GetUploadedImage(c *gin.Context) {
	filename := c.Param("filename")

	if filename == "" {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "Filename is required")
		return
	}

	// Security: prevent directory traversal attacks
	if strings.Contains(filename, "..") || strings.Contains(filename, "/") || strings.Contains(filename, "\\") {
		respondError(c, http.StatusBadRequest, "INVALID_FILENAME", "Invalid filename")
		return
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !utils.AllowedImageFormats[ext] {
		respondError(c, http.StatusBadRequest, "INVALID_FILE_TYPE", "Unsupported image type")
		return
	}

	filePath := filepath.Join(config.GetConfig().UploadDir, filename)
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		respondError(c, http.StatusNotFound, "FILE_NOT_FOUND", "Image not found")
		return
	}

	c.Header("Cache-Control", "public, max-age=86400") // Cache for 24 hours
	c.File(filePath)
}
