package services

import (
	"fmt"
	"mime/multipart"
	"sync"

	"github.com/tastebite/tastebite-api/utils"
)

// MockImageService is a mock implementation of ImageService for testing
type MockImageService struct {
	uploads map[string]string // key -> original filename
	mu      sync.Mutex

	// FailUpload forces UploadImage to return an error when set
	FailUpload bool
}

// NewMockImageService creates a new mock image service
func NewMockImageService() *MockImageService {
	return &MockImageService{uploads: make(map[string]string)}
}

// SetAsMockForTesting sets this mock as the global image service instance
func (m *MockImageService) SetAsMockForTesting() {
	SetImageService(m)
}

// UploadImage validates the file and records a fake upload
func (m *MockImageService) UploadImage(fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}
	if m.FailUpload {
		return "", fmt.Errorf("mock upload failure")
	}

	key := utils.UniqueFilename(fileHeader.Filename)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.uploads[key] = fileHeader.Filename

	return key, nil
}

// GetImageURL returns the local-style URL for a recorded upload
func (m *MockImageService) GetImageURL(imageKey string) (string, error) {
	return utils.GetImageURL(imageKey), nil
}

// DeleteImage removes a recorded upload
func (m *MockImageService) DeleteImage(imageKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.uploads, imageKey)
	return nil
}

// UploadCount returns the number of recorded uploads (test helper)
func (m *MockImageService) UploadCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.uploads)
}
