package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"sync"

	"github.com/tastebite/tastebite-api/utils"
)

// MockS3Service is a mock implementation of S3Interface for testing
type MockS3Service struct {
	uploadedFiles map[string][]byte // map of S3 key to file content
	mu            sync.RWMutex
}

// NewMockS3Service creates a new mock S3 service
func NewMockS3Service() *MockS3Service {
	return &MockS3Service{
		uploadedFiles: make(map[string][]byte),
	}
}

// SetAsMockForTesting sets this mock as the global S3 service instance for testing
func (m *MockS3Service) SetAsMockForTesting() {
	SetS3Service(m)
}

// UploadFile simulates uploading a file to S3
func (m *MockS3Service) UploadFile(fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	key := "food-images/" + utils.UniqueFilename(fileHeader.Filename)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.uploadedFiles[key] = content

	return key, nil
}

// GetPresignedURL simulates generating a presigned URL
func (m *MockS3Service) GetPresignedURL(s3Key string) (string, error) {
	if s3Key == "" {
		return "", nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.uploadedFiles[s3Key]; !ok {
		return "", fmt.Errorf("file not found: %s", s3Key)
	}

	return fmt.Sprintf("https://mock-bucket.s3.amazonaws.com/%s?signed=true", s3Key), nil
}

// DeleteFile simulates deleting a file from S3
func (m *MockS3Service) DeleteFile(s3Key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.uploadedFiles, s3Key)
	return nil
}

// FileCount returns the number of stored files (test helper)
func (m *MockS3Service) FileCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.uploadedFiles)
}
