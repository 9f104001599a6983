package client

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MockStorageClient implements StorageClient for tests without AWS
// credentials. Uploaded keys are tracked in memory so tests can assert
// delete behavior.
type MockStorageClient struct {
	mu       sync.Mutex
	Uploaded map[string]bool
	Deleted  []string

	GenerateFileKeyFunc func(imageKind, contentID, fileExt string) (string, error)
	UploadFileFunc      func(ctx context.Context, key string, file io.Reader, contentType string) (string, error)
	DeleteFileFunc      func(ctx context.Context, key string) error
	GetFileURLFunc      func(key string) string
}

// NewMockStorageClient creates a new mock storage client
func NewMockStorageClient() *MockStorageClient {
	return &MockStorageClient{Uploaded: make(map[string]bool)}
}

// GenerateFileKey generates a unique file key
func (m *MockStorageClient) GenerateFileKey(imageKind, contentID, fileExt string) (string, error) {
	if m.GenerateFileKeyFunc != nil {
		return m.GenerateFileKeyFunc(imageKind, contentID, fileExt)
	}

	switch imageKind {
	case ImageKindScenario, ImageKindTrendRadar, ImageKindParticipatory:
	default:
		return "", fmt.Errorf("invalid image kind: %s", imageKind)
	}

	return fmt.Sprintf("content/%s/%s/%s_%d%s",
		imageKind, contentID, uuid.New().String(), time.Now().UnixNano(), fileExt), nil
}

// UploadFile records the key and returns a fake URL
func (m *MockStorageClient) UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error) {
	if m.UploadFileFunc != nil {
		return m.UploadFileFunc(ctx, key, file, contentType)
	}

	m.mu.Lock()
	m.Uploaded[key] = true
	m.mu.Unlock()
	return m.GetFileURL(key), nil
}

// DeleteFile records the deleted key
func (m *MockStorageClient) DeleteFile(ctx context.Context, key string) error {
	if m.DeleteFileFunc != nil {
		return m.DeleteFileFunc(ctx, key)
	}

	m.mu.Lock()
	delete(m.Uploaded, key)
	m.Deleted = append(m.Deleted, key)
	m.mu.Unlock()
	return nil
}

// GetFileURL returns a fake URL for the key
func (m *MockStorageClient) GetFileURL(key string) string {
	if m.GetFileURLFunc != nil {
		return m.GetFileURLFunc(key)
	}
	return "https://test-bucket.s3.eu-south-1.amazonaws.com/" + key
}
