package storage

import (
	"context"
	"io"
	"sync"
)

var _ FileUploader = (*MockUploader)(nil)

// MockUploader is an in-memory FileUploader for tests. Uploaded keys are
// recorded; Delete removes them.
type MockUploader struct {
	mu        sync.Mutex
	objects   map[string]string // key -> content type
	deleted   []string
	UploadErr error
	DeleteErr error
}

func NewMockUploader() *MockUploader {
	return &MockUploader{objects: make(map[string]string)}
}

func (m *MockUploader) Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error) {
	if m.UploadErr != nil {
		return nil, m.UploadErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = contentType
	return &UploadResult{Key: key, Location: m.GetPublicURL(key), ETag: "mock-etag"}, nil
}

func (m *MockUploader) Delete(ctx context.Context, key string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	m.deleted = append(m.deleted, key)
	return nil
}

func (m *MockUploader) GetPublicURL(key string) string {
	return "https://cdn.example.test/" + key
}

// Has reports whether the key is currently stored.
func (m *MockUploader) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[key]
	return ok
}

// Deleted returns the keys passed to Delete, in order.
func (m *MockUploader) Deleted() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.deleted))
	copy(out, m.deleted)
	return out
}
