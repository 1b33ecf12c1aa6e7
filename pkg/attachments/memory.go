package attachments

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MemoryStorage implements Storage in memory. Used in tests and local
// development where no S3 bucket is available.
type MemoryStorage struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

// NewMemoryStorage creates an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{objects: make(map[string][]byte)}
}

func key(bucket, path string) string {
	return bucket + "/" + path
}

// Upload stores content under bucket/path.
func (m *MemoryStorage) Upload(_ context.Context, bucket, path string, content []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(content))
	copy(stored, content)
	m.objects[key(bucket, path)] = stored
	return nil
}

// PresignURL returns a fake but well-formed URL for bucket/path.
func (m *MemoryStorage) PresignURL(_ context.Context, bucket, path string, ttl time.Duration) (string, time.Time, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.objects[key(bucket, path)]; !ok {
		return "", time.Time{}, fmt.Errorf("object %s/%s not found", bucket, path)
	}

	expiration := time.Now().UTC().Add(ttl)
	url := fmt.Sprintf("https://%s.example-storage.local/%s?expires=%d", bucket, path, expiration.Unix())
	return url, expiration, nil
}

// Get returns stored content; test helper.
func (m *MemoryStorage) Get(bucket, path string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	content, ok := m.objects[key(bucket, path)]
	return content, ok
}
