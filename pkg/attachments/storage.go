package attachments

import (
	"context"
	"time"
)

// Storage stores attachment content outside the database and hands out
// expiring download links.
type Storage interface {
	// Upload stores content under bucket/path.
	Upload(ctx context.Context, bucket, path string, content []byte) error
	// PresignURL returns a time-limited download URL for bucket/path along
	// with its expiration timestamp.
	PresignURL(ctx context.Context, bucket, path string, ttl time.Duration) (string, time.Time, error)
}
