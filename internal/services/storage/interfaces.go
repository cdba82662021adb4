package storage

import (
	"context"
	"time"
)

// BlobStore is the object storage the publisher writes to
type BlobStore interface {
	Upload(ctx context.Context, key, localPath, contentType string) error
	Download(ctx context.Context, key, localPath string) error
	Presign(ctx context.Context, key string, ttl time.Duration) (string, error)
	PublicURL(key string) string
}
