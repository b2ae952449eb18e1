// Package objectstore uploads generated artifacts to an S3-compatible bucket
// and hands out time-limited download links for them.
package objectstore

import (
	"context"
	"io"
	"time"
)

// PutOptions describe an upload. Size is -1 when unknown.
type PutOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo is what the backend reports about a stored object.
type ObjectInfo struct {
	Key         string
	Size        int64
	ETag        string
	ContentType string
}

// Store is the object storage used for report exports.
type Store interface {
	// Put uploads r under key, overwriting any previous object.
	Put(ctx context.Context, key string, r io.Reader, opt PutOptions) (ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a URL that downloads key without credentials until expiry.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}
