package storage

import (
	"context"
	"io"
)

// ImageStore uploads an image and returns its public URL. Failures surface
// directly to the caller; there is no retry policy.
type ImageStore interface {
	UploadImage(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error)
}
