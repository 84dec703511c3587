package service

import (
	"context"
	"errors"
	"io"
)

// ErrObjectNotFound is returned by Open for a missing key.
var ErrObjectNotFound = errors.New("object not found")

// UploadProgress is called as bytes are written. done is true exactly once,
// after the object has been committed.
type UploadProgress func(written int64, done bool)

// ObjectStorage stores binary uploads and issues public URLs.
type ObjectStorage interface {
	Upload(ctx context.Context, r io.Reader, contentType, folder string, progress UploadProgress) (string, error)

	// Open returns a reader for a stored object and its content type.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)

	Delete(ctx context.Context, key string) error
	Close() error
}
