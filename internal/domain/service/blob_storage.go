package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrBlobNotFound is returned by BlobReader when no object exists at the path.
var ErrBlobNotFound = errors.New("blob not found")

// BlobStorage stores binary assets such as product images.
type BlobStorage interface {
	// Upload writes data at path and returns a retrievable URL.
	Upload(ctx context.Context, path string, data []byte, contentType string) (string, error)

	// Delete removes the object at path. A missing object is not an error.
	Delete(ctx context.Context, path string) error
}

// BlobReader reads stored assets back, for buckets that have no public endpoint of their own.
type BlobReader interface {
	Read(ctx context.Context, path string) (data []byte, contentType string, err error)
}
