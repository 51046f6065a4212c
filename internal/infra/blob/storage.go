// Package blob stores product images in any gocloud.dev bucket (GCS, local directory or memory).
package blob

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"supermall/config"
	"supermall/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const pathPlaceholder = "{path}"

// Storage implements service.BlobStorage and service.BlobReader on a gocloud bucket.
type Storage struct {
	bucket      *blob.Bucket
	urlTemplate string
}

// Params holds dependencies for the blob storage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewStorage opens blob.bucketUrl and closes the bucket on shutdown
func NewStorage(params Params) (*Storage, error) {
	cfg := params.Config.Blob

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	template := cfg.PublicURLTemplate
	if template == "" {
		template = defaultURLTemplate(cfg.BucketURL)
	}

	params.Logger.Info("Blob storage ready",
		slog.String("bucket", cfg.BucketURL),
		slog.String("url_template", template),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return newStorage(bucket, template), nil
}

func newStorage(bucket *blob.Bucket, urlTemplate string) *Storage {
	return &Storage{bucket: bucket, urlTemplate: urlTemplate}
}

// Upload writes data at path and returns its public URL
func (s *Storage) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	w, err := s.bucket.NewWriter(ctx, path, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", path)
	}

	if _, err := w.Write(data); err != nil {
		_ = w.Close()

		return "", errors.Wrapf(err, "failed to write %s", path)
	}

	// Close commits the object.
	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to upload %s", path)
	}

	return s.publicURL(path), nil
}

// Delete removes the object at path. A missing object counts as deleted.
func (s *Storage) Delete(ctx context.Context, path string) error {
	err := s.bucket.Delete(ctx, path)
	if err == nil || gcerrors.Code(err) == gcerrors.NotFound {
		return nil
	}

	return errors.Wrapf(err, "failed to delete %s", path)
}

// Read returns the object at path with its stored content type.
func (s *Storage) Read(ctx context.Context, path string) ([]byte, string, error) {
	attrs, err := s.bucket.Attributes(ctx, path)
	if err != nil {
		return nil, "", s.readError(err, path)
	}

	data, err := s.bucket.ReadAll(ctx, path)
	if err != nil {
		return nil, "", s.readError(err, path)
	}

	return data, attrs.ContentType, nil
}

func (s *Storage) readError(err error, path string) error {
	if gcerrors.Code(err) == gcerrors.NotFound {
		return errors.Wrap(service.ErrBlobNotFound, path)
	}

	return errors.Wrapf(err, "failed to read %s", path)
}

func (s *Storage) publicURL(path string) string {
	return strings.ReplaceAll(s.urlTemplate, pathPlaceholder, url.PathEscape(path))
}

// defaultURLTemplate derives a Firebase Storage style download URL for gs:// buckets.
// Other schemes get a relative URL served by whoever fronts the bucket.
func defaultURLTemplate(bucketURL string) string {
	u, err := url.Parse(bucketURL)
	if err != nil || u.Scheme != "gs" || u.Host == "" {
		return "/media/" + pathPlaceholder
	}

	return "https://firebasestorage.googleapis.com/v0/b/" + u.Host + "/o/" + pathPlaceholder + "?alt=media"
}
