package blob

import (
	"context"
	"testing"

	"supermall/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestStorage_UploadAndDelete(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := newStorage(bucket, "https://cdn.example/{path}?alt=media")
	ctx := context.Background()

	url, err := store.Upload(ctx, "products/shop-1/1700000000000_tea.png", []byte("png"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/products%2Fshop-1%2F1700000000000_tea.png?alt=media", url)

	data, err := bucket.ReadAll(ctx, "products/shop-1/1700000000000_tea.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), data)

	attrs, err := bucket.Attributes(ctx, "products/shop-1/1700000000000_tea.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)

	require.NoError(t, store.Delete(ctx, "products/shop-1/1700000000000_tea.png"))

	exists, err := bucket.Exists(ctx, "products/shop-1/1700000000000_tea.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStorage_DeleteMissingIsNotAnError(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := newStorage(bucket, "/media/{path}")

	assert.NoError(t, store.Delete(context.Background(), "products/none.png"))
}

func TestStorage_Read(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := newStorage(bucket, "/media/{path}")
	ctx := context.Background()

	_, err := store.Upload(ctx, "products/shop-1/a.webp", []byte("webp"), "image/webp")
	require.NoError(t, err)

	data, contentType, err := store.Read(ctx, "products/shop-1/a.webp")
	require.NoError(t, err)
	assert.Equal(t, []byte("webp"), data)
	assert.Equal(t, "image/webp", contentType)

	_, _, err = store.Read(ctx, "products/shop-1/missing.webp")
	assert.True(t, errors.Is(err, service.ErrBlobNotFound))
}

func TestDefaultURLTemplate(t *testing.T) {
	testCases := []struct {
		name      string
		bucketURL string
		want      string
	}{
		{name: "gcs bucket", bucketURL: "gs://mall.appspot.com", want: "https://firebasestorage.googleapis.com/v0/b/mall.appspot.com/o/{path}?alt=media"},
		{name: "local directory", bucketURL: "file:///var/lib/supermall", want: "/media/{path}"},
		{name: "memory", bucketURL: "mem://", want: "/media/{path}"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, defaultURLTemplate(tc.bucketURL))
		})
	}
}
