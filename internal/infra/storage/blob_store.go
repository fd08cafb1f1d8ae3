// Package storage implements blob persistence for uploaded doodle images.
package storage

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // local development driver
	_ "gocloud.dev/blob/s3blob"   // production driver

	"pond/config"
	"pond/internal/domain/lifecycle"
	"pond/internal/domain/service"
)

// blobStore implements service.ImageStore on top of a gocloud.dev bucket, so
// the same code serves a local directory in development and S3-compatible
// object storage in production.
type blobStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// BlobStoreParams holds dependencies for the blob store, injected by Fx.
type BlobStoreParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// NewBlobStore opens the configured bucket and registers its shutdown hook.
func NewBlobStore(params BlobStoreParams) (service.ImageStore, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket url must be provided")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open storage bucket")
	}

	store := &blobStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(params.Config.Storage.PublicBaseURL, "/"),
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return store, nil
}

// Put stores the image bytes and returns the public URL they are served from.
func (s *blobStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	opts := &blob.WriterOptions{ContentType: contentType}

	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", errors.Wrapf(err, "failed to write blob %s", key)
	}

	return s.publicBaseURL + "/" + key, nil
}
