package kv

import (
	"context"
	"errors"
	"io"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/option"
)

// GCSStore keeps one object per key under a bucket prefix. It suits
// serverless deployments where Firestore is not provisioned.
type GCSStore struct {
	client *storage.Client
	bucket string
	prefix string
}

// NewGCS creates a Cloud Storage backed store.
func NewGCS(ctx context.Context, bucket, prefix string, opts ...option.ClientOption) (*GCSStore, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client", goerr.V("bucket", bucket))
	}
	return &GCSStore{client: client, bucket: bucket, prefix: prefix}, nil
}

func (s *GCSStore) object(key string) *storage.ObjectHandle {
	return s.client.Bucket(s.bucket).Object(s.prefix + key)
}

// GetValue returns the stored value, or defaultValue when the object does
// not exist or cannot be read.
func (s *GCSStore) GetValue(ctx context.Context, key, defaultValue string) (string, error) {
	r, err := s.object(key).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return defaultValue, nil
		}
		return defaultValue, goerr.Wrap(err, "failed to open object", goerr.V("key", key))
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return defaultValue, goerr.Wrap(err, "failed to read object", goerr.V("key", key))
	}
	return string(data), nil
}

// SetValue overwrites the key's object.
func (s *GCSStore) SetValue(ctx context.Context, key, value string) error {
	w := s.object(key).NewWriter(ctx)
	if _, err := io.WriteString(w, value); err != nil {
		w.Close()
		return goerr.Wrap(err, "failed to write object", goerr.V("key", key))
	}
	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to finalize object", goerr.V("key", key))
	}
	return nil
}

// Close releases the underlying client.
func (s *GCSStore) Close() error {
	return s.client.Close()
}
