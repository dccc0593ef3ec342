// Package cartstore persists the cart snapshot to a blob bucket under a
// single well-known key.
package cartstore

import (
	"context"
	"encoding/json"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type blobStore struct {
	bucket *blob.Bucket
	key    string
}

// New opens the configured bucket and returns the cart store backed by it.
func New(params Params) (repository.CartStore, error) {
	bucket, err := blob.OpenBucket(context.Background(), params.Config.Cart.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "open cart bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStore{
		bucket: bucket,
		key:    params.Config.Cart.StorageKey,
	}, nil
}

func (s *blobStore) Load(ctx context.Context) ([]entity.CartLineItem, error) {
	raw, err := s.bucket.ReadAll(ctx, s.key)
	if err != nil {
		// A bucket without the key yet is an empty cart.
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, nil
		}

		return nil, errors.Wrap(err, "read cart snapshot")
	}

	var items []entity.CartLineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errors.Wrap(err, "decode cart snapshot")
	}

	return items, nil
}

func (s *blobStore) Save(ctx context.Context, items []entity.CartLineItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return errors.Wrap(err, "encode cart snapshot")
	}

	if err := s.bucket.WriteAll(ctx, s.key, raw, nil); err != nil {
		return errors.Wrap(err, "write cart snapshot")
	}

	return nil
}
