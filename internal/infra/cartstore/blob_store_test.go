package cartstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"

	"storefront/internal/domain/entity"
)

func newMemStore(t *testing.T) *blobStore {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() {
		_ = bucket.Close()
	})

	return &blobStore{bucket: bucket, key: "cart"}
}

func TestBlobStore_LoadMissingKeyIsEmptyCart(t *testing.T) {
	store := newMemStore(t)

	items, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestBlobStore_SaveThenLoad(t *testing.T) {
	store := newMemStore(t)
	ctx := context.Background()

	variantID := int64(10)
	saved := []entity.CartLineItem{
		{ProductID: 1, VariantID: &variantID, Name: "Tour Hat", Price: 24.99, Quantity: 2, Color: "Navy", Size: "L"},
		{ProductID: 3, Name: "Custom Divot Tool", Price: 59.99, Quantity: 1,
			CustomBuild: &entity.CustomBuild{WoodType: "Walnut", Fees: []entity.CustomBuildFee{{Label: "Logo setup", Amount: 15}}}},
	}
	require.NoError(t, store.Save(ctx, saved))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestBlobStore_SaveOverwrites(t *testing.T) {
	store := newMemStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, []entity.CartLineItem{{ProductID: 1, Quantity: 1}}))
	require.NoError(t, store.Save(ctx, nil))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
