package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartStore mirrors the cart state to durable storage under a single key,
// the server-side analog of the browser's local storage entry. Writes are
// best-effort from the caller's perspective; the in-memory cart remains
// authoritative for the running process.
type CartStore interface {
	// Load reads the persisted cart. A missing entry is an empty cart,
	// not an error.
	Load(ctx context.Context) ([]entity.CartLineItem, error)

	// Save overwrites the persisted cart with the given snapshot.
	Save(ctx context.Context, items []entity.CartLineItem) error
}
