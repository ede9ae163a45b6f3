package ports

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for the buyer's inventory.
// Delivery confirmation creates products or tops up their stock; reconciliation
// reads the whole inventory to match catalog items against it.
type ProductRepository interface {
	// Add persists a new inventory product.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product with an optimistic
	// version check, failing with StaleStateError on conflict.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier within a store.
	// Returns ObjectNotFoundError when no such product exists.
	Get(ctx context.Context, store kernel.StoreContext, id kernel.UUID) (*product.Product, error)

	// GetAllByStore retrieves the store's full inventory.
	GetAllByStore(ctx context.Context, store kernel.StoreContext) ([]*product.Product, error)
}
