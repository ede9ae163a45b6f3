package ports

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
)

// ProductMappingRepository stores established catalog-to-product links.
// A mapping is written whenever a delivery confirmation links a supplier's
// catalog item to an inventory product; later reconciliations of the same
// supplier reuse it as a full-confidence suggestion.
type ProductMappingRepository interface {
	// Upsert records the link between a supplier's catalog item and a product,
	// replacing any previous link for the same catalog item.
	Upsert(ctx context.Context, store kernel.StoreContext, supplierID kernel.UUID, catalogID string, productID kernel.UUID) error

	// GetBySupplier retrieves all established links for a supplier, keyed by
	// catalog reference.
	GetBySupplier(ctx context.Context, store kernel.StoreContext, supplierID kernel.UUID) (map[string]kernel.UUID, error)
}
