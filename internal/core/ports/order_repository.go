// Package ports defines repository interfaces for the procurement domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The write carries an optimistic version check: if the stored version no
	// longer matches the aggregate's version the update fails with a
	// StaleStateError and the caller must re-read and retry.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier within a store.
	// Returns ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, store kernel.StoreContext, id kernel.UUID) (*order.Order, error)

	// GetAllOverdue retrieves orders whose expected delivery date passed before
	// the given moment and that are still awaiting goods. Used by the late
	// delivery watchdog.
	GetAllOverdue(ctx context.Context, before time.Time) ([]*order.Order, error)
}
