package ports

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/returns"
)

// ReturnRepository defines the persistence contract for return aggregates.
type ReturnRepository interface {
	// Add persists a new return aggregate to storage.
	Add(ctx context.Context, aggregate *returns.Return) error

	// Update persists changes to an existing return aggregate with an
	// optimistic version check, failing with StaleStateError on conflict.
	Update(ctx context.Context, aggregate *returns.Return) error

	// Get retrieves a return aggregate by its unique identifier within a store.
	// Returns ObjectNotFoundError when no such return exists.
	Get(ctx context.Context, store kernel.StoreContext, id kernel.UUID) (*returns.Return, error)
}
