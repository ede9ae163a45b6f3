package ports

import (
	"context"

	"procurement/internal/core/domain/model/creditnote"
	"procurement/internal/core/domain/model/kernel"
)

// CreditNoteRepository defines the persistence contract for credit notes.
type CreditNoteRepository interface {
	// Add persists a newly issued credit note.
	Add(ctx context.Context, aggregate *creditnote.CreditNote) error

	// Update persists consumption or voiding of an existing note with an
	// optimistic version check, failing with StaleStateError on conflict.
	Update(ctx context.Context, aggregate *creditnote.CreditNote) error

	// Get retrieves a credit note by its unique identifier within a store.
	// Returns ObjectNotFoundError when no such note exists.
	Get(ctx context.Context, store kernel.StoreContext, id kernel.UUID) (*creditnote.CreditNote, error)
}
