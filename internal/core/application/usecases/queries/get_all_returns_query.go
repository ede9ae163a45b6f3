package queries

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetAllReturnsQueryIsNotConstructed = errors.New(
	"GetAllReturnsQuery must be created via NewGetAllReturnsQuery constructor",
)

// GetAllReturnsQuery lists a store's returns.
type GetAllReturnsQuery struct {
	store kernel.StoreContext

	guard guard.ConstructorGuard
}

// NewGetAllReturnsQuery creates a return listing query.
func NewGetAllReturnsQuery(store kernel.StoreContext) (GetAllReturnsQuery, error) {
	if err := store.Validate(); err != nil {
		return GetAllReturnsQuery{}, err
	}

	return GetAllReturnsQuery{
		store: store,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllReturnsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllReturnsQueryIsNotConstructed)
}

// Store returns the tenant scope of the query.
func (q GetAllReturnsQuery) Store() kernel.StoreContext {
	return q.store
}

// GetAllReturnsQueryResponse is the return summary used in listings.
type GetAllReturnsQueryResponse struct {
	ReturnID     kernel.UUID
	Kind         string
	OrderID      *kernel.UUID
	SupplierID   *kernel.UUID
	Status       string
	TotalAmount  decimal.Decimal
	CreditNoteID *kernel.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
