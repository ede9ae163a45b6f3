package queries

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetAllCreditNotesQueryIsNotConstructed = errors.New(
	"GetAllCreditNotesQuery must be created via NewGetAllCreditNotesQuery constructor",
)

// GetAllCreditNotesQuery lists a store's credit notes.
type GetAllCreditNotesQuery struct {
	store kernel.StoreContext

	guard guard.ConstructorGuard
}

// NewGetAllCreditNotesQuery creates a credit note listing query.
func NewGetAllCreditNotesQuery(store kernel.StoreContext) (GetAllCreditNotesQuery, error) {
	if err := store.Validate(); err != nil {
		return GetAllCreditNotesQuery{}, err
	}

	return GetAllCreditNotesQuery{
		store: store,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllCreditNotesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCreditNotesQueryIsNotConstructed)
}

// Store returns the tenant scope of the query.
func (q GetAllCreditNotesQuery) Store() kernel.StoreContext {
	return q.store
}

// GetAllCreditNotesQueryResponse is the credit note read model.
// Remaining is derived so clients don't recompute the balance.
type GetAllCreditNotesQueryResponse struct {
	CreditNoteID kernel.UUID
	ReturnID     kernel.UUID
	Amount       decimal.Decimal
	UsedAmount   decimal.Decimal
	Remaining    decimal.Decimal
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
