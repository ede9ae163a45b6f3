package queries

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrSuggestMatchesQueryIsNotConstructed = errors.New(
	"SuggestMatchesQuery must be created via NewSuggestMatchesQuery constructor",
)

// SuggestMatchesQuery asks for advisory catalog-to-inventory match suggestions
// for every line item of an order awaiting reconciliation.
type SuggestMatchesQuery struct { //nolint:recvcheck //using for validation
	store   kernel.StoreContext
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSuggestMatchesQuery creates a suggestion query for one order.
func NewSuggestMatchesQuery(store kernel.StoreContext, orderID kernel.UUID) (SuggestMatchesQuery, error) {
	q := SuggestMatchesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setStore(store),
		q.setOrderID(orderID),
	); err != nil {
		return SuggestMatchesQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q SuggestMatchesQuery) Validate() error {
	return q.guard.Validate(ErrSuggestMatchesQueryIsNotConstructed)
}

// Store returns the tenant scope of the query.
func (q SuggestMatchesQuery) Store() kernel.StoreContext {
	return q.store
}

// OrderID returns the order to reconcile.
func (q SuggestMatchesQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *SuggestMatchesQuery) setStore(store kernel.StoreContext) error {
	if err := store.Validate(); err != nil {
		return err
	}

	q.store = store
	return nil
}

func (q *SuggestMatchesQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}
