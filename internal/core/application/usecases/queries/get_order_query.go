// Package queries contains read-side operations of the CQRS architecture.
// Query handlers read the database directly with raw SQL and return flat
// read models, bypassing the aggregates entirely.
package queries

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the full projection of a single order, line items
// and received quantities included.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	store   kernel.StoreContext
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order.
func NewGetOrderQuery(store kernel.StoreContext, orderID kernel.UUID) (GetOrderQuery, error) {
	q := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setStore(store),
		q.setOrderID(orderID),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// Store returns the tenant scope of the query.
func (q GetOrderQuery) Store() kernel.StoreContext {
	return q.store
}

// OrderID returns the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderQuery) setStore(store kernel.StoreContext) error {
	if err := store.Validate(); err != nil {
		return err
	}

	q.store = store
	return nil
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// OrderItemResponse is the read model of one catalog line item.
type OrderItemResponse struct {
	ItemID           kernel.UUID
	CatalogID        string
	Name             string
	Category         string
	Subcategory      string
	Quantity         int
	UnitPrice        decimal.Decimal
	TotalPrice       decimal.Decimal
	ReceivedQuantity int
	MappedProductID  *kernel.UUID
}

// GetOrderQueryResponse is the full order projection returned to clients.
// ReceivedItems maps line item IDs to their cumulative received quantities.
type GetOrderQueryResponse struct {
	OrderID          kernel.UUID
	SupplierID       kernel.UUID
	Status           string
	TotalAmount      decimal.Decimal
	IsConnected      bool
	Reconciled       bool
	Notes            string
	ExpectedDelivery *time.Time
	Version          int
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Items            []OrderItemResponse
	ReceivedItems    map[string]int
}
