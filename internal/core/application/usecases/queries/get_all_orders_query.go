package queries

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery lists a store's orders, optionally filtered by status
// and/or supplier.
type GetAllOrdersQuery struct { //nolint:recvcheck //using for validation
	store      kernel.StoreContext
	status     *order.Status
	supplierID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates an order listing query. Both filters are optional.
func NewGetAllOrdersQuery(store kernel.StoreContext, status *order.Status, supplierID *kernel.UUID) (GetAllOrdersQuery, error) {
	q := GetAllOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setStore(store),
		q.setStatus(status),
		q.setSupplierID(supplierID),
	); err != nil {
		return GetAllOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// Store returns the tenant scope of the query.
func (q GetAllOrdersQuery) Store() kernel.StoreContext {
	return q.store
}

// Status returns the status filter, nil when not set.
func (q GetAllOrdersQuery) Status() *order.Status {
	return q.status
}

// SupplierID returns the supplier filter, nil when not set.
func (q GetAllOrdersQuery) SupplierID() *kernel.UUID {
	return q.supplierID
}

func (q *GetAllOrdersQuery) setStore(store kernel.StoreContext) error {
	if err := store.Validate(); err != nil {
		return err
	}

	q.store = store
	return nil
}

func (q *GetAllOrdersQuery) setStatus(status *order.Status) error {
	if status == nil {
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}

	q.status = status
	return nil
}

func (q *GetAllOrdersQuery) setSupplierID(supplierID *kernel.UUID) error {
	if supplierID == nil {
		return nil
	}
	if err := supplierID.Validate(); err != nil {
		return err
	}

	q.supplierID = supplierID
	return nil
}

// GetAllOrdersQueryResponse is the order summary used in listings.
type GetAllOrdersQueryResponse struct {
	OrderID          kernel.UUID
	SupplierID       kernel.UUID
	Status           string
	TotalAmount      decimal.Decimal
	IsConnected      bool
	Reconciled       bool
	ExpectedDelivery *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
