package commands

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderItemInput carries one catalog line item of an order being created.
// Field validation happens when the handler builds the domain item; the
// command only requires the list to be non-empty.
type OrderItemInput struct {
	CatalogID   string
	Name        string
	Category    string
	Subcategory string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// CreateOrderCommand represents a request to register a new purchase order
// in pending status.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	store            kernel.StoreContext
	supplierID       kernel.UUID
	items            []OrderItemInput
	isConnected      bool
	notes            string
	expectedDelivery *time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new purchase order.
// Requires a valid order ID, store and supplier and at least one item.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	store kernel.StoreContext,
	supplierID kernel.UUID,
	items []OrderItemInput,
	isConnected bool,
	notes string,
	expectedDelivery *time.Time,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		isConnected:      isConnected,
		notes:            notes,
		expectedDelivery: expectedDelivery,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStore(store),
		cmd.setSupplierID(supplierID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Store returns the tenant the order is created in.
func (c CreateOrderCommand) Store() kernel.StoreContext {
	return c.store
}

// SupplierID returns the supplier the order is placed with.
func (c CreateOrderCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

// Items returns the requested catalog line items.
func (c CreateOrderCommand) Items() []OrderItemInput {
	return c.items
}

// IsConnected reports whether this is a marketplace order subject to reconciliation.
func (c CreateOrderCommand) IsConnected() bool {
	return c.isConnected
}

// Notes returns the free-text annotation for the order.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

// ExpectedDelivery returns the expected delivery date, nil when not agreed.
func (c CreateOrderCommand) ExpectedDelivery() *time.Time {
	return c.expectedDelivery
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setStore(store kernel.StoreContext) error {
	if err := store.Validate(); err != nil {
		return err
	}

	c.store = store
	return nil
}

func (c *CreateOrderCommand) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}

	c.supplierID = supplierID
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	c.items = items
	return nil
}
