package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/returns"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateReturnCommandIsNotConstructed = errors.New(
	"CreateReturnCommand must be created via NewCreateReturnCommand constructor",
)

// ReturnItemInput carries one returned product line.
type ReturnItemInput struct {
	ProductID   kernel.UUID
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Reason      string
}

// CreateReturnCommand registers a new return, supplier-bound or customer-bound.
// A supplier return may reference the delivered order it originates from.
type CreateReturnCommand struct { //nolint:recvcheck //using for validation
	returnID   kernel.UUID
	store      kernel.StoreContext
	kind       returns.Kind
	items      []ReturnItemInput
	orderID    *kernel.UUID
	supplierID *kernel.UUID
	notes      string

	guard guard.ConstructorGuard
}

// NewCreateReturnCommand creates a command to register a return.
// Requires a valid return ID, store, kind and at least one item.
func NewCreateReturnCommand(
	returnID kernel.UUID,
	store kernel.StoreContext,
	kind returns.Kind,
	items []ReturnItemInput,
	orderID *kernel.UUID,
	supplierID *kernel.UUID,
	notes string,
) (CreateReturnCommand, error) {
	cmd := CreateReturnCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReturnID(returnID),
		cmd.setStore(store),
		cmd.setKind(kind),
		cmd.setItems(items),
		cmd.setOrderID(orderID),
		cmd.setSupplierID(supplierID),
	); err != nil {
		return CreateReturnCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateReturnCommand) Validate() error {
	return c.guard.Validate(ErrCreateReturnCommandIsNotConstructed)
}

// ReturnID returns the identifier for the new return.
func (c CreateReturnCommand) ReturnID() kernel.UUID {
	return c.returnID
}

// Store returns the tenant the return is created in.
func (c CreateReturnCommand) Store() kernel.StoreContext {
	return c.store
}

// Kind reports whether this is a supplier or a customer return.
func (c CreateReturnCommand) Kind() returns.Kind {
	return c.kind
}

// Items returns the returned product lines.
func (c CreateReturnCommand) Items() []ReturnItemInput {
	return c.items
}

// OrderID returns the originating order, nil for ad hoc returns.
func (c CreateReturnCommand) OrderID() *kernel.UUID {
	return c.orderID
}

// SupplierID returns the supplier, nil for customer returns.
func (c CreateReturnCommand) SupplierID() *kernel.UUID {
	return c.supplierID
}

// Notes returns the free-text annotation for the return.
func (c CreateReturnCommand) Notes() string {
	return c.notes
}

func (c *CreateReturnCommand) setReturnID(returnID kernel.UUID) error {
	if err := returnID.Validate(); err != nil {
		return err
	}

	c.returnID = returnID
	return nil
}

func (c *CreateReturnCommand) setStore(store kernel.StoreContext) error {
	if err := store.Validate(); err != nil {
		return err
	}

	c.store = store
	return nil
}

func (c *CreateReturnCommand) setKind(kind returns.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *CreateReturnCommand) setItems(items []ReturnItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	c.items = items
	return nil
}

func (c *CreateReturnCommand) setOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateReturnCommand) setSupplierID(supplierID *kernel.UUID) error {
	if supplierID == nil {
		return nil
	}
	if err := supplierID.Validate(); err != nil {
		return err
	}

	c.supplierID = supplierID
	return nil
}
