package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var ErrReceivePartialCommandIsNotConstructed = errors.New(
	"ReceivePartialCommand must be created via NewReceivePartialCommand constructor",
)

// ReceiptInput reports the cumulative quantity received so far for one line item.
type ReceiptInput struct {
	ItemID   kernel.UUID
	Quantity int
}

// ReceivePartialCommand submits a partial (or final) goods receipt for an order.
// Quantities are cumulative totals, so resubmitting the same payload is a no-op.
type ReceivePartialCommand struct { //nolint:recvcheck //using for validation
	store   kernel.StoreContext
	orderID kernel.UUID
	entries []ReceiptInput
	note    string

	guard guard.ConstructorGuard
}

// NewReceivePartialCommand creates a command to record received quantities.
// At least one entry is required; the note is an optional audit annotation.
func NewReceivePartialCommand(store kernel.StoreContext, orderID kernel.UUID, entries []ReceiptInput, note string) (ReceivePartialCommand, error) {
	cmd := ReceivePartialCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStore(store),
		cmd.setOrderID(orderID),
		cmd.setEntries(entries),
	); err != nil {
		return ReceivePartialCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReceivePartialCommand) Validate() error {
	return c.guard.Validate(ErrReceivePartialCommandIsNotConstructed)
}

// Store returns the tenant the order belongs to.
func (c ReceivePartialCommand) Store() kernel.StoreContext {
	return c.store
}

// OrderID returns the order receiving goods.
func (c ReceivePartialCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Entries returns the cumulative quantities per line item.
func (c ReceivePartialCommand) Entries() []ReceiptInput {
	return c.entries
}

// Note returns the audit annotation for this receipt, empty when not given.
func (c ReceivePartialCommand) Note() string {
	return c.note
}

func (c *ReceivePartialCommand) setStore(store kernel.StoreContext) error {
	if err := store.Validate(); err != nil {
		return err
	}

	c.store = store
	return nil
}

func (c *ReceivePartialCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReceivePartialCommand) setEntries(entries []ReceiptInput) error {
	if len(entries) == 0 {
		return errs.NewValueIsRequiredError("entries")
	}

	c.entries = entries
	return nil
}
