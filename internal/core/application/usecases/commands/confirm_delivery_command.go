package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/services"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand confirms a marketplace delivery by resolving every
// catalog line item to local inventory, either linking it to an existing
// product or creating a new one.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	store     kernel.StoreContext
	orderID   kernel.UUID
	decisions []services.Decision

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a command to confirm a delivery.
// The decision set must not be empty; completeness against the order's items
// is checked by the reconciler once the order is loaded.
func NewConfirmDeliveryCommand(store kernel.StoreContext, orderID kernel.UUID, decisions []services.Decision) (ConfirmDeliveryCommand, error) {
	cmd := ConfirmDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStore(store),
		cmd.setOrderID(orderID),
		cmd.setDecisions(decisions),
	); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// Store returns the tenant the order belongs to.
func (c ConfirmDeliveryCommand) Store() kernel.StoreContext {
	return c.store
}

// OrderID returns the order being confirmed.
func (c ConfirmDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Decisions returns the per-item resolutions.
func (c ConfirmDeliveryCommand) Decisions() []services.Decision {
	return c.decisions
}

func (c *ConfirmDeliveryCommand) setStore(store kernel.StoreContext) error {
	if err := store.Validate(); err != nil {
		return err
	}

	c.store = store
	return nil
}

func (c *ConfirmDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmDeliveryCommand) setDecisions(decisions []services.Decision) error {
	if len(decisions) == 0 {
		return errs.NewValueIsRequiredError("decisions")
	}
	for _, decision := range decisions {
		if err := decision.Validate(); err != nil {
			return err
		}
	}

	c.decisions = decisions
	return nil
}
