package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/returns"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var ErrUpdateReturnStatusCommandIsNotConstructed = errors.New(
	"UpdateReturnStatusCommand must be created via NewUpdateReturnStatusCommand constructor",
)

// UpdateReturnStatusCommand approves or rejects a pending return.
// Completion goes through CompleteReturnCommand instead, since it issues a
// credit note.
type UpdateReturnStatusCommand struct { //nolint:recvcheck //using for validation
	store    kernel.StoreContext
	returnID kernel.UUID
	target   returns.Status

	guard guard.ConstructorGuard
}

// NewUpdateReturnStatusCommand creates a command to approve or reject a return.
func NewUpdateReturnStatusCommand(store kernel.StoreContext, returnID kernel.UUID, target returns.Status) (UpdateReturnStatusCommand, error) {
	cmd := UpdateReturnStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStore(store),
		cmd.setReturnID(returnID),
		cmd.setTarget(target),
	); err != nil {
		return UpdateReturnStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateReturnStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateReturnStatusCommandIsNotConstructed)
}

// Store returns the tenant the return belongs to.
func (c UpdateReturnStatusCommand) Store() kernel.StoreContext {
	return c.store
}

// ReturnID returns the return to update.
func (c UpdateReturnStatusCommand) ReturnID() kernel.UUID {
	return c.returnID
}

// Target returns the requested status, approved or rejected.
func (c UpdateReturnStatusCommand) Target() returns.Status {
	return c.target
}

func (c *UpdateReturnStatusCommand) setStore(store kernel.StoreContext) error {
	if err := store.Validate(); err != nil {
		return err
	}

	c.store = store
	return nil
}

func (c *UpdateReturnStatusCommand) setReturnID(returnID kernel.UUID) error {
	if err := returnID.Validate(); err != nil {
		return err
	}

	c.returnID = returnID
	return nil
}

func (c *UpdateReturnStatusCommand) setTarget(target returns.Status) error {
	if target != returns.StatusApproved && target != returns.StatusRejected {
		return errs.NewValueIsInvalidError("target")
	}

	c.target = target
	return nil
}
