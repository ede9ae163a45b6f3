package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrCompleteReturnCommandIsNotConstructed = errors.New(
	"CompleteReturnCommand must be created via NewCompleteReturnCommand constructor",
)

// CompleteReturnCommand settles a pending return and issues its credit note.
// The caller provides the identity of the note to be issued, which keeps the
// operation safe to retry.
type CompleteReturnCommand struct { //nolint:recvcheck //using for validation
	store        kernel.StoreContext
	returnID     kernel.UUID
	creditNoteID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteReturnCommand creates a command to complete a return.
func NewCompleteReturnCommand(store kernel.StoreContext, returnID, creditNoteID kernel.UUID) (CompleteReturnCommand, error) {
	cmd := CompleteReturnCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStore(store),
		cmd.setReturnID(returnID),
		cmd.setCreditNoteID(creditNoteID),
	); err != nil {
		return CompleteReturnCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteReturnCommand) Validate() error {
	return c.guard.Validate(ErrCompleteReturnCommandIsNotConstructed)
}

// Store returns the tenant the return belongs to.
func (c CompleteReturnCommand) Store() kernel.StoreContext {
	return c.store
}

// ReturnID returns the return being completed.
func (c CompleteReturnCommand) ReturnID() kernel.UUID {
	return c.returnID
}

// CreditNoteID returns the identity the issued note will carry.
func (c CompleteReturnCommand) CreditNoteID() kernel.UUID {
	return c.creditNoteID
}

func (c *CompleteReturnCommand) setStore(store kernel.StoreContext) error {
	if err := store.Validate(); err != nil {
		return err
	}

	c.store = store
	return nil
}

func (c *CompleteReturnCommand) setReturnID(returnID kernel.UUID) error {
	if err := returnID.Validate(); err != nil {
		return err
	}

	c.returnID = returnID
	return nil
}

func (c *CompleteReturnCommand) setCreditNoteID(creditNoteID kernel.UUID) error {
	if err := creditNoteID.Validate(); err != nil {
		return err
	}

	c.creditNoteID = creditNoteID
	return nil
}
