package commands

import (
	"context"

	"procurement/internal/core/domain/model/creditnote"
)

// CompleteReturnCommandHandler settles returns.
// Completing the return and issuing its credit note happen in one transaction;
// the note's amount equals the return's total, with nothing consumed yet.
type CompleteReturnCommandHandler struct {
	uowFactory CreditNoteUoWFactory
}

// NewCompleteReturnCommandHandler creates a handler for return settlement.
func NewCompleteReturnCommandHandler(uowFactory CreditNoteUoWFactory) CompleteReturnCommandHandler {
	return CompleteReturnCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the settlement.
// Only pending returns can be completed; anything else surfaces as an
// InvalidStateError from the aggregate.
func (h *CompleteReturnCommandHandler) Handle(ctx context.Context, cmd CompleteReturnCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	returnRepo := uow.ReturnRepository()
	aggregate, err := returnRepo.Get(ctx, cmd.Store(), cmd.ReturnID())
	if err != nil {
		return err
	}

	note, err := creditnote.NewCreditNote(cmd.CreditNoteID(), cmd.Store(), aggregate.ID(), aggregate.TotalAmount())
	if err != nil {
		return err
	}

	if err = aggregate.Complete(note.ID()); err != nil {
		return err
	}

	if err = uow.CreditNoteRepository().Add(ctx, note); err != nil {
		return err
	}

	if err = returnRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
