package commands

import (
	"context"

	"procurement/internal/core/domain/model/returns"
)

// UpdateReturnStatusCommandHandler approves or rejects pending returns.
type UpdateReturnStatusCommandHandler struct {
	uowFactory ReturnUoWFactory
}

// NewUpdateReturnStatusCommandHandler creates a handler for return decisions.
func NewUpdateReturnStatusCommandHandler(uowFactory ReturnUoWFactory) UpdateReturnStatusCommandHandler {
	return UpdateReturnStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the return, applies the decision and persists the result.
func (h *UpdateReturnStatusCommandHandler) Handle(ctx context.Context, cmd UpdateReturnStatusCommand) error {
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

	switch cmd.Target() {
	case returns.StatusApproved:
		err = aggregate.Approve()
	case returns.StatusRejected:
		err = aggregate.Reject()
	}
	if err != nil {
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
