package commands

import (
	"context"

	"procurement/internal/core/domain/model/order"
)

// ReceivePartialCommandHandler records cumulative goods receipts on an order.
// The whole batch is validated by the aggregate before anything is applied, so
// a single excessive quantity rejects the submission without side effects.
type ReceivePartialCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewReceivePartialCommandHandler creates a handler for receipt submissions.
func NewReceivePartialCommandHandler(uowFactory OrderUoWFactory) ReceivePartialCommandHandler {
	return ReceivePartialCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the cumulative receipt batch and persists
// the derived status.
func (h *ReceivePartialCommandHandler) Handle(ctx context.Context, cmd ReceivePartialCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	entries := make([]order.ReceiptEntry, 0, len(cmd.Entries()))
	for _, input := range cmd.Entries() {
		entry, err := order.NewReceiptEntry(input.ItemID, input.Quantity)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.Store(), cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ReceiveItems(entries, cmd.Note()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
