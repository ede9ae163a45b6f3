package commands

import (
	"context"

	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/returns"
	"procurement/internal/pkg/errs"
)

// CreateReturnCommandHandler registers returns.
// A return referencing an order is only accepted when that order is delivered.
type CreateReturnCommandHandler struct {
	uowFactory ReturnUoWFactory
}

// NewCreateReturnCommandHandler creates a handler for return registration.
func NewCreateReturnCommandHandler(uowFactory ReturnUoWFactory) CreateReturnCommandHandler {
	return CreateReturnCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the return registration.
func (h *CreateReturnCommandHandler) Handle(ctx context.Context, cmd CreateReturnCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items := make([]*returns.Item, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		item, err := returns.NewItem(input.ProductID, input.ProductName, input.Quantity, input.UnitPrice, input.Reason)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	aggregate, err := returns.NewReturn(cmd.ReturnID(), cmd.Store(), cmd.Kind(), items, cmd.OrderID(), cmd.SupplierID(), cmd.Notes())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if cmd.OrderID() != nil {
		referenced, err := uow.OrderRepository().Get(ctx, cmd.Store(), *cmd.OrderID())
		if err != nil {
			return err
		}
		if referenced.Status() != order.Delivered {
			return errs.NewInvalidStateError("order", "create a return for", referenced.Status().String())
		}
	}

	if err = uow.ReturnRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
