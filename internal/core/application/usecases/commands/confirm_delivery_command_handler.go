package commands

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/product"
	"procurement/internal/core/domain/services"
)

// ConfirmDeliveryCommandHandler settles a marketplace delivery in one
// transaction: inventory is created or topped up per decision, the established
// catalog-to-product mappings are stored for future reconciliations, and the
// order transitions to delivered.
type ConfirmDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	reconciler services.Reconciler
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmations.
func NewConfirmDeliveryCommandHandler(uowFactory DeliveryUoWFactory) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
		reconciler: services.NewReconciler(),
	}
}

// Handle processes the confirmation.
// The decision set must cover every catalog line item exactly once; the whole
// confirmation commits atomically or not at all.
func (h *ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.Store(), cmd.OrderID())
	if err != nil {
		return err
	}

	decisions, err := h.reconciler.ValidateDecisions(aggregate, cmd.Decisions())
	if err != nil {
		return err
	}

	links := make(map[string]kernel.UUID, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		decision := decisions[item.CatalogID()]

		productID, err := h.applyDecision(ctx, uow, cmd.Store(), item, decision)
		if err != nil {
			return err
		}
		links[item.CatalogID()] = productID

		err = uow.ProductMappingRepository().Upsert(ctx, cmd.Store(), aggregate.SupplierID(), item.CatalogID(), productID)
		if err != nil {
			return err
		}
	}

	if err = aggregate.CompleteReconciliation(links); err != nil {
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

// applyDecision creates or tops up the inventory product for one line item and
// returns the product the item resolved to.
func (h *ConfirmDeliveryCommandHandler) applyDecision(
	ctx context.Context,
	uow DeliveryUoW,
	store kernel.StoreContext,
	item *order.Item,
	decision services.Decision,
) (kernel.UUID, error) {
	productRepo := uow.ProductRepository()

	if decision.CreateNew() {
		created, err := product.NewProduct(
			kernel.NewUUID(),
			store,
			item.Name(),
			item.Category(),
			item.Subcategory(),
			item.UnitPrice(),
			item.Quantity(),
		)
		if err != nil {
			return kernel.UUID{}, err
		}
		if err = productRepo.Add(ctx, created); err != nil {
			return kernel.UUID{}, err
		}
		return created.ID(), nil
	}

	existing, err := productRepo.Get(ctx, store, *decision.ProductID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = existing.IncrementQuantity(item.Quantity()); err != nil {
		return kernel.UUID{}, err
	}
	if err = productRepo.Update(ctx, existing); err != nil {
		return kernel.UUID{}, err
	}
	return existing.ID(), nil
}
