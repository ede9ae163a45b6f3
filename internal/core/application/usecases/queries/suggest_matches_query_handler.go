package queries

import (
	"context"

	"procurement/internal/core/domain/services"
	"procurement/internal/core/ports"
)

// SuggestMatchesQueryHandler produces advisory match suggestions for an order.
//
// Unlike the other read handlers it works through the repositories: the
// reconciler needs the order aggregate, the supplier's established mappings
// and the store's inventory, and consults the matcher for items no mapping
// covers. Nothing is written; suggestions are advisory only.
type SuggestMatchesQueryHandler struct {
	orderRepo   ports.OrderRepository
	mappingRepo ports.ProductMappingRepository
	productRepo ports.ProductRepository
	matcher     services.Matcher
	reconciler  services.Reconciler
}

// NewSuggestMatchesQueryHandler creates a handler for match suggestion queries.
func NewSuggestMatchesQueryHandler(
	orderRepo ports.OrderRepository,
	mappingRepo ports.ProductMappingRepository,
	productRepo ports.ProductRepository,
	matcher services.Matcher,
) SuggestMatchesQueryHandler {
	return SuggestMatchesQueryHandler{
		orderRepo:   orderRepo,
		mappingRepo: mappingRepo,
		productRepo: productRepo,
		matcher:     matcher,
		reconciler:  services.NewReconciler(),
	}
}

// Handle loads the order, its supplier's mappings and the inventory, then
// delegates to the reconciler.
func (h SuggestMatchesQueryHandler) Handle(ctx context.Context, query SuggestMatchesQuery) ([]services.Suggestion, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.orderRepo.Get(ctx, query.Store(), query.OrderID())
	if err != nil {
		return nil, err
	}

	mappings, err := h.mappingRepo.GetBySupplier(ctx, query.Store(), aggregate.SupplierID())
	if err != nil {
		return nil, err
	}

	inventory, err := h.productRepo.GetAllByStore(ctx, query.Store())
	if err != nil {
		return nil, err
	}

	return h.reconciler.SuggestMatches(ctx, aggregate, mappings, inventory, h.matcher)
}
