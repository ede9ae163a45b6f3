package services

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/product"
	"procurement/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MatchSource tells where a suggestion came from.
type MatchSource int

const (
	// SourceUnknown is the zero value and never valid.
	SourceUnknown MatchSource = iota

	// SourceMapping means an established catalog-to-product mapping from a
	// prior reconciliation with the same supplier.
	SourceMapping

	// SourceHeuristic means the match came from the heuristic or external matcher.
	SourceHeuristic
)

// String returns the wire name of the source.
func (s MatchSource) String() string {
	switch s {
	case SourceMapping:
		return "mapping"
	case SourceHeuristic:
		return "heuristic"
	default:
		return "unknown"
	}
}

// MatchResult is what a Matcher reports for one catalog line item.
// ProductID is nil when no inventory product resembles the item; Reason
// explains the verdict either way.
type MatchResult struct {
	ProductID  *kernel.UUID
	Confidence float64
	Reason     string
}

// Matcher proposes an inventory product for a catalog line item.
// Implementations range from deterministic name similarity to external AI
// services; the reconciler treats them all as advisory.
type Matcher interface {
	Match(ctx context.Context, item *order.Item, inventory []*product.Product) (MatchResult, error)
}

// Suggestion is an advisory match between a catalog line item and local
// inventory. Suggestions are never applied automatically; the buyer confirms
// them through an explicit decision set.
type Suggestion struct {
	CatalogID          string
	CatalogName        string
	CatalogCategory    string
	CatalogSubcategory string
	Quantity           int
	UnitPrice          decimal.Decimal

	Source             MatchSource
	MatchedProductID   *kernel.UUID
	MatchedProductName string
	Confidence         float64
	Reason             string
}

// DefaultAction returns the policy default for this suggestion's confidence.
func (s Suggestion) DefaultAction() Action {
	return DefaultAction(s.Confidence)
}

// Reconciler is a domain service that links catalog line items of a delivered
// order to the buyer's inventory.
//
// It produces advisory match suggestions (established mappings first, the
// heuristic matcher as fallback) and validates the explicit decision set the
// buyer submits to confirm the delivery.
type Reconciler struct{}

// NewReconciler creates a new Reconciler instance.
func NewReconciler() Reconciler {
	return Reconciler{}
}

// SuggestMatches builds one suggestion per catalog line item of the order.
//
// An established mapping for the item's catalog reference wins and is emitted
// with full confidence. Everything else is delegated to the matcher, whose
// verdict is passed through unchanged, including "no match found".
func (r Reconciler) SuggestMatches(
	ctx context.Context,
	ord *order.Order,
	mappings map[string]kernel.UUID,
	inventory []*product.Product,
	matcher Matcher,
) ([]Suggestion, error) {
	if err := ord.Validate(); err != nil {
		return nil, err
	}
	if matcher == nil {
		return nil, errs.NewValueIsRequiredError("matcher")
	}

	productNames := make(map[kernel.UUID]string, len(inventory))
	for _, p := range inventory {
		productNames[p.ID()] = p.Name()
	}

	suggestions := make([]Suggestion, 0, len(ord.Items()))
	for _, item := range ord.Items() {
		suggestion := Suggestion{
			CatalogID:          item.CatalogID(),
			CatalogName:        item.Name(),
			CatalogCategory:    item.Category(),
			CatalogSubcategory: item.Subcategory(),
			Quantity:           item.Quantity(),
			UnitPrice:          item.UnitPrice(),
		}

		if productID, ok := mappings[item.CatalogID()]; ok {
			suggestion.Source = SourceMapping
			suggestion.MatchedProductID = &productID
			suggestion.MatchedProductName = productNames[productID]
			suggestion.Confidence = 1.0
			suggestions = append(suggestions, suggestion)
			continue
		}

		result, err := matcher.Match(ctx, item, inventory)
		if err != nil {
			return nil, err
		}

		suggestion.Source = SourceHeuristic
		suggestion.MatchedProductID = result.ProductID
		if result.ProductID != nil {
			suggestion.MatchedProductName = productNames[*result.ProductID]
		}
		suggestion.Confidence = result.Confidence
		suggestion.Reason = result.Reason
		suggestions = append(suggestions, suggestion)
	}

	return suggestions, nil
}

// ValidateDecisions checks that the decision set covers every catalog line
// item of the order exactly once and returns the decisions keyed by catalog
// reference.
func (r Reconciler) ValidateDecisions(ord *order.Order, decisions []Decision) (map[string]Decision, error) {
	if err := ord.Validate(); err != nil {
		return nil, err
	}

	byCatalogID := make(map[string]Decision, len(decisions))
	for _, decision := range decisions {
		if err := decision.Validate(); err != nil {
			return nil, err
		}
		if _, ok := byCatalogID[decision.CatalogID()]; ok {
			return nil, errs.NewIncompleteMappingErrorForCatalogID(decision.CatalogID())
		}
		byCatalogID[decision.CatalogID()] = decision
	}

	if len(byCatalogID) != len(ord.Items()) {
		return nil, errs.NewIncompleteMappingError(len(ord.Items()), len(byCatalogID))
	}
	for _, item := range ord.Items() {
		if _, ok := byCatalogID[item.CatalogID()]; !ok {
			return nil, errs.NewIncompleteMappingErrorForCatalogID(item.CatalogID())
		}
	}

	return byCatalogID, nil
}
