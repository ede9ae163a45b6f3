package services

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

// ErrDecisionIsNotConstructed is returned when a Decision was not created through
// one of its factory methods.
var ErrDecisionIsNotConstructed = errors.New("Decision must be created via NewLinkDecision or NewCreateDecision")

// Action is the default resolution suggested for a match confidence.
type Action int

const (
	// ActionLinkProduct pre-selects linking to the suggested product.
	ActionLinkProduct Action = iota + 1

	// ActionAmbiguous requires the buyer to resolve the match explicitly.
	ActionAmbiguous

	// ActionCreateNew pre-selects creating a new inventory product.
	ActionCreateNew
)

// Confidence thresholds of the default decision policy.
const (
	linkThreshold      = 0.7
	ambiguousThreshold = 0.4
)

// DefaultAction maps a match confidence to the default resolution.
// Defaults are advisory; the buyer can always override them with an explicit
// decision.
func DefaultAction(confidence float64) Action {
	switch {
	case confidence >= linkThreshold:
		return ActionLinkProduct
	case confidence >= ambiguousThreshold:
		return ActionAmbiguous
	default:
		return ActionCreateNew
	}
}

// Decision resolves one catalog line item during delivery confirmation: either
// link it to an existing inventory product or create a new product from it.
// Exactly one of the two is set.
type Decision struct {
	catalogID string
	productID *kernel.UUID
	createNew bool

	guard guard.ConstructorGuard
}

// NewLinkDecision resolves a catalog item by linking it to an existing product.
func NewLinkDecision(catalogID string, productID kernel.UUID) (Decision, error) {
	if catalogID == "" {
		return Decision{}, errs.NewValueIsRequiredError("catalogID")
	}
	if err := productID.Validate(); err != nil {
		return Decision{}, err
	}

	return Decision{
		catalogID: catalogID,
		productID: &productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// NewCreateDecision resolves a catalog item by creating a new inventory product
// seeded from the line item.
func NewCreateDecision(catalogID string) (Decision, error) {
	if catalogID == "" {
		return Decision{}, errs.NewValueIsRequiredError("catalogID")
	}

	return Decision{
		catalogID: catalogID,
		createNew: true,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the decision was created through a factory method.
func (d Decision) Validate() error {
	return d.guard.Validate(ErrDecisionIsNotConstructed)
}

// CatalogID returns the catalog line item this decision resolves.
func (d Decision) CatalogID() string {
	return d.catalogID
}

// ProductID returns the linked product, nil for create-new decisions.
func (d Decision) ProductID() *kernel.UUID {
	return d.productID
}

// CreateNew reports whether a new product should be created.
func (d Decision) CreateNew() bool {
	return d.createNew
}
