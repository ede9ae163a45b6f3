package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalTransition is the sentinel error for status transitions outside the legal edges.
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrReconciliationRequired is the sentinel error for connected orders that were asked
	// to become delivered without going through delivery reconciliation first.
	ErrReconciliationRequired = errors.New("reconciliation required")

	// ErrQuantityExceedsOrdered is the sentinel error for partial receipts reporting more
	// than the ordered quantity for a line item.
	ErrQuantityExceedsOrdered = errors.New("received quantity exceeds ordered quantity")

	// ErrIncompleteMapping is the sentinel error for reconciliation decision sets that do not
	// cover every catalog line item exactly once.
	ErrIncompleteMapping = errors.New("incomplete mapping")

	// ErrStaleState is the sentinel error for optimistic-concurrency conflicts. Callers must
	// re-read the entity and retry.
	ErrStaleState = errors.New("stale state")

	// ErrInvalidState is the sentinel error for actions attempted on an entity whose current
	// status does not permit them.
	ErrInvalidState = errors.New("invalid state")
)

// IllegalTransitionError reports a status transition that is not among the legal edges.
// Current and Requested carry the human-readable status names.
type IllegalTransitionError struct {
	Current   string
	Requested string
}

// NewIllegalTransitionError creates an IllegalTransitionError for the rejected edge.
func NewIllegalTransitionError(current, requested string) *IllegalTransitionError {
	return &IllegalTransitionError{Current: current, Requested: requested}
}

func (e *IllegalTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s -> %s", ErrIllegalTransition, e.Current, e.Requested))
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// ReconciliationRequiredError reports an attempt to mark a connected (marketplace) order
// delivered before its catalog line items were reconciled against inventory.
type ReconciliationRequiredError struct {
	OrderID string
}

// NewReconciliationRequiredError creates a ReconciliationRequiredError for the given order.
func NewReconciliationRequiredError(orderID string) *ReconciliationRequiredError {
	return &ReconciliationRequiredError{OrderID: orderID}
}

func (e *ReconciliationRequiredError) Error() string {
	return sanitize(fmt.Sprintf("%s: connected order %s must be reconciled before delivery", ErrReconciliationRequired, e.OrderID))
}

func (e *ReconciliationRequiredError) Unwrap() error {
	return ErrReconciliationRequired
}

// QuantityExceedsOrderedError reports a cumulative received quantity above the ordered quantity.
type QuantityExceedsOrderedError struct {
	ItemID   string
	Received int
	Ordered  int
}

// NewQuantityExceedsOrderedError creates a QuantityExceedsOrderedError for the offending item.
func NewQuantityExceedsOrderedError(itemID string, received, ordered int) *QuantityExceedsOrderedError {
	return &QuantityExceedsOrderedError{ItemID: itemID, Received: received, Ordered: ordered}
}

func (e *QuantityExceedsOrderedError) Error() string {
	return sanitize(fmt.Sprintf("%s: item %s, received %d, ordered %d",
		ErrQuantityExceedsOrdered, e.ItemID, e.Received, e.Ordered))
}

func (e *QuantityExceedsOrderedError) Unwrap() error {
	return ErrQuantityExceedsOrdered
}

// IncompleteMappingError reports a reconciliation decision set that does not contain exactly
// one decision per catalog line item. CatalogID is set when a specific line item or decision
// could be identified as the offender, otherwise Expected/Got carry the counts.
type IncompleteMappingError struct {
	Expected  int
	Got       int
	CatalogID string
}

// NewIncompleteMappingError creates an IncompleteMappingError from the expected and actual
// decision counts.
func NewIncompleteMappingError(expected, got int) *IncompleteMappingError {
	return &IncompleteMappingError{Expected: expected, Got: got}
}

// NewIncompleteMappingErrorForCatalogID creates an IncompleteMappingError pointing at a
// catalog item that is missing a decision or received a decision it should not have.
func NewIncompleteMappingErrorForCatalogID(catalogID string) *IncompleteMappingError {
	return &IncompleteMappingError{CatalogID: catalogID}
}

func (e *IncompleteMappingError) Error() string {
	if e.CatalogID != "" {
		return sanitize(fmt.Sprintf("%s: catalog item %s", ErrIncompleteMapping, e.CatalogID))
	}
	return sanitize(fmt.Sprintf("%s: expected %d decisions, got %d", ErrIncompleteMapping, e.Expected, e.Got))
}

func (e *IncompleteMappingError) Unwrap() error {
	return ErrIncompleteMapping
}

// StaleStateError reports an optimistic-concurrency conflict: the entity was modified by a
// concurrent request between the caller's read and write.
type StaleStateError struct {
	ParamName string
	ID        string
	Version   int
}

// NewStaleStateError creates a StaleStateError for the entity and the version the caller held.
func NewStaleStateError(paramName, id string, version int) *StaleStateError {
	return &StaleStateError{ParamName: paramName, ID: id, Version: version}
}

func (e *StaleStateError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s %s was modified concurrently (version %d)",
		ErrStaleState, e.ParamName, e.ID, e.Version))
}

func (e *StaleStateError) Unwrap() error {
	return ErrStaleState
}

// InvalidStateError reports an action attempted on an entity whose status forbids it,
// e.g. completing a return that is not pending.
type InvalidStateError struct {
	ParamName string
	Action    string
	Current   string
}

// NewInvalidStateError creates an InvalidStateError for the rejected action.
func NewInvalidStateError(paramName, action, current string) *InvalidStateError {
	return &InvalidStateError{ParamName: paramName, Action: action, Current: current}
}

func (e *InvalidStateError) Error() string {
	return sanitize(fmt.Sprintf("%s: cannot %s %s in status %s", ErrInvalidState, e.Action, e.ParamName, e.Current))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}
