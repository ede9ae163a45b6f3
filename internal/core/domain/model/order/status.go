package order

import (
	"procurement/internal/pkg/errs"
)

// Status represents the lifecycle state of a purchase order.
// It implements a state machine with asymmetric legal transitions:
//
//	pending ──> confirmed ──> shipped ──────────> delivered
//	   │            │            │                    ▲
//	   │            │            └> partially_delivered
//	   ▼            ▼
//	cancelled   cancelled
//
// delivered and cancelled are terminal. Any other requested edge fails
// with an IllegalTransitionError.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when the buyer creates an order.
	Pending

	// Confirmed indicates the supplier accepted the order.
	Confirmed

	// Shipped indicates the goods left the supplier.
	Shipped

	// PartiallyDelivered indicates some, but not all, ordered quantities were received.
	PartiallyDelivered

	// Delivered indicates every ordered quantity was received. Terminal.
	Delivered

	// Cancelled indicates the order was withdrawn before shipment. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:            "unknown",
		Pending:            "pending",
		Confirmed:          "confirmed",
		Shipped:            "shipped",
		PartiallyDelivered: "partially_delivered",
		Delivered:          "delivered",
		Cancelled:          "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:            "pending",
		Confirmed:          "confirmed",
		Shipped:            "shipped",
		PartiallyDelivered: "partially_delivered",
		Delivered:          "delivered",
		Cancelled:          "cancelled",
	}
}

// StatusFromString parses the wire representation of a status
// ("pending", "partially_delivered", ...). Returns an error for
// anything that is not a valid status name.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status " + name)
}

// Validate checks if the Status value is one of the six defined statuses.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the wire name of the status ("pending", "shipped", ...).
// Implements fmt.Stringer; safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanReceive reports whether partial receipt submissions are accepted in this status.
func (s Status) CanReceive() bool {
	return s == Shipped || s == PartiallyDelivered
}

// CanTransitionTo reports whether target is a legal edge from this status.
//
// Legal edges:
//   - pending -> confirmed, cancelled
//   - confirmed -> shipped, cancelled
//   - shipped -> delivered, partially_delivered
//   - partially_delivered -> delivered
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case Pending:
		return target == Confirmed || target == Cancelled
	case Confirmed:
		return target == Shipped || target == Cancelled
	case Shipped:
		return target == Delivered || target == PartiallyDelivered
	case PartiallyDelivered:
		return target == Delivered
	case Delivered, Cancelled, Unknown:
		return false
	}
	return false
}

// TransitionTo performs the state transition to target.
//
// Returns:
//   - (target, nil) when the edge is legal
//   - (0, *errs.ValueIsInvalidError) when target is not a valid status
//   - (0, *errs.IllegalTransitionError) when the edge is not in the DAG
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(target) {
		return 0, errs.NewIllegalTransitionError(s.String(), target.String())
	}

	return target, nil
}
