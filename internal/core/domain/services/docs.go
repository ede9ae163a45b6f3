// Package services provides domain services that coordinate business operations
// across multiple aggregates.
//
// The package includes:
//   - Reconciler: matches catalog line items of a delivered order against the
//     buyer's inventory and validates the decision set confirming the delivery
//   - DefaultAction: the confidence-threshold policy for pre-selecting a
//     decision, kept separate from any presentation concern
package services
