// Package order provides domain entities and business logic for purchase order
// management in the procurement system. It implements the Order aggregate root
// with its six-status lifecycle, cumulative partial-receipt tracking, and the
// reconciliation hand-off for connected marketplace orders.
//
// Key components:
//   - Order: the aggregate root owning status, line items and received quantities
//   - Status: the state machine with the legal transition edges
//   - Item: an ordered line item, optionally linked to inventory after reconciliation
//   - ReceiptEntry: a cumulative received-quantity report for one line item
//
// The aggregate enforces the core invariants of the system: received
// quantities never exceed ordered quantities, status only moves along legal
// edges, and a connected order only reaches delivered through reconciliation.
package order
