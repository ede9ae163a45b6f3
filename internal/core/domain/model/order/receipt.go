package order

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

// ErrReceiptEntryIsNotConstructed is returned when a ReceiptEntry was not created
// through the NewReceiptEntry factory method.
var ErrReceiptEntryIsNotConstructed = errors.New("ReceiptEntry must be created via NewReceiptEntry constructor")

// ReceiptEntry reports the cumulative quantity received so far for one line item.
// The quantity is a running total, not a delta, so retried or duplicated
// submissions stay idempotent instead of double-counting.
type ReceiptEntry struct {
	itemID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

// NewReceiptEntry creates a receipt entry for the given item.
// The quantity is the cumulative received amount and must not be negative;
// whether it exceeds the ordered quantity is checked against the order itself.
func NewReceiptEntry(itemID kernel.UUID, quantity int) (ReceiptEntry, error) {
	if err := itemID.Validate(); err != nil {
		return ReceiptEntry{}, err
	}
	if quantity < 0 {
		return ReceiptEntry{}, errs.NewValueIsInvalidError("receivedQuantity")
	}

	return ReceiptEntry{
		itemID:   itemID,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the entry was created through the constructor.
func (e ReceiptEntry) Validate() error {
	return e.guard.Validate(ErrReceiptEntryIsNotConstructed)
}

// ItemID returns the line item this entry refers to.
func (e ReceiptEntry) ItemID() kernel.UUID {
	return e.itemID
}

// Quantity returns the cumulative received quantity.
func (e ReceiptEntry) Quantity() int {
	return e.quantity
}
