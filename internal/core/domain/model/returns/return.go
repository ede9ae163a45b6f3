package returns

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrReturnIsNotConstructed is returned when a Return instance was not created
// through the NewReturn factory method.
var ErrReturnIsNotConstructed = errors.New("Return must be created via NewReturn constructor")

// Return records goods going back to a supplier or coming back from a
// customer. It is created pending and terminates at completed (which issues a
// credit note) or rejected.
type Return struct {
	id    kernel.UUID
	store kernel.StoreContext
	kind  Kind

	// orderID links a supplier return to the delivered order it originates from
	orderID *kernel.UUID

	supplierID *kernel.UUID
	items      []*Item
	status     Status

	// totalAmount is derived from the items and fixed at creation
	totalAmount decimal.Decimal

	// creditNoteID is set when the return completes
	creditNoteID *kernel.UUID

	notes string

	version   int
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewReturn registers a new pending return.
// At least one item is required; orderID, supplierID and notes are optional.
// Whether a referenced order is actually delivered is checked by the caller,
// which has the order at hand.
func NewReturn(
	id kernel.UUID,
	store kernel.StoreContext,
	kind Kind,
	items []*Item,
	orderID *kernel.UUID,
	supplierID *kernel.UUID,
	notes string,
) (*Return, error) {
	now := time.Now().UTC()
	r := &Return{
		status:        StatusPending,
		notes:         notes,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setStore(store),
		r.setKind(kind),
		r.setItems(items),
		r.setOrderID(orderID),
		r.setSupplierID(supplierID),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreReturn reconstructs a return from persistence.
func RestoreReturn(
	id kernel.UUID,
	store kernel.StoreContext,
	kind Kind,
	items []*Item,
	orderID *kernel.UUID,
	supplierID *kernel.UUID,
	status Status,
	creditNoteID *kernel.UUID,
	notes string,
	version int,
	createdAt, updatedAt time.Time,
) (*Return, error) {
	r, err := NewReturn(id, store, kind, items, orderID, supplierID, notes)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if creditNoteID != nil {
		if err := creditNoteID.Validate(); err != nil {
			return nil, err
		}
	}

	r.status = status
	r.creditNoteID = creditNoteID
	r.version = version
	r.createdAt = createdAt
	r.updatedAt = updatedAt
	return r, nil
}

// Validate ensures the Return was constructed through NewReturn.
func (r *Return) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReturnIsNotConstructed
	}
	return nil
}

// ID returns the return's identity.
func (r *Return) ID() kernel.UUID {
	return r.id
}

// Store returns the tenant the return belongs to.
func (r *Return) Store() kernel.StoreContext {
	return r.store
}

// Kind reports whether this is a supplier or a customer return.
func (r *Return) Kind() Kind {
	return r.kind
}

// OrderID returns the originating order, nil for ad hoc returns.
func (r *Return) OrderID() *kernel.UUID {
	return r.orderID
}

// SupplierID returns the supplier the goods go back to, nil for customer returns.
func (r *Return) SupplierID() *kernel.UUID {
	return r.supplierID
}

// Items returns the returned lines.
func (r *Return) Items() []*Item {
	return r.items
}

// Status returns the current lifecycle state.
func (r *Return) Status() Status {
	return r.status
}

// TotalAmount returns the value of the return, fixed at creation.
func (r *Return) TotalAmount() decimal.Decimal {
	return r.totalAmount
}

// CreditNoteID returns the issued credit note, nil until completion.
func (r *Return) CreditNoteID() *kernel.UUID {
	return r.creditNoteID
}

// Notes returns the free-text annotation.
func (r *Return) Notes() string {
	return r.notes
}

// Version returns the optimistic-concurrency version of the aggregate.
func (r *Return) Version() int {
	return r.version
}

// CreatedAt returns the creation timestamp.
func (r *Return) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (r *Return) UpdatedAt() time.Time {
	return r.updatedAt
}

// Approve accepts a pending return without settling it yet.
func (r *Return) Approve() error {
	if r.status != StatusPending {
		return errs.NewInvalidStateError("return", "approve", r.status.String())
	}
	r.status = StatusApproved
	r.touch()
	return nil
}

// Reject refuses a pending or approved return. No credit note is issued.
func (r *Return) Reject() error {
	if r.status != StatusPending && r.status != StatusApproved {
		return errs.NewInvalidStateError("return", "reject", r.status.String())
	}
	r.status = StatusRejected
	r.touch()
	return nil
}

// Complete settles a pending return and links the credit note issued for it.
// The credit note itself is created by the caller with amount equal to
// TotalAmount; the aggregate only records the link.
func (r *Return) Complete(creditNoteID kernel.UUID) error {
	if r.status != StatusPending {
		return errs.NewInvalidStateError("return", "complete", r.status.String())
	}
	if err := creditNoteID.Validate(); err != nil {
		return err
	}

	r.creditNoteID = &creditNoteID
	r.status = StatusCompleted
	r.touch()
	return nil
}

func (r *Return) touch() {
	r.updatedAt = time.Now().UTC()
}

func (r *Return) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Return) setStore(store kernel.StoreContext) error {
	if err := store.Validate(); err != nil {
		return err
	}
	r.store = store
	return nil
}

func (r *Return) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	r.kind = kind
	return nil
}

func (r *Return) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	total := decimal.Zero
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		total = total.Add(item.TotalPrice())
	}

	r.items = items
	r.totalAmount = total
	return nil
}

func (r *Return) setOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return err
	}
	r.orderID = orderID
	return nil
}

func (r *Return) setSupplierID(supplierID *kernel.UUID) error {
	if supplierID == nil {
		return nil
	}
	if err := supplierID.Validate(); err != nil {
		return err
	}
	r.supplierID = supplierID
	return nil
}
