package order

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root for a purchase order between a buyer and a supplier.
// It owns the authoritative status, the ordered line items, and the cumulative
// received quantities per item.
//
// Invariants maintained by the aggregate:
//   - at least one line item, each with positive quantity
//   - received quantity never exceeds the ordered quantity for any item
//   - status transitions follow the legal edges of the Status state machine
//   - a connected (marketplace) order only becomes delivered through reconciliation
//   - total amount equals the sum of the line item totals
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// store is the tenant this order belongs to
	store kernel.StoreContext

	// supplierID identifies the supplier side of the order
	supplierID kernel.UUID

	// status is the current state in the order lifecycle
	status Status

	// items are the ordered line items (immutable after construction)
	items []*Item

	// receivedItems holds the cumulative received quantity per item id
	receivedItems map[kernel.UUID]int

	// isConnected distinguishes marketplace orders (reconciled on delivery)
	// from manually tracked orders
	isConnected bool

	// reconciled is set once delivery reconciliation has been applied
	reconciled bool

	// totalAmount is the derived sum of line item totals
	totalAmount decimal.Decimal

	notes        string
	receiptNotes []string

	expectedDelivery *time.Time

	// version supports optimistic concurrency in the persistence layer
	version int

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order in pending status.
//
// Parameters:
//   - id: unique identifier (must be a constructed UUID)
//   - store: tenant the order belongs to
//   - supplierID: the supplier the order is placed with
//   - items: at least one validated line item
//   - isConnected: true for marketplace orders whose delivery is reconciled
//
// The total amount is derived from the items. Optional attributes (notes,
// expected delivery) are set through SetNotes and SetExpectedDelivery.
func NewOrder(
	id kernel.UUID,
	store kernel.StoreContext,
	supplierID kernel.UUID,
	items []*Item,
	isConnected bool,
) (*Order, error) {
	now := time.Now().UTC()
	order := &Order{
		status:        Pending,
		receivedItems: make(map[kernel.UUID]int),
		isConnected:   isConnected,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setStore(store),
		order.setSupplierID(supplierID),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order aggregate from persistence.
// All invariants are re-validated; the received quantities are checked
// against the ordered quantities.
func RestoreOrder(
	id kernel.UUID,
	store kernel.StoreContext,
	supplierID kernel.UUID,
	items []*Item,
	status Status,
	receivedItems map[kernel.UUID]int,
	isConnected bool,
	reconciled bool,
	notes string,
	receiptNotes []string,
	expectedDelivery *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	order, err := NewOrder(id, store, supplierID, items, isConnected)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	for itemID, qty := range receivedItems {
		item := order.findItem(itemID)
		if item == nil {
			return nil, errs.NewObjectNotFoundError("item", itemID.String())
		}
		if qty > item.Quantity() {
			return nil, errs.NewQuantityExceedsOrderedError(itemID.String(), qty, item.Quantity())
		}
		order.receivedItems[itemID] = qty
	}

	order.status = status
	order.reconciled = reconciled
	order.notes = notes
	order.receiptNotes = append([]string(nil), receiptNotes...)
	order.expectedDelivery = expectedDelivery
	order.version = version
	order.createdAt = createdAt
	order.updatedAt = updatedAt

	return order, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Store returns the tenant the order belongs to.
func (o *Order) Store() kernel.StoreContext {
	return o.store
}

// SupplierID returns the supplier the order is placed with.
func (o *Order) SupplierID() kernel.UUID {
	return o.supplierID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the ordered line items.
func (o *Order) Items() []*Item {
	return o.items
}

// ReceivedQuantity returns the cumulative received quantity for the given item.
func (o *Order) ReceivedQuantity(itemID kernel.UUID) int {
	return o.receivedItems[itemID]
}

// ReceivedItems returns a copy of the cumulative received quantities per item.
func (o *Order) ReceivedItems() map[kernel.UUID]int {
	out := make(map[kernel.UUID]int, len(o.receivedItems))
	for id, qty := range o.receivedItems {
		out[id] = qty
	}
	return out
}

// TotalAmount returns the sum of all line item totals.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// IsConnected reports whether this is a marketplace order whose delivery
// must go through reconciliation.
func (o *Order) IsConnected() bool {
	return o.isConnected
}

// IsReconciled reports whether delivery reconciliation has been applied.
func (o *Order) IsReconciled() bool {
	return o.reconciled
}

// Notes returns the free-form notes attached at creation.
func (o *Order) Notes() string {
	return o.notes
}

// ReceiptNotes returns the audit annotations recorded with partial receipts.
func (o *Order) ReceiptNotes() []string {
	return o.receiptNotes
}

// ExpectedDelivery returns the expected delivery date, nil when not set.
func (o *Order) ExpectedDelivery() *time.Time {
	return o.expectedDelivery
}

// Version returns the optimistic-concurrency version of the aggregate.
func (o *Order) Version() int {
	return o.version
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// SetNotes attaches free-form notes to the order.
func (o *Order) SetNotes(notes string) {
	o.notes = notes
}

// SetExpectedDelivery records the expected delivery date.
func (o *Order) SetExpectedDelivery(t time.Time) {
	utc := t.UTC()
	o.expectedDelivery = &utc
}

// TransitionTo advances the order status along the legal edges.
//
// Business rules:
//   - illegal edges fail with IllegalTransitionError
//   - a connected order cannot be set to delivered directly; it must go
//     through delivery reconciliation first (ReconciliationRequiredError)
//   - reaching delivered implies full receipt: the received quantities are
//     topped up to the ordered quantities
func (o *Order) TransitionTo(target Status) error {
	if target == Delivered && o.isConnected && !o.reconciled {
		return errs.NewReconciliationRequiredError(o.id.String())
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	if newStatus == Delivered {
		o.markFullyReceived()
	}
	o.touch()
	return nil
}

// ReceiveItems applies a batch of cumulative receipt entries and derives the
// resulting status.
//
// Rules (per entry, validated before anything is applied):
//   - the order must be in shipped or partially_delivered status
//   - the item must exist on the order
//   - the cumulative quantity must not exceed the ordered quantity
//
// After applying all entries the order becomes delivered when every item is
// fully received, otherwise partially_delivered. Resubmitting identical
// cumulative quantities is a no-op. The optional note is stored as an audit
// annotation and plays no part in the derivation.
func (o *Order) ReceiveItems(entries []ReceiptEntry, note string) error {
	if !o.status.CanReceive() {
		return errs.NewInvalidStateError("order", "receive items for", o.status.String())
	}

	if len(entries) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	// Validate the whole batch first so a rejected entry leaves no partial application.
	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return err
		}
		item := o.findItem(entry.ItemID())
		if item == nil {
			return errs.NewObjectNotFoundError("item", entry.ItemID().String())
		}
		if entry.Quantity() > item.Quantity() {
			return errs.NewQuantityExceedsOrderedError(entry.ItemID().String(), entry.Quantity(), item.Quantity())
		}
	}

	changed := false
	for _, entry := range entries {
		if o.receivedItems[entry.ItemID()] != entry.Quantity() {
			o.receivedItems[entry.ItemID()] = entry.Quantity()
			changed = true
		}
	}

	derived := PartiallyDelivered
	if o.allItemsFullyReceived() {
		derived = Delivered
	}
	if derived != o.status {
		o.status = derived
		changed = true
	}

	if note != "" {
		o.receiptNotes = append(o.receiptNotes, note)
		changed = true
	}

	if changed {
		o.touch()
	}
	return nil
}

// CompleteReconciliation applies the outcome of delivery reconciliation:
// every line item is linked to its inventory product and the order becomes
// delivered with full receipt.
//
// links maps each line item's catalog reference to the inventory product it
// was matched to (newly created or existing). Every line item must be covered,
// otherwise IncompleteMappingError is returned and nothing is applied.
func (o *Order) CompleteReconciliation(links map[string]kernel.UUID) error {
	if o.status != Shipped {
		return errs.NewInvalidStateError("order", "reconcile", o.status.String())
	}

	for _, item := range o.items {
		if _, ok := links[item.CatalogID()]; !ok {
			return errs.NewIncompleteMappingErrorForCatalogID(item.CatalogID())
		}
	}

	for _, item := range o.items {
		if err := item.MapToProduct(links[item.CatalogID()]); err != nil {
			return err
		}
	}

	o.reconciled = true
	o.status = Delivered
	o.markFullyReceived()
	o.touch()
	return nil
}

func (o *Order) findItem(itemID kernel.UUID) *Item {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item
		}
	}
	return nil
}

func (o *Order) allItemsFullyReceived() bool {
	for _, item := range o.items {
		if o.receivedItems[item.ID()] != item.Quantity() {
			return false
		}
	}
	return true
}

func (o *Order) markFullyReceived() {
	for _, item := range o.items {
		o.receivedItems[item.ID()] = item.Quantity()
	}
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setStore(store kernel.StoreContext) error {
	if err := store.Validate(); err != nil {
		return err
	}
	o.store = store
	return nil
}

func (o *Order) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}
	o.supplierID = supplierID
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	total := decimal.Zero
	seenIDs := make(map[kernel.UUID]bool, len(items))
	seenCatalogIDs := make(map[string]bool, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if seenIDs[item.ID()] {
			return errs.NewValueIsInvalidErrorWithCause("items",
				errs.NewValueIsInvalidError("duplicate item id "+item.ID().String()))
		}
		// Reconciliation decisions are keyed by catalog id, so two lines
		// sharing one catalog id could never be matched one to one.
		if seenCatalogIDs[item.CatalogID()] {
			return errs.NewValueIsInvalidErrorWithCause("items",
				errs.NewValueIsInvalidError("duplicate catalog id "+item.CatalogID()))
		}
		seenIDs[item.ID()] = true
		seenCatalogIDs[item.CatalogID()] = true
		total = total.Add(item.TotalPrice())
	}

	o.items = items
	o.totalAmount = total
	return nil
}
