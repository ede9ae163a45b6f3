package creditnote

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrCreditNoteIsNotConstructed is returned when a CreditNote instance was not
// created through the NewCreditNote factory method.
var ErrCreditNoteIsNotConstructed = errors.New("CreditNote must be created via NewCreditNote constructor")

// Status is the lifecycle state of a credit note.
type Status int

const (
	// StatusUnknown is the zero value and never valid.
	StatusUnknown Status = iota

	// StatusActive means the note still carries redeemable balance.
	StatusActive

	// StatusExhausted means the full amount was consumed.
	StatusExhausted

	// StatusVoided means the note was cancelled before exhaustion.
	StatusVoided
)

var statusNames = map[Status]string{
	StatusActive:    "active",
	StatusExhausted: "exhausted",
	StatusVoided:    "voided",
}

// String returns the wire name of the status.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// StatusFromString parses a wire name into a Status.
func StatusFromString(raw string) (Status, error) {
	for status, name := range statusNames {
		if name == raw {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("status")
}

// Validate reports whether the status is one of the defined states.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// CreditNote is a redeemable balance issued when a return completes.
// The amount is fixed at creation; usedAmount only grows and never exceeds
// the amount. Applying the balance against invoices happens elsewhere, the
// note only tracks the remaining balance invariant.
type CreditNote struct {
	id       kernel.UUID
	store    kernel.StoreContext
	returnID kernel.UUID

	amount     decimal.Decimal
	usedAmount decimal.Decimal
	status     Status

	version   int
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewCreditNote issues an active note for the given return.
// Amount must be positive; usedAmount starts at zero.
func NewCreditNote(id kernel.UUID, store kernel.StoreContext, returnID kernel.UUID, amount decimal.Decimal) (*CreditNote, error) {
	now := time.Now().UTC()
	n := &CreditNote{
		usedAmount:    decimal.Zero,
		status:        StatusActive,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		n.setID(id),
		n.setStore(store),
		n.setReturnID(returnID),
		n.setAmount(amount),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// RestoreCreditNote reconstructs a note from persistence.
func RestoreCreditNote(
	id kernel.UUID,
	store kernel.StoreContext,
	returnID kernel.UUID,
	amount, usedAmount decimal.Decimal,
	status Status,
	version int,
	createdAt, updatedAt time.Time,
) (*CreditNote, error) {
	n, err := NewCreditNote(id, store, returnID, amount)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if usedAmount.IsNegative() || usedAmount.GreaterThan(amount) {
		return nil, errs.NewValueIsOutOfRangeError("usedAmount", usedAmount, decimal.Zero, amount)
	}

	n.usedAmount = usedAmount
	n.status = status
	n.version = version
	n.createdAt = createdAt
	n.updatedAt = updatedAt
	return n, nil
}

// Validate ensures the CreditNote was constructed through NewCreditNote.
func (n *CreditNote) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrCreditNoteIsNotConstructed
	}
	return nil
}

// ID returns the note's identity.
func (n *CreditNote) ID() kernel.UUID {
	return n.id
}

// Store returns the tenant the note belongs to.
func (n *CreditNote) Store() kernel.StoreContext {
	return n.store
}

// ReturnID returns the completed return this note was issued for.
func (n *CreditNote) ReturnID() kernel.UUID {
	return n.returnID
}

// Amount returns the issued amount, fixed at creation.
func (n *CreditNote) Amount() decimal.Decimal {
	return n.amount
}

// UsedAmount returns the consumed portion of the amount.
func (n *CreditNote) UsedAmount() decimal.Decimal {
	return n.usedAmount
}

// Remaining returns the balance still available for consumption.
func (n *CreditNote) Remaining() decimal.Decimal {
	return n.amount.Sub(n.usedAmount)
}

// Status returns the current lifecycle state.
func (n *CreditNote) Status() Status {
	return n.status
}

// Version returns the optimistic-concurrency version of the aggregate.
func (n *CreditNote) Version() int {
	return n.version
}

// CreatedAt returns the creation timestamp.
func (n *CreditNote) CreatedAt() time.Time {
	return n.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (n *CreditNote) UpdatedAt() time.Time {
	return n.updatedAt
}

// Consume uses delta of the note's balance.
// Delta must be positive and must not exceed the remaining balance. When the
// balance reaches zero the note flips to exhausted.
func (n *CreditNote) Consume(delta decimal.Decimal) error {
	if n.status != StatusActive {
		return errs.NewInvalidStateError("credit note", "consume", n.status.String())
	}
	if !delta.IsPositive() {
		return errs.NewValueIsInvalidError("delta")
	}
	if delta.GreaterThan(n.Remaining()) {
		return errs.NewValueIsOutOfRangeError("delta", delta, decimal.Zero, n.Remaining())
	}

	n.usedAmount = n.usedAmount.Add(delta)
	if n.usedAmount.Equal(n.amount) {
		n.status = StatusExhausted
	}
	n.updatedAt = time.Now().UTC()
	return nil
}

// Void cancels an active note. Remaining balance is forfeited.
func (n *CreditNote) Void() error {
	if n.status != StatusActive {
		return errs.NewInvalidStateError("credit note", "void", n.status.String())
	}
	n.status = StatusVoided
	n.updatedAt = time.Now().UTC()
	return nil
}

func (n *CreditNote) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *CreditNote) setStore(store kernel.StoreContext) error {
	if err := store.Validate(); err != nil {
		return err
	}
	n.store = store
	return nil
}

func (n *CreditNote) setReturnID(returnID kernel.UUID) error {
	if err := returnID.Validate(); err != nil {
		return err
	}
	n.returnID = returnID
	return nil
}

func (n *CreditNote) setAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidError("amount")
	}
	n.amount = amount
	return nil
}
