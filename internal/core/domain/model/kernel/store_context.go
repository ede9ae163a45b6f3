package kernel

import "procurement/internal/pkg/errs"

// ErrStoreContextIsNotConstructed indicates that a StoreContext was not created via
// NewStoreContext. Returned when validating a zero-value StoreContext.
var ErrStoreContextIsNotConstructed = errs.NewValueIsRequiredError("StoreContext must be created via NewStoreContext")

// StoreContext identifies the store (tenant) an operation runs against.
// Every command and every persisted aggregate carries one explicitly; there is
// no ambient "current store" anywhere in the core.
//
// StoreContext is a value object: immutable, comparable, and invalid as a zero
// value.
type StoreContext struct {
	storeID UUID
}

// NewStoreContext creates a StoreContext for the given store identifier.
func NewStoreContext(storeID UUID) (StoreContext, error) {
	if err := storeID.Validate(); err != nil {
		return StoreContext{}, err
	}
	return StoreContext{storeID: storeID}, nil
}

// StoreID returns the identifier of the store this context represents.
func (s StoreContext) StoreID() UUID {
	return s.storeID
}

// IsEqual reports whether two contexts reference the same store.
func (s StoreContext) IsEqual(other StoreContext) bool {
	return s.storeID.IsEqual(other.storeID)
}

// Validate checks that the context was created via NewStoreContext.
func (s StoreContext) Validate() error {
	if err := s.storeID.Validate(); err != nil {
		return ErrStoreContextIsNotConstructed
	}
	return nil
}
