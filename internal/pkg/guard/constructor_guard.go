// Package guard provides a lightweight defensive pattern that ensures value
// objects, commands and queries are only created through their designated
// constructor functions. Embedding a ConstructorGuard in a struct makes a
// zero-value instance distinguishable from a properly constructed one.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard tracks whether the enclosing object went through its
// constructor. The zero value is "not constructed" and fails Validate.
//
// Example usage:
//
//	type ReceiptEntry struct {
//	    itemID kernel.UUID
//	    qty    int
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewReceiptEntry(itemID kernel.UUID, qty int) (ReceiptEntry, error) {
//	    ...
//	    return ReceiptEntry{itemID: itemID, qty: qty, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (e ReceiptEntry) Validate() error {
//	    return e.guard.Validate(ErrReceiptEntryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly constructed.
// Constructors must embed the returned value into the object they build.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its constructor.
// Returns nil for constructed objects. For zero values it returns validationError,
// or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
