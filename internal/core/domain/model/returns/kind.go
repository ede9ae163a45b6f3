package returns

import (
	"procurement/internal/pkg/errs"
)

// Kind distinguishes who the goods go back to.
type Kind int

const (
	// KindUnknown is the zero value and never valid.
	KindUnknown Kind = iota

	// KindSupplier is a return of delivered goods back to the supplier.
	KindSupplier

	// KindCustomer is a return of sold goods coming back from a customer.
	KindCustomer
)

var kindNames = map[Kind]string{
	KindSupplier: "supplier",
	KindCustomer: "customer",
}

// String returns the wire name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// KindFromString parses a wire name into a Kind.
func KindFromString(raw string) (Kind, error) {
	for kind, name := range kindNames {
		if name == raw {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidError("kind")
}

// Validate reports whether the kind is one of the defined variants.
func (k Kind) Validate() error {
	if _, ok := kindNames[k]; !ok {
		return errs.NewValueIsInvalidError("kind")
	}
	return nil
}
