package returns

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created through
// the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one returned product line. Unlike an order line it references local
// inventory directly, since returned goods are already known products.
type Item struct {
	productID   kernel.UUID
	productName string
	quantity    int
	unitPrice   decimal.Decimal
	reason      string

	isConstructed bool
}

// NewItem creates a validated return line item. Reason is optional.
func NewItem(productID kernel.UUID, productName string, quantity int, unitPrice decimal.Decimal, reason string) (*Item, error) {
	item := &Item{
		reason:        reason,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setProductName(productName),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the Item was constructed through NewItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ProductID returns the inventory product being returned.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// ProductName returns the product name snapshotted at return creation.
func (i *Item) ProductName() string {
	return i.productName
}

// Quantity returns the returned quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per unit used to value the return.
func (i *Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// TotalPrice returns quantity × unit price.
func (i *Item) TotalPrice() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// Reason returns the free-text reason for this line, empty when not given.
func (i *Item) Reason() string {
	return i.reason
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	i.productName = productName
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidError("unitPrice")
	}
	i.unitPrice = unitPrice
	return nil
}
