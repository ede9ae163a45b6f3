package order

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created through
// the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line item of a purchase order. The ordered quantity is immutable
// once the order is confirmed; reconciliation may later link the item to a
// local inventory product via MapToProduct.
type Item struct {
	// id is the item's identity, unique within the order
	id kernel.UUID

	// catalogID is the external catalog reference supplied by the marketplace or buyer
	catalogID string

	// name is the display name carried from the catalog
	name string

	// category and subcategory are carried from the catalog and seed new
	// inventory products during reconciliation; both may be empty
	category    string
	subcategory string

	// quantity is the ordered quantity (immutable once the order is confirmed)
	quantity int

	// unitPrice is the agreed price per unit
	unitPrice decimal.Decimal

	// mappedProductID is set once reconciliation linked the item to local inventory
	mappedProductID *kernel.UUID

	isConstructed bool
}

// NewItem creates a validated order line item.
//
// Validation rules:
//   - id must be a constructed UUID
//   - catalogID must not be empty
//   - quantity must be positive
//   - unitPrice must not be negative
func NewItem(id kernel.UUID, catalogID, name, category, subcategory string, quantity int, unitPrice decimal.Decimal) (*Item, error) {
	item := &Item{
		category:      category,
		subcategory:   subcategory,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setCatalogID(catalogID),
		item.setName(name),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an item from persistence, including an optional
// established product link.
func RestoreItem(
	id kernel.UUID,
	catalogID, name, category, subcategory string,
	quantity int,
	unitPrice decimal.Decimal,
	mappedProductID *kernel.UUID,
) (*Item, error) {
	item, err := NewItem(id, catalogID, name, category, subcategory, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	if mappedProductID != nil {
		if err := item.MapToProduct(*mappedProductID); err != nil {
			return nil, err
		}
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

// ID returns the item's identity.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// CatalogID returns the external catalog reference.
func (i *Item) CatalogID() string {
	return i.catalogID
}

// Name returns the catalog display name.
func (i *Item) Name() string {
	return i.name
}

// Category returns the catalog category, empty when the catalog has none.
func (i *Item) Category() string {
	return i.category
}

// Subcategory returns the catalog subcategory, empty when the catalog has none.
func (i *Item) Subcategory() string {
	return i.subcategory
}

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the agreed price per unit.
func (i *Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// TotalPrice returns quantity × unit price.
func (i *Item) TotalPrice() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// MappedProductID returns the linked inventory product, nil before reconciliation.
func (i *Item) MappedProductID() *kernel.UUID {
	return i.mappedProductID
}

// MapToProduct records the inventory product this line item was reconciled to.
func (i *Item) MapToProduct(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.mappedProductID = &productID
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setCatalogID(catalogID string) error {
	if catalogID == "" {
		return errs.NewValueIsRequiredError("catalogID")
	}
	i.catalogID = catalogID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
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
