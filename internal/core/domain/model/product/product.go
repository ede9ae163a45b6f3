package product

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrProductIsNotConstructed is returned when a Product instance was not created
// through the NewProduct factory method.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is an inventory record on the buyer's side. Delivery reconciliation
// either creates one from a catalog line item or increments the quantity of an
// existing one.
type Product struct {
	id          kernel.UUID
	store       kernel.StoreContext
	name        string
	category    string
	subcategory string
	price       decimal.Decimal
	quantity    int

	version   int
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewProduct creates a validated inventory product.
// Category and subcategory may be empty; name is required, price must not be
// negative and quantity must not be negative.
func NewProduct(
	id kernel.UUID,
	store kernel.StoreContext,
	name, category, subcategory string,
	price decimal.Decimal,
	quantity int,
) (*Product, error) {
	now := time.Now().UTC()
	p := &Product{
		category:      category,
		subcategory:   subcategory,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setStore(store),
		p.setName(name),
		p.setPrice(price),
		p.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(
	id kernel.UUID,
	store kernel.StoreContext,
	name, category, subcategory string,
	price decimal.Decimal,
	quantity int,
	version int,
	createdAt, updatedAt time.Time,
) (*Product, error) {
	p, err := NewProduct(id, store, name, category, subcategory, price, quantity)
	if err != nil {
		return nil, err
	}

	p.version = version
	p.createdAt = createdAt
	p.updatedAt = updatedAt
	return p, nil
}

// Validate ensures the Product was constructed through NewProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's identity.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Store returns the tenant the product belongs to.
func (p *Product) Store() kernel.StoreContext {
	return p.store
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Category returns the product category.
func (p *Product) Category() string {
	return p.category
}

// Subcategory returns the product subcategory.
func (p *Product) Subcategory() string {
	return p.subcategory
}

// Price returns the product's unit price.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

// Quantity returns the quantity on hand.
func (p *Product) Quantity() int {
	return p.quantity
}

// Version returns the optimistic-concurrency version of the aggregate.
func (p *Product) Version() int {
	return p.version
}

// CreatedAt returns the creation timestamp.
func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (p *Product) UpdatedAt() time.Time {
	return p.updatedAt
}

// IncrementQuantity adds delta units to the quantity on hand.
// Delta must be positive; receiving goods never removes stock.
func (p *Product) IncrementQuantity(delta int) error {
	if delta <= 0 {
		return errs.NewValueIsInvalidError("delta")
	}
	p.quantity += delta
	p.updatedAt = time.Now().UTC()
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setStore(store kernel.StoreContext) error {
	if err := store.Validate(); err != nil {
		return err
	}
	p.store = store
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidError("price")
	}
	p.price = price
	return nil
}

func (p *Product) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	p.quantity = quantity
	return nil
}
