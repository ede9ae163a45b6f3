// Package productrepo provides data transfer objects and mapping functions for
// inventory product persistence.
package productrepo

import (
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting inventory products.
type ProductDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	StoreID     uuid.UUID `gorm:"type:uuid;index"`
	Name        string    `gorm:"index"`
	Category    string
	Subcategory string
	Price       decimal.Decimal `gorm:"type:numeric"`
	Quantity    int
	Version     int
	CreatedAt   time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:          aggregate.ID().Bytes(),
		StoreID:     aggregate.Store().StoreID().Bytes(),
		Name:        aggregate.Name(),
		Category:    aggregate.Category(),
		Subcategory: aggregate.Subcategory(),
		Price:       aggregate.Price(),
		Quantity:    aggregate.Quantity(),
		Version:     aggregate.Version(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}
	store, err := kernel.NewStoreContext(storeID)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id,
		store,
		dto.Name,
		dto.Category,
		dto.Subcategory,
		dto.Price,
		dto.Quantity,
		dto.Version,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
