// Package mappingrepo persists catalog-to-product links established during
// delivery confirmation. The link table is keyed by store, supplier and
// catalog reference, so confirming a new mapping for the same catalog item
// replaces the previous one.
package mappingrepo

import (
	"context"
	"time"

	"procurement/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MappingDTO represents one established catalog-to-product link.
type MappingDTO struct {
	StoreID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	SupplierID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CatalogID  string    `gorm:"primaryKey"`
	ProductID  uuid.UUID `gorm:"type:uuid"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for mapping entities.
func (MappingDTO) TableName() string {
	return "product_mappings"
}

// GormProductMappingRepository implements ProductMappingRepository using GORM.
type GormProductMappingRepository struct {
	db *gorm.DB
}

// NewGormProductMappingRepository creates a new GORM product mapping repository.
func NewGormProductMappingRepository(db *gorm.DB) *GormProductMappingRepository {
	return &GormProductMappingRepository{db: db}
}

// Upsert records the link between a supplier's catalog item and a product,
// replacing any previous link for the same catalog item.
func (r *GormProductMappingRepository) Upsert(
	ctx context.Context,
	store kernel.StoreContext,
	supplierID kernel.UUID,
	catalogID string,
	productID kernel.UUID,
) error {
	dto := MappingDTO{
		StoreID:    store.StoreID().Bytes(),
		SupplierID: supplierID.Bytes(),
		CatalogID:  catalogID,
		ProductID:  productID.Bytes(),
		UpdatedAt:  time.Now().UTC(),
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "store_id"}, {Name: "supplier_id"}, {Name: "catalog_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"product_id", "updated_at"}),
		}).
		Create(&dto).Error
}

// GetBySupplier retrieves all established links for a supplier, keyed by
// catalog reference.
func (r *GormProductMappingRepository) GetBySupplier(
	ctx context.Context,
	store kernel.StoreContext,
	supplierID kernel.UUID,
) (map[string]kernel.UUID, error) {
	var dtos []MappingDTO

	err := r.db.WithContext(ctx).
		Where("store_id = ? AND supplier_id = ?", store.StoreID().Bytes(), supplierID.Bytes()).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	mappings := make(map[string]kernel.UUID, len(dtos))
	for _, dto := range dtos {
		productID, mapErr := kernel.UUIDFromBytes(dto.ProductID[:])
		if mapErr != nil {
			return nil, mapErr
		}
		mappings[dto.CatalogID] = productID
	}

	return mappings, nil
}
