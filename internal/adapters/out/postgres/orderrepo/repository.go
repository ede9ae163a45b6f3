package orderrepo

import (
	"context"
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
)

// orderedByCatalog keeps preloaded line items in a stable order.
func orderedByCatalog(tx *gorm.DB) *gorm.DB {
	return tx.Order("catalog_id")
}

// activeStatuses are the statuses an order can still be waiting for goods in.
// Overdue detection only considers these.
var activeStatuses = []string{
	order.Pending.String(),
	order.Confirmed.String(),
	order.Shipped.String(),
	order.PartiallyDelivered.String(),
}

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order together with its line items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the mutable state of an existing order.
// The write is guarded by the version the aggregate was loaded with; when a
// concurrent writer got there first the guard misses and the caller receives
// a stale state error instead of silently overwriting the other change.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	loadedVersion := dto.Version

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Updates(map[string]any{
			"status":            dto.Status,
			"total_amount":      dto.TotalAmount,
			"is_connected":      dto.IsConnected,
			"reconciled":        dto.Reconciled,
			"notes":             dto.Notes,
			"receipt_notes":     dto.ReceiptNotes,
			"expected_delivery": dto.ExpectedDelivery,
			"version":           loadedVersion + 1,
			"updated_at":        time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewStaleStateError("order", aggregate.ID().String(), loadedVersion)
	}

	// Ordered quantities and prices are immutable after creation; only the
	// receipt progress and the reconciliation link can change.
	for _, item := range dto.Items {
		err := r.db.WithContext(ctx).
			Model(&ItemDTO{}).
			Where("id = ?", item.ID).
			Updates(map[string]any{
				"received_quantity": item.ReceivedQuantity,
				"mapped_product_id": item.MappedProductID,
			}).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID within the given store scope.
func (r *GormOrderRepository) Get(ctx context.Context, store kernel.StoreContext, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", orderedByCatalog).
		First(&dto, "store_id = ? AND id = ?", store.StoreID().Bytes(), id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllOverdue retrieves every active order whose expected delivery date
// passed before the given moment, across all stores.
func (r *GormOrderRepository) GetAllOverdue(ctx context.Context, before time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO

	err := r.db.WithContext(ctx).
		Preload("Items", orderedByCatalog).
		Where("expected_delivery IS NOT NULL AND expected_delivery < ? AND status IN ?", before, activeStatuses).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	aggregates := make([]*order.Order, 0, len(dtos))
	for i := range dtos {
		aggregate, mapErr := toDomain(dtos[i])
		if mapErr != nil {
			return nil, mapErr
		}
		aggregates = append(aggregates, aggregate)
	}

	return aggregates, nil
}
