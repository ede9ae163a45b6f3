package creditnoterepo

import (
	"context"
	"errors"
	"time"

	"procurement/internal/core/domain/model/creditnote"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCreditNoteRepository implements CreditNoteRepository using GORM.
type GormCreditNoteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCreditNoteRepository creates a new GORM credit note repository.
func NewGormCreditNoteRepository(db *gorm.DB, tracker aggregateTracker) *GormCreditNoteRepository {
	return &GormCreditNoteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly issued credit note.
func (r *GormCreditNoteRepository) Add(ctx context.Context, aggregate *creditnote.CreditNote) error {
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

// Update saves consumption or voiding of an existing note.
// The issued amount never changes; only the used amount and status do.
// The write is guarded by the version the aggregate was loaded with.
func (r *GormCreditNoteRepository) Update(ctx context.Context, aggregate *creditnote.CreditNote) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	loadedVersion := dto.Version

	result := r.db.WithContext(ctx).
		Model(&CreditNoteDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Updates(map[string]any{
			"used_amount": dto.UsedAmount,
			"status":      dto.Status,
			"version":     loadedVersion + 1,
			"updated_at":  time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewStaleStateError("creditNote", aggregate.ID().String(), loadedVersion)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a credit note by ID within the given store scope.
func (r *GormCreditNoteRepository) Get(ctx context.Context, store kernel.StoreContext, id kernel.UUID) (*creditnote.CreditNote, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CreditNoteDTO
	err := r.db.WithContext(ctx).
		First(&dto, "store_id = ? AND id = ?", store.StoreID().Bytes(), id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("creditNote", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
